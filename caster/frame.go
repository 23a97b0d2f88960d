package caster

import (
	"math"
	"runtime"

	"github.com/harbdog/raycaster-go/geom"
	"golang.org/x/sync/errgroup"
)

// columns handed to one goroutine at a time
const columnBatch = 32

// Slice is everything needed to draw one screen column of wall.
type Slice struct {
	Column      int
	Top, Bottom int
	// Height is the projected wall height before clamping to the screen.
	Height float64
	TexU   float64
	Tag    Tag
	Axis   Axis
	// Distance is perpendicular to the view plane and drives the height.
	Distance float64
	// RayDistance is measured along the column's ray.
	RayDistance float64
	// Drawn is false when nothing was hit or the span collapsed.
	Drawn bool
}

// Frame is the output of one Render call. Slices holds one entry per
// screen column, in column order.
type Frame struct {
	Pose   Pose
	View   View
	Slices []Slice
}

// Occluded reports whether a wall in column is nearer than distance.
// Columns outside the frame never occlude.
func (f *Frame) Occluded(column int, distance float64) bool {
	if column < 0 || column >= len(f.Slices) {
		return false
	}
	wall := f.Slices[column].RayDistance
	return finite(wall) && wall < distance
}

// Project projects point with ProjectSprite and depth-tests it against the
// wall in its centre column.
func (f *Frame) Project(point geom.Vector2, b Billboard) (ScreenSprite, bool) {
	s, ok := ProjectSprite(point, f.Pose, f.View, b)
	if !ok {
		return s, false
	}
	s.Occluded = f.Occluded(s.Column, s.Distance)
	return s, true
}

// Renderer casts a full frame of columns against a fixed grid.
type Renderer struct {
	Grid     Grid
	CellSize float64
	View     View
	// Workers caps the goroutines used per frame; 0 means one per CPU and
	// 1 casts every column on the calling goroutine.
	Workers int

	frame Frame
}

// RayAngle is the angle cast for screen column x.
func RayAngle(pose Pose, width, x int) float64 {
	return pose.Angle - pose.FOV/2 + pose.FOV*float64(x)/float64(width)
}

// Render casts every column for pose. The returned frame is reused by the
// next call.
func (r *Renderer) Render(pose Pose) *Frame {
	width := r.View.Width
	if cap(r.frame.Slices) < width {
		r.frame.Slices = make([]Slice, width)
	}
	r.frame.Slices = r.frame.Slices[:width]
	r.frame.Pose = pose
	r.frame.View = r.View

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	if workers == 1 || width <= columnBatch {
		r.castRange(pose, 0, width)
		return &r.frame
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for start := 0; start < width; start += columnBatch {
		start, end := start, min(start+columnBatch, width)
		g.Go(func() error {
			r.castRange(pose, start, end)
			return nil
		})
	}
	// no column returns an error
	_ = g.Wait()

	return &r.frame
}

func (r *Renderer) castRange(pose Pose, start, end int) {
	for x := start; x < end; x++ {
		r.frame.Slices[x] = r.Column(pose, x)
	}
}

// Column casts and projects a single screen column.
func (r *Renderer) Column(pose Pose, x int) Slice {
	angle := RayAngle(pose, r.View.Width, x)
	hit := Cast(r.Grid, r.CellSize, pose.Pos, angle)

	s := Slice{
		Column:      x,
		Tag:         hit.Tag,
		Axis:        hit.Axis,
		Distance:    math.Inf(1),
		RayDistance: hit.Distance,
	}
	if !hit.Hit() {
		return s
	}

	// fisheye correction onto the view direction
	s.Distance = hit.Distance * math.Cos(angle-pose.Angle)
	s.TexU = TexU(hit.Point, r.CellSize, hit.Axis, hit.Dir)
	s.Top, s.Bottom, s.Height, s.Drawn = WallSpan(s.Distance, r.View.HalfHeight(), r.View.PlaneDistance)
	return s
}
