package caster

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

const (
	// MaxSteps bounds a single cast; exceeding it counts as no hit.
	MaxSteps = 10000

	// direction components smaller than this never cross a grid line
	parallelEpsilon = 1e-9
)

// Axis names the orientation of the face a ray struck.
type Axis uint8

const (
	// Vertical faces lie on x = k*cellSize and are reached by stepping along X.
	Vertical Axis = iota
	// Horizontal faces lie on y = k*cellSize and are reached by stepping along Y.
	Horizontal
)

func (a Axis) String() string {
	if a == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Intersect is the result of a single cast.
type Intersect struct {
	// Distance from the origin to the struck grid line, measured along the
	// ray. +Inf when nothing was hit.
	Distance float64
	Point    geom.Vector2
	Tag      Tag
	Axis     Axis
	Row, Col int
	Dir      geom.Vector2
}

func (i Intersect) Hit() bool {
	return !math.IsInf(i.Distance, 1)
}

func noHit(origin, dir geom.Vector2) Intersect {
	return Intersect{
		Distance: math.Inf(1),
		Point:    origin,
		Tag:      Empty,
		Row:      -1,
		Col:      -1,
		Dir:      dir,
	}
}

// Cast walks the grid cell by cell from origin along angle (DDA) and returns
// the first solid cell it enters. The origin cell itself is never tested.
func Cast(grid Grid, cellSize float64, origin geom.Vector2, angle float64) Intersect {
	dir := geom.Vector2{X: math.Cos(angle), Y: math.Sin(angle)}
	if len(grid) == 0 || !(cellSize > 0) || !finite(origin.X) || !finite(origin.Y) {
		return noHit(origin, dir)
	}

	row, col := Cell(origin.X, origin.Y, cellSize)

	stepX, sideDistX, deltaDistX := axisSetup(origin.X, dir.X, col, cellSize)
	stepY, sideDistY, deltaDistY := axisSetup(origin.Y, dir.Y, row, cellSize)

	// a ray parallel to both axes cannot exist for a unit vector, but guard it
	if math.IsInf(deltaDistX, 1) && math.IsInf(deltaDistY, 1) {
		return noHit(origin, dir)
	}

	var axis Axis
	for steps := 0; steps < MaxSteps; steps++ {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			col += stepX
			axis = Vertical
		} else {
			sideDistY += deltaDistY
			row += stepY
			axis = Horizontal
		}

		tag, ok := grid.At(row, col)
		if !ok {
			return noHit(origin, dir)
		}
		if !tag.Solid() {
			continue
		}

		var dist float64
		if axis == Vertical {
			dist = (boundary(col, stepX, cellSize) - origin.X) / dir.X
		} else {
			dist = (boundary(row, stepY, cellSize) - origin.Y) / dir.Y
		}

		return Intersect{
			Distance: dist,
			Point:    geom.Vector2{X: origin.X + dist*dir.X, Y: origin.Y + dist*dir.Y},
			Tag:      tag,
			Axis:     axis,
			Row:      row,
			Col:      col,
			Dir:      dir,
		}
	}

	return noHit(origin, dir)
}

// axisSetup returns the step sign, the distance along the ray to the first
// grid line on this axis and the distance between successive lines.
func axisSetup(pos, dir float64, cell int, cellSize float64) (step int, sideDist, deltaDist float64) {
	if math.Abs(dir) < parallelEpsilon {
		return 1, math.Inf(1), math.Inf(1)
	}

	deltaDist = cellSize / math.Abs(dir)
	if dir < 0 {
		return -1, (pos - float64(cell)*cellSize) / math.Abs(dir), deltaDist
	}
	return 1, (float64(cell+1)*cellSize - pos) / math.Abs(dir), deltaDist
}

// boundary is the world coordinate of the grid line crossed to enter cell
// while stepping in direction step.
func boundary(cell, step int, cellSize float64) float64 {
	if step > 0 {
		return float64(cell) * cellSize
	}
	return float64(cell+1) * cellSize
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func floorInt(v float64) int {
	if !finite(v) {
		return math.MinInt32
	}
	f := math.Floor(v)
	if f < math.MinInt32 || f > math.MaxInt32 {
		return math.MinInt32
	}
	return int(f)
}
