package caster

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// View describes the screen the frame is projected onto.
type View struct {
	Width, Height int
	// PlaneDistance scales projected heights; larger values give taller walls.
	// It is a style constant and is not derived from the field of view.
	PlaneDistance float64
}

func (v View) HalfHeight() float64 {
	return float64(v.Height) / 2
}

// projectedHeight is the on-screen height of one cell at distance, capped at
// twice the screen height.
func projectedHeight(distance, halfHeight, planeDistance float64) float64 {
	h := halfHeight / distance * planeDistance
	return math.Min(h, 4*halfHeight)
}

// WallSpan turns a perpendicular distance into the rows a wall column
// covers. The span is clamped to the screen; ok is false when the column
// should not be drawn at all.
func WallSpan(distance, halfHeight, planeDistance float64) (top, bottom int, height float64, ok bool) {
	if !finite(distance) || distance <= 0 || !(halfHeight > 0) {
		return 0, 0, 0, false
	}

	height = projectedHeight(distance, halfHeight, planeDistance)
	screenHeight := 2 * halfHeight

	t := geom.Clamp(halfHeight-height/2, 0, screenHeight)
	b := geom.Clamp(halfHeight+height/2, 0, screenHeight)

	top, bottom = int(t), int(b)
	if bottom <= top {
		return 0, 0, height, false
	}
	return top, bottom, height, true
}
