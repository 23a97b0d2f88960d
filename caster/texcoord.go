package caster

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// maxTexU is the largest float64 below 1.
var maxTexU = math.Nextafter(1, 0)

// TexU returns the normalized coordinate along the struck face, in [0,1).
// Vertical faces sample along y and horizontal faces along x. The result is
// flipped on the faces seen from the far side so textures never read
// mirrored.
func TexU(point geom.Vector2, cellSize float64, axis Axis, dir geom.Vector2) float64 {
	if !(cellSize > 0) {
		return 0
	}

	var u float64
	if axis == Vertical {
		u = frac(point.Y / cellSize)
		if dir.X > 0 {
			u = 1 - u
		}
	} else {
		u = frac(point.X / cellSize)
		if dir.Y < 0 {
			u = 1 - u
		}
	}

	return geom.Clamp(u, 0, maxTexU)
}

func frac(v float64) float64 {
	if !finite(v) {
		return 0
	}
	return v - math.Floor(v)
}
