package model

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"gophermaze/caster"
)

type Entity struct {
	Position        geom.Vector2
	Angle           float64
	Velocity        float64
	CollisionRadius float64
	Scale           float64
	Anchor          caster.Anchor
	MapColor        color.RGBA
}

func (e *Entity) Pos() geom.Vector2 {
	return e.Position
}

// Billboard describes how the entity is drawn as a sprite.
func (e *Entity) Billboard() caster.Billboard {
	return caster.Billboard{Scale: e.Scale, Anchor: e.Anchor}
}

// DistanceTo is the straight-line distance between the two positions.
func (e *Entity) DistanceTo(p geom.Vector2) float64 {
	return math.Hypot(p.X-e.Position.X, p.Y-e.Position.Y)
}

// normalizeAngle wraps a heading into (-Pi, Pi].
func normalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
