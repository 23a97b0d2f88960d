package model

import (
	"github.com/harbdog/raycaster-go/geom"
	"golang.org/x/image/colornames"

	"gophermaze/caster"
)

type Pill struct {
	Entity
	Collected bool
}

func NewPill(pos geom.Vector2, t Tuning) *Pill {
	return &Pill{
		Entity: Entity{
			Position: pos,
			Scale:    t.PillScale,
			Anchor:   caster.AnchorBottom,
			MapColor: colornames.Gold,
		},
	}
}
