package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
	"golang.org/x/image/colornames"

	"gophermaze/caster"
)

type Player struct {
	Entity
	MoveSpeed     float64 // world units per second
	RotationSpeed float64 // radians per second
	Moved         bool
}

func NewPlayer(pos geom.Vector2, angle float64, t Tuning) *Player {
	return &Player{
		Entity: Entity{
			Position:        pos,
			Angle:           normalizeAngle(angle),
			CollisionRadius: t.PlayerRadius,
			MapColor:        colornames.Red,
		},
		MoveSpeed:     t.MoveSpeed,
		RotationSpeed: t.RotationSpeed,
	}
}

// Move walks the player for dt seconds. forward and strafe are in [-1, 1];
// positive strafe is to the player's right. Diagonal input is not faster
// than straight input.
func (p *Player) Move(walls Walls, forward, strafe, dt float64) {
	if dt <= 0 || (forward == 0 && strafe == 0) {
		return
	}

	dist := p.MoveSpeed * dt
	fwd := geom.LineFromAngle(0, 0, p.Angle, forward*dist)
	side := geom.LineFromAngle(0, 0, p.Angle+math.Pi/2, strafe*dist)

	dx, dy := fwd.X2+side.X2, fwd.Y2+side.Y2
	if l := math.Hypot(dx, dy); l > dist {
		dx, dy = dx*dist/l, dy*dist/l
	}

	to := geom.Vector2{X: p.Position.X + dx, Y: p.Position.Y + dy}
	newPos, _ := walls.ValidMove(p.Position, to, p.CollisionRadius)
	if newPos != p.Position {
		p.Position = newPos
		p.Moved = true
	}
}

// Turn rotates by the rotation speed for dt seconds; dir is in [-1, 1] and
// positive turns clockwise on screen.
func (p *Player) Turn(dir, dt float64) {
	if dt <= 0 || dir == 0 {
		return
	}
	p.Rotate(dir * p.RotationSpeed * dt)
}

// Rotate changes the heading by delta radians.
func (p *Player) Rotate(delta float64) {
	p.Angle = normalizeAngle(p.Angle + delta)
	p.Moved = true
}

func (p *Player) Pose(fov float64) caster.Pose {
	return caster.Pose{Pos: p.Position, Angle: p.Angle, FOV: fov}
}
