package model

import (
	"math"
	"math/rand"
	"time"

	"github.com/harbdog/raycaster-go/geom"
	"golang.org/x/image/colornames"

	"gophermaze/caster"
)

type Ghost struct {
	Entity
	Speed          float64 // world units per second
	SightRange     float64
	WanderInterval time.Duration
	Chasing        bool

	sinceTurn time.Duration
}

func NewGhost(pos geom.Vector2, t Tuning, rng *rand.Rand) *Ghost {
	return &Ghost{
		Entity: Entity{
			Position:        pos,
			Angle:           randomHeading(rng),
			CollisionRadius: t.GhostRadius,
			Scale:           t.GhostScale,
			Anchor:          caster.AnchorCenter,
			MapColor:        colornames.Orchid,
		},
		Speed:          t.GhostSpeed,
		SightRange:     t.SightRange,
		WanderInterval: t.WanderInterval,
	}
}

// Sees reports whether target is within sight range with no wall between.
func (g *Ghost) Sees(grid caster.Grid, cellSize float64, target geom.Vector2) bool {
	dist := g.DistanceTo(target)
	if dist > g.SightRange {
		return false
	}
	if dist == 0 {
		return true
	}

	angle := math.Atan2(target.Y-g.Position.Y, target.X-g.Position.X)
	hit := caster.Cast(grid, cellSize, g.Position, angle)
	return !hit.Hit() || hit.Distance >= dist
}

// Update advances the ghost by dt seconds: it heads straight for target
// while it can see it and wanders otherwise.
func (g *Ghost) Update(walls Walls, grid caster.Grid, cellSize float64, target geom.Vector2, dt float64, rng *rand.Rand) {
	if dt <= 0 {
		return
	}

	g.Chasing = g.Sees(grid, cellSize, target)
	if g.Chasing {
		g.Angle = math.Atan2(target.Y-g.Position.Y, target.X-g.Position.X)
		g.sinceTurn = 0
	} else {
		g.sinceTurn += time.Duration(dt * float64(time.Second))
	}

	step := g.Speed * dt
	if g.Chasing {
		// never overshoot the target
		step = math.Min(step, g.DistanceTo(target))
	}
	line := geom.LineFromAngle(g.Position.X, g.Position.Y, g.Angle, step)
	newPos, collided := walls.ValidMove(g.Position, geom.Vector2{X: line.X2, Y: line.Y2}, g.CollisionRadius)
	g.Velocity = math.Hypot(newPos.X-g.Position.X, newPos.Y-g.Position.Y) / dt
	g.Position = newPos

	if !g.Chasing && (collided || g.sinceTurn >= g.WanderInterval) {
		g.Angle = randomHeading(rng)
		g.sinceTurn = 0
	}
}

func randomHeading(rng *rand.Rand) float64 {
	return rng.Float64()*2*math.Pi - math.Pi
}
