package model

import (
	"math/rand"
	"time"

	"gophermaze/caster"
	"gophermaze/level"
)

// Tuning is the gameplay configuration a World is built from.
type Tuning struct {
	CellSize float64
	FOV      float64 // radians

	MoveSpeed     float64
	RotationSpeed float64
	PlayerRadius  float64

	GhostSpeed     float64
	GhostRadius    float64
	SightRange     float64
	CatchRadius    float64
	WanderInterval time.Duration
	GhostScale     float64

	PickupRadius float64
	PillScale    float64
}

// Intent is one frame of player input. Each axis is in [-1, 1].
type Intent struct {
	Forward float64
	Strafe  float64
	Turn    float64
}

// Outcome reports what happened during a Step.
type Outcome struct {
	Collected int
	Caught    bool
	Escaped   bool
}

type World struct {
	Grid   caster.Grid
	Tuning Tuning
	Player *Player
	Ghosts []*Ghost
	Pills  []*Pill

	rng        *rand.Rand
	collected  int
	ghostWalls Collider
}

// NewWorld places the level's entities. The level's grid is shared, not
// copied; callers that need a fresh maze pass a clone.
func NewWorld(lvl *level.Level, t Tuning, rng *rand.Rand) *World {
	w := &World{
		Grid:   lvl.Grid,
		Tuning: t,
		Player: NewPlayer(lvl.Start.Center(t.CellSize), 0, t),
		rng:    rng,
	}
	w.ghostWalls = Collider{Grid: w.Grid, CellSize: t.CellSize}

	for _, m := range lvl.Pills {
		w.Pills = append(w.Pills, NewPill(m.Center(t.CellSize), t))
	}
	for _, m := range lvl.Ghosts {
		w.Ghosts = append(w.Ghosts, NewGhost(m.Center(t.CellSize), t, rng))
	}
	return w
}

// Remaining is the number of pills not yet collected.
func (w *World) Remaining() int {
	return len(w.Pills) - w.collected
}

// GoalOpen reports whether every pill has been collected.
func (w *World) GoalOpen() bool {
	return w.Remaining() == 0
}

func (w *World) Pose() caster.Pose {
	return w.Player.Pose(w.Tuning.FOV)
}

// playerWalls treats goal cells as walls until the goal opens.
func (w *World) playerWalls() Collider {
	open := w.GoalOpen()
	return Collider{
		Grid:     w.Grid,
		CellSize: w.Tuning.CellSize,
		Solid: func(t caster.Tag) bool {
			if t == caster.Goal {
				return !open
			}
			return t.Solid()
		},
	}
}

// Step advances the world by dt seconds. An escape ends the step before
// the ghosts move.
func (w *World) Step(dt float64, in Intent) Outcome {
	var out Outcome
	if dt <= 0 {
		return out
	}

	p := w.Player
	p.Moved = false
	p.Turn(in.Turn, dt)
	p.Move(w.playerWalls(), in.Forward, in.Strafe, dt)

	for _, pill := range w.Pills {
		if pill.Collected || p.DistanceTo(pill.Position) > w.Tuning.PickupRadius {
			continue
		}
		pill.Collected = true
		w.collected++
		out.Collected++
	}

	if w.GoalOpen() {
		row, col := caster.Cell(p.Position.X, p.Position.Y, w.Tuning.CellSize)
		if tag, ok := w.Grid.At(row, col); ok && tag == caster.Goal {
			out.Escaped = true
			return out
		}
	}

	for _, g := range w.Ghosts {
		g.Update(w.ghostWalls, w.Grid, w.Tuning.CellSize, p.Position, dt, w.rng)
		if g.DistanceTo(p.Position) <= w.Tuning.CatchRadius {
			out.Caught = true
		}
	}

	return out
}
