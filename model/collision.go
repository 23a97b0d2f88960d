package model

import (
	"github.com/harbdog/raycaster-go/geom"

	"gophermaze/caster"
)

// -- collision

// Walls resolves a desired move against the maze.
type Walls interface {
	ValidMove(from, to geom.Vector2, radius float64) (geom.Vector2, bool)
}

// Blocked reports whether a square of half-size radius centred on pos
// overlaps a solid cell. Cells outside the grid count as solid.
func Blocked(grid caster.Grid, cellSize float64, pos geom.Vector2, radius float64, solid func(caster.Tag) bool) bool {
	corners := [4]geom.Vector2{
		{X: pos.X - radius, Y: pos.Y - radius},
		{X: pos.X + radius, Y: pos.Y - radius},
		{X: pos.X - radius, Y: pos.Y + radius},
		{X: pos.X + radius, Y: pos.Y + radius},
	}
	for _, c := range corners {
		row, col := caster.Cell(c.X, c.Y, cellSize)
		tag, ok := grid.At(row, col)
		if !ok || solid(tag) {
			return true
		}
	}
	return false
}

// ValidMove moves from toward to one axis at a time so that a blocked
// diagonal still slides along the wall. It returns the reachable position
// and whether either axis was blocked.
func ValidMove(grid caster.Grid, cellSize float64, from, to geom.Vector2, radius float64, solid func(caster.Tag) bool) (geom.Vector2, bool) {
	pos := from
	collided := false

	if to.X != from.X {
		if Blocked(grid, cellSize, geom.Vector2{X: to.X, Y: pos.Y}, radius, solid) {
			collided = true
		} else {
			pos.X = to.X
		}
	}
	if to.Y != from.Y {
		if Blocked(grid, cellSize, geom.Vector2{X: pos.X, Y: to.Y}, radius, solid) {
			collided = true
		} else {
			pos.Y = to.Y
		}
	}

	return pos, collided
}

// Collider binds a grid and a solidity rule into Walls.
type Collider struct {
	Grid     caster.Grid
	CellSize float64
	Solid    func(caster.Tag) bool
}

func (c Collider) solid(t caster.Tag) bool {
	if c.Solid == nil {
		return t.Solid()
	}
	return c.Solid(t)
}

func (c Collider) Blocked(pos geom.Vector2, radius float64) bool {
	return Blocked(c.Grid, c.CellSize, pos, radius, c.solid)
}

func (c Collider) ValidMove(from, to geom.Vector2, radius float64) (geom.Vector2, bool) {
	return ValidMove(c.Grid, c.CellSize, from, to, radius, c.solid)
}
