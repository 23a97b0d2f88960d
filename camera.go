package main

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"

	"gophermaze/caster"
	"gophermaze/config"
	"gophermaze/model"
)

// -- camera

// Camera turns the world into a frame of wall slices plus the sprites
// visible from the player, ordered for painting.
type Camera struct {
	renderer caster.Renderer
	frame    *caster.Frame
	sprites  []visibleSprite
}

type visibleSprite struct {
	caster.ScreenSprite
	tex *ebiten.Image
}

func NewCamera(grid caster.Grid, cfg *config.Config) *Camera {
	return &Camera{
		renderer: caster.Renderer{
			Grid:     grid,
			CellSize: cfg.World.CellSize,
			View:     cfg.View(),
			Workers:  cfg.Camera.Workers,
		},
	}
}

// Update casts the frame for the player's pose and projects the uncollected
// pills and the ghosts, far to near.
func (c *Camera) Update(w *model.World, tex *TextureManager) {
	c.frame = c.renderer.Render(w.Pose())

	c.sprites = c.sprites[:0]
	for _, p := range w.Pills {
		if !p.Collected {
			c.project(&p.Entity, tex.pill)
		}
	}
	for _, g := range w.Ghosts {
		c.project(&g.Entity, tex.ghost)
	}

	sort.Slice(c.sprites, func(i, j int) bool {
		return c.sprites[i].Distance > c.sprites[j].Distance
	})
}

func (c *Camera) project(e *model.Entity, tex *ebiten.Image) {
	s, ok := c.frame.Project(e.Pos(), e.Billboard())
	if !ok {
		return
	}
	c.sprites = append(c.sprites, visibleSprite{ScreenSprite: s, tex: tex})
}

func (c *Camera) Frame() *caster.Frame {
	return c.frame
}
