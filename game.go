package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"gophermaze/config"
	"gophermaze/level"
	"gophermaze/logger"
	"gophermaze/model"
	"gophermaze/state"
)

// -- game

const (
	// wall and sprite texture size
	texSize = 64

	// full map view, pixels per cell
	mapCellPx = 24
	// corner minimap, pixels per cell
	miniCellPx = 8
)

// main game object
type Game struct {
	cfg *config.Config

	// pristine is never mutated; each round plays on a clone
	pristine *level.Level
	world    *model.World
	machine  state.Machine
	rng      *rand.Rand

	camera  *Camera
	tex     *TextureManager
	minimap *Minimap
	screens *Screens
	effect  *Effect

	showMap bool
}

func NewGame(cfg *config.Config, lvl *level.Level) (*Game, error) {
	screens, err := NewScreens()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:      cfg,
		pristine: lvl,
		machine:  state.New(cfg.Durations()),
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		tex:      NewTextureManager(texSize),
		screens:  screens,
		effect:   NewEffect(cfg.ScreamerAnchor()),
	}

	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

// reset starts a fresh round on a copy of the pristine level.
func (g *Game) reset() error {
	lvl, err := g.pristine.Clone()
	if err != nil {
		return fmt.Errorf("reset world: %w", err)
	}

	g.world = model.NewWorld(lvl, g.cfg.Tuning(), g.rng)
	g.camera = NewCamera(g.world.Grid, g.cfg)
	g.minimap = NewMinimap(g.world.Grid, g.cfg.World.CellSize)

	logger.Log.WithFields(logrus.Fields{
		"pills":  len(g.world.Pills),
		"ghosts": len(g.world.Ghosts),
	}).Debug("world reset")
	return nil
}

// Layout takes the outside size (e.g., the window size) and returns the (logical) screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Display.ScreenWidth, g.cfg.Display.ScreenHeight
}

// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	in := readInput()
	if in.Quit {
		return ebiten.Termination
	}
	if in.ToggleMap {
		g.showMap = !g.showMap
	}

	dt := tickSeconds()

	if in.Confirm {
		if err := g.apply(g.machine.Fire(state.Confirm)); err != nil {
			return err
		}
	}

	if g.machine.State == state.Playing {
		out := g.world.Step(dt, in.Intent)
		if out.Collected > 0 {
			logger.Log.WithFields(logrus.Fields{
				"remaining": g.world.Remaining(),
			}).Debug("pill collected")
		}

		switch {
		case out.Escaped:
			if err := g.apply(g.machine.Fire(state.Escaped)); err != nil {
				return err
			}
		case out.Caught:
			if err := g.apply(g.machine.Fire(state.Caught)); err != nil {
				return err
			}
		}
	}

	if err := g.apply(g.machine.Tick(toDuration(dt))); err != nil {
		return err
	}

	g.effect.Update(dt)
	g.screens.Update(g.machine.State)
	return nil
}

// apply adopts m and runs the entry action of the state it moved into.
func (g *Game) apply(m state.Machine) error {
	g.machine = m
	if !m.Entered() {
		return nil
	}

	switch m.State {
	case state.Warning:
		return g.reset()
	case state.Screamer:
		g.effect.Start(m.Durations.Screamer)
	}
	return nil
}

// Draw is called every frame (typically 1/60[s] for 60Hz display).
func (g *Game) Draw(screen *ebiten.Image) {
	switch g.machine.State {
	case state.Menu, state.GameOver, state.Win:
		g.screens.Draw(screen, g.machine.State)
	case state.Warning:
		g.drawWorld(screen)
		g.screens.Draw(screen, state.Warning)
	case state.Playing:
		g.drawWorld(screen)
	case state.Screamer:
		g.effect.Draw(screen, g.tex.face)
	}

	g.drawHUD(screen)
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	if g.showMap {
		screen.Fill(backgroundColor)
		g.minimap.Draw(screen, g.world, 0, 0, mapCellPx, true)
		return
	}

	g.camera.Update(g.world, g.tex)
	g.drawScene(screen)
	g.minimap.Draw(screen, g.world, 10, 50, miniCellPx, false)
}
