package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"gophermaze/model"
)

// controls is one tick of keyboard state.
type controls struct {
	model.Intent

	Confirm   bool
	ToggleMap bool
	Quit      bool
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func axis(negative, positive bool) float64 {
	switch {
	case positive && !negative:
		return 1
	case negative && !positive:
		return -1
	}
	return 0
}

func readInput() controls {
	var c controls

	c.Quit = ebiten.IsKeyPressed(ebiten.KeyEscape)
	c.Confirm = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	c.ToggleMap = inpututil.IsKeyJustPressed(ebiten.KeyM)

	c.Forward = axis(
		anyPressed(ebiten.KeyS, ebiten.KeyDown),
		anyPressed(ebiten.KeyW, ebiten.KeyUp),
	)
	c.Turn = axis(
		anyPressed(ebiten.KeyA, ebiten.KeyLeft),
		anyPressed(ebiten.KeyD, ebiten.KeyRight),
	)
	c.Strafe = axis(
		ebiten.IsKeyPressed(ebiten.KeyQ),
		ebiten.IsKeyPressed(ebiten.KeyE),
	)

	return c
}
