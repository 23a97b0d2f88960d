package main

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"gophermaze/caster"
)

// seconds between flash colour swaps
const flashPeriod = 0.08

var flashColors = [2]color.RGBA{{180, 0, 0, 255}, {240, 240, 240, 255}}

// Effect is the screamer: a flashing screen with a ghost face that grows
// until the effect runs out.
type Effect struct {
	anchor   caster.Anchor
	duration float64
	elapsed  float64
	active   bool
}

func NewEffect(anchor caster.Anchor) *Effect {
	return &Effect{anchor: anchor}
}

func (e *Effect) Start(d time.Duration) {
	e.duration = d.Seconds()
	e.elapsed = 0
	e.active = true
}

func (e *Effect) Update(dt float64) {
	if !e.active {
		return
	}
	e.elapsed += dt
	if e.elapsed >= e.duration {
		e.active = false
	}
}

// progress runs from 0 to 1 over the effect's duration.
func (e *Effect) progress() float64 {
	if e.duration <= 0 {
		return 1
	}
	return min(e.elapsed/e.duration, 1)
}

func (e *Effect) Draw(screen *ebiten.Image, face *ebiten.Image) {
	screen.Fill(flashColors[int(e.elapsed/flashPeriod)%2])

	sw, sh := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())
	fw, fh := float64(face.Bounds().Dx()), float64(face.Bounds().Dy())

	size := sh * (0.3 + 0.9*e.progress())
	scale := size / fh

	var top float64
	switch e.anchor {
	case caster.AnchorTop:
		top = 0
	case caster.AnchorCenter:
		top = (sh - size) / 2
	default:
		top = sh - size
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate((sw-fw*scale)/2, top)
	screen.DrawImage(face, op)
}
