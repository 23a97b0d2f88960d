package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"gophermaze/caster"
)

// TextureManager owns every image the renderer samples. All of them are
// generated in memory at startup.
type TextureManager struct {
	walls map[caster.Tag]*ebiten.Image

	pill  *ebiten.Image
	ghost *ebiten.Image
	face  *ebiten.Image
}

func NewTextureManager(size int) *TextureManager {
	t := &TextureManager{
		walls: map[caster.Tag]*ebiten.Image{
			caster.WallA: ebiten.NewImageFromImage(brickTexture(size, colornames.Blueviolet, colornames.Indigo)),
			caster.WallB: ebiten.NewImageFromImage(plankTexture(size, colornames.Violet, colornames.Purple)),
			caster.WallC: ebiten.NewImageFromImage(stripeTexture(size, colornames.Violet, colornames.Plum)),
			caster.Goal:  ebiten.NewImageFromImage(checkerTexture(size, colornames.Green, colornames.Lime)),
		},
	}
	t.pill = ebiten.NewImageFromImage(pillTexture(size))
	t.ghost = ebiten.NewImageFromImage(ghostTexture(size, colornames.Orchid))
	t.face = ebiten.NewImageFromImage(ghostTexture(size, colornames.Whitesmoke))
	return t
}

// Wall returns the texture for a wall tag, or nil for empty cells.
func (t *TextureManager) Wall(tag caster.Tag) *ebiten.Image {
	return t.walls[tag]
}

// -- generators

func brickTexture(size int, brick, mortar color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillRect(img, img.Bounds(), mortar)

	rowH := size / 4
	brickW := size / 2
	for row := 0; row < 4; row++ {
		offset := 0
		if row%2 == 1 {
			offset = brickW / 2
		}
		y := row * rowH
		for x := -offset; x < size; x += brickW {
			r := image.Rect(x+1, y+1, x+brickW-1, y+rowH-1).Intersect(img.Bounds())
			c := brick
			if (row+x/brickW)%3 == 0 {
				c = shade(brick, 0.85)
			}
			fillRect(img, r, c)
		}
	}
	return img
}

func plankTexture(size int, wood, gap color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	fillRect(img, img.Bounds(), wood)

	plank := size / 8
	for y := 0; y < size; y += plank {
		fillRect(img, image.Rect(0, y, size, y+1), gap)
		if (y/plank)%2 == 1 {
			fillRect(img, image.Rect(0, y+1, size, y+plank), shade(wood, 0.9))
		}
	}
	return img
}

func stripeTexture(size int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	stripe := size / 8
	for x := 0; x < size; x += stripe {
		c := a
		if (x/stripe)%2 == 1 {
			c = b
		}
		fillRect(img, image.Rect(x, 0, x+stripe, size), c)
	}
	return img
}

func checkerTexture(size int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	tile := size / 4
	for y := 0; y < size; y += tile {
		for x := 0; x < size; x += tile {
			c := a
			if (x/tile+y/tile)%2 == 1 {
				c = b
			}
			fillRect(img, image.Rect(x, y, x+tile, y+tile), c)
		}
	}
	return img
}

func pillTexture(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := size / 2
	fillCircle(img, c, c, size/2-1, colornames.Gold)
	fillCircle(img, c-size/8, c-size/8, size/8, colornames.Lightyellow)
	return img
}

// ghostTexture draws a round-headed ghost with a ragged hem on a
// transparent background.
func ghostTexture(size int, body color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	half := size / 2

	fillCircle(img, half, half, half-1, body)
	fillRect(img, image.Rect(1, half, size-1, size-size/8), body)

	// hem
	tooth := size / 4
	for x := 0; x < size; x += tooth {
		fillCircle(img, x+tooth/2, size-size/8, tooth/2, body)
	}

	eye := size / 8
	fillCircle(img, half-size/5, half-size/10, eye, colornames.Black)
	fillCircle(img, half+size/5, half-size/10, eye, colornames.Black)
	fillRect(img, image.Rect(half-size/6, half+size/6, half+size/6, half+size/4), colornames.Black)
	return img
}
