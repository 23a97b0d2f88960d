// minimap.go
package main

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"gophermaze/caster"
	"gophermaze/model"
)

// pixels per cell in the static image
const minimapScale = 8

// rays drawn from the player in the full map view
const mapRays = 5

// white pixel used as the source for vertex-coloured triangles
var emptySubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

type Minimap struct {
	cellSize float64
	static   *ebiten.Image
}

func tileColor(tag caster.Tag) color.RGBA {
	switch tag {
	case caster.WallA:
		return colornames.Blueviolet
	case caster.WallB, caster.WallC:
		return colornames.Violet
	case caster.Goal:
		return colornames.Green
	default:
		return color.RGBA{30, 30, 45, 255}
	}
}

func NewMinimap(grid caster.Grid, cellSize float64) *Minimap {
	cols, rows := grid.Width(), grid.Rows()
	m := &Minimap{
		cellSize: cellSize,
		static:   ebiten.NewImage(max(cols, 1)*minimapScale, max(rows, 1)*minimapScale),
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < grid.Cols(row); col++ {
			tag, _ := grid.At(row, col)
			vector.DrawFilledRect(m.static,
				float32(col*minimapScale), float32(row*minimapScale),
				float32(minimapScale), float32(minimapScale),
				tileColor(tag), false)
		}
	}
	return m
}

// Draw paints the map with its top-left corner at (x, y), cellPx pixels per
// cell. With rays set it also casts a fan of rays from the player.
func (m *Minimap) Draw(screen *ebiten.Image, w *model.World, x, y, cellPx float64, rays bool) {
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Scale(cellPx/minimapScale, cellPx/minimapScale)
	op.GeoM.Translate(x, y)
	screen.DrawImage(m.static, op)

	toMap := func(px, py float64) (float32, float32) {
		return float32(x + px/m.cellSize*cellPx), float32(y + py/m.cellSize*cellPx)
	}

	for _, p := range w.Pills {
		if p.Collected {
			continue
		}
		px, py := toMap(p.Position.X, p.Position.Y)
		vector.DrawFilledCircle(screen, px, py, float32(cellPx/6), p.MapColor, false)
	}

	if rays {
		m.drawRays(screen, w, toMap)
	}

	for _, g := range w.Ghosts {
		gx, gy := toMap(g.Position.X, g.Position.Y)
		c := g.MapColor
		if g.Chasing {
			c = colornames.Red
		}
		vector.DrawFilledCircle(screen, gx, gy, float32(cellPx/3), c, false)
	}

	m.drawPlayer(screen, w.Player, toMap, float32(cellPx/2))
}

func (m *Minimap) drawRays(screen *ebiten.Image, w *model.World, toMap func(float64, float64) (float32, float32)) {
	pose := w.Pose()
	ox, oy := toMap(pose.Pos.X, pose.Pos.Y)
	for i := 0; i < mapRays; i++ {
		angle := caster.RayAngle(pose, mapRays, i)
		hit := caster.Cast(w.Grid, m.cellSize, pose.Pos, angle)
		if !hit.Hit() {
			continue
		}
		hx, hy := toMap(hit.Point.X, hit.Point.Y)
		vector.StrokeLine(screen, ox, oy, hx, hy, 1, colornames.Whitesmoke, false)
	}
}

func (m *Minimap) drawPlayer(screen *ebiten.Image, p *model.Player, toMap func(float64, float64) (float32, float32), size float32) {
	px, py := toMap(p.Position.X, p.Position.Y)
	angle := p.Angle

	x1 := px + size*float32(math.Cos(angle))
	y1 := py + size*float32(math.Sin(angle))
	x2 := px + size*float32(math.Cos(angle+2.5))
	y2 := py + size*float32(math.Sin(angle+2.5))
	x3 := px + size*float32(math.Cos(angle-2.5))
	y3 := py + size*float32(math.Sin(angle-2.5))

	r, g, b := float32(p.MapColor.R)/255, float32(p.MapColor.G)/255, float32(p.MapColor.B)/255
	vertices := []ebiten.Vertex{
		{DstX: x1, DstY: y1, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
		{DstX: x2, DstY: y2, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
		{DstX: x3, DstY: y3, SrcX: 1, SrcY: 1, ColorR: r, ColorG: g, ColorB: b, ColorA: 1},
	}
	screen.DrawTriangles(vertices, []uint16{0, 1, 2}, emptySubImage, nil)
}
