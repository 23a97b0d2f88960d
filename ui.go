// ui.go
package main

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	eimage "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"gophermaze/state"
)

const (
	titleSize = 48
	bodySize  = 20
)

// Screens holds one ebitenui tree per overlay state.
type Screens struct {
	uis map[state.State]*ebitenui.UI
}

type screenText struct {
	title string
	lines []string
	bg    color.RGBA
}

var screenTexts = map[state.State]screenText{
	state.Menu: {
		title: "GOPHER MAZE",
		lines: []string{
			"Collect every pill, then find the green exit.",
			"W/S move  A/D turn  Q/E strafe  M map",
			"Press Enter to start",
		},
		bg: color.RGBA{10, 10, 30, 255},
	},
	state.Warning: {
		title: "They can see you.",
		lines: []string{"Don't let the ghosts catch you.", "Press Enter when ready"},
		bg:    color.RGBA{0, 0, 0, 180},
	},
	state.GameOver: {
		title: "GAME OVER",
		lines: []string{"Press Enter to return to the menu"},
		bg:    color.RGBA{40, 0, 0, 255},
	},
	state.Win: {
		title: "YOU ESCAPED",
		lines: []string{"Press Enter to return to the menu"},
		bg:    color.RGBA{0, 40, 10, 255},
	},
}

func loadFace(size float64) (font.Face, error) {
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(tt, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

func NewScreens() (*Screens, error) {
	title, err := loadFace(titleSize)
	if err != nil {
		return nil, err
	}
	body, err := loadFace(bodySize)
	if err != nil {
		return nil, err
	}

	s := &Screens{uis: make(map[state.State]*ebitenui.UI, len(screenTexts))}
	for st, txt := range screenTexts {
		s.uis[st] = &ebitenui.UI{Container: buildScreen(txt, title, body)}
	}
	return s, nil
}

func buildScreen(txt screenText, title, body font.Face) *widget.Container {
	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(eimage.NewNineSliceColor(txt.bg)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	column := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(16),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
			HorizontalPosition: widget.AnchorLayoutPositionCenter,
			VerticalPosition:   widget.AnchorLayoutPositionCenter,
		})),
	)
	root.AddChild(column)

	column.AddChild(label(txt.title, title, colornames.Whitesmoke))
	for _, line := range txt.lines {
		column.AddChild(label(line, body, colornames.Lightgray))
	}
	return root
}

func label(text string, face font.Face, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, face, c),
		widget.TextOpts.Position(widget.TextPositionCenter, widget.TextPositionCenter),
		widget.TextOpts.WidgetOpts(widget.WidgetOpts.LayoutData(widget.RowLayoutData{
			Position: widget.RowLayoutPositionCenter,
		})),
	)
}

// Update forwards input to the overlay for s, if it has one.
func (s *Screens) Update(st state.State) {
	if ui, ok := s.uis[st]; ok {
		ui.Update()
	}
}

func (s *Screens) Draw(screen *ebiten.Image, st state.State) {
	if ui, ok := s.uis[st]; ok {
		ui.Draw(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()), 10, 10)
	if g.machine.State != state.Playing {
		return
	}

	pills := fmt.Sprintf("pills left: %d", g.world.Remaining())
	if g.world.GoalOpen() {
		pills = "exit open"
	}
	ebitenutil.DebugPrintAt(screen, pills, 10, 26)
	ebitenutil.DebugPrintAt(screen, "ESC to exit", 10, g.cfg.Display.ScreenHeight-20)
}
