package caster

import (
	"math"
	"testing"

	"github.com/harbdog/raycaster-go/geom"
)

func TestProjectSpriteCullsBehindViewer(t *testing.T) {
	view := View{Width: 320, Height: 200, PlaneDistance: 70}
	fovs := []float64{0.1, math.Pi / 3, math.Pi / 2, math.Pi, 1.5 * math.Pi, 2*math.Pi - 0.01}
	angles := []float64{0, 0.5, math.Pi / 2, math.Pi, -2.5, 6}

	for _, fov := range fovs {
		for _, angle := range angles {
			pose := Pose{Pos: geom.Vector2{X: 500, Y: 500}, Angle: angle, FOV: fov}
			behind := geom.Vector2{
				X: pose.Pos.X - 200*math.Cos(angle),
				Y: pose.Pos.Y - 200*math.Sin(angle),
			}
			if _, ok := ProjectSprite(behind, pose, view, Billboard{Scale: 1}); ok {
				t.Errorf("fov %v angle %v: sprite behind the viewer was not culled", fov, angle)
			}
		}
	}
}

func TestProjectSpriteCullsAtEye(t *testing.T) {
	pose := Pose{Pos: geom.Vector2{X: 10, Y: 10}, FOV: math.Pi / 2}
	if _, ok := ProjectSprite(pose.Pos, pose, View{Width: 100, Height: 100, PlaneDistance: 70}, Billboard{Scale: 1}); ok {
		t.Error("sprite at the eye was not culled")
	}
}

func TestProjectSpriteColumns(t *testing.T) {
	pose := Pose{Angle: 0, FOV: math.Pi / 2}
	view := View{Width: 100, Height: 200, PlaneDistance: 50}

	tests := []struct {
		name   string
		point  geom.Vector2
		column int
	}{
		{"straight ahead", geom.Vector2{X: 100}, 50},
		{"left edge", geom.Vector2{X: 100, Y: -99}, 0},
		{"right edge", geom.Vector2{X: 100, Y: 99}, 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := ProjectSprite(tt.point, pose, view, Billboard{Scale: 1})
			if !ok {
				t.Fatal("sprite culled")
			}
			if s.Column != tt.column {
				t.Errorf("column = %d, want %d", s.Column, tt.column)
			}
		})
	}
}

func TestProjectSpriteAnchors(t *testing.T) {
	pose := Pose{Angle: 0, FOV: math.Pi / 2}
	view := View{Width: 100, Height: 200, PlaneDistance: 50}
	point := geom.Vector2{X: 100}

	// wall height at distance 100 is 50, so the floor line is at 125 and
	// the ceiling line at 75; the sprite is 25 pixels tall
	tests := []struct {
		anchor     Anchor
		top, bottom int
	}{
		{AnchorBottom, 100, 125},
		{AnchorCenter, 87, 113},
		{AnchorTop, 75, 100},
	}

	for _, tt := range tests {
		s, ok := ProjectSprite(point, pose, view, Billboard{Scale: 0.5, Anchor: tt.anchor})
		if !ok {
			t.Fatalf("anchor %d: sprite culled", tt.anchor)
		}
		if s.Rect.Min.Y != tt.top || s.Rect.Max.Y != tt.bottom {
			t.Errorf("anchor %d: rows [%d,%d), want [%d,%d)", tt.anchor, s.Rect.Min.Y, s.Rect.Max.Y, tt.top, tt.bottom)
		}
		if s.Rect.Min.X != 37 || s.Rect.Max.X != 63 {
			t.Errorf("anchor %d: columns [%d,%d), want [37,63)", tt.anchor, s.Rect.Min.X, s.Rect.Max.X)
		}
		if s.Distance != 100 || s.Perp != 100 {
			t.Errorf("anchor %d: distance %v perp %v, want 100", tt.anchor, s.Distance, s.Perp)
		}
	}
}

func TestProjectSpriteSizeNearViewer(t *testing.T) {
	pose := Pose{Angle: 0, FOV: math.Pi / 2}
	view := View{Width: 100, Height: 200, PlaneDistance: 50}
	point := geom.Vector2{X: 10}

	// the wall at distance 10 is 500 tall and capped at 400; a half-scale
	// sprite stays 250 and a full-scale one is capped at 400
	tests := []struct {
		scale float64
		size  int
	}{
		{0.5, 250},
		{1, 400},
		{3, 400},
	}

	for _, tt := range tests {
		s, ok := ProjectSprite(point, pose, view, Billboard{Scale: tt.scale, Anchor: AnchorCenter})
		if !ok {
			t.Fatalf("scale %v: sprite culled", tt.scale)
		}
		if s.Rect.Dx() != tt.size || s.Rect.Dy() != tt.size {
			t.Errorf("scale %v: size %dx%d, want %d", tt.scale, s.Rect.Dx(), s.Rect.Dy(), tt.size)
		}
		if top := 100 - tt.size/2; s.Rect.Min.Y != top {
			t.Errorf("scale %v: top = %d, want %d", tt.scale, s.Rect.Min.Y, top)
		}
	}
}

func TestProjectSpritePerpDistance(t *testing.T) {
	pose := Pose{Angle: 0, FOV: math.Pi / 2}
	view := View{Width: 100, Height: 200, PlaneDistance: 50}

	s, ok := ProjectSprite(geom.Vector2{X: 100, Y: 100}, pose, view, Billboard{Scale: 1})
	if !ok {
		t.Fatal("sprite culled")
	}
	if !approx(s.Distance, 100*math.Sqrt2, 1e-9) {
		t.Errorf("distance = %v, want %v", s.Distance, 100*math.Sqrt2)
	}
	if !approx(s.Perp, 100, 1e-9) {
		t.Errorf("perp = %v, want 100", s.Perp)
	}
	if !approx(s.Angle, math.Pi/4, 1e-12) {
		t.Errorf("angle = %v, want pi/4", s.Angle)
	}
}

func TestRelativeAngleWraps(t *testing.T) {
	pose := Pose{Angle: 3 * math.Pi / 4}
	// target lies just past the -pi/pi seam
	target := geom.Vector2{X: -100, Y: -1}
	rel := RelativeAngle(pose, target)
	if rel < -math.Pi || rel > math.Pi {
		t.Fatalf("relative angle %v outside [-pi, pi]", rel)
	}
	if !approx(rel, math.Atan2(-1, -100)-3*math.Pi/4+2*math.Pi, 1e-12) {
		t.Errorf("relative angle = %v", rel)
	}
}
