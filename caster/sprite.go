package caster

import (
	"image"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

const (
	// sprites closer than this sit inside the eye and are culled
	minSpriteDistance = 1e-9
	// lower bound on |cos| when correcting sprite distance
	minSpriteCos = 1e-6
)

// Pose is where the viewer stands and looks. Angles are in radians.
type Pose struct {
	Pos   geom.Vector2
	Angle float64
	FOV   float64
}

// Anchor places a billboard vertically relative to the horizon.
type Anchor uint8

const (
	// AnchorBottom rests the sprite on the floor line at its depth.
	AnchorBottom Anchor = iota
	// AnchorCenter centres the sprite on the horizon.
	AnchorCenter
	// AnchorTop hangs the sprite from the ceiling line at its depth.
	AnchorTop
)

// Billboard is a class of sprite: its size relative to a wall and its anchor.
type Billboard struct {
	Scale  float64
	Anchor Anchor
}

// ScreenSprite is a world point projected into screen space.
type ScreenSprite struct {
	// X is the continuous screen column of the sprite centre; Column is
	// floor(X) and indexes the frame's slices.
	X      float64
	Column int
	Rect   image.Rectangle
	// Distance is the true distance to the sprite, Perp the distance
	// corrected onto the view direction.
	Distance float64
	Perp     float64
	// Angle of the sprite relative to the view direction, in [-Pi, Pi].
	Angle    float64
	Occluded bool
}

// RelativeAngle returns the angle of target seen from pose, normalized to
// [-Pi, Pi].
func RelativeAngle(pose Pose, target geom.Vector2) float64 {
	dx, dy := target.X-pose.Pos.X, target.Y-pose.Pos.Y
	return math.Remainder(math.Atan2(dy, dx)-pose.Angle, 2*math.Pi)
}

// ProjectSprite projects point into the view. It returns false when the
// point lies outside the field of view or on top of the viewer.
func ProjectSprite(point geom.Vector2, pose Pose, view View, b Billboard) (ScreenSprite, bool) {
	rel := RelativeAngle(pose, point)
	if math.IsNaN(rel) || math.Abs(rel) > pose.FOV/2 {
		return ScreenSprite{}, false
	}

	radial := math.Hypot(point.X-pose.Pos.X, point.Y-pose.Pos.Y)
	if radial < minSpriteDistance || !finite(radial) {
		return ScreenSprite{}, false
	}
	perp := radial * math.Max(math.Abs(math.Cos(rel)), minSpriteCos)

	sx := (rel + pose.FOV/2) / pose.FOV * float64(view.Width)

	halfHeight := view.HalfHeight()
	// floor and ceiling lines use the capped wall height; the sprite size
	// caps its own product so close sprites keep their scale
	wall := projectedHeight(perp, halfHeight, view.PlaneDistance)
	size := math.Min(halfHeight/perp*view.PlaneDistance*b.Scale, 4*halfHeight)

	var top float64
	switch b.Anchor {
	case AnchorBottom:
		top = halfHeight + wall/2 - size
	case AnchorTop:
		top = halfHeight - wall/2
	default:
		top = halfHeight - size/2
	}
	left := sx - size/2

	return ScreenSprite{
		X:        sx,
		Column:   floorInt(sx),
		Rect:     image.Rect(int(math.Floor(left)), int(math.Floor(top)), int(math.Ceil(left+size)), int(math.Ceil(top+size))),
		Distance: radial,
		Perp:     perp,
		Angle:    rel,
	}, true
}
