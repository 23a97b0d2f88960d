package model

import (
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/harbdog/raycaster-go/geom"

	"gophermaze/caster"
	"gophermaze/level"
)

func testTuning() Tuning {
	return Tuning{
		CellSize:       100,
		FOV:            math.Pi / 3,
		MoveSpeed:      120,
		RotationSpeed:  math.Pi / 2,
		PlayerRadius:   20,
		GhostSpeed:     60,
		GhostRadius:    20,
		SightRange:     600,
		CatchRadius:    35,
		WanderInterval: 2 * time.Second,
		GhostScale:     0.8,
		PickupRadius:   40,
		PillScale:      0.25,
	}
}

func ring(n int) caster.Grid {
	g := make(caster.Grid, n)
	for r := range g {
		g[r] = make([]caster.Tag, n)
		for c := range g[r] {
			if r == 0 || c == 0 || r == n-1 || c == n-1 {
				g[r][c] = caster.WallA
			}
		}
	}
	return g
}

func loadWorld(t *testing.T, maze string) *World {
	t.Helper()
	lvl, err := level.Load(strings.NewReader(maze))
	if err != nil {
		t.Fatalf("load maze: %v", err)
	}
	return NewWorld(lvl, testTuning(), rand.New(rand.NewSource(1)))
}

func near(a, b geom.Vector2) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

// -- collision

func TestBlocked(t *testing.T) {
	grid := ring(4)
	solid := caster.Tag.Solid

	tests := []struct {
		name   string
		pos    geom.Vector2
		radius float64
		want   bool
	}{
		{"open cell", geom.Vector2{X: 150, Y: 150}, 20, false},
		{"touching west wall", geom.Vector2{X: 115, Y: 150}, 20, true},
		{"touching south wall", geom.Vector2{X: 250, Y: 285}, 20, true},
		{"between open cells", geom.Vector2{X: 200, Y: 200}, 20, false},
		{"outside grid", geom.Vector2{X: -50, Y: 150}, 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blocked(grid, 100, tt.pos, tt.radius, solid); got != tt.want {
				t.Errorf("Blocked = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlockedOutOfBoundsRaggedRow(t *testing.T) {
	grid := caster.Grid{{caster.Empty, caster.Empty}, {caster.Empty}}
	if !Blocked(grid, 100, geom.Vector2{X: 150, Y: 150}, 10, caster.Tag.Solid) {
		t.Error("cell past the end of a short row should block")
	}
}

func TestValidMoveSlidesAlongWall(t *testing.T) {
	walls := Collider{Grid: ring(4), CellSize: 100}

	got, collided := walls.ValidMove(geom.Vector2{X: 150, Y: 150}, geom.Vector2{X: 170, Y: 110}, 20)
	if !collided {
		t.Error("expected a collision on the Y axis")
	}
	if !near(got, geom.Vector2{X: 170, Y: 150}) {
		t.Errorf("position = %+v, want (170,150)", got)
	}

	got, collided = walls.ValidMove(geom.Vector2{X: 150, Y: 150}, geom.Vector2{X: 180, Y: 190}, 20)
	if collided {
		t.Error("unexpected collision")
	}
	if !near(got, geom.Vector2{X: 180, Y: 190}) {
		t.Errorf("position = %+v, want (180,190)", got)
	}
}

// -- player

func TestPlayerMove(t *testing.T) {
	walls := Collider{Grid: ring(10), CellSize: 100}

	tests := []struct {
		name    string
		angle   float64
		forward float64
		strafe  float64
		want    geom.Vector2
	}{
		{"forward east", 0, 1, 0, geom.Vector2{X: 570, Y: 450}},
		{"backward east", 0, -1, 0, geom.Vector2{X: 330, Y: 450}},
		{"strafe right", 0, 0, 1, geom.Vector2{X: 450, Y: 570}},
		{"strafe left", 0, 0, -1, geom.Vector2{X: 450, Y: 330}},
		{"forward south", math.Pi / 2, 1, 0, geom.Vector2{X: 450, Y: 570}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(geom.Vector2{X: 450, Y: 450}, tt.angle, testTuning())
			p.Move(walls, tt.forward, tt.strafe, 1)
			if math.Abs(p.Position.X-tt.want.X) > 1e-6 || math.Abs(p.Position.Y-tt.want.Y) > 1e-6 {
				t.Errorf("position = %+v, want %+v", p.Position, tt.want)
			}
			if !p.Moved {
				t.Error("Moved not set")
			}
		})
	}
}

func TestPlayerDiagonalNotFaster(t *testing.T) {
	walls := Collider{Grid: ring(10), CellSize: 100}
	start := geom.Vector2{X: 450, Y: 450}
	p := NewPlayer(start, 0.3, testTuning())

	p.Move(walls, 1, 1, 0.5)

	if d := p.DistanceTo(start); d > 60+1e-9 {
		t.Errorf("moved %v in half a second, want at most 60", d)
	}
}

func TestPlayerMoveBlocked(t *testing.T) {
	walls := Collider{Grid: ring(3), CellSize: 100}
	p := NewPlayer(geom.Vector2{X: 150, Y: 150}, 0, testTuning())

	p.Move(walls, 1, 0, 1)

	if !near(p.Position, geom.Vector2{X: 150, Y: 150}) {
		t.Errorf("position = %+v, want unchanged", p.Position)
	}
	if p.Moved {
		t.Error("Moved set on a blocked move")
	}
}

func TestPlayerRotateNormalizes(t *testing.T) {
	tests := []struct {
		start, delta, want float64
	}{
		{0, math.Pi / 2, math.Pi / 2},
		{math.Pi - 0.1, 0.2, -math.Pi + 0.1},
		{-math.Pi + 0.1, -0.2, math.Pi - 0.1},
		{0, -math.Pi, math.Pi},
	}

	for _, tt := range tests {
		p := NewPlayer(geom.Vector2{}, tt.start, testTuning())
		p.Rotate(tt.delta)
		if math.Abs(p.Angle-tt.want) > 1e-9 {
			t.Errorf("rotate %v by %v = %v, want %v", tt.start, tt.delta, p.Angle, tt.want)
		}
		if p.Angle <= -math.Pi || p.Angle > math.Pi {
			t.Errorf("angle %v outside (-pi, pi]", p.Angle)
		}
	}
}

func TestPlayerTurnUsesRotationSpeed(t *testing.T) {
	p := NewPlayer(geom.Vector2{}, 0, testTuning())
	p.Turn(1, 0.5)
	if math.Abs(p.Angle-math.Pi/4) > 1e-9 {
		t.Errorf("angle = %v, want pi/4", p.Angle)
	}
}

// -- ghosts

func TestGhostSees(t *testing.T) {
	grid := ring(10)
	g := NewGhost(geom.Vector2{X: 150, Y: 150}, testTuning(), rand.New(rand.NewSource(1)))
	target := geom.Vector2{X: 450, Y: 150}

	if !g.Sees(grid, 100, target) {
		t.Error("ghost should see a target down an open corridor")
	}

	g.SightRange = 200
	if g.Sees(grid, 100, target) {
		t.Error("ghost should not see past its sight range")
	}

	g.SightRange = 600
	grid[1][3] = caster.WallB
	if g.Sees(grid, 100, target) {
		t.Error("ghost should not see through a wall")
	}
}

func TestGhostChases(t *testing.T) {
	grid := ring(10)
	walls := Collider{Grid: grid, CellSize: 100}
	rng := rand.New(rand.NewSource(1))
	g := NewGhost(geom.Vector2{X: 150, Y: 150}, testTuning(), rng)

	g.Update(walls, grid, 100, geom.Vector2{X: 450, Y: 150}, 1, rng)

	if !g.Chasing {
		t.Fatal("ghost should be chasing")
	}
	if math.Abs(g.Position.X-210) > 1e-6 || math.Abs(g.Position.Y-150) > 1e-6 {
		t.Errorf("position = %+v, want (210,150)", g.Position)
	}
	if math.Abs(g.Velocity-60) > 1e-6 {
		t.Errorf("velocity = %v, want 60", g.Velocity)
	}
}

func TestGhostDoesNotOvershoot(t *testing.T) {
	grid := ring(10)
	walls := Collider{Grid: grid, CellSize: 100}
	rng := rand.New(rand.NewSource(1))
	g := NewGhost(geom.Vector2{X: 150, Y: 150}, testTuning(), rng)
	target := geom.Vector2{X: 180, Y: 150}

	g.Update(walls, grid, 100, target, 1, rng)

	if !near(g.Position, target) {
		t.Errorf("position = %+v, want %+v", g.Position, target)
	}
}

func TestGhostTurnsWhenBlocked(t *testing.T) {
	grid := ring(3)
	walls := Collider{Grid: grid, CellSize: 100}
	rng := rand.New(rand.NewSource(7))
	g := NewGhost(geom.Vector2{X: 150, Y: 150}, testTuning(), rng)
	g.SightRange = 0
	g.Angle = 0

	g.Update(walls, grid, 100, geom.Vector2{X: 1000, Y: 1000}, 1, rng)

	if g.Chasing {
		t.Fatal("ghost should be wandering")
	}
	if g.Angle == 0 {
		t.Error("heading unchanged after hitting a wall")
	}
	if walls.Blocked(g.Position, g.CollisionRadius) {
		t.Errorf("ghost ended inside a wall at %+v", g.Position)
	}
}

func TestGhostWanderInterval(t *testing.T) {
	grid := ring(10)
	walls := Collider{Grid: grid, CellSize: 100}
	rng := rand.New(rand.NewSource(3))
	g := NewGhost(geom.Vector2{X: 250, Y: 450}, testTuning(), rng)
	g.SightRange = 0
	g.Angle = 0

	for i := 0; i < 3; i++ {
		g.Update(walls, grid, 100, geom.Vector2{}, 0.5, rng)
		if g.Angle != 0 {
			t.Fatalf("heading changed after %d updates", i+1)
		}
	}

	g.Update(walls, grid, 100, geom.Vector2{}, 0.5, rng)
	if g.Angle == 0 {
		t.Error("heading unchanged after the wander interval")
	}
	if math.Abs(g.Position.X-370) > 1e-6 {
		t.Errorf("x = %v, want 370", g.Position.X)
	}
}

// -- world

func TestNewWorld(t *testing.T) {
	w := loadWorld(t, "+++++\n+p.x+\n+. g+\n+++++")

	if !near(w.Player.Position, geom.Vector2{X: 150, Y: 150}) {
		t.Errorf("player at %+v", w.Player.Position)
	}
	if len(w.Pills) != 2 || len(w.Ghosts) != 1 {
		t.Fatalf("pills %d ghosts %d, want 2 and 1", len(w.Pills), len(w.Ghosts))
	}
	if w.Remaining() != 2 || w.GoalOpen() {
		t.Errorf("remaining %d open %v", w.Remaining(), w.GoalOpen())
	}
	if w.Pills[0].Anchor != caster.AnchorBottom || w.Ghosts[0].Anchor != caster.AnchorCenter {
		t.Error("unexpected sprite anchors")
	}

	pose := w.Pose()
	if pose.FOV != math.Pi/3 || pose.Pos != w.Player.Position {
		t.Errorf("pose = %+v", pose)
	}
}

func TestWorldCollectAndEscape(t *testing.T) {
	w := loadWorld(t, "++++++\n+p..g+\n++++++")

	out := w.Step(0.5, Intent{Forward: 1})
	if out.Collected != 1 || out.Escaped || out.Caught {
		t.Fatalf("first step: %+v", out)
	}
	if w.Remaining() != 1 || w.GoalOpen() {
		t.Fatalf("remaining %d open %v", w.Remaining(), w.GoalOpen())
	}

	out = w.Step(1, Intent{Forward: 1})
	if out.Collected != 1 || out.Escaped {
		t.Fatalf("second step: %+v", out)
	}
	if !w.GoalOpen() {
		t.Fatal("goal should be open with every pill collected")
	}

	out = w.Step(1, Intent{Forward: 1})
	if !out.Escaped {
		t.Fatalf("third step: %+v, want escape", out)
	}
}

func TestWorldGoalBlocksWhileClosed(t *testing.T) {
	w := loadWorld(t, "++++\n+pg+\n+.++\n++++")

	out := w.Step(1, Intent{Forward: 1})
	if out.Escaped {
		t.Fatal("escaped through a closed goal")
	}
	if !near(w.Player.Position, geom.Vector2{X: 150, Y: 150}) {
		t.Errorf("player moved to %+v", w.Player.Position)
	}
}

func TestWorldCaught(t *testing.T) {
	w := loadWorld(t, "+++++\n+p x+\n+++++")

	for i := 1; i <= 3; i++ {
		out := w.Step(1, Intent{})
		if out.Caught {
			if i != 3 {
				t.Errorf("caught on step %d, want 3", i)
			}
			return
		}
	}
	t.Fatal("ghost never caught the player")
}

func TestWorldZeroStep(t *testing.T) {
	w := loadWorld(t, "+++++\n+p x+\n+++++")
	before := w.Player.Position

	if out := w.Step(0, Intent{Forward: 1}); out != (Outcome{}) {
		t.Errorf("outcome = %+v, want zero", out)
	}
	if w.Player.Position != before {
		t.Error("player moved on a zero step")
	}
}
