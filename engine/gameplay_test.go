package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	"golang.org/x/exp/rand"

	"github.com/lixenwraith/term-snake/core"
)

// newTestGameplay builds a rows x cols game with a centered snake
func newTestGameplay(t *testing.T, rows, cols, length int, dir core.Coordinate, cfg Config) *Gameplay {
	t.Helper()
	pg, err := core.NewPlayground(rows, cols, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("NewPlayground failed: %v", err)
	}
	snake, err := core.NewSnake(dir, length, pg.Center())
	if err != nil {
		t.Fatalf("NewSnake failed: %v", err)
	}
	g, err := NewGameplay(snake, pg, cfg)
	if err != nil {
		t.Fatalf("NewGameplay failed: %v", err)
	}
	return g
}

// steer turns the snake and advances it n cells
func steer(g *Gameplay, dir core.Coordinate, n int) {
	g.Snake().SetDirection(dir)
	for i := 0; i < n; i++ {
		g.Snake().Move()
	}
}

func TestNewGameplayInitialState(t *testing.T) {
	g := newTestGameplay(t, 20, 20, 3, core.Right, DefaultConfig())

	if g.Score() != 0 {
		t.Errorf("Expected score 0, got %d", g.Score())
	}
	if g.Speed() != 0.1 {
		t.Errorf("Expected speed 0.1, got %f", g.Speed())
	}
	if _, ok := g.Bait(); ok {
		t.Error("Expected no bait before CreateBait")
	}
	if g.DidAteBait() {
		t.Error("DidAteBait must be false without bait")
	}
}

func TestNewGameplaySnakeDoesNotFit(t *testing.T) {
	pg, err := core.NewPlayground(10, 10, nil)
	if err != nil {
		t.Fatalf("NewPlayground failed: %v", err)
	}
	snake, err := core.NewSnake(core.Right, 15, pg.Center())
	if err != nil {
		t.Fatalf("NewSnake failed: %v", err)
	}

	if _, err := NewGameplay(snake, pg, DefaultConfig()); !errors.Is(err, core.ErrDegenerateGeometry) {
		t.Errorf("Expected ErrDegenerateGeometry, got %v", err)
	}
}

func TestNewGameplayInvalidConfig(t *testing.T) {
	pg, _ := core.NewPlayground(20, 20, nil)
	snake, _ := core.NewSnake(core.Right, 3, pg.Center())
	cfg := DefaultConfig()
	cfg.SpeedDecay = 2

	if _, err := NewGameplay(snake, pg, cfg); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

// TestIsDirectionAllowed checks reversal, same direction, turns and absence
func TestIsDirectionAllowed(t *testing.T) {
	dirs := []core.Coordinate{core.Up, core.Down, core.Left, core.Right}

	for _, current := range dirs {
		g := newTestGameplay(t, 20, 20, 3, current, DefaultConfig())

		if g.IsDirectionAllowed(current.Neg()) {
			t.Errorf("current %v: reversal %v should be rejected", current, current.Neg())
		}
		if !g.IsDirectionAllowed(current) {
			t.Errorf("current %v: same direction should be allowed", current)
		}
		if g.IsDirectionAllowed(core.Coordinate{}) {
			t.Errorf("current %v: absent direction should be rejected", current)
		}
		for _, other := range dirs {
			if other != current && other != current.Neg() && !g.IsDirectionAllowed(other) {
				t.Errorf("current %v: turn %v should be allowed", current, other)
			}
		}
	}
}

// TestCheckBoundaryWalls drives a one-segment snake into each wall
func TestCheckBoundaryWalls(t *testing.T) {
	// 5x5 grid, center (2,2), a length-1 snake starts at (3,3)
	tests := []struct {
		name  string
		dir   core.Coordinate
		steps int
	}{
		{"top", core.Up, 3},
		{"bottom", core.Down, 1},
		{"left", core.Left, 3},
		{"right", core.Right, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGameplay(t, 5, 5, 1, tt.dir, DefaultConfig())

			steer(g, tt.dir, tt.steps-1)
			if g.CheckBoundary() {
				t.Fatalf("Head %v one step before the wall reported a collision", g.Snake().Head())
			}

			steer(g, tt.dir, 1)
			if !g.CheckBoundary() {
				t.Errorf("Head %v on the %s wall not detected", g.Snake().Head(), tt.name)
			}
		})
	}
}

// TestCheckBoundaryLeftWallColumnZero places the head at column 0 of a 20x20 grid
func TestCheckBoundaryLeftWallColumnZero(t *testing.T) {
	g := newTestGameplay(t, 20, 20, 3, core.Right, DefaultConfig())

	// Head starts at (11,13): drop one row, then run left to column 0
	steer(g, core.Down, 1)
	steer(g, core.Left, 12)
	if g.CheckBoundary() {
		t.Fatalf("Head %v at column 1 reported a collision", g.Snake().Head())
	}

	steer(g, core.Left, 1)
	if g.Snake().Head().Col != 0 {
		t.Fatalf("Expected head at column 0, got %v", g.Snake().Head())
	}
	if !g.CheckBoundary() {
		t.Error("Head at column 0 must end the game")
	}
}

func TestCheckBoundarySelfCollision(t *testing.T) {
	g := newTestGameplay(t, 20, 20, 5, core.Right, DefaultConfig())

	// Tight U-turn: down, left, up lands the head on its own body
	steer(g, core.Down, 1)
	steer(g, core.Left, 1)
	if g.CheckBoundary() {
		t.Fatal("No collision expected before the U-turn closes")
	}
	steer(g, core.Up, 1)

	if !g.CheckBoundary() {
		t.Errorf("Head %v on body %v not detected", g.Snake().Head(), g.Snake().Body()[1:])
	}
}

func TestCheckBoundaryInterior(t *testing.T) {
	g := newTestGameplay(t, 20, 20, 3, core.Right, DefaultConfig())
	if g.CheckBoundary() {
		t.Errorf("Fresh snake at %v should not collide", g.Snake().Head())
	}
}

func TestScoreProgression(t *testing.T) {
	g := newTestGameplay(t, 20, 20, 3, core.Right, DefaultConfig())

	g.IncreaseScore()
	if g.Score() != 1 {
		t.Fatalf("Expected score 1 after first increase, got %d", g.Score())
	}
	g.IncreaseScore()
	if g.Score() < 2 {
		t.Fatalf("Expected score >= 2 after second increase, got %d", g.Score())
	}
}

// TestScoreNeverDecreases runs past the point where doubling leaves int range
func TestScoreNeverDecreases(t *testing.T) {
	tests := []struct {
		name       string
		multiplier int
		baits      int
	}{
		{"default multiplier", 2, 100},
		{"large multiplier", 1000, 20},
		{"max multiplier", math.MaxInt, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.ScoreMultiplier = tt.multiplier
			g := newTestGameplay(t, 20, 20, 3, core.Right, cfg)

			prev := g.Score()
			for i := 1; i <= tt.baits; i++ {
				g.IncreaseScore()
				if g.Score() < prev {
					t.Fatalf("Bait %d: score dropped from %d to %d", i, prev, g.Score())
				}
				prev = g.Score()
			}
			if g.Score() != math.MaxInt {
				t.Errorf("Expected score saturated at %d, got %d", math.MaxInt, g.Score())
			}
		})
	}
}

func TestSpeedProgression(t *testing.T) {
	g := newTestGameplay(t, 20, 20, 3, core.Right, DefaultConfig())

	prev := g.Speed()
	for i := 0; i < 1000; i++ {
		g.IncreaseSpeed()
		if g.Speed() >= prev {
			t.Fatalf("Increase %d: speed %g did not drop below %g", i, g.Speed(), prev)
		}
		if g.Speed() <= 0 {
			t.Fatalf("Increase %d: speed %g not positive", i, g.Speed())
		}
		prev = g.Speed()
	}
}

func TestTickDurationFloor(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinTick = 50 * time.Millisecond
	g := newTestGameplay(t, 20, 20, 3, core.Right, cfg)

	if d := g.TickDuration(); d != 100*time.Millisecond {
		t.Errorf("Expected 100ms initial tick, got %v", d)
	}

	for i := 0; i < 200; i++ {
		g.IncreaseSpeed()
	}
	if d := g.TickDuration(); d != cfg.MinTick {
		t.Errorf("Expected tick floored at %v, got %v", cfg.MinTick, d)
	}
	if g.Speed() >= 0.05 {
		t.Errorf("Speed itself should keep decaying below the floor, got %g", g.Speed())
	}

	cfg.MinTick = 0
	unfloored := newTestGameplay(t, 20, 20, 3, core.Right, cfg)
	for i := 0; i < 200; i++ {
		unfloored.IncreaseSpeed()
	}
	expected := time.Duration(unfloored.Speed() * float64(time.Second))
	if d := unfloored.TickDuration(); d != expected {
		t.Errorf("Expected unfloored tick %v, got %v", expected, d)
	}
}

func TestTickDurationLongestSpeed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialSpeed = maxSpeed * 0.999
	g := newTestGameplay(t, 20, 20, 3, core.Right, cfg)

	if d := g.TickDuration(); d < time.Duration(math.MaxInt64/2) {
		t.Errorf("Expected a tick near the Duration limit, got %v", d)
	}
}

func TestCreateBaitInterior(t *testing.T) {
	g := newTestGameplay(t, 8, 12, 3, core.Right, DefaultConfig())

	for i := 0; i < 500; i++ {
		g.CreateBait()
		bait, ok := g.Bait()
		if !ok {
			t.Fatal("Expected bait after CreateBait")
		}
		if !g.Playground().IsInterior(bait) {
			t.Fatalf("Bait %v outside interior", bait)
		}
	}
}

func TestCreateBaitSafeAvoidsSnake(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SafeBait = true
	// 5x10 grid has an interior of 3x8 cells, the snake covers 3 of them
	g := newTestGameplay(t, 5, 10, 3, core.Right, cfg)

	for i := 0; i < 500; i++ {
		g.CreateBait()
		bait, _ := g.Bait()
		if g.Snake().Contains(bait) {
			t.Fatalf("Safe bait %v placed on snake %v", bait, g.Snake().Body())
		}
	}
}

func TestDidAteBait(t *testing.T) {
	g := newTestGameplay(t, 20, 20, 3, core.Right, DefaultConfig())

	g.SetBait(g.Snake().Head().Add(core.Right))
	if g.DidAteBait() {
		t.Error("Bait ahead of the head is not eaten yet")
	}

	g.Snake().Move()
	if !g.DidAteBait() {
		t.Error("Head on bait should report eaten")
	}
}

func TestSpeedMatchesDecay(t *testing.T) {
	g := newTestGameplay(t, 20, 20, 3, core.Right, DefaultConfig())
	g.IncreaseSpeed()
	if math.Abs(g.Speed()-0.099) > 1e-12 {
		t.Errorf("Expected speed 0.099, got %.15f", g.Speed())
	}
}
