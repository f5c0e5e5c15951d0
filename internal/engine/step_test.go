package engine

import (
	"math"
	"testing"

	"github.com/KirkDiggler/bonedash/internal/rng"
)

// noSpawnConfig pushes the spawn edge so far right that nothing ever arrives
func noSpawnConfig() Config {
	cfg := DefaultConfig()
	cfg.FieldWidth = 1e12
	return cfg
}

// ghostConfig never collides
func ghostConfig() Config {
	cfg := DefaultConfig()
	cfg.CollisionMargin = 1000
	return cfg
}

func TestStepNeverSinksBelowGround(t *testing.T) {
	cfg := noSpawnConfig()
	s := NewState(cfg)
	src := rng.New(&rng.Config{Seed: 1})

	dts := []float64{0.2, 1, 1.7, 3, 0.5}
	for i := 0; i < 2000; i++ {
		Step(s, cfg, src, dts[i%len(dts)])
		if s.PlayerY > cfg.GroundTop() {
			t.Fatalf("frame %d: player y %f below ground %f", i, s.PlayerY, cfg.GroundTop())
		}
	}
	if s.PlayerY != cfg.GroundTop() || s.PlayerVY != 0 {
		t.Fatalf("expected resting on ground, got y=%f vy=%f", s.PlayerY, s.PlayerVY)
	}
}

func TestStepFallsToGround(t *testing.T) {
	cfg := noSpawnConfig()
	s := NewState(cfg)
	s.PlayerY = 100
	s.JumpsUsed = 2
	src := rng.New(&rng.Config{Seed: 1})

	prev := s.PlayerY
	for i := 0; i < 200; i++ {
		Step(s, cfg, src, 1)
		if s.PlayerY < prev {
			t.Fatalf("frame %d: player rose without a jump (%f -> %f)", i, prev, s.PlayerY)
		}
		prev = s.PlayerY
	}
	if s.PlayerY != cfg.GroundTop() {
		t.Fatalf("player y = %f, want ground %f", s.PlayerY, cfg.GroundTop())
	}
	if s.JumpsUsed != 0 {
		t.Fatalf("jumps used = %d after landing, want 0", s.JumpsUsed)
	}
}

func TestStepIntegratesVelocityBeforePosition(t *testing.T) {
	cfg := noSpawnConfig()
	s := NewState(cfg)
	s.PlayerY = 100
	src := rng.New(&rng.Config{Seed: 1})

	Step(s, cfg, src, 1)
	if s.PlayerVY != cfg.Gravity {
		t.Fatalf("vy = %f, want %f", s.PlayerVY, cfg.Gravity)
	}
	if s.PlayerY != 100+cfg.Gravity {
		t.Fatalf("y = %f, want %f", s.PlayerY, 100+cfg.Gravity)
	}
}

func TestDoubleJumpBudget(t *testing.T) {
	cfg := noSpawnConfig()
	s := NewState(cfg)
	src := rng.New(&rng.Config{Seed: 1})

	if !ApplyJump(s, cfg) {
		t.Fatal("ground jump refused")
	}
	if s.JumpsUsed != 1 {
		t.Fatalf("jumps used = %d after ground jump, want 1", s.JumpsUsed)
	}

	Step(s, cfg, src, 1)
	if s.Grounded(cfg) {
		t.Fatal("expected airborne after one frame")
	}

	if !ApplyJump(s, cfg) {
		t.Fatal("air jump refused")
	}
	if s.JumpsUsed != 2 {
		t.Fatalf("jumps used = %d after air jump, want 2", s.JumpsUsed)
	}

	vy := s.PlayerVY
	Step(s, cfg, src, 1)
	if ApplyJump(s, cfg) {
		t.Fatal("third jump before landing should be a no-op")
	}
	if s.JumpsUsed != 2 {
		t.Fatalf("jumps used = %d after refused jump, want 2", s.JumpsUsed)
	}
	if s.PlayerVY != vy+cfg.Gravity {
		t.Fatalf("refused jump changed velocity: %f", s.PlayerVY)
	}

	for i := 0; i < 200 && s.PlayerY != cfg.GroundTop(); i++ {
		Step(s, cfg, src, 1)
	}
	if s.JumpsUsed != 0 {
		t.Fatalf("jump budget not reset on landing: %d", s.JumpsUsed)
	}
	if !ApplyJump(s, cfg) {
		t.Fatal("ground jump refused after landing")
	}
}

func TestObstaclesStayOnField(t *testing.T) {
	cfg := ghostConfig()
	s := NewState(cfg)
	src := rng.New(&rng.Config{Seed: 99})

	for i := 0; i < 5000; i++ {
		dt := 0.1 + src.Float64()*2.9
		Step(s, cfg, src, dt)
		if s.Collided {
			t.Fatalf("frame %d: ghost config collided", i)
		}
		for _, o := range s.Obstacles {
			if o.Right() <= 0 {
				t.Fatalf("frame %d: obstacle past the left edge kept: %+v", i, o)
			}
			if o.X > cfg.FieldWidth {
				t.Fatalf("frame %d: obstacle beyond the spawn edge: %+v", i, o)
			}
		}
		for j := 1; j < len(s.Obstacles); j++ {
			if s.Obstacles[j].X <= s.Obstacles[j-1].X {
				t.Fatalf("frame %d: obstacles out of spawn order", i)
			}
		}
	}
	if s.Spawned < 10 {
		t.Fatalf("expected a steady stream of obstacles, got %d", s.Spawned)
	}
}

func TestSpawnGapWithinBounds(t *testing.T) {
	cfg := ghostConfig()
	s := NewState(cfg)
	src := rng.New(&rng.Config{Seed: 2024})

	gaps := 0
	for i := 0; i < 10000; i++ {
		prevSpawn := s.LastSpawnX
		first := s.Spawned == 0
		res := Step(s, cfg, src, 0.1+src.Float64()*2.9)
		if res.Spawned == nil {
			continue
		}

		o := res.Spawned
		if o.Width < cfg.ObstacleMinWidth || o.Width > cfg.ObstacleMaxWidth {
			t.Fatalf("width %f out of range", o.Width)
		}
		if o.Height < cfg.ObstacleMinHeight || o.Height > cfg.ObstacleMaxHeight {
			t.Fatalf("height %f out of range", o.Height)
		}
		if math.Abs(o.Y+o.Height-cfg.GroundY) > 1e-9 {
			t.Fatalf("obstacle not standing on the ground: %+v", o)
		}
		if o.Kind != ObstacleBone && o.Kind != ObstacleMoon {
			t.Fatalf("unknown kind %q", o.Kind)
		}
		if first {
			if o.X != cfg.FieldWidth {
				t.Fatalf("first obstacle at %f, want right edge", o.X)
			}
			continue
		}

		gap := o.X - prevSpawn
		if gap < cfg.ObstacleMinGap-1e-9 || gap > cfg.ObstacleMaxGap+1e-9 {
			t.Fatalf("spawn %d: gap %f outside [%f, %f]", s.Spawned, gap, cfg.ObstacleMinGap, cfg.ObstacleMaxGap)
		}
		gaps++
	}
	if gaps < 50 {
		t.Fatalf("too few spawns checked: %d", gaps)
	}
}

func TestScoreTracksElapsed(t *testing.T) {
	cfg := ghostConfig()
	s := NewState(cfg)
	src := rng.New(&rng.Config{Seed: 5})

	last := 0
	prevSpeed := s.Speed
	for i := 0; i < 3000; i++ {
		Step(s, cfg, src, 0.1+src.Float64()*2.9)
		if s.Score() != int(math.Floor(s.Elapsed)) {
			t.Fatalf("score %d != floor(elapsed %f)", s.Score(), s.Elapsed)
		}
		if s.Score() < last {
			t.Fatalf("score went down: %d -> %d", last, s.Score())
		}
		if s.Speed <= prevSpeed {
			t.Fatalf("speed did not increase: %f -> %f", prevSpeed, s.Speed)
		}
		last = s.Score()
		prevSpeed = s.Speed
	}
}

func TestCollisionUsesShrunkenBox(t *testing.T) {
	cfg := noSpawnConfig()
	src := rng.New(&rng.Config{Seed: 1})

	// Touches the sprite but not the inner box
	s := NewState(cfg)
	s.Spawned = 1
	s.NextGap = cfg.ObstacleMaxGap
	s.Speed = 0
	s.Obstacles = []Obstacle{{
		X:      cfg.PlayerX + cfg.PlayerSize - cfg.CollisionMargin + 1,
		Y:      cfg.GroundY - 50,
		Width:  30,
		Height: 50,
	}}
	res := Step(s, cfg, src, 0.01)
	if s.Collided || res.HitIndex != -1 {
		t.Fatal("obstacle inside the sprite padding should not collide")
	}

	// Overlaps the inner box
	s = NewState(cfg)
	s.Spawned = 1
	s.NextGap = cfg.ObstacleMaxGap
	s.Obstacles = []Obstacle{
		{X: 300, Y: cfg.GroundY - 50, Width: 30, Height: 50},
		{X: cfg.PlayerX + 25, Y: cfg.GroundY - 50, Width: 30, Height: 50},
	}
	res = Step(s, cfg, src, 0.01)
	if !s.Collided || res.HitIndex != 1 {
		t.Fatalf("expected hit on obstacle 1, got %d", res.HitIndex)
	}

	// A collided state does not move
	elapsed := s.Elapsed
	Step(s, cfg, src, 1)
	if s.Elapsed != elapsed {
		t.Fatal("collided state kept advancing")
	}
	if ApplyJump(s, cfg) {
		t.Fatal("collided state accepted a jump")
	}
}
