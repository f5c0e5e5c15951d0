package engine

import "github.com/KirkDiggler/bonedash/internal/rng"

// StepResult describes what happened during one Step
type StepResult struct {
	Spawned  *Obstacle
	HitIndex int // index of the obstacle hit, -1 when none
}

// Step advances the state by dt frame units
func Step(s *State, cfg Config, src rng.Source, dt float64) StepResult {
	res := StepResult{HitIndex: -1}
	if s.Collided || dt <= 0 {
		return res
	}

	s.Elapsed += dt
	s.Speed += cfg.SpeedIncrement * dt

	s.PlayerVY += cfg.Gravity * dt
	s.PlayerY += s.PlayerVY * dt
	if ground := cfg.GroundTop(); s.PlayerY > ground {
		s.PlayerY = ground
		s.PlayerVY = 0
		s.JumpsUsed = 0
	}

	if o, ok := maybeSpawn(s, cfg, src); ok {
		res.Spawned = &o
	}

	shift := s.Speed * dt
	kept := s.Obstacles[:0]
	for _, o := range s.Obstacles {
		o.X -= shift
		if o.Right() > 0 {
			kept = append(kept, o)
		}
	}
	s.Obstacles = kept
	s.LastSpawnX -= shift

	if i := firstHit(s, cfg); i >= 0 {
		s.Collided = true
		res.HitIndex = i
	}
	return res
}

// maybeSpawn adds an obstacle once the distance since the last spawn reaches
// the drawn gap. The obstacle is placed exactly one gap after the previous one.
func maybeSpawn(s *State, cfg Config, src rng.Source) (Obstacle, bool) {
	x := cfg.FieldWidth
	if s.Spawned > 0 {
		if s.NextGap == 0 {
			s.NextGap = rng.Between(src, cfg.ObstacleMinGap, cfg.ObstacleMaxGap)
		}
		if cfg.FieldWidth-s.LastSpawnX < s.NextGap {
			return Obstacle{}, false
		}
		x = s.LastSpawnX + s.NextGap
	}

	kind := ObstacleKinds[src.Intn(len(ObstacleKinds))]
	width := rng.Between(src, cfg.ObstacleMinWidth, cfg.ObstacleMaxWidth)
	height := rng.Between(src, cfg.ObstacleMinHeight, cfg.ObstacleMaxHeight)

	o := Obstacle{
		X:      x,
		Y:      cfg.GroundY - height,
		Width:  width,
		Height: height,
		Kind:   kind,
	}
	s.Obstacles = append(s.Obstacles, o)
	s.LastSpawnX = x
	s.NextGap = rng.Between(src, cfg.ObstacleMinGap, cfg.ObstacleMaxGap)
	s.Spawned++
	return o, true
}

// firstHit returns the index of the first obstacle overlapping the shrunken
// player box, or -1
func firstHit(s *State, cfg Config) int {
	m := cfg.CollisionMargin
	px := cfg.PlayerX + m
	py := s.PlayerY + m
	pw := cfg.PlayerSize - 2*m
	ph := cfg.PlayerSize - 2*m

	for i, o := range s.Obstacles {
		if px < o.X+o.Width &&
			px+pw > o.X &&
			py < o.Y+o.Height &&
			py+ph > o.Y {
			return i
		}
	}
	return -1
}

// ApplyJump applies the jump impulse when the budget allows and reports
// whether it did
func ApplyJump(s *State, cfg Config) bool {
	if s.Collided {
		return false
	}

	if s.Grounded(cfg) {
		s.PlayerVY = cfg.JumpVelocity
		s.JumpsUsed = 1
		return true
	}

	if s.JumpsUsed < cfg.MaxJumps {
		s.PlayerVY = cfg.JumpVelocity
		s.JumpsUsed++
		return true
	}
	return false
}
