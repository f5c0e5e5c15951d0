package engine

// ObstacleKind is the visual type of an obstacle. All kinds collide the same way.
type ObstacleKind string

const (
	ObstacleBone ObstacleKind = "bone"
	ObstacleMoon ObstacleKind = "moon"
)

// ObstacleKinds is the closed set spawned obstacles are drawn from
var ObstacleKinds = []ObstacleKind{ObstacleBone, ObstacleMoon}

// Obstacle is one hazard scrolling toward the player
type Obstacle struct {
	X, Y          float64
	Width, Height float64
	Kind          ObstacleKind
}

// Right is the trailing edge
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// Status is the lifecycle of a session
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusEnded
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// State is the simulation state of one session
type State struct {
	PlayerY   float64 // top edge of the player
	PlayerVY  float64
	Obstacles []Obstacle // spawn order, left to right
	Speed     float64
	Elapsed   float64 // frame units
	JumpsUsed int

	// LastSpawnX tracks where the most recent obstacle was spawned, scrolled
	// with the field so it stays valid after that obstacle is dropped
	LastSpawnX float64
	NextGap    float64
	Spawned    int

	Collided bool
}

// NewState returns the state at the start of a session
func NewState(cfg Config) *State {
	return &State{
		PlayerY:    cfg.GroundTop(),
		Speed:      cfg.InitialSpeed,
		LastSpawnX: cfg.FieldWidth,
	}
}

// Score is the whole number of frame units survived
func (s *State) Score() int {
	return int(s.Elapsed)
}

// Grounded reports whether the player is within epsilon of the ground
func (s *State) Grounded(cfg Config) bool {
	return s.PlayerY >= cfg.GroundTop()-cfg.GroundEpsilon
}

// Clone returns a deep copy safe to hand to a renderer
func (s *State) Clone() *State {
	c := *s
	c.Obstacles = append([]Obstacle(nil), s.Obstacles...)
	return &c
}
