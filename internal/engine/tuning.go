package engine

// Play-field and physics tuning. Distances are play-field pixels, velocities
// are pixels per frame unit, one frame unit is 1/60 s.
const (
	FieldWidth        = 400.0
	FieldHeight       = 600.0
	GroundY           = 520.0
	PlayerSize        = 60.0
	PlayerX           = 40.0
	Gravity           = 1.2
	JumpVelocity      = -18.0 // y grows downward
	ObstacleMinWidth  = 40.0
	ObstacleMaxWidth  = 90.0
	ObstacleMinHeight = 40.0
	ObstacleMaxHeight = 120.0
	ObstacleMinGap    = 180.0
	ObstacleMaxGap    = 350.0
	InitialSpeed      = 4.0
	SpeedIncrement    = 0.3 * 0.01 // per frame unit
	CollisionMargin   = 20.0       // shrinks the player box on every side
	GroundEpsilon     = 2.0
	MaxJumps          = 2

	// FrameMillis is the length of one frame unit
	FrameMillis = 16.67

	// FramesPerSecond converts wall-clock seconds to frame units
	FramesPerSecond = 1000.0 / FrameMillis
)

// Config carries the tunables used by Step and ApplyJump
type Config struct {
	FieldWidth        float64
	FieldHeight       float64
	GroundY           float64
	PlayerSize        float64
	PlayerX           float64
	Gravity           float64
	JumpVelocity      float64
	ObstacleMinWidth  float64
	ObstacleMaxWidth  float64
	ObstacleMinHeight float64
	ObstacleMaxHeight float64
	ObstacleMinGap    float64
	ObstacleMaxGap    float64
	InitialSpeed      float64
	SpeedIncrement    float64
	CollisionMargin   float64
	GroundEpsilon     float64
	MaxJumps          int
}

// DefaultConfig returns the standard tuning
func DefaultConfig() Config {
	return Config{
		FieldWidth:        FieldWidth,
		FieldHeight:       FieldHeight,
		GroundY:           GroundY,
		PlayerSize:        PlayerSize,
		PlayerX:           PlayerX,
		Gravity:           Gravity,
		JumpVelocity:      JumpVelocity,
		ObstacleMinWidth:  ObstacleMinWidth,
		ObstacleMaxWidth:  ObstacleMaxWidth,
		ObstacleMinHeight: ObstacleMinHeight,
		ObstacleMaxHeight: ObstacleMaxHeight,
		ObstacleMinGap:    ObstacleMinGap,
		ObstacleMaxGap:    ObstacleMaxGap,
		InitialSpeed:      InitialSpeed,
		SpeedIncrement:    SpeedIncrement,
		CollisionMargin:   CollisionMargin,
		GroundEpsilon:     GroundEpsilon,
		MaxJumps:          MaxJumps,
	}
}

// GroundTop is the resting y of the player's top edge
func (c Config) GroundTop() float64 {
	return c.GroundY - c.PlayerSize
}
