package sim

// Spawn describes where new drops appear and how far the aim may move.
type Spawn struct {
	X, Y   float64 // X <= 0 means the field's horizontal center
	Margin float64 // Minimum distance between the aim and either wall
}

// Config holds every tunable of the simulation. Units are field units and
// frames at 60 Hz.
type Config struct {
	Field        Field
	Tiers        TierScale
	Gravity      float64
	WallDamping  float64
	RestSpeed    float64
	ReleaseSpeed float64 // Downward speed given on release
	MaxSpin      float64 // Spin is drawn uniformly from [-MaxSpin, MaxSpin)
	Attraction   Attraction
	Spawn        Spawn
	MergeReward  int
	Collision    Detector
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Field:        Field{W: 400, H: 600},
		Tiers:        TierScale{BaseRadius: 32, Growth: 1.2, MaxSizeRatio: 0.6},
		Gravity:      0.5,
		WallDamping:  0.5,
		RestSpeed:    1,
		ReleaseSpeed: 5,
		MaxSpin:      0.01,
		Attraction:   Attraction{Range: 200, Strength: 0.5, Pulse: 0.1},
		Spawn:        Spawn{Y: 50, Margin: 30},
		MergeReward:  10,
		Collision:    Detector{AlphaThreshold: 10},
	}
}

func (c Config) spawnX() float64 {
	if c.Spawn.X > 0 {
		return c.Spawn.X
	}
	return c.Field.W / 2
}

func (c Config) integrator() Integrator {
	return Integrator{
		Field:       c.Field,
		Gravity:     c.Gravity,
		WallDamping: c.WallDamping,
		RestSpeed:   c.RestSpeed,
		Attraction:  c.Attraction,
	}
}
