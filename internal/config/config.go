// Package config loads Space Merge tuning from YAML, applies difficulty
// presets and watches config files for edits.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/space-merge/internal/sim"
)

// MergeConfig is the on-disk configuration.
type MergeConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Tiers      TierConfig       `yaml:"tiers"`
	BlackHole  BlackHoleConfig  `yaml:"black_hole"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Collision  CollisionConfig  `yaml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig is the play area size in simulation units.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig holds per-frame motion constants.
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"`
	WallDamping  float64 `yaml:"wall_damping"`
	RestSpeed    float64 `yaml:"rest_speed"`
	ReleaseSpeed float64 `yaml:"release_speed"`
	MaxSpin      float64 `yaml:"max_spin"`
}

// TierConfig controls radius growth.
type TierConfig struct {
	BaseRadius   float64 `yaml:"base_radius"`
	Growth       float64 `yaml:"growth"`
	MaxSizeRatio float64 `yaml:"max_size_ratio"`
}

// BlackHoleConfig tunes the terminal tier's pull and pulse.
type BlackHoleConfig struct {
	Range    float64 `yaml:"range"`
	Strength float64 `yaml:"strength"`
	Pulse    float64 `yaml:"pulse"`
}

// SpawnConfig controls where drops appear and what they can be.
type SpawnConfig struct {
	X        float64 `yaml:"x"` // 0 centers the spawn point
	Y        float64 `yaml:"y"`
	Margin   float64 `yaml:"margin"`
	MoveStep float64 `yaml:"move_step"` // Aim movement per key press
	Pool     int     `yaml:"pool"`      // Drops are drawn from the first Pool tiers
}

// ScoringConfig holds point rewards.
type ScoringConfig struct {
	MergeReward int `yaml:"merge_reward"`
}

// CollisionConfig selects the collision mode.
type CollisionConfig struct {
	PixelPerfect   bool   `yaml:"pixel_perfect"`
	AlphaThreshold uint8  `yaml:"alpha_threshold"`
	UnreadyMasks   string `yaml:"unready_masks"` // "ignore" or "circle"
}

// DifficultyConfig defines how the game speeds up.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines what drives the difficulty level.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or ticks at which the level reaches 1
}

// ScalingConfig defines how much the level changes the physics.
type ScalingConfig struct {
	GravityMultiplier float64 `yaml:"gravity_multiplier"` // Extra gravity fraction at level 1
}

// DifficultyPreset is a named difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned for preset names outside the known set.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset validates a preset name. The empty string means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
}

// InitialLevelForPreset returns the starting level of a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ApplyPreset turns progression on or off according to preset.
func (c *MergeConfig) ApplyPreset(preset DifficultyPreset) {
	if preset == DifficultyFixed {
		c.Difficulty.Enabled = false
		return
	}
	c.Difficulty.Enabled = true
	c.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}

// Validate rejects configurations the simulation cannot run with.
func (c MergeConfig) Validate() error {
	switch {
	case c.Field.Width <= 0 || c.Field.Height <= 0:
		return fmt.Errorf("config: field must be positive, got %vx%v", c.Field.Width, c.Field.Height)
	case c.Tiers.BaseRadius <= 0 || c.Tiers.Growth <= 0:
		return fmt.Errorf("config: tiers need a positive base_radius and growth")
	case 2*c.Spawn.Margin >= c.Field.Width:
		return fmt.Errorf("config: spawn margin %v leaves no room to aim", c.Spawn.Margin)
	case c.Spawn.Pool < 1 || c.Spawn.Pool > sim.TierCount:
		return fmt.Errorf("config: spawn pool must be between 1 and %d, got %d", sim.TierCount, c.Spawn.Pool)
	}
	if _, err := sim.ParseUnreadyPolicy(c.Collision.UnreadyMasks); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// SimConfig converts the file format into simulation parameters. It assumes
// Validate has passed; an unknown unready policy falls back to "ignore".
func (c MergeConfig) SimConfig() sim.Config {
	policy, _ := sim.ParseUnreadyPolicy(c.Collision.UnreadyMasks)
	return sim.Config{
		Field: sim.Field{W: c.Field.Width, H: c.Field.Height},
		Tiers: sim.TierScale{
			BaseRadius:   c.Tiers.BaseRadius,
			Growth:       c.Tiers.Growth,
			MaxSizeRatio: c.Tiers.MaxSizeRatio,
		},
		Gravity:      c.Physics.Gravity,
		WallDamping:  c.Physics.WallDamping,
		RestSpeed:    c.Physics.RestSpeed,
		ReleaseSpeed: c.Physics.ReleaseSpeed,
		MaxSpin:      c.Physics.MaxSpin,
		Attraction: sim.Attraction{
			Range:    c.BlackHole.Range,
			Strength: c.BlackHole.Strength,
			Pulse:    c.BlackHole.Pulse,
		},
		Spawn:       sim.Spawn{X: c.Spawn.X, Y: c.Spawn.Y, Margin: c.Spawn.Margin},
		MergeReward: c.Scoring.MergeReward,
		Collision: sim.Detector{
			PixelPerfect:   c.Collision.PixelPerfect,
			AlphaThreshold: c.Collision.AlphaThreshold,
			Unready:        policy,
		},
	}
}
