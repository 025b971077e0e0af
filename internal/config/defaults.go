package config

import (
	_ "embed"
)

//go:embed defaults/spacemerge.yaml
var defaultMergeYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return append([]byte(nil), defaultMergeYAML...)
}

// DefaultMergeConfig is the hard-coded fallback used when even the embedded
// file cannot be parsed. It matches defaults/spacemerge.yaml.
func DefaultMergeConfig() MergeConfig {
	return MergeConfig{
		Field: FieldConfig{Width: 400, Height: 600},
		Physics: PhysicsConfig{
			Gravity:      0.5,
			WallDamping:  0.5,
			RestSpeed:    1.0,
			ReleaseSpeed: 5.0,
			MaxSpin:      0.01,
		},
		Tiers:     TierConfig{BaseRadius: 32, Growth: 1.2, MaxSizeRatio: 0.6},
		BlackHole: BlackHoleConfig{Range: 200, Strength: 0.5, Pulse: 0.1},
		Spawn: SpawnConfig{
			Y:        50,
			Margin:   30,
			MoveStep: 10,
			Pool:     3,
		},
		Scoring: ScoringConfig{MergeReward: 10},
		Collision: CollisionConfig{
			AlphaThreshold: 10,
			UnreadyMasks:   "ignore",
		},
		Difficulty: DifficultyConfig{
			Progression: ProgressionConfig{Type: "score", MaxAt: 1000},
			Scaling:     ScalingConfig{GravityMultiplier: 0.6},
		},
	}
}
