package config

import (
	_ "embed"
)

//go:embed defaults/trex.yaml
var defaultTrexYAML []byte

// DefaultTrexConfig returns the default T-Rex runner configuration.
func DefaultTrexConfig() TrexConfig {
	return TrexConfig{
		Physics: TrexPhysics{
			JumpPeak:           25,
			JumpDuration:       22,
			CrouchJumpPeak:     6,
			CrouchJumpDuration: 8,
		},
		Obstacles: TrexObstacles{
			CactusSpeed:   3,
			BirdMinSpeed:  4,
			BirdMaxSpeed:  7,
			BirdMinY:      1,
			BirdMaxY:      20,
			SpawnMinTicks: 10,
			SpawnMaxTicks: 50,
			GraceTicks:    100,
			DespawnX:      -32,
		},
	}
}
