// Package config provides YAML-based game configuration loading for the
// arcade platform.
package config

// TrexConfig contains all tuning for the T-Rex runner game.
type TrexConfig struct {
	Physics   TrexPhysics   `yaml:"physics"`
	Obstacles TrexObstacles `yaml:"obstacles"`
}

// TrexPhysics defines the jump arcs. Peaks are in pixels, durations in ticks.
// A crouched jump is lower and shorter than a standing one.
type TrexPhysics struct {
	JumpPeak           int `yaml:"jump_peak"`
	JumpDuration       int `yaml:"jump_duration"`
	CrouchJumpPeak     int `yaml:"crouch_jump_peak"`
	CrouchJumpDuration int `yaml:"crouch_jump_duration"`
}

// TrexObstacles defines spawn and motion parameters for obstacles.
// Speeds are pixels per tick toward the player; spawn ticks bound the
// countdown redraw range [min, max); DespawnX is the off-screen threshold
// past which the front obstacle is removed.
type TrexObstacles struct {
	CactusSpeed   int `yaml:"cactus_speed"`
	BirdMinSpeed  int `yaml:"bird_min_speed"`
	BirdMaxSpeed  int `yaml:"bird_max_speed"`
	BirdMinY      int `yaml:"bird_min_y"`
	BirdMaxY      int `yaml:"bird_max_y"`
	SpawnMinTicks int `yaml:"spawn_min_ticks"`
	SpawnMaxTicks int `yaml:"spawn_max_ticks"`
	GraceTicks    int `yaml:"grace_ticks"` // only ground obstacles this early
	DespawnX      int `yaml:"despawn_x"`
}
