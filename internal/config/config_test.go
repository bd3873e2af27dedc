package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTrexConfigMatchesEmbedded(t *testing.T) {
	// The embedded YAML and the hardcoded fallback must describe the same
	// game: a drifting default would silently change physics.
	fromEmbed, err := LoadTrex("")
	if err != nil {
		t.Fatalf("LoadTrex: %v", err)
	}

	if fromEmbed != DefaultTrexConfig() {
		t.Errorf("embedded default %+v differs from DefaultTrexConfig %+v", fromEmbed, DefaultTrexConfig())
	}
}

func TestLoadTrexCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trex.yaml")
	data := []byte("physics:\n  jump_peak: 30\n  jump_duration: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTrex(path)
	if err != nil {
		t.Fatalf("LoadTrex: %v", err)
	}

	if cfg.Physics.JumpPeak != 30 || cfg.Physics.JumpDuration != 20 {
		t.Errorf("custom config not applied: %+v", cfg.Physics)
	}
}

func TestLoadTrexPartialConfigKeepsDefaults(t *testing.T) {
	// A YAML that only names some keys must override exactly those; every
	// omitted duration and spawn range keeps its default instead of zeroing.
	path := filepath.Join(t.TempDir(), "trex.yaml")
	data := []byte("physics:\n  jump_peak: 30\n  jump_duration: 20\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadTrex(path)
	if err != nil {
		t.Fatalf("LoadTrex: %v", err)
	}

	def := DefaultTrexConfig()
	if cfg.Physics.CrouchJumpPeak != def.Physics.CrouchJumpPeak ||
		cfg.Physics.CrouchJumpDuration != def.Physics.CrouchJumpDuration {
		t.Errorf("omitted crouch physics zeroed: %+v", cfg.Physics)
	}
	if cfg.Obstacles != def.Obstacles {
		t.Errorf("omitted obstacle section zeroed: %+v", cfg.Obstacles)
	}
}

func TestLoadTrexMissingCustomPath(t *testing.T) {
	if _, err := LoadTrex(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config path")
	}
}
