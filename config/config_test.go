package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.toml")
	body := `
[engine]
substeps = 8

[session]
duration = 30

[[level.boxes]]
min = [-5.0, -1.0, -5.0]
max = [5.0, 0.0, 5.0]
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Engine.Substeps != 8 {
		t.Errorf("Expected substeps 8, got %d", cfg.Engine.Substeps)
	}
	if cfg.Session.Duration != 30 {
		t.Errorf("Expected duration 30, got %d", cfg.Session.Duration)
	}
	if cfg.Player.JumpSpeed != Default().Player.JumpSpeed {
		t.Errorf("Untouched field should keep default, got %g", cfg.Player.JumpSpeed)
	}
	if len(cfg.Level.Boxes) != 1 || cfg.Level.Boxes[0].Max[0] != 5 {
		t.Errorf("Expected one level box, got %+v", cfg.Level.Boxes)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arena.toml")
	if err := os.WriteFile(path, []byte("[engine]\nsubstepz = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), "substepz") {
		t.Errorf("Expected error to name the key, got %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Engine.Substeps = 0
	cfg.Projectile.Restitution = 1.5
	cfg.Session.MaxAmmo = 0

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("Expected ErrInvalidConfig, got %v", err)
	}
	for _, want := range []string{"engine.substeps", "projectile.restitution", "session.max_ammo"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got %v", want, err)
		}
	}
}

func TestWriteThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "arena.toml")
	cfg := Default()
	cfg.Enemy.MaxAlive = 3
	if err := Write(path, cfg); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.Enemy.MaxAlive != 3 {
		t.Errorf("Expected max_alive 3, got %d", got.Enemy.MaxAlive)
	}
}
