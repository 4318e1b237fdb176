package engine

import (
	"testing"

	"github.com/DJG-inc/DodgeBallThreeJS/config"
)

func newTestSession() *Session {
	cfg := config.Default()
	return NewSession(cfg.Session, cfg.Difficulty)
}

func TestSessionInitialization(t *testing.T) {
	s := newTestSession()
	cfg := config.Default().Session

	if !s.Playing() {
		t.Errorf("Expected Playing, got %s", s.Status)
	}
	if s.Score != 0 {
		t.Errorf("Expected score 0, got %d", s.Score)
	}
	if s.TimeRemaining != cfg.Duration {
		t.Errorf("Expected time %d, got %d", cfg.Duration, s.TimeRemaining)
	}
	if s.Ammo != cfg.MaxAmmo {
		t.Errorf("Expected full ammo %d, got %d", cfg.MaxAmmo, s.Ammo)
	}
	if !s.LockOn.IsNone() {
		t.Error("Expected no lock-on")
	}
}

func TestTickToGameOver(t *testing.T) {
	s := newTestSession()
	s.TimeRemaining = 1

	if !s.Tick1Hz() {
		t.Fatal("Expected the final tick to report game over")
	}
	if !s.GameOver() || s.TimeRemaining != 0 {
		t.Errorf("Expected GameOver with 0 remaining, got %s with %d", s.Status, s.TimeRemaining)
	}

	for i := 0; i < 3; i++ {
		if s.Tick1Hz() {
			t.Error("Further ticks must not report game over again")
		}
	}
	if s.TimeRemaining != 0 || !s.GameOver() {
		t.Errorf("Further ticks must be no-ops, got %s with %d", s.Status, s.TimeRemaining)
	}

	if s.Resume() {
		t.Error("Resume must not leave GameOver")
	}
	s.Reset()
	if !s.Playing() || s.TimeRemaining != config.Default().Session.Duration {
		t.Errorf("Expected reset to restore Playing, got %s with %d", s.Status, s.TimeRemaining)
	}
}

func TestTickIgnoredWhilePaused(t *testing.T) {
	s := newTestSession()
	before := s.TimeRemaining
	s.Pause()
	s.Tick1Hz()
	if s.TimeRemaining != before {
		t.Errorf("Expected time frozen while paused, got %d", s.TimeRemaining)
	}
}

func TestPauseTransitions(t *testing.T) {
	s := newTestSession()
	if !s.Pause() || !s.Paused() {
		t.Fatal("Expected Playing -> Paused")
	}
	if s.Pause() {
		t.Error("Second pause must not change state")
	}
	if !s.Resume() || !s.Playing() {
		t.Error("Expected Paused -> Playing")
	}
}

func TestScoreNeverNegative(t *testing.T) {
	s := newTestSession()
	s.AddScore(7)
	for i := 0; i < 5; i++ {
		s.Penalize(5)
		if s.Score < 0 {
			t.Fatalf("Score went negative: %d", s.Score)
		}
	}
	if s.Score != 0 {
		t.Errorf("Expected score floored at 0, got %d", s.Score)
	}
}

func TestChargeClamped(t *testing.T) {
	s := newTestSession()
	if !s.BeginCharge() {
		t.Fatal("Expected charge to begin")
	}
	for i := 0; i < 100; i++ {
		s.AccumulateCharge(0.05)
		if s.Charge < 0 || s.Charge > s.ChargeMax() {
			t.Fatalf("Charge out of range: %f", s.Charge)
		}
	}
	if s.Charge != s.ChargeMax() {
		t.Errorf("Expected charge at max, got %f", s.Charge)
	}

	level, fire := s.ReleaseCharge()
	if !fire || level != s.ChargeMax() {
		t.Errorf("Expected fire at full charge, got fire=%v level=%f", fire, level)
	}
	if s.Charge != 0 || s.Charging {
		t.Errorf("Expected charge reset, got %f charging=%v", s.Charge, s.Charging)
	}
	if s.Ammo != s.MaxAmmo()-1 {
		t.Errorf("Expected ammo decremented, got %d", s.Ammo)
	}
}

func TestReleaseWithoutAmmo(t *testing.T) {
	s := newTestSession()
	s.BeginCharge()
	s.AccumulateCharge(0.3)
	s.Ammo = 0

	_, fire := s.ReleaseCharge()
	if fire {
		t.Error("Release with zero ammo must not fire")
	}
	if s.Ammo != 0 {
		t.Errorf("Expected ammo unchanged at 0, got %d", s.Ammo)
	}
	if s.Charge != 0 {
		t.Errorf("Expected charge reset, got %f", s.Charge)
	}
	if s.BeginCharge() {
		t.Error("BeginCharge must be gated on ammo")
	}
}

func TestChargeGatedOnPlaying(t *testing.T) {
	s := newTestSession()
	s.Pause()
	if s.BeginCharge() {
		t.Error("BeginCharge must be gated on Playing")
	}
}

func TestAmmoClamped(t *testing.T) {
	s := newTestSession()
	if got := s.AddAmmo(10); got != s.MaxAmmo() {
		t.Errorf("Expected ammo clamped at %d, got %d", s.MaxAmmo(), got)
	}
	if got := s.AddAmmo(-100); got != 0 {
		t.Errorf("Expected ammo clamped at 0, got %d", got)
	}
}

func TestLockOnDrop(t *testing.T) {
	s := newTestSession()
	s.SetLockOn(4)
	s.DropLockOn(5)
	if s.LockOn.ID != 4 {
		t.Error("Dropping another enemy must keep lock-on")
	}
	s.DropLockOn(4)
	if !s.LockOn.IsNone() {
		t.Error("Expected lock-on cleared")
	}
}

func TestDifficultyMonotonicAndBounded(t *testing.T) {
	cfg := config.Default().Difficulty
	prev := ComputeDifficulty(cfg, 0)
	for elapsed := 1.0; elapsed < 2000; elapsed += 7 {
		d := ComputeDifficulty(cfg, elapsed)
		if d.SpawnInterval > prev.SpawnInterval || d.DodgeCooldown > prev.DodgeCooldown {
			t.Fatalf("Decreasing quantity rose at %f", elapsed)
		}
		if d.DodgeSpeed < prev.DodgeSpeed || d.MoveSpeed < prev.MoveSpeed {
			t.Fatalf("Increasing quantity fell at %f", elapsed)
		}
		if d.SpawnInterval < cfg.SpawnIntervalMin || d.DodgeCooldown < cfg.DodgeCooldownMin {
			t.Fatalf("Floor violated at %f: %+v", elapsed, d)
		}
		if d.DodgeSpeed > cfg.DodgeSpeedMax || d.MoveSpeed > cfg.MoveSpeedMax {
			t.Fatalf("Cap violated at %f: %+v", elapsed, d)
		}
		prev = d
	}
	if prev.SpawnInterval != cfg.SpawnIntervalMin {
		t.Errorf("Expected spawn interval at floor after long play, got %f", prev.SpawnInterval)
	}
}

func TestSessionAdvanceUpdatesDifficulty(t *testing.T) {
	s := newTestSession()
	step := config.Default().Difficulty.Step
	s.Advance(step + 0.1)
	if s.Difficulty.Level != 1 {
		t.Errorf("Expected level 1, got %d", s.Difficulty.Level)
	}
	s.Reset()
	if s.Difficulty.Level != 0 || s.Elapsed != 0 {
		t.Errorf("Expected reset difficulty, got level %d elapsed %f", s.Difficulty.Level, s.Elapsed)
	}
}
