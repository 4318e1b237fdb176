package input

import (
	"math"
	"testing"
)

func TestSamplerPressRelease(t *testing.T) {
	s := NewSampler()
	s.Press(ActionForward)
	s.Press(ActionJump)

	snap := s.Sample(0.01)
	if !snap.Forward || !snap.Jump {
		t.Errorf("Expected forward and jump held, got %+v", snap)
	}

	s.Release(ActionJump)
	snap = s.Sample(0.01)
	if !snap.Forward || snap.Jump {
		t.Errorf("Expected only forward held, got %+v", snap)
	}
}

func TestSamplerTapExpires(t *testing.T) {
	s := NewSampler()
	s.Tap(ActionLeft, 0.025)

	for i := 0; i < 3; i++ {
		if !s.Sample(0.01).Left {
			t.Fatalf("Expected tap held at sample %d", i)
		}
	}
	if s.Sample(0.01).Left {
		t.Error("Expected tap to expire after its hold span")
	}
}

func TestSamplerConsumesPointer(t *testing.T) {
	s := NewSampler()
	s.AddPointer(10, -4)
	s.AddPointer(5, 0)
	s.AddTouch(2, 2)

	first := s.Sample(0.01)
	if first.Pointer != (Look{15, -4}) || first.Touch != (Look{2, 2}) {
		t.Errorf("Expected accumulated deltas, got %+v %+v", first.Pointer, first.Touch)
	}
	second := s.Sample(0.01)
	if second.Pointer != (Look{}) || second.Touch != (Look{}) {
		t.Errorf("Expected deltas consumed, got %+v %+v", second.Pointer, second.Touch)
	}
}

func TestSamplerTriggerDuration(t *testing.T) {
	s := NewSampler()
	s.Press(ActionTrigger)
	var snap Snapshot
	for i := 0; i < 5; i++ {
		snap = s.Sample(0.01)
	}
	if !snap.Trigger || math.Abs(snap.TriggerHeld-0.05) > 1e-12 {
		t.Errorf("Expected trigger held 0.05s, got %+v", snap)
	}
	s.Release(ActionTrigger)
	snap = s.Sample(0.01)
	if snap.Trigger || snap.TriggerHeld != 0 {
		t.Errorf("Expected trigger released and duration reset, got %+v", snap)
	}
}

func TestSamplerIgnoresCommands(t *testing.T) {
	s := NewSampler()
	s.Press(ActionQuit)
	s.Tap(ActionPause, 1)
	if snap := s.Sample(0.01); snap != (Snapshot{}) {
		t.Errorf("Commands must not leak into snapshots, got %+v", snap)
	}
}

func TestKeyLookFeedsPointer(t *testing.T) {
	s := NewSampler()
	s.Press(ActionLookRight)
	snap := s.Sample(0.01)
	if snap.Pointer.DX <= 0 {
		t.Errorf("Expected positive pointer DX from look key, got %+v", snap.Pointer)
	}
}

func TestDefaultKeyTableLookup(t *testing.T) {
	kt := DefaultKeyTable()
	tests := []struct {
		r    rune
		want Action
	}{
		{'w', ActionForward},
		{'W', ActionForward},
		{'q', ActionQuit},
		{'z', ActionNone},
	}
	for _, tt := range tests {
		if got := kt.LookupRune(tt.r); got != tt.want {
			t.Errorf("Rune %q: expected %s, got %s", tt.r, tt.want, got)
		}
	}
	if got := kt.LookupNamed(KeySpace); got != ActionJump {
		t.Errorf("Expected space to jump, got %s", got)
	}
}

func TestLoadKeyConfigMerge(t *testing.T) {
	data := []byte(`
[keys]
z = "forward"
w = "none"
escape = "quit"
`)
	override, err := LoadKeyConfig(data)
	if err != nil {
		t.Fatalf("LoadKeyConfig failed: %v", err)
	}

	kt := DefaultKeyTable()
	kt.Merge(override)

	if kt.LookupRune('z') != ActionForward {
		t.Error("Expected z bound to forward")
	}
	if kt.LookupRune('w') != ActionNone {
		t.Error("Expected w unbound")
	}
	if kt.LookupNamed(KeyEscape) != ActionQuit {
		t.Error("Expected escape rebound to quit")
	}
}

func TestLoadKeyConfigErrors(t *testing.T) {
	if _, err := LoadKeyConfig([]byte("[keys]\nw = \"fly\"\n")); err == nil {
		t.Error("Expected error for unknown action")
	}
	if _, err := LoadKeyConfig([]byte("[keys]\nhyper = \"jump\"\n")); err == nil {
		t.Error("Expected error for unknown key name")
	}
}
