package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/DJG-inc/DodgeBallThreeJS/config"
	"github.com/DJG-inc/DodgeBallThreeJS/event"
)

const testRate = beep.SampleRate(8000)

// drain streams s to completion and returns the sample count
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 256)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || n == 0 {
			return total
		}
	}
}

func TestToneLength(t *testing.T) {
	want := testRate.N(50 * time.Millisecond)
	if n := drain(tone{freq: 440, length: 50 * time.Millisecond, gain: 1}.stream(testRate)); n != want {
		t.Errorf("Expected %d samples, got %d", want, n)
	}
	if n := drain(tone{noise: true, length: 50 * time.Millisecond, gain: 1}.stream(testRate)); n != want {
		t.Errorf("Expected %d noise samples, got %d", want, n)
	}
}

func TestUnplayableToneIsSilent(t *testing.T) {
	s := tone{freq: 0, length: 20 * time.Millisecond, gain: 1}.stream(testRate)
	buf := make([][2]float64, testRate.N(20*time.Millisecond))
	n, _ := s.Stream(buf)
	if n != len(buf) {
		t.Errorf("Expected %d samples, got %d", len(buf), n)
	}
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("Expected silence, got %f at %d", buf[i][0], i)
		}
	}
}

func TestFadeShapesEdges(t *testing.T) {
	total := testRate.N(100 * time.Millisecond)
	constant := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			samples[i] = [2]float64{1, 1}
		}
		return len(samples), true
	})
	f := &fade{
		src:     beep.Take(total, constant),
		total:   total,
		attack:  testRate.N(10 * time.Millisecond),
		release: testRate.N(10 * time.Millisecond),
		gain:    0.5,
	}

	buf := make([][2]float64, total)
	n, _ := f.Stream(buf)
	if n != total {
		t.Fatalf("Expected %d samples, got %d", total, n)
	}
	if buf[0][0] != 0 {
		t.Errorf("Expected silent first sample, got %f", buf[0][0])
	}
	if mid := buf[n/2][0]; mid != 0.5 {
		t.Errorf("Expected gain 0.5 mid-sustain, got %f", mid)
	}
	if buf[n-1][0] >= buf[n/2][0] {
		t.Errorf("Expected release fade, got %f at end", buf[n-1][0])
	}
}

func TestWhiteNoiseInRange(t *testing.T) {
	buf := make([][2]float64, 512)
	(&whiteNoise{seed: 7}).Stream(buf)
	varied := false
	for i := range buf {
		if buf[i][0] < -1 || buf[i][0] > 1 {
			t.Fatalf("Sample out of range: %f", buf[i][0])
		}
		if buf[i][0] != buf[0][0] {
			varied = true
		}
	}
	if !varied {
		t.Error("Expected varying noise samples")
	}
}

func TestCueMapping(t *testing.T) {
	s := newBeepSink(testRate, 0.5, 40)

	tests := []struct {
		ev    event.GameEvent
		audio bool
	}{
		{event.GameEvent{Type: event.EventProjectileCollided}, true},
		{event.GameEvent{Type: event.EventPlayerHit}, true},
		{event.GameEvent{Type: event.EventEnemyDefeated}, true},
		{event.GameEvent{Type: event.EventProjectileThrown, Payload: &event.ProjectileThrownPayload{Speed: 20}}, true},
		{event.GameEvent{Type: event.EventEnemySpawned}, false},
		{event.GameEvent{Type: event.EventGameOver}, false},
	}
	for _, tt := range tests {
		t.Run(tt.ev.Type.String(), func(t *testing.T) {
			c := s.Cue(tt.ev)
			if (c != nil) != tt.audio {
				t.Fatalf("Expected audible=%v, got cue %v", tt.audio, c)
			}
			if c != nil && drain(c) == 0 {
				t.Error("Expected cue to produce samples")
			}
		})
	}
}

func TestSinkQueuesAndMutes(t *testing.T) {
	s := newBeepSink(testRate, 0.5, 40)
	events := []event.GameEvent{
		{Type: event.EventProjectileCollided},
		{Type: event.EventEnemySpawned},
		{Type: event.EventEnemyDefeated},
	}

	s.Handle(events)
	if s.Pending() != 2 {
		t.Errorf("Expected 2 queued cues, got %d", s.Pending())
	}

	s.SetMuted(true)
	if s.Pending() != 0 {
		t.Errorf("Expected mute to drop queued cues, got %d", s.Pending())
	}
	s.Handle(events)
	if s.Pending() != 0 {
		t.Error("Muted sink queued cues")
	}
	s.Close()
}

func TestDisabledSinkIsNull(t *testing.T) {
	s := NewSink(config.AudioConfig{Enabled: false}, 40)
	if _, ok := s.(*NullSink); !ok {
		t.Fatalf("Expected NullSink, got %T", s)
	}
	s.Handle([]event.GameEvent{{Type: event.EventPlayerHit}})
	s.SetMuted(true)
	if !s.Muted() {
		t.Error("Expected mute flag stored")
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	v := masterVolume(&whiteNoise{seed: 1}, 0)
	buf := make([][2]float64, 16)
	n, _ := v.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("Expected silence, got %f", buf[i][0])
		}
	}
}
