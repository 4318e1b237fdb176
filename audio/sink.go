package audio

import (
	"fmt"
	"log"
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/DJG-inc/DodgeBallThreeJS/config"
	"github.com/DJG-inc/DodgeBallThreeJS/event"
	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
	"github.com/DJG-inc/DodgeBallThreeJS/vmath"
)

// Sink consumes drained core events once per frame; playback is fire-and-forget
type Sink interface {
	Handle(events []event.GameEvent)
	SetMuted(muted bool)
	Muted() bool
	Close()
}

// NullSink discards everything; used when audio is disabled or no device is available
type NullSink struct {
	muted atomic.Bool
}

func (*NullSink) Handle([]event.GameEvent) {}
func (s *NullSink) SetMuted(m bool)        { s.muted.Store(m) }
func (s *NullSink) Muted() bool            { return s.muted.Load() }
func (*NullSink) Close()                   {}

// BeepSink synthesizes cues into a beep mixer played by the speaker
type BeepSink struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	maxSpd float64

	muted   atomic.Bool
	started bool // Speaker owns the mixer; mutations need the speaker lock
}

// NewSink opens the speaker when audio is enabled
// Failure to open the device degrades to a NullSink; audio is never fatal
func NewSink(cfg config.AudioConfig, maxThrowSpeed float64) Sink {
	if !cfg.Enabled {
		return &NullSink{}
	}
	s := newBeepSink(beep.SampleRate(parameter.AudioSampleRate), cfg.Volume, maxThrowSpeed)
	if err := s.start(); err != nil {
		log.Printf("audio disabled: %v", err)
		return &NullSink{}
	}
	return s
}

func newBeepSink(rate beep.SampleRate, volume, maxThrowSpeed float64) *BeepSink {
	return &BeepSink{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: volume,
		maxSpd: maxThrowSpeed,
	}
}

func (s *BeepSink) start() error {
	if err := speaker.Init(s.rate, s.rate.N(parameter.AudioBufferLength)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	speaker.Play(s.mixer)
	s.mu.Lock()
	s.started = true
	s.mu.Unlock()
	return nil
}

// Cue maps a core event to its sound; nil for events without one
func (s *BeepSink) Cue(ev event.GameEvent) beep.Streamer {
	switch ev.Type {
	case event.EventProjectileCollided:
		return CreateCollideCue(s.rate, s.volume)
	case event.EventPlayerHit:
		return CreatePlayerHitCue(s.rate, s.volume)
	case event.EventEnemyDefeated:
		return CreateDefeatCue(s.rate, s.volume)
	case event.EventProjectileThrown:
		frac := 0.5
		if p, ok := ev.Payload.(*event.ProjectileThrownPayload); ok && s.maxSpd > 0 {
			frac = vmath.Clamp(p.Speed/s.maxSpd, 0, 1)
		}
		return CreateThrowCue(s.rate, s.volume, frac)
	}
	return nil
}

// Handle queues a cue per audible event; muted sinks drop events without synthesizing
func (s *BeepSink) Handle(events []event.GameEvent) {
	if s.muted.Load() || len(events) == 0 {
		return
	}
	var cues []beep.Streamer
	for _, ev := range events {
		if c := s.Cue(ev); c != nil {
			cues = append(cues, c)
		}
	}
	if len(cues) == 0 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	s.mixer.Add(cues...)
}

// Pending is the number of cues still playing
func (s *BeepSink) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	return s.mixer.Len()
}

// SetMuted silences the sink and drops cues already queued
func (s *BeepSink) SetMuted(muted bool) {
	s.muted.Store(muted)
	if muted {
		s.clear()
	}
}

func (s *BeepSink) Muted() bool {
	return s.muted.Load()
}

func (s *BeepSink) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		speaker.Lock()
		defer speaker.Unlock()
	}
	s.mixer.Clear()
}

// Close stops playback; beep has no speaker shutdown, so the mixer is emptied
func (s *BeepSink) Close() {
	s.clear()
	s.mu.Lock()
	started := s.started
	s.started = false
	s.mu.Unlock()
	if started {
		speaker.Clear()
	}
}
