package parameter

import "time"

// Audio Output
const (
	AudioSampleRate   = 48000
	AudioBufferLength = 100 * time.Millisecond
	AudioVolume       = 0.6
)

// Cue Tones
const (
	CueCollideFreq     = 660.0
	CueCollideDuration = 40 * time.Millisecond

	CuePlayerHitFreq     = 110.0
	CuePlayerHitDuration = 180 * time.Millisecond

	CueDefeatFreqLow    = 440.0
	CueDefeatFreqHigh   = 880.0
	CueDefeatStepLength = 60 * time.Millisecond

	CueThrowDuration = 70 * time.Millisecond

	CueAttack  = 5 * time.Millisecond
	CueRelease = 20 * time.Millisecond
)
