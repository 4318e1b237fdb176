package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/DJG-inc/DodgeBallThreeJS/parameter"
)

// tone is one voice of a cue: a sine at freq, or white noise when noise is set
type tone struct {
	freq    float64
	length  time.Duration
	release time.Duration
	gain    float64
	noise   bool
}

// stream renders the tone for exactly length; an unplayable frequency yields silence of the same length
func (t tone) stream(rate beep.SampleRate) beep.Streamer {
	n := rate.N(t.length)
	var src beep.Streamer
	if t.noise {
		src = &whiteNoise{seed: 0x2545F491}
	} else if sine, err := generators.SineTone(rate, t.freq); err == nil && t.freq > 0 {
		src = sine
	} else {
		return beep.Silence(n)
	}
	return &fade{
		src:     beep.Take(n, src),
		total:   n,
		attack:  rate.N(parameter.CueAttack),
		release: rate.N(t.release),
		gain:    t.gain,
	}
}

// fade scales a finite stream by a fixed gain with linear attack and release ramps
type fade struct {
	src     beep.Streamer
	pos     int
	total   int
	attack  int
	release int
	gain    float64
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.src.Stream(samples)
	for i := 0; i < n; i++ {
		g := f.gain
		if f.attack > 0 && f.pos < f.attack {
			g *= float64(f.pos) / float64(f.attack)
		}
		if left := f.total - f.pos; f.release > 0 && left < f.release {
			g *= float64(max(left, 0)) / float64(f.release)
		}
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.src.Err() }

// whiteNoise is an endless LCG noise source; fixed seed keeps cues reproducible
type whiteNoise struct {
	seed uint32
}

func (w *whiteNoise) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		w.seed = w.seed*1664525 + 1013904223
		v := float64(w.seed)/float64(math.MaxUint32)*2 - 1
		samples[i][0] = v
		samples[i][1] = v
	}
	return len(samples), true
}

func (w *whiteNoise) Err() error { return nil }

// masterVolume applies the sink level; zero or below is silent since log2(0) is -Inf
func masterVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// cue plays voices back to back at the sink volume
func cue(rate beep.SampleRate, vol float64, voices ...tone) beep.Streamer {
	parts := make([]beep.Streamer, len(voices))
	for i, v := range voices {
		parts[i] = v.stream(rate)
	}
	return masterVolume(beep.Seq(parts...), vol)
}

// CreateCollideCue is a short tick for a ball striking the world or a body
func CreateCollideCue(rate beep.SampleRate, vol float64) beep.Streamer {
	return cue(rate, vol, tone{
		freq:    parameter.CueCollideFreq,
		length:  parameter.CueCollideDuration,
		release: parameter.CueRelease,
		gain:    0.5,
	})
}

// CreatePlayerHitCue is a low thud with a long tail
func CreatePlayerHitCue(rate beep.SampleRate, vol float64) beep.Streamer {
	return cue(rate, vol, tone{
		freq:    parameter.CuePlayerHitFreq,
		length:  parameter.CuePlayerHitDuration,
		release: parameter.CuePlayerHitDuration / 2,
		gain:    1,
	})
}

// CreateDefeatCue is a rising two-note chime
func CreateDefeatCue(rate beep.SampleRate, vol float64) beep.Streamer {
	step := parameter.CueDefeatStepLength
	return cue(rate, vol,
		tone{freq: parameter.CueDefeatFreqLow, length: step, release: parameter.CueRelease, gain: 1},
		tone{freq: parameter.CueDefeatFreqHigh, length: step, release: parameter.CueRelease, gain: 1},
	)
}

// CreateThrowCue is a noise whoosh; louder for faster throws
func CreateThrowCue(rate beep.SampleRate, vol, speedFrac float64) beep.Streamer {
	return cue(rate, vol, tone{
		noise:   true,
		length:  parameter.CueThrowDuration,
		release: parameter.CueThrowDuration - parameter.CueAttack,
		gain:    0.2 + 0.3*speedFrac,
	})
}
