package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// DefaultSampleRate is used for synthesised cues and for the speaker.
const DefaultSampleRate = beep.SampleRate(44100)

// waveShape selects an oscillator waveform.
type waveShape int

const (
	waveSine waveShape = iota
	waveSquare
)

// note is one pitched segment of a cue.
type note struct {
	freq    float64 // 0 = rest
	dur     time.Duration
	shape   waveShape
	attack  time.Duration
	release time.Duration
}

// cueNotes are the built-in recipes used when no WAV directory is configured.
var cueNotes = [cueCount][]note{
	CueWaiting: {
		{freq: 440, dur: 180 * time.Millisecond, shape: waveSine, attack: 10 * time.Millisecond, release: 120 * time.Millisecond},
		{freq: 659.25, dur: 260 * time.Millisecond, shape: waveSine, attack: 10 * time.Millisecond, release: 200 * time.Millisecond},
		{dur: 600 * time.Millisecond},
	},
	CueGameStart: {
		{freq: 523.25, dur: 90 * time.Millisecond, shape: waveSquare, attack: 5 * time.Millisecond, release: 30 * time.Millisecond},
		{freq: 659.25, dur: 90 * time.Millisecond, shape: waveSquare, attack: 5 * time.Millisecond, release: 30 * time.Millisecond},
		{freq: 783.99, dur: 90 * time.Millisecond, shape: waveSquare, attack: 5 * time.Millisecond, release: 30 * time.Millisecond},
		{freq: 1046.5, dur: 200 * time.Millisecond, shape: waveSquare, attack: 5 * time.Millisecond, release: 150 * time.Millisecond},
	},
	CueCollision: {
		{freq: 880, dur: 45 * time.Millisecond, shape: waveSquare, attack: 2 * time.Millisecond, release: 25 * time.Millisecond},
	},
	CueScore: {
		{freq: 659.25, dur: 110 * time.Millisecond, shape: waveSine, attack: 5 * time.Millisecond, release: 40 * time.Millisecond},
		{freq: 440, dur: 220 * time.Millisecond, shape: waveSine, attack: 5 * time.Millisecond, release: 160 * time.Millisecond},
	},
}

// Synthesize builds the built-in sound for c at sample rate sr. The stream
// is finite; it ends after the last note.
func Synthesize(c Cue, sr beep.SampleRate) beep.Streamer {
	if c < 0 || c >= cueCount {
		return beep.Silence(0)
	}
	notes := cueNotes[c]
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, n.streamer(sr))
	}
	return beep.Seq(parts...)
}

// cueDuration is the total length of a built-in cue.
func cueDuration(c Cue) time.Duration {
	var d time.Duration
	for _, n := range cueNotes[c] {
		d += n.dur
	}
	return d
}

func (n note) streamer(sr beep.SampleRate) beep.Streamer {
	samples := sr.N(n.dur)
	if n.freq <= 0 {
		return beep.Silence(samples)
	}
	var osc beep.Streamer
	switch n.shape {
	case waveSquare:
		osc = &squareWave{freq: n.freq, rate: sr}
	default:
		sine, err := generators.SineTone(sr, n.freq)
		if err != nil {
			// Only fails above the Nyquist frequency.
			return beep.Silence(samples)
		}
		osc = sine
	}
	shaped := newEnvelope(beep.Take(samples, osc), n.dur, n.attack, n.release, sr)
	return newVolume(shaped, 0.4)
}

// squareWave is an endless square oscillator.
type squareWave struct {
	freq  float64
	phase float64
	rate  beep.SampleRate
}

func (o *squareWave) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		val := -1.0
		if o.phase < 0.5 {
			val = 1.0
		}
		samples[i][0] = val
		samples[i][1] = val
		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
	}
	return len(samples), true
}

func (o *squareWave) Err() error { return nil }

// envelope applies linear attack and release ramps to a stream.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
			if vol < 0 {
				vol = 0
			}
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is
// mapped to silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
