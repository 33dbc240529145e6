// Package chime plays a short synthesized bell when the tree toggles.
package chime

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/phanxgames/arix"
)

const sampleRate = beep.SampleRate(48000)

const (
	bellDuration = 1200 * time.Millisecond
	bellAttack   = 5 * time.Millisecond
	bellDecay    = 350 * time.Millisecond
	bellRelease  = 150 * time.Millisecond

	// Bell partials are inharmonic; 2.76 is the classic minor-third hum ratio.
	overtoneRatio = 2.76
)

// Fundamentals per state: E6 when assembling, E5 when scattering.
var fundamentals = map[arix.TreeState]float64{
	arix.StateTreeShape: 1318.51,
	arix.StateScattered: 659.25,
}

// Player mixes bell sounds into the system speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player at the given linear volume (1 is unity).
func NewPlayer(volume float64) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: volume}
}

// Initialize opens the speaker. Calling it twice is harmless.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues a bell for state. It does nothing before Initialize.
func (p *Player) Play(state arix.TreeState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	s := Bell(state, p.volume, sampleRate)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close silences every queued sound.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Bell builds the chime for state: a fundamental and one overtone, each with
// a fast attack and an exponential decay.
func Bell(state arix.TreeState, volume float64, rate beep.SampleRate) beep.Streamer {
	f := fundamentals[state]

	fund := newEnvelope(newSine(f, bellDuration, rate), bellDuration, bellDecay, rate)
	over := newEnvelope(newSine(f*overtoneRatio, bellDuration, rate), bellDuration, bellDecay/2, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(beep.Take(rate.N(bellDuration), mixed), volume)
}

// sine is a fixed-length sine oscillator.
type sine struct {
	freq     float64
	phase    float64
	rate     beep.SampleRate
	position int
	total    int
}

func newSine(freq float64, d time.Duration, rate beep.SampleRate) *sine {
	return &sine{freq: freq, rate: rate, total: rate.N(d)}
}

func (o *sine) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}
		v := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = v
		samples[i][1] = v

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *sine) Err() error { return nil }

// envelope applies a linear attack, exponential decay, and a linear release
// to zero over the last bellRelease of the sound.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
	decay    float64 // samples per e-fold
}

func newEnvelope(s beep.Streamer, d, decay time.Duration, rate beep.SampleRate) *envelope {
	return &envelope{
		streamer: s,
		attack:   rate.N(bellAttack),
		release:  rate.N(bellRelease),
		total:    rate.N(d),
		decay:    float64(rate.N(decay)),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := e.gain(e.position)
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) gain(pos int) float64 {
	if pos < e.attack {
		return float64(pos) / float64(e.attack)
	}
	vol := math.Exp(-float64(pos-e.attack) / e.decay)
	if start := e.total - e.release; pos >= start && e.release > 0 {
		vol *= float64(e.total-pos) / float64(e.release)
	}
	return vol
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly. math.Log2(0) is -Inf, so zero is silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
