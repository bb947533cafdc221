package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/lixenwraith/matrix-rain/constants"
	"github.com/lixenwraith/matrix-rain/render"
)

const (
	sampleRate = beep.SampleRate(constants.CueSampleRate)
	cueVolume  = 0.25
)

var hueFrequencies = map[render.Hue]float64{
	render.HueRed:   constants.CueFreqRed,
	render.HueGreen: constants.CueFreqGreen,
	render.HueBlue:  constants.CueFreqBlue,
}

// CuePlayer plays short tones for hue changes and pause toggles.
// All methods are no-ops until Initialize succeeds.
type CuePlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewCuePlayer creates an uninitialized player
func NewCuePlayer() *CuePlayer {
	return &CuePlayer{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker and starts the mixer
func (p *CuePlayer) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(constants.CueBufferDuration)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences pending cues and closes the speaker
func (p *CuePlayer) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// PlayHue plays the tone assigned to a hue
func (p *CuePlayer) PlayHue(hue render.Hue) {
	p.play(hueFrequencies[hue], constants.HueCueDuration)
}

// PlayPause plays a low tone when pausing and a higher one when resuming
func (p *CuePlayer) PlayPause(paused bool) {
	freq := constants.CueFreqResume
	if paused {
		freq = constants.CueFreqPause
	}
	p.play(freq, constants.PauseCueDuration)
}

func (p *CuePlayer) play(freq float64, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || freq <= 0 {
		return
	}

	tone, err := NewCueTone(sampleRate, freq, d)
	if err != nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

// NewCueTone returns a sine tone of length d with a linear fade-out
func NewCueTone(sr beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return nil, err
	}
	total := sr.N(d)
	return &fadeOut{
		streamer: beep.Take(total, sine),
		total:    total,
		gain:     cueVolume,
	}, nil
}

// fadeOut scales samples from gain down to zero over total samples
type fadeOut struct {
	streamer beep.Streamer
	total    int
	pos      int
	gain     float64
}

func (f *fadeOut) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		env := f.gain
		if f.total > 0 {
			env *= 1 - float64(f.pos)/float64(f.total)
		}
		samples[i][0] *= env
		samples[i][1] *= env
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error {
	return f.streamer.Err()
}
