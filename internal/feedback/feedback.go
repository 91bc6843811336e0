// Package feedback plays a short click when an action is pressed.
//
// Audio is optional. If the audio device cannot be opened the clicker
// stays silent and every call is a no-op.
package feedback

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	// DefaultFrequency is the click pitch in Hz.
	DefaultFrequency = 880.0

	// DefaultDuration is the click length.
	DefaultDuration = 30 * time.Millisecond
)

// Clicker plays clicks through the speaker.
type Clicker struct {
	mu       sync.Mutex
	open     bool
	freq     float64
	duration time.Duration
	logger   *slog.Logger

	// speaker hooks, replaced in tests
	play    func(beep.Streamer)
	init    func(beep.SampleRate, int) error
	closeFn func()
}

// Option configures a Clicker.
type Option func(*Clicker)

// WithFrequency sets the click pitch in Hz.
func WithFrequency(hz float64) Option {
	return func(c *Clicker) {
		if hz > 0 && hz < float64(sampleRate)/2 {
			c.freq = hz
		}
	}
}

// WithDuration sets the click length.
func WithDuration(d time.Duration) Option {
	return func(c *Clicker) {
		if d > 0 {
			c.duration = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Clicker) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates a closed Clicker. Call Open to start audio.
func New(opts ...Option) *Clicker {
	c := &Clicker{
		freq:     DefaultFrequency,
		duration: DefaultDuration,
		logger:   slog.New(slog.DiscardHandler),
		play:     func(s beep.Streamer) { speaker.Play(s) },
		init:     speaker.Init,
		closeFn:  speaker.Close,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Open initializes the speaker. On failure the clicker stays silent and
// the error is returned for the caller to report.
func (c *Clicker) Open() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.open {
		return nil
	}
	if err := c.init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		c.logger.Warn("audio unavailable, clicks disabled", "error", err)
		return fmt.Errorf("opening audio: %w", err)
	}
	c.open = true
	return nil
}

// IsOpen reports whether audio is available.
func (c *Clicker) IsOpen() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.open
}

// Click plays one click. It does nothing when audio is not open.
func (c *Clicker) Click() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return
	}
	tone, err := Tone(c.freq, c.duration)
	if err != nil {
		c.logger.Debug("click tone", "error", err)
		return
	}
	c.play(tone)
}

// Close releases the speaker. It is safe to call more than once.
func (c *Clicker) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.open {
		return
	}
	c.closeFn()
	c.open = false
}

// Tone returns a sine tone of the given pitch and length at half volume.
func Tone(freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(d), halve(sine)), nil
}

func halve(s beep.Streamer) beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			samples[i][0] *= 0.5
			samples[i][1] *= 0.5
		}
		return n, ok
	})
}
