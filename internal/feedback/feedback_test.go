package feedback

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClicker(initErr error) (*Clicker, *[]beep.Streamer, *int) {
	var played []beep.Streamer
	closed := 0
	c := New(WithDuration(10 * time.Millisecond))
	c.init = func(beep.SampleRate, int) error { return initErr }
	c.play = func(s beep.Streamer) { played = append(played, s) }
	c.closeFn = func() { closed++ }
	return c, &played, &closed
}

func TestClickRequiresOpen(t *testing.T) {
	c, played, _ := newTestClicker(nil)

	c.Click()
	assert.Empty(t, *played)

	require.NoError(t, c.Open())
	require.NoError(t, c.Open())
	assert.True(t, c.IsOpen())
	c.Click()
	assert.Len(t, *played, 1)
}

func TestOpenFailureIsSilent(t *testing.T) {
	c, played, closed := newTestClicker(errors.New("no device"))

	err := c.Open()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no device")
	assert.False(t, c.IsOpen())

	c.Click()
	c.Close()
	assert.Empty(t, *played)
	assert.Zero(t, *closed)
}

func TestCloseOnce(t *testing.T) {
	c, _, closed := newTestClicker(nil)
	require.NoError(t, c.Open())

	c.Close()
	c.Close()
	assert.Equal(t, 1, *closed)
	assert.False(t, c.IsOpen())
}

func TestTone(t *testing.T) {
	tone, err := Tone(440, 10*time.Millisecond)
	require.NoError(t, err)

	buf := make([][2]float64, 1024)
	total := 0
	for {
		n, ok := tone.Stream(buf)
		for _, s := range buf[:n] {
			assert.LessOrEqual(t, s[0], 0.5)
			assert.GreaterOrEqual(t, s[0], -0.5)
		}
		total += n
		if !ok {
			break
		}
	}
	assert.Equal(t, sampleRate.N(10*time.Millisecond), total)

	_, err = Tone(30000, time.Millisecond)
	assert.Error(t, err)
}

func TestOptionsIgnoreInvalid(t *testing.T) {
	c := New(WithFrequency(-1), WithDuration(0), WithFrequency(100000))
	assert.Equal(t, DefaultFrequency, c.freq)
	assert.Equal(t, DefaultDuration, c.duration)
}
