package input

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/actionmap/internal/input/code"
)

func TestMetricsCountsPaths(t *testing.T) {
	metrics := NewMetrics()
	ctrl := code.KeyCode(code.KeyLeftCtrl)
	m := newMap(t, []Binds[string]{bind("dash", chord(ctrl, shift, keyW))}, WithMetrics(metrics))

	m.Apply(ctrl, 1)
	m.Apply(shift, 1)
	m.Apply(keyW, 1)
	m.Apply(shift, 0)
	m.Apply(space, 1)

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(5), snap.Applies)
	assert.Equal(t, uint64(1), snap.UnboundApplies)
	assert.Equal(t, uint64(3), snap.FullRecomputes)
	assert.Equal(t, uint64(1), snap.RatioUpdates)
	assert.Equal(t, uint64(1), snap.PressedEdges)
	assert.Equal(t, uint64(1), snap.ReleasedEdges)
}

func TestMetricsDisabled(t *testing.T) {
	metrics := NewMetrics()
	metrics.SetEnabled(false)
	m := newMap(t, []Binds[string]{bind("jump", chord(space))}, WithMetrics(metrics))
	m.Apply(space, 1)

	assert.False(t, metrics.IsEnabled())
	assert.Zero(t, metrics.Snapshot().Applies)
}

func TestNilMetrics(t *testing.T) {
	var metrics *Metrics
	assert.NotPanics(t, func() {
		metrics.recordApply()
		metrics.recordEdges(true, true)
		metrics.recordFrame(time.Now())
		metrics.Reset()
	})
	assert.Equal(t, MetricsSnapshot{}, metrics.Snapshot())
	assert.False(t, metrics.IsEnabled())
}

func TestMetricsReset(t *testing.T) {
	metrics := NewMetrics()
	base := time.Now()
	metrics.recordFrame(base)
	metrics.recordFrame(base.Add(16 * time.Millisecond))
	metrics.recordFrame(base.Add(40 * time.Millisecond))

	snap := metrics.Snapshot()
	assert.Equal(t, uint64(3), snap.Frames)
	assert.Equal(t, 20*time.Millisecond, snap.AvgFrameInterval)
	assert.Equal(t, 24*time.Millisecond, snap.MaxFrameInterval)
	assert.Equal(t, 24*time.Millisecond, snap.PeakFrameInterval)

	metrics.Reset()
	snap = metrics.Snapshot()
	assert.Zero(t, snap.Frames)
	assert.Zero(t, snap.AvgFrameInterval)
}
