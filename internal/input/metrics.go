package input

import (
	"sort"
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks the work done by the update engine.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	// Event counters
	applies     atomic.Uint64
	unbound     atomic.Uint64
	ratio       atomic.Uint64
	recomputes  atomic.Uint64
	snaps       atomic.Uint64
	pressed     atomic.Uint64
	released    atomic.Uint64
	frames      atomic.Uint64
	disconnects atomic.Uint64

	// Frame interval tracking
	mu           sync.RWMutex
	intervals    []time.Duration
	maxSamples   int
	intervalIdx  int
	lastFrame    time.Time
	peakInterval atomic.Int64
	startTime    time.Time
	enabled      atomic.Bool
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	m := &Metrics{
		intervals:  make([]time.Duration, 600),
		maxSamples: 600,
		startTime:  time.Now(),
	}
	m.enabled.Store(true)
	return m
}

// SetEnabled enables or disables metrics collection.
func (m *Metrics) SetEnabled(enabled bool) {
	if m == nil {
		return
	}
	m.enabled.Store(enabled)
}

// IsEnabled returns whether metrics collection is enabled.
func (m *Metrics) IsEnabled() bool {
	return m != nil && m.enabled.Load()
}

func (m *Metrics) add(c *atomic.Uint64) {
	if m == nil || !m.enabled.Load() {
		return
	}
	c.Add(1)
}

func (m *Metrics) recordApply() {
	if m != nil {
		m.add(&m.applies)
	}
}

func (m *Metrics) recordUnbound() {
	if m != nil {
		m.add(&m.unbound)
	}
}

func (m *Metrics) recordRatio() {
	if m != nil {
		m.add(&m.ratio)
	}
}

func (m *Metrics) recordRecompute() {
	if m != nil {
		m.add(&m.recomputes)
	}
}

func (m *Metrics) recordSnap() {
	if m != nil {
		m.add(&m.snaps)
	}
}

func (m *Metrics) recordEdges(pressed, released bool) {
	if m == nil {
		return
	}
	if pressed {
		m.add(&m.pressed)
	}
	if released {
		m.add(&m.released)
	}
}

func (m *Metrics) recordDisconnect() {
	if m != nil {
		m.add(&m.disconnects)
	}
}

// recordFrame counts a frame boundary and stores the time since the last one.
func (m *Metrics) recordFrame(now time.Time) {
	if m == nil || !m.enabled.Load() {
		return
	}
	m.frames.Add(1)

	m.mu.Lock()
	last := m.lastFrame
	m.lastFrame = now
	if last.IsZero() {
		m.mu.Unlock()
		return
	}
	interval := now.Sub(last)
	m.intervals[m.intervalIdx] = interval
	m.intervalIdx = (m.intervalIdx + 1) % m.maxSamples
	m.mu.Unlock()

	ns := interval.Nanoseconds()
	for {
		current := m.peakInterval.Load()
		if ns <= current {
			break
		}
		if m.peakInterval.CompareAndSwap(current, ns) {
			break
		}
	}
}

// MetricsSnapshot holds a point-in-time view of metrics.
type MetricsSnapshot struct {
	// Counters
	Applies        uint64
	UnboundApplies uint64
	RatioUpdates   uint64
	FullRecomputes uint64
	EpsilonSnaps   uint64
	PressedEdges   uint64
	ReleasedEdges  uint64
	Frames         uint64
	Disconnects    uint64

	// Frame intervals
	AvgFrameInterval  time.Duration
	MaxFrameInterval  time.Duration
	P99FrameInterval  time.Duration
	PeakFrameInterval time.Duration

	// Rates
	AppliesPerSecond float64

	Uptime time.Duration
}

// Snapshot returns a point-in-time view of all metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}

	m.mu.RLock()
	intervals := make([]time.Duration, len(m.intervals))
	copy(intervals, m.intervals)
	m.mu.RUnlock()

	applies := m.applies.Load()
	uptime := time.Since(m.startTime)

	snap := MetricsSnapshot{
		Applies:           applies,
		UnboundApplies:    m.unbound.Load(),
		RatioUpdates:      m.ratio.Load(),
		FullRecomputes:    m.recomputes.Load(),
		EpsilonSnaps:      m.snaps.Load(),
		PressedEdges:      m.pressed.Load(),
		ReleasedEdges:     m.released.Load(),
		Frames:            m.frames.Load(),
		Disconnects:       m.disconnects.Load(),
		PeakFrameInterval: time.Duration(m.peakInterval.Load()),
		Uptime:            uptime,
	}

	if uptime > 0 {
		snap.AppliesPerSecond = float64(applies) / uptime.Seconds()
	}

	snap.AvgFrameInterval, snap.MaxFrameInterval, snap.P99FrameInterval = intervalStats(intervals)

	return snap
}

// intervalStats computes average, max, and p99 from a slice of durations.
func intervalStats(samples []time.Duration) (avg, maxD, p99 time.Duration) {
	// Filter unused slots
	valid := make([]time.Duration, 0, len(samples))
	for _, d := range samples {
		if d > 0 {
			valid = append(valid, d)
		}
	}

	if len(valid) == 0 {
		return 0, 0, 0
	}

	var sum time.Duration
	for _, d := range valid {
		sum += d
		if d > maxD {
			maxD = d
		}
	}
	avg = sum / time.Duration(len(valid))

	sort.Slice(valid, func(i, j int) bool { return valid[i] < valid[j] })

	idx := int(float64(len(valid)) * 0.99)
	if idx >= len(valid) {
		idx = len(valid) - 1
	}
	p99 = valid[idx]

	return avg, maxD, p99
}

// Reset clears all metrics.
func (m *Metrics) Reset() {
	if m == nil {
		return
	}
	for _, c := range []*atomic.Uint64{
		&m.applies, &m.unbound, &m.ratio, &m.recomputes, &m.snaps,
		&m.pressed, &m.released, &m.frames, &m.disconnects,
	} {
		c.Store(0)
	}
	m.peakInterval.Store(0)

	m.mu.Lock()
	m.intervals = make([]time.Duration, m.maxSamples)
	m.intervalIdx = 0
	m.lastFrame = time.Time{}
	m.startTime = time.Now()
	m.mu.Unlock()
}
