package input

import (
	"log/slog"
	"math"

	"github.com/google/uuid"
)

// Defaults for a new Map.
const (
	// DefaultPressSensitivity is the value at which an action counts as pressing.
	DefaultPressSensitivity = 0.5

	// DefaultMouseScale multiplies raw mouse motion deltas.
	DefaultMouseScale = 1.0

	// DefaultScrollScale multiplies raw wheel deltas.
	DefaultScrollScale = 1.0

	// Epsilon is the magnitude below which an action value snaps to exactly zero.
	Epsilon = 1e-9
)

// Option configures a Map.
type Option func(*options)

type options struct {
	sensitivity float64
	mouseScale  float64
	scrollScale float64
	logger      *slog.Logger
	metrics     *Metrics
	id          uuid.UUID
}

func defaultOptions() options {
	return options{
		sensitivity: DefaultPressSensitivity,
		mouseScale:  DefaultMouseScale,
		scrollScale: DefaultScrollScale,
	}
}

// WithPressSensitivity sets the press threshold.
// Values that are not finite and positive fall back to the default.
func WithPressSensitivity(v float64) Option {
	return func(o *options) {
		o.sensitivity = positiveOr(v, DefaultPressSensitivity)
	}
}

// WithMouseScale sets the multiplier applied to mouse motion.
func WithMouseScale(v float64) Option {
	return func(o *options) {
		o.mouseScale = positiveOr(v, DefaultMouseScale)
	}
}

// WithScrollScale sets the multiplier applied to wheel deltas.
func WithScrollScale(v float64) Option {
	return func(o *options) {
		o.scrollScale = positiveOr(v, DefaultScrollScale)
	}
}

// WithLogger sets the logger used for construction warnings and debug
// output. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMetrics attaches a metrics tracker.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

// WithID sets the instance id reported in logs. A random id is used
// otherwise.
func WithID(id uuid.UUID) Option {
	return func(o *options) {
		o.id = id
	}
}

func positiveOr(v, fallback float64) float64 {
	if v > 0 && !math.IsInf(v, 0) {
		return v
	}
	return fallback
}
