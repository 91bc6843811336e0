package input

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/actionmap/internal/input/code"
)

func TestChordScenario(t *testing.T) {
	m := newMap(t, []Binds[string]{bind("dash", chord(shift, keyW))})

	m.Apply(shift, 1)
	assert.Equal(t, 0.0, m.Value("dash"))
	assert.False(t, m.Pressing("dash"))

	m.Apply(keyW, 1)
	assert.Equal(t, 1.0, m.Value("dash"))
	assert.True(t, m.Pressed("dash"))
	assert.True(t, m.Pressing("dash"))

	m.Apply(shift, 0)
	assert.Equal(t, 0.0, m.Value("dash"))
	assert.True(t, m.Released("dash"))
	assert.False(t, m.Pressing("dash"))
}

func TestOrScenario(t *testing.T) {
	metrics := NewMetrics()
	m := newMap(t, []Binds[string]{bind("jump", chord(space), chord(south))}, WithMetrics(metrics))

	m.Apply(space, 1)
	assert.True(t, m.Pressed("jump"))
	assert.Equal(t, 1.0, m.Value("jump"))

	m.Apply(south, 1)
	assert.Equal(t, 2.0, m.Value("jump"))
	assert.True(t, m.Pressed("jump"))
	assert.Equal(t, uint64(1), metrics.Snapshot().PressedEdges)
}

func TestAnalogScenario(t *testing.T) {
	m := newMap(t, []Binds[string]{bind("look-right", chord(moveRight))})

	m.Apply(moveRight, 2.3)
	assert.Equal(t, 2.3, m.Value("look-right"))
	assert.True(t, m.Pressing("look-right"))

	m.BeginFrame()
	assert.Equal(t, 0.0, m.Value("look-right"))
	assert.False(t, m.Pressing("look-right"))
	assert.True(t, m.Released("look-right"))
}

func TestAndDrivesToExactZero(t *testing.T) {
	x := code.PadCode(code.RightTrigger)
	y := code.KeyCode(code.KeyE)
	m := newMap(t, []Binds[string]{bind("throttle", chord(x, y))})

	m.Apply(x, 0.3)
	assert.Equal(t, 0.0, m.Value("throttle"))
	m.Apply(y, 0.7)
	assert.InDelta(t, 0.21, m.Value("throttle"), 1e-12)

	m.Apply(x, 0)
	assert.Equal(t, 0.0, m.Value("throttle"))

	m.Apply(x, 0.9)
	assert.InDelta(t, 0.63, m.Value("throttle"), 1e-12)
	m.Apply(y, 0)
	assert.Equal(t, 0.0, m.Value("throttle"))
}

func TestOrSumsAnalogContributions(t *testing.T) {
	trigger := code.PadCode(code.LeftTrigger)
	m := newMap(t, []Binds[string]{bind("brake", chord(trigger), chord(space))})

	m.Apply(trigger, 0.4)
	assert.False(t, m.Pressing("brake"))
	m.Apply(space, 1)
	assert.InDelta(t, 1.4, m.Value("brake"), 1e-12)
	assert.True(t, m.Pressing("brake"))
}

func TestSharedCodeFeedsEveryAction(t *testing.T) {
	m := newMap(t, []Binds[string]{
		bind("forward", chord(keyW)),
		bind("dash", chord(shift, keyW)),
	})

	m.Apply(keyW, 1)
	assert.True(t, m.Pressing("forward"))
	assert.False(t, m.Pressing("dash"))

	m.Apply(shift, 1)
	assert.True(t, m.Pressing("dash"))
}

func TestEpsilonSnap(t *testing.T) {
	metrics := NewMetrics()
	a := code.KeyCode(code.KeyA)
	b := code.KeyCode(code.KeyB)
	m := newMap(t, []Binds[string]{bind("mix", chord(a), chord(b))}, WithMetrics(metrics))

	m.Apply(a, 0.1)
	m.Apply(b, 0.2)
	m.Apply(a, 0)
	m.Apply(b, 0)

	assert.Equal(t, 0.0, m.Value("mix"))
	assert.Equal(t, uint64(1), metrics.Snapshot().EpsilonSnaps)
}

func TestNonFiniteAndNegativeValues(t *testing.T) {
	m := newMap(t, []Binds[string]{bind("jump", chord(space))})

	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1), -1} {
		m.Apply(space, v)
		assert.Equal(t, 0.0, m.Value("jump"), "value %v", v)
		assert.False(t, m.Pressing("jump"), "value %v", v)
	}

	m.Apply(space, 1)
	m.Apply(space, math.NaN())
	assert.Equal(t, 0.0, m.Value("jump"))
	assert.True(t, m.Released("jump"))
}

func TestPressAndReleaseInOneTick(t *testing.T) {
	m := newMap(t, []Binds[string]{bind("jump", chord(space))})

	m.Press(space)
	m.Release(space)

	assert.True(t, m.Pressed("jump"))
	assert.True(t, m.Released("jump"))
	assert.False(t, m.Pressing("jump"))
}

func TestEdgeTiming(t *testing.T) {
	m := newMap(t, []Binds[string]{bind("jump", chord(space))})

	m.Apply(space, 1)
	assert.True(t, m.Pressed("jump"))

	m.BeginFrame()
	assert.False(t, m.Pressed("jump"))
	assert.True(t, m.Pressing("jump"))

	m.Apply(space, 0)
	assert.True(t, m.Released("jump"))
	assert.False(t, m.Pressed("jump"))

	m.BeginFrame()
	assert.False(t, m.Released("jump"))
	assert.False(t, m.Pressing("jump"))
}

func TestWildcardAndDevices(t *testing.T) {
	m := newMap(t, []Binds[string]{
		bind("jump", chord(space)),
		bind("p1-jump", chord(space.WithDevice(1))),
	})

	m.Update(space.WithDevice(1), 1)
	assert.True(t, m.Pressing("jump"))
	assert.True(t, m.Pressing("p1-jump"))

	m.Update(space.WithDevice(1), 0)
	assert.False(t, m.Pressing("jump"))

	m.Update(space.WithDevice(2), 1)
	assert.True(t, m.Pressing("jump"))
	assert.False(t, m.Pressing("p1-jump"))
	assert.Equal(t, 1.0, m.Value("jump"))
}

func TestWildcardHoldsWhileAnyDeviceHolds(t *testing.T) {
	m := newMap(t, []Binds[string]{bind("jump", chord(space))})

	m.Update(space.WithDevice(1), 1)
	m.Update(space.WithDevice(2), 1)
	assert.Equal(t, 1.0, m.Value("jump"))

	m.Update(space.WithDevice(1), 0)
	assert.True(t, m.Pressing("jump"))
	assert.False(t, m.Released("jump"))

	m.Update(space.WithDevice(2), 0)
	assert.False(t, m.Pressing("jump"))
}

func TestDisconnectClearsOnlyThatDevice(t *testing.T) {
	trigger := code.PadCode(code.RightTrigger)
	m := newMap(t, []Binds[string]{
		bind("fire", chord(trigger)),
		bind("p0-fire", chord(trigger.WithGamepad(0))),
	})

	m.SetGamepadButton(0, code.RightTrigger, 0.9)
	m.SetGamepadButton(1, code.RightTrigger, 0.4)
	assert.Equal(t, 0.9, m.Value("fire"))
	assert.Equal(t, 0.9, m.Value("p0-fire"))

	m.DisconnectGamepad(0)
	assert.InDelta(t, 0.4, m.Value("fire"), 1e-12)
	assert.Equal(t, 0.0, m.Value("p0-fire"))
	assert.True(t, m.Released("p0-fire"))

	m.DisconnectGamepad(1)
	assert.Equal(t, 0.0, m.Value("fire"))
}

func TestDisconnectDevice(t *testing.T) {
	m := newMap(t, []Binds[string]{bind("dash", chord(shift, keyW))})

	m.Update(shift.WithDevice(1), 1)
	m.Update(keyW.WithDevice(2), 1)
	assert.True(t, m.Pressing("dash"))

	m.DisconnectDevice(2)
	assert.False(t, m.Pressing("dash"))
	assert.Equal(t, 1.0, m.raw[shift])
}

func TestRecentlyPressed(t *testing.T) {
	m := newMap(t, []Binds[string]{bind("jump", chord(space))})

	_, ok := m.RecentlyPressed()
	assert.False(t, ok)

	m.Apply(code.KeyCode(code.KeyQ), 1)
	_, ok = m.RecentlyPressed()
	assert.False(t, ok, "wildcard codes are never recorded")

	q := code.KeyCode(code.KeyQ).WithDevice(4)
	m.Apply(q, 0.2)
	_, ok = m.RecentlyPressed()
	assert.False(t, ok, "below sensitivity")

	m.Apply(q, 1)
	got, ok := m.RecentlyPressed()
	require.True(t, ok)
	assert.Equal(t, q, got)

	m.Update(space.WithDevice(4), 1)
	got, _ = m.RecentlyPressed()
	assert.Equal(t, space.WithDevice(4), got)

	m.BeginFrame()
	_, ok = m.RecentlyPressed()
	assert.False(t, ok)
}

func TestIncrementalMatchesFullRecompute(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	pool := []code.Code{
		code.KeyCode(code.KeyA), code.KeyCode(code.KeyB), code.KeyCode(code.KeyC),
		code.KeyCode(code.KeyD), code.PadCode(code.LeftTrigger), code.PadCode(code.LeftStickUp),
		code.MoveCode(code.DirLeft),
	}

	var binds []Binds[string]
	for _, name := range []string{"a0", "a1", "a2", "a3", "a4"} {
		b := Binds[string]{Action: name}
		for n := 1 + rng.IntN(3); n > 0; n-- {
			var ch []code.Code
			for k := 1 + rng.IntN(3); k > 0; k-- {
				ch = append(ch, pool[rng.IntN(len(pool))])
			}
			b.Bindings = append(b.Bindings, ch)
		}
		binds = append(binds, b)
	}

	m := newMap(t, binds)
	raw := make(map[code.Code]float64)

	reference := func(action string) float64 {
		var total float64
		for _, b := range binds {
			if b.Action != action {
				continue
			}
			for _, ch := range b.Bindings {
				p := 1.0
				for _, c := range ch {
					p *= raw[c]
				}
				total += p
			}
		}
		return total
	}

	for step := 0; step < 5000; step++ {
		c := pool[rng.IntN(len(pool))]
		var v float64
		switch rng.IntN(4) {
		case 0:
			v = 0
		case 1:
			v = 1
		default:
			v = rng.Float64() * 2
		}
		m.Apply(c, v)
		raw[c] = v

		for _, b := range binds {
			want := reference(b.Action)
			require.InDelta(t, want, m.Value(b.Action), 1e-9, "step %d action %s", step, b.Action)
			require.Equal(t, m.Value(b.Action) >= m.PressSensitivity(), m.Pressing(b.Action))
			if want == 0 {
				require.Equal(t, 0.0, m.Value(b.Action), "step %d action %s", step, b.Action)
			}
		}
	}
}

func TestShortChordHasNoRatioDrift(t *testing.T) {
	trigger := code.PadCode(code.RightTrigger)
	keyE := code.KeyCode(code.KeyE)
	m := newMap(t, []Binds[string]{bind("use", chord(trigger, keyE))})
	m.Apply(keyE, 1)

	rng := rand.New(rand.NewPCG(3, 5))
	for round := 0; round < 1000; round++ {
		m.Apply(trigger, 0.01+rng.Float64())
		m.Apply(trigger, 0.5)
		require.Equal(t, 0.5, m.Value("use"), "round %d", round)
		require.True(t, m.Pressing("use"), "round %d", round)
	}
}

func TestOverflowRecovers(t *testing.T) {
	a := code.KeyCode(code.KeyA)
	b := code.KeyCode(code.KeyB)
	c := code.KeyCode(code.KeyC)

	for _, binding := range [][]code.Code{chord(a, b), chord(a, b, c)} {
		m := newMap(t, []Binds[string]{bind("huge", binding)})
		for _, k := range binding {
			m.Apply(k, 1e200)
		}
		assert.Equal(t, 0.0, m.Value("huge"))
		assert.False(t, m.Pressing("huge"))

		for _, k := range binding {
			m.Apply(k, 1)
		}
		assert.InDelta(t, 1.0, m.Value("huge"), 1e-9, "arity %d", len(binding))
		assert.True(t, m.Pressing("huge"), "arity %d", len(binding))
	}
}
