package main

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/actionmap/internal/config"
	"github.com/dshills/actionmap/internal/input/bindset"
	"github.com/dshills/actionmap/internal/input/code"
)

type countingClicker struct{ n int }

func (c *countingClicker) Click() { c.n++ }

func newTestGame(t *testing.T) *game {
	t.Helper()
	set, err := bindset.LoadReader(strings.NewReader(`
name: play
actions:
  - action: jump
    binds: [space, pad:south]
  - action: fire
    binds: [mouse:left]
`), bindset.FormatYAML)
	require.NoError(t, err)
	g, err := newGame(set, config.Default(), slog.New(slog.DiscardHandler))
	require.NoError(t, err)
	return g
}

func TestGameClicksOncePerTick(t *testing.T) {
	g := newTestGame(t)
	click := &countingClicker{}
	g.click = click

	g.m.BeginFrame()
	g.m.Update(code.KeyCode(code.KeySpace).WithDevice(0), 1)
	g.m.Update(code.MouseCode(code.ButtonLeft).WithDevice(0), 1)
	g.settle()
	assert.Equal(t, 1, click.n)
	assert.Equal(t, "dev#0:mouse:left", g.recent)

	g.m.BeginFrame()
	g.settle()
	assert.Equal(t, 1, click.n)
}

func TestGameStatus(t *testing.T) {
	g := newTestGame(t)
	g.m.BeginFrame()
	g.m.SetGamepadButton(1, code.South, 0.75)
	g.settle()

	s := g.status()
	assert.Contains(t, s, "play  (esc quits)")
	assert.Contains(t, s, "* jump              0.75")
	assert.Contains(t, s, "  fire              0.00")
	assert.Contains(t, s, "recent: pad#1:south")
}

func TestGameLayout(t *testing.T) {
	w, h := newTestGame(t).Layout(100, 100)
	assert.Equal(t, screenWidth, w)
	assert.Equal(t, screenHeight, h)
}
