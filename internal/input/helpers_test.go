package input

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dshills/actionmap/internal/input/code"
)

var (
	shift     = code.KeyCode(code.KeyLeftShift)
	keyW      = code.KeyCode(code.KeyW)
	space     = code.KeyCode(code.KeySpace)
	south     = code.PadCode(code.South)
	moveRight = code.MoveCode(code.DirRight)
)

func chord(codes ...code.Code) []code.Code {
	return codes
}

func bind(action string, chords ...[]code.Code) Binds[string] {
	return Binds[string]{Action: action, Bindings: chords}
}

func newMap(t *testing.T, binds []Binds[string], opts ...Option) *Map[string] {
	t.Helper()
	m, err := New(binds, opts...)
	require.NoError(t, err)
	return m
}
