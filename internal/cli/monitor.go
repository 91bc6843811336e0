package cli

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/actionmap/internal/adapter/termin"
	"github.com/dshills/actionmap/internal/input"
	"github.com/dshills/actionmap/internal/input/bindset"
)

const maxTextLen = 40

type clicker interface {
	Click()
}

// row is one rendered line of the monitor.
type row struct {
	text   string
	active bool
}

// monitor drives an action map from terminal events and renders its state.
type monitor struct {
	m       *input.Map[string]
	set     *bindset.Bindset
	adapter *termin.Adapter
	click   clicker
	logger  *slog.Logger

	lastEdge map[string]string
	recent   string
	text     string
	status   string
	frames   uint64
}

func newMonitor(set *bindset.Bindset, opts []input.Option, click clicker, logger *slog.Logger) (*monitor, error) {
	binds, err := set.Compile()
	if err != nil {
		return nil, err
	}
	m, err := input.New(binds, append(opts, input.WithLogger(logger))...)
	if err != nil {
		return nil, err
	}
	return &monitor{
		m:        m,
		set:      set,
		adapter:  termin.New(termin.WithLogger(logger)),
		click:    click,
		logger:   logger,
		lastEdge: make(map[string]string),
	}, nil
}

// frame runs one tick with the events gathered since the last one.
// It reports whether the user asked to quit.
func (mo *monitor) frame(events []tcell.Event) bool {
	mo.m.BeginFrame()
	for _, ev := range events {
		if k, ok := ev.(*tcell.EventKey); ok && k.Key() == tcell.KeyCtrlC {
			return true
		}
		mo.adapter.HandleEvent(mo.m, ev)
	}
	mo.adapter.Tick(mo.m)
	mo.frames++

	clicked := false
	for _, a := range mo.m.Actions() {
		switch {
		case mo.m.Pressed(a):
			mo.lastEdge[a] = "pressed"
			if !clicked && mo.click != nil {
				mo.click.Click()
				clicked = true
			}
		case mo.m.Released(a):
			mo.lastEdge[a] = "released"
		}
	}
	if c, ok := mo.m.RecentlyPressed(); ok {
		mo.recent = c.String()
	}
	if t := mo.m.Text(); t != "" {
		mo.text += t
		for utf8.RuneCountInString(mo.text) > maxTextLen {
			_, size := utf8.DecodeRuneInString(mo.text)
			mo.text = mo.text[size:]
		}
	}
	return false
}

// reload replaces the bindings from path. On error the old bindings stay.
func (mo *monitor) reload(path string) {
	set, err := bindset.Load(path)
	if err == nil {
		var binds []input.Binds[string]
		if binds, err = set.Compile(); err == nil {
			err = mo.m.SetBinds(binds)
		}
		if err == nil {
			mo.set = set
		}
	}
	if err != nil {
		mo.status = "reload failed: " + firstLine(err.Error())
		mo.logger.Warn("bind file reload failed", slog.String("path", path), slog.Any("error", err))
		return
	}
	mo.status = fmt.Sprintf("reloaded %s (%d actions)", path, len(set.Actions))
	mo.logger.Info("bind file reloaded", slog.String("path", path))
}

// rows renders the current state.
func (mo *monitor) rows() []row {
	actions := mo.m.Actions()
	width := len("ACTION")
	for _, a := range actions {
		width = max(width, utf8.RuneCountInString(a))
	}

	rows := []row{
		{text: fmt.Sprintf("actionmap watch: %s  (ctrl-c quits)", mo.set.Name)},
		{},
		{text: fmt.Sprintf("%-*s  %6s  %-8s  %s", width, "ACTION", "VALUE", "PRESSING", "LAST EDGE")},
	}
	for _, a := range actions {
		st := mo.m.State(a)
		pressing := "no"
		if st.Pressing {
			pressing = "yes"
		}
		text := fmt.Sprintf("%-*s  %6s  %-8s  %s", width, a, strconv.FormatFloat(st.Value, 'f', 2, 64), pressing, mo.lastEdge[a])
		if d := mo.set.Describe(a); d != "" {
			text += "  # " + d
		}
		rows = append(rows, row{text: strings.TrimRight(text, " "), active: st.Pressing})
	}

	x, y := mo.m.Cursor()
	rows = append(rows,
		row{},
		row{text: "recent: " + mo.recent},
		row{text: "text:   " + strconv.Quote(mo.text)},
		row{text: fmt.Sprintf("cursor: %g,%g", x, y)},
	)
	if mo.status != "" {
		rows = append(rows, row{}, row{text: mo.status})
	}
	return rows
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
