// Command actionmap-play opens a window and shows the live state of every
// action in a bind file, fed by keyboard, mouse and gamepads.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/dshills/actionmap/internal/adapter/ebitenin"
	"github.com/dshills/actionmap/internal/config"
	"github.com/dshills/actionmap/internal/feedback"
	"github.com/dshills/actionmap/internal/input"
	"github.com/dshills/actionmap/internal/input/bindset"
	"github.com/dshills/actionmap/internal/logging"
)

// Version information (set via ldflags during build).
var version = "dev"

const (
	screenWidth  = 640
	screenHeight = 480
)

func main() {
	os.Exit(run())
}

type options struct {
	configPath string
	beep       bool
}

func run() int {
	var opts options
	var showVersion bool
	flag.StringVar(&opts.configPath, "config", "actionmap.toml", "Path to configuration file")
	flag.StringVar(&opts.configPath, "c", "actionmap.toml", "Path to configuration file (shorthand)")
	flag.BoolVar(&opts.beep, "beep", false, "Click on every pressed edge")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("actionmap-play %s\n", version)
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	path := cfg.BindFile
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: no bind file given and none configured")
		return 2
	}

	lc := cfg.LoggerConfig()
	lc.Output = os.Stderr
	logger := logging.New(lc)

	set, err := bindset.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	g, err := newGame(set, cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	if opts.beep {
		c := feedback.New(feedback.WithLogger(logger))
		if err := c.Open(); err == nil {
			defer c.Close()
			g.click = c
		}
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("actionmap: " + set.Name)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type clicker interface {
	Click()
}

// game runs one action map tick per ebiten Update.
type game struct {
	m      *input.Map[string]
	set    *bindset.Bindset
	poller *ebitenin.Poller
	click  clicker
	recent string
}

func newGame(set *bindset.Bindset, cfg *config.Config, logger *slog.Logger) (*game, error) {
	binds, err := set.Compile()
	if err != nil {
		return nil, err
	}
	m, err := input.New(binds, append(cfg.InputOptions(), input.WithLogger(logger))...)
	if err != nil {
		return nil, err
	}
	return &game{
		m:   m,
		set: set,
		poller: ebitenin.New(
			ebitenin.WithDeadzone(cfg.Input.Deadzone),
			ebitenin.WithLogger(logger),
		),
	}, nil
}

func (g *game) Update() error {
	g.m.BeginFrame()
	g.poller.Poll(g.m)
	g.settle()
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

// settle reads the tick's edges after input was fed.
func (g *game) settle() {
	clicked := false
	for _, a := range g.m.Actions() {
		if g.m.Pressed(a) && !clicked && g.click != nil {
			g.click.Click()
			clicked = true
		}
	}
	if c, ok := g.m.RecentlyPressed(); ok {
		g.recent = c.String()
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	ebitenutil.DebugPrint(screen, g.status())
}

func (g *game) Layout(int, int) (int, int) {
	return screenWidth, screenHeight
}

// status renders one line per action and the last pressed code.
func (g *game) status() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  (esc quits)\n\n", g.set.Name)
	for _, a := range g.m.Actions() {
		st := g.m.State(a)
		mark := " "
		if st.Pressing {
			mark = "*"
		}
		fmt.Fprintf(&b, "%s %-16s %5.2f\n", mark, a, st.Value)
	}
	x, y := g.m.Cursor()
	fmt.Fprintf(&b, "\nrecent: %s\ncursor: %g,%g\n", g.recent, x, y)
	return b.String()
}
