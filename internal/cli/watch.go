package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/actionmap/internal/config/watcher"
	"github.com/dshills/actionmap/internal/feedback"
	"github.com/dshills/actionmap/internal/input/bindset"
	"github.com/dshills/actionmap/internal/logging"
)

// WatchOptions holds flags for the watch command.
type WatchOptions struct {
	Beep bool
	FPS  int
}

// NewWatchCommand creates the watch command.
func NewWatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &WatchOptions{}

	cmd := &cobra.Command{
		Use:   "watch [bind-file]",
		Short: "Show live action state for terminal input",
		Long: `Open a full-screen monitor that feeds terminal keys and mouse input
through the bind file and shows every action's value, pressing state and
last edge, the most recently pressed code and typed text.

The bind file is reloaded when it changes on disk. Press ctrl-c to quit.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := rootOpts.bindFile(args)
			if err != nil {
				return err
			}
			return runWatch(cmd, rootOpts, opts, path)
		},
	}

	cmd.Flags().BoolVar(&opts.Beep, "beep", false, "click on every pressed edge")
	cmd.Flags().IntVar(&opts.FPS, "fps", 60, "frames per second")

	return cmd
}

func runWatch(cmd *cobra.Command, rootOpts *RootOptions, opts *WatchOptions, path string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return NewExitError(ExitUsage, "watch needs a terminal")
	}
	if opts.FPS <= 0 || opts.FPS > 1000 {
		return NewExitError(ExitUsage, "--fps must be between 1 and 1000")
	}

	// Logs would draw over the screen unless they go to a file.
	logger := rootOpts.Logger
	if rootOpts.Config.Logging.File == "" {
		logger = logging.Discard()
	}

	set, err := bindset.Load(path)
	if err != nil {
		return WrapExitError(ExitFailure, "loading bind file", err)
	}

	var click clicker
	status := ""
	if opts.Beep {
		c := feedback.New(feedback.WithLogger(logger))
		if err := c.Open(); err != nil {
			status = "audio unavailable: " + err.Error()
		} else {
			defer c.Close()
			click = c
		}
	}

	mo, err := newMonitor(set, rootOpts.Config.InputOptions(), click, logger)
	if err != nil {
		return WrapExitError(ExitFailure, "building action map", err)
	}
	mo.status = status

	reloads := make(chan struct{}, 1)
	w, err := watcher.New(watcher.WithLogger(logger))
	if err != nil {
		return WrapExitError(ExitUsage, "starting file watcher", err)
	}
	defer w.Close()
	w.OnChange(func(e watcher.Event) {
		logger.Debug("bind file changed", slog.String("op", e.Op.String()))
		select {
		case reloads <- struct{}{}:
		default:
		}
	})
	if err := w.Watch(path); err != nil {
		return WrapExitError(ExitUsage, "watching bind file", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return WrapExitError(ExitUsage, "opening terminal", err)
	}
	if err := screen.Init(); err != nil {
		return WrapExitError(ExitUsage, "opening terminal", err)
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return watchLoop(ctx, screen, mo, path, reloads, time.Second/time.Duration(opts.FPS))
}

func watchLoop(ctx context.Context, screen tcell.Screen, mo *monitor, path string, reloads <-chan struct{}, interval time.Duration) error {
	events := make(chan tcell.Event, 256)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var pending []tcell.Event
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			pending = append(pending, ev)
		case <-reloads:
			mo.reload(path)
		case <-ticker.C:
			if mo.frame(pending) {
				return nil
			}
			pending = pending[:0]
			draw(screen, mo.rows())
		}
	}
}

func draw(screen tcell.Screen, rows []row) {
	screen.Clear()
	normal := tcell.StyleDefault
	active := normal.Bold(true).Reverse(true)
	for y, r := range rows {
		style := normal
		if r.active {
			style = active
		}
		x := 0
		for _, ch := range r.text {
			screen.SetContent(x, y, ch, nil, style)
			x++
		}
	}
	screen.Show()
}
