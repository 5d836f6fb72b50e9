// ABOUTME: Interactive editor mode: raw-mode session with the render -> read -> dispatch loop
// ABOUTME: Owns the editor state for the session; every exit path leaves the terminal restored

package interactive

import (
	"context"
	"errors"
	"fmt"

	"github.com/mauromedda/ntext/internal/editor"
	pilog "github.com/mauromedda/ntext/internal/log"
	tuipkg "github.com/mauromedda/ntext/pkg/tui"
	"github.com/mauromedda/ntext/pkg/tui/terminal"
)

// AppDeps bundles all dependencies for the interactive App.
type AppDeps struct {
	Terminal      terminal.Terminal
	Welcome       string
	Keymap        editor.Keymap // nil means editor.DefaultKeymap
	Clamp         bool          // stop cursor motion at the screen edges
	MaxFrameBytes int           // 0 means tui.DefaultMaxFrameBytes
}

// App is the main interactive application.
type App struct {
	term    terminal.Terminal
	screen  *tuipkg.Screen
	reader  *terminal.Reader
	proc    *editor.Processor
	welcome string

	state *editor.State
}

// NewFromDeps creates a fully-wired interactive app from dependencies.
func NewFromDeps(deps AppDeps) *App {
	keys := deps.Keymap
	if keys == nil {
		keys = editor.DefaultKeymap()
	}

	screen := tuipkg.NewScreen(deps.Terminal)
	if deps.MaxFrameBytes > 0 {
		screen.SetMaxFrameBytes(deps.MaxFrameBytes)
	}

	return &App{
		term:    deps.Terminal,
		screen:  screen,
		reader:  terminal.NewReader(deps.Terminal),
		proc:    editor.NewProcessor(deps.Terminal, editor.WithKeymap(keys), editor.WithClamp(deps.Clamp)),
		welcome: deps.Welcome,
	}
}

// State returns the editor state of the running (or finished) session.
// It is nil before Run has probed the window size.
func (a *App) State() *editor.State {
	return a.state
}

// Run enters raw mode, probes the window size, and then alternates
// render, read and dispatch until the quit key arrives. A nil return
// means the user quit. On error the screen is cleared before raw mode
// is left; in both cases the terminal attributes are restored.
func (a *App) Run(ctx context.Context) (err error) {
	if err := a.term.EnterRawMode(); err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	defer func() {
		if err != nil {
			_ = terminal.Teardown(a.term)
			return
		}
		if rerr := a.term.ExitRawMode(); rerr != nil {
			err = fmt.Errorf("restoring terminal: %w", rerr)
		}
	}()

	size, err := a.term.Size()
	if err != nil {
		return fmt.Errorf("probing window size: %w", err)
	}
	pilog.Debug("window %dx%d (cursor report: %v)", size.Cols, size.Rows, size.FromReport)

	a.state = editor.NewState(size.Rows, size.Cols)

	for {
		if err := a.refresh(); err != nil {
			return err
		}

		b, err := a.reader.ReadKey(ctx)
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		action, err := a.proc.Handle(a.state, b)
		if err != nil {
			return err
		}
		if action == editor.ActionQuit {
			pilog.Debug("quit at cursor %d,%d", a.state.CursorRow, a.state.CursorCol)
			return nil
		}
	}
}

// refresh draws the current state. A truncated frame is logged and
// otherwise ignored.
func (a *App) refresh() error {
	err := a.screen.Refresh(tuipkg.Frame{
		Rows:      a.state.ScreenRows,
		Cols:      a.state.ScreenCols,
		CursorRow: a.state.CursorRow,
		CursorCol: a.state.CursorCol,
		Welcome:   a.welcome,
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, tuipkg.ErrFrameTooLarge):
		pilog.Warn("render: %v", err)
		return nil
	default:
		return fmt.Errorf("refreshing screen: %w", err)
	}
}
