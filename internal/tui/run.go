package tui

import (
	"context"
	"errors"
	"os"

	"github.com/Mr-Dark-debug/termwallet/internal/logging"
	"github.com/Mr-Dark-debug/termwallet/internal/terminal"

	tea "github.com/charmbracelet/bubbletea"
)

// Options configures Run.
type Options struct {
	Config

	// Mouse enables mouse capture while the UI is up.
	Mouse bool

	// Input and Output default to os.Stdin and os.Stdout.
	Input  *os.File
	Output *os.File
}

// Run takes over the terminal and blocks until the user quits or ctx is
// cancelled. The terminal is restored on every return path.
//
// Startup failures are *terminal.InitError; failures while running are
// *terminal.IOError. Cancellation of ctx is a clean exit.
func Run(ctx context.Context, opts Options) error {
	in, out := opts.Input, opts.Output
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	opts.Input, opts.Output = in, out
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return runModel(ctx, opts, NewModel(opts.Config))
}

// runModel drives model on the terminal described by opts. Input, Output
// and Logger must be set.
func runModel(ctx context.Context, opts Options, model tea.Model) (err error) {
	in, out := opts.Input, opts.Output
	logger := opts.Logger

	sess, err := terminal.Acquire(in, out)
	if err != nil {
		logger.Error("cannot take over terminal", "err", err)
		return err
	}
	defer func() {
		if rerr := sess.Release(); rerr != nil {
			logger.Error("terminal restore failed", "err", rerr)
			if err == nil {
				err = rerr
			}
			return
		}
		logger.Debug("terminal restored")
	}()

	if w, h, serr := sess.Size(); serr == nil {
		logger.Info("session started", "width", w, "height", h, "page", opts.StartPage)
	}

	progOpts := []tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithAltScreen(),
		// SIGINT and SIGTERM arrive through ctx.
		tea.WithoutSignalHandler(),
	}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}

	final, err := tea.NewProgram(model, progOpts...).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logger.Info("session cancelled", "cause", ctx.Err())
			return nil
		}
		logger.Error("ui loop failed", "err", err)
		return &terminal.IOError{Op: "run ui", Err: err}
	}

	if m, ok := final.(Model); ok {
		logger.Info("session ended", "page", m.Page())
	}
	return nil
}
