package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/term"
	"github.com/mark3labs/wheelr/internal/config"
	"github.com/mark3labs/wheelr/internal/hooks"
	"github.com/mark3labs/wheelr/internal/journal"
	"github.com/mark3labs/wheelr/internal/logger"
	"github.com/mark3labs/wheelr/internal/nats"
	"github.com/mark3labs/wheelr/internal/state"
	"github.com/mark3labs/wheelr/internal/tui"
	"github.com/spf13/cobra"
)

// picker describes one interactive run: the panes to show and how to read,
// restore and print their combined value.
type picker struct {
	name   string
	title  string
	panes  []*tui.Pane
	values func() []int
	text   func() string

	// restore applies a remembered selection. Nil disables remembering.
	restore func(state.Selection)
}

// env is the configuration shared by every picker command.
type env struct {
	cfg  *config.Config
	opts tui.Options
}

// loadEnv loads and validates configuration, then configures logging.
func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return nil, fmt.Errorf("failed to configure logging: %w", err)
	}
	opts, err := tui.OptionsFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, opts: opts}, nil
}

// run shows the picker and prints its value on Enter. A cancelled picker
// sets a non-zero exit code and prints nothing.
func (e *env) run(cmd *cobra.Command, p picker, restore bool) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	defer func() {
		for _, pane := range p.panes {
			pane.Close()
		}
	}()

	var sel *state.Selections
	if e.cfg.Remember {
		sel = state.Load(e.cfg.DataDir)
		if s, ok := sel.Get(p.name); ok && restore && p.restore != nil {
			logger.Debug("restoring %s: %v", state.Key(p.name), s.Values)
			p.restore(s)
		}
	}

	var rec *journal.Recorder
	if e.cfg.Journal {
		conn, err := nats.Open(ctx, e.cfg.DataDir)
		if err != nil {
			return fmt.Errorf("failed to open journal: %w", err)
		}
		defer func() {
			if err := conn.Close(); err != nil {
				logger.Warn("journal shutdown: %v", err)
			}
		}()
		rec = journal.NewRecorder(ctx, journal.NewStore(conn.JS, conn.Stream), state.Key(p.name))
		for i, pane := range p.panes {
			defer rec.Attach(i, pane.Engine())()
		}
		// runs before the connection closes
		defer rec.Close()
	}

	app := tui.NewApp(p.title, p.text, p.panes...)
	input, closeInput, err := ttyInput()
	if err != nil {
		return err
	}
	defer closeInput()

	program := tea.NewProgram(app, tea.WithContext(ctx), tea.WithInput(input), tea.WithOutput(os.Stderr))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("picker failed: %w", err)
	}

	if !app.Accepted() {
		exitCode = 1
		return e.runHooks(ctx, p.name, "", false)
	}

	values, text := p.values(), app.Value()
	if rec != nil {
		rec.RecordPick(values, text)
	}
	if sel != nil {
		sel.Put(p.name, values, text)
		if err := state.Save(e.cfg.DataDir, sel); err != nil {
			logger.Warn("failed to remember %s: %v", state.Key(p.name), err)
		}
	}
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
		return err
	}
	return e.runHooks(ctx, p.name, text, true)
}

// runHooks runs the on_accept or on_cancel hooks of the working directory.
func (e *env) runHooks(ctx context.Context, name, value string, accepted bool) error {
	wd, err := os.Getwd()
	if err != nil {
		logger.Warn("skipping hooks: %v", err)
		return nil
	}
	cfg, err := hooks.LoadConfig(wd)
	if err != nil || cfg == nil {
		return err
	}
	list := cfg.Hooks.OnCancel
	if accepted {
		list = cfg.Hooks.OnAccept
	}
	out, err := hooks.ExecuteAll(ctx, list, wd, hooks.Variables{Picker: name, Value: value})
	if out != "" {
		logger.Info("hook output for %s:\n%s", state.Key(name), out)
	}
	return err
}

// ttyInput returns stdin, or the controlling terminal when stdin is piped.
func ttyInput() (io.Reader, func(), error) {
	if term.IsTerminal(os.Stdin.Fd()) {
		return os.Stdin, func() {}, nil
	}
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return nil, nil, fmt.Errorf("no terminal for input: %w", err)
	}
	return tty, func() { _ = tty.Close() }, nil
}
