// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/jeranaias/xcli/internal/cli"
	"github.com/jeranaias/xcli/pkg/commands"
)

// DefaultPrompt is shown before each line unless WithPrompt says otherwise.
const DefaultPrompt = "# "

// DefaultHistoryFile is where the liner source keeps history by default.
const DefaultHistoryFile = "history.txt"

// =============================================================================
// APPLICATION
// =============================================================================

// App is an interactive shell over a command tree. It is also the
// commands.Context every action receives.
//
// An App is driven by a single goroutine: Run, and the actions it
// dispatches, are the only code that touches its state.
type App struct {
	name    string
	version string
	author  string

	// root holds the built-ins followed by commands added with AddCommand.
	root *commands.Command

	// handlers maps a command name to its user data.
	handlers map[string]any

	out    io.Writer
	logger *log.Logger

	logLevel LogLevel
	editMode EditMode

	source      LineSource
	historyFile string
	prompt      string
	quitPrompt  string

	// settings delivers live updates, drained between lines.
	settings <-chan Settings

	sessionID string
}

// Shell is what the built-in commands need from the context they run in.
// *App implements it.
type Shell interface {
	commands.Context

	LogLevel() LogLevel
	SetLogLevel(level LogLevel)
	EditMode() EditMode
	SetEditMode(mode EditMode) error
}

// New creates a shell named name with the built-in commands attached.
func New(name string, opts ...Option) *App {
	a := &App{
		name:        name,
		root:        builtinCommands(),
		handlers:    make(map[string]any),
		out:         os.Stdout,
		logLevel:    LevelError,
		editMode:    Emacs,
		historyFile: DefaultHistoryFile,
		prompt:      DefaultPrompt,
		quitPrompt:  cli.DefaultQuitPrompt,
		sessionID:   uuid.NewString(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = newLogger(os.Stderr, name)
	}
	a.logger = a.logger.With("session", a.sessionID[:8])
	a.logger.SetLevel(a.logLevel.Level())
	return a
}

// AddCommand appends cmd to the top level of the tree.
func (a *App) AddCommand(cmd *commands.Command) {
	a.root.Add(cmd)
}

// AddCommandWithUserdata appends cmd and registers value under its name,
// replacing any value registered for that name before.
func (a *App) AddCommandWithUserdata(cmd *commands.Command, value any) {
	a.root.Add(cmd)
	a.handlers[cmd.Name()] = value
}

// =============================================================================
// CONTEXT
// =============================================================================

// Name returns the application name.
func (a *App) Name() string { return a.name }

// Version returns the application version.
func (a *App) Version() string { return a.version }

// Author returns the application author.
func (a *App) Author() string { return a.author }

// Root returns the command tree.
func (a *App) Root() *commands.Command { return a.root }

// Out returns the writer commands print to.
func (a *App) Out() io.Writer { return a.out }

// Logger returns the shell's logger.
func (a *App) Logger() *log.Logger { return a.logger }

// SessionID identifies this App in log output.
func (a *App) SessionID() string { return a.sessionID }

// Handler returns the user data registered for name.
func (a *App) Handler(name string) (any, error) {
	value, ok := a.handlers[name]
	if !ok {
		return nil, commands.MissingHandler(name)
	}
	return value, nil
}

// LogLevel returns the current verbosity.
func (a *App) LogLevel() LogLevel { return a.logLevel }

// SetLogLevel changes the verbosity. It takes effect for the next message.
func (a *App) SetLogLevel(level LogLevel) {
	a.logLevel = level
	a.logger.SetLevel(level.Level())
}

// EditMode returns the key bindings in use, or the ones that will be used
// once Run starts.
func (a *App) EditMode() EditMode {
	if a.source != nil {
		return a.source.EditMode()
	}
	return a.editMode
}

// SetEditMode switches key bindings on the active line source. Before Run,
// the mode is remembered and applied when the source is opened.
func (a *App) SetEditMode(mode EditMode) error {
	if a.source != nil {
		if err := a.source.SetEditMode(mode); err != nil {
			return err
		}
	}
	a.editMode = mode
	return nil
}

// =============================================================================
// READ LOOP
// =============================================================================

// Run reads and dispatches lines until the exit command runs, the user
// confirms quitting, or ctx is cancelled. Cancellation is noticed between
// lines; a blocked prompt is not interrupted.
//
// Errors returned by actions are reported and the loop continues. Run only
// fails when the line source cannot be opened or read.
func (a *App) Run(ctx context.Context) error {
	source, err := a.openSource()
	if err != nil {
		return err
	}

	if loader, ok := source.(HistoryLoader); ok {
		if err := loader.LoadHistory(); err != nil {
			a.logger.Debug("history not loaded", "file", a.historyFile, "err", err)
			fmt.Fprintln(a.out, cli.RenderConditional(cli.DimStyle, "No previous history."))
		}
	}

	source.SetCompleter(commands.NewCompleter(a.root, commands.WithLogger(a.logger)))
	a.logger.Info("starting CLI loop", "commands", len(a.root.Children()))

	err = a.loop(ctx, source)

	if closeErr := source.Close(); closeErr != nil {
		a.logger.Error("failed to close line source", "err", closeErr)
		if err == nil {
			err = fmt.Errorf("failed to close line source: %w", closeErr)
		}
	}
	a.source = nil
	return err
}

// openSource returns the configured line source, falling back to liner, and
// brings it to the requested edit mode.
func (a *App) openSource() (LineSource, error) {
	if a.source == nil {
		a.source = NewLinerSource(a.historyFile)
	}
	if a.source.EditMode() != a.editMode {
		if err := a.source.SetEditMode(a.editMode); err != nil {
			a.source.Close()
			a.source = nil
			return nil, fmt.Errorf("failed to open line source: %w", err)
		}
	}
	return a.source, nil
}

func (a *App) loop(ctx context.Context, source LineSource) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		a.applySettings()

		line, err := source.Prompt(a.prompt)
		if err != nil {
			if !errors.Is(err, ErrInterrupted) && !errors.Is(err, io.EOF) {
				return fmt.Errorf("failed to read line: %w", err)
			}
			fmt.Fprintln(a.out, cli.RenderConditional(cli.ErrorStyle, "Error: "+err.Error()))
			if a.confirmQuit(source) {
				return nil
			}
			continue
		}

		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}
		source.AppendHistory(line)
		a.logger.Log(TraceLevel, "read line", "line", line)

		code, err := commands.Run(a, a.root, args)
		if err != nil {
			a.logger.Debug("command failed", "args", args, "err", err)
		}
		if code == commands.Exit {
			a.logger.Info("leaving CLI loop")
			return nil
		}
	}
}

// confirmQuit asks whether to leave after Ctrl-C or Ctrl-D. Input that has
// ended for good counts as yes.
func (a *App) confirmQuit(source LineSource) bool {
	answer, err := source.Prompt(a.quitPrompt)
	if err != nil {
		return errors.Is(err, io.EOF)
	}
	return cli.ParseConfirmation(answer)
}
