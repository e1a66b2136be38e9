// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/xcli/pkg/commands"
)

// =============================================================================
// REGISTRATION
// =============================================================================

func TestNew_Builtins(t *testing.T) {
	app, _ := newTestApp(t, &scriptedSource{})

	var names []string
	for _, cmd := range app.Root().Children() {
		names = append(names, cmd.Name())
	}
	assert.Equal(t, []string{"tree", "mode", "log", "help", "exit", "version"}, names)
	assert.Equal(t, "Interactive CLI", app.Root().AboutText())
	assert.Equal(t, LevelError, app.LogLevel())
	assert.NotEmpty(t, app.SessionID())
}

func TestAddCommandWithUserdata(t *testing.T) {
	app, _ := newTestApp(t, &scriptedSource{})
	counter := 0
	app.AddCommandWithUserdata(commands.New("counter"), &counter)
	app.AddCommand(commands.New("plain"))

	value, err := app.Handler("counter")
	require.NoError(t, err)
	assert.Same(t, &counter, value)

	_, err = app.Handler("plain")
	var missing *commands.MissingHandlerError
	require.True(t, errors.As(err, &missing))
	assert.Equal(t, "plain", missing.Name)
}

func TestAddCommandWithUserdata_Replaces(t *testing.T) {
	app, _ := newTestApp(t, &scriptedSource{})
	app.AddCommandWithUserdata(commands.New("state"), 1)
	app.AddCommandWithUserdata(commands.New("state"), 2)

	value, err := app.Handler("state")
	require.NoError(t, err)
	assert.Equal(t, 2, value)
}

// =============================================================================
// READ LOOP
// =============================================================================

func TestRun_ExitCommand(t *testing.T) {
	source := &scriptedSource{steps: lines("exit", "version")}
	app, out := newTestApp(t, source)

	require.NoError(t, app.Run(context.Background()))
	assert.Empty(t, out.String())
	assert.Equal(t, []string{"exit"}, source.history)
	assert.True(t, source.closed)
	assert.NotNil(t, source.completer)
}

func TestRun_DispatchesUserCommand(t *testing.T) {
	source := &scriptedSource{steps: lines("counter", "  counter  ", "", "exit")}
	app, _ := newTestApp(t, source)

	count := 0
	app.AddCommandWithUserdata(commands.New("counter").ActionFunc(
		func(ctx commands.Context, _ []string) (commands.ExecCode, error) {
			h, err := ctx.Handler("counter")
			if err != nil {
				return commands.Ok, err
			}
			*h.(*int)++
			return commands.Ok, nil
		}), &count)

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, 2, count)
	assert.Equal(t, []string{"counter", "  counter  ", "exit"}, source.history)
}

func TestRun_ActionErrorKeepsLoopAlive(t *testing.T) {
	source := &scriptedSource{steps: lines("fail", "version", "exit")}
	app, out := newTestApp(t, source)
	app.AddCommand(commands.New("fail").Usage("fail now").ActionFunc(
		func(commands.Context, []string) (commands.ExecCode, error) {
			return commands.Ok, commands.BadSyntax()
		}))

	require.NoError(t, app.Run(context.Background()))
	assert.Contains(t, out.String(), "Bad syntax")
	assert.Contains(t, out.String(), "Usage:       fail now")
	assert.Contains(t, out.String(), "xCLI\nTest Author\nv0.1\n")
}

func TestRun_QuitConfirmation(t *testing.T) {
	tests := []struct {
		name     string
		steps    []step
		wantRuns int
	}{
		{
			name:     "interrupt then yes",
			steps:    []step{{err: ErrInterrupted}, {line: "y"}, {line: "tick"}},
			wantRuns: 0,
		},
		{
			name:     "interrupt then no",
			steps:    []step{{err: ErrInterrupted}, {line: "n"}, {line: "tick"}, {line: "exit"}},
			wantRuns: 1,
		},
		{
			name:     "interrupt then empty answer",
			steps:    []step{{err: ErrInterrupted}, {line: ""}, {line: "tick"}, {line: "exit"}},
			wantRuns: 1,
		},
		{
			name:     "eof then YES",
			steps:    []step{{line: "tick"}, {line: ""}, {err: io.EOF}, {line: "YES"}},
			wantRuns: 1,
		},
		{
			name:     "eof at confirmation",
			steps:    []step{{err: io.EOF}},
			wantRuns: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := &scriptedSource{steps: tt.steps}
			app, out := newTestApp(t, source, WithQuitPrompt("quit? "))
			runs := 0
			app.AddCommand(commands.New("tick").ActionFunc(
				func(commands.Context, []string) (commands.ExecCode, error) {
					runs++
					return commands.Ok, nil
				}))

			require.NoError(t, app.Run(context.Background()))
			assert.Equal(t, tt.wantRuns, runs)
			assert.Contains(t, out.String(), "Error: ")
			assert.Contains(t, source.prompts, "quit? ")
		})
	}
}

func TestRun_ReadFailure(t *testing.T) {
	boom := errors.New("terminal gone")
	source := &scriptedSource{steps: []step{{err: boom}}}
	app, _ := newTestApp(t, source)

	err := app.Run(context.Background())
	require.ErrorIs(t, err, boom)
	assert.True(t, source.closed)
}

func TestRun_ContextCancelled(t *testing.T) {
	source := &scriptedSource{steps: lines("version")}
	app, out := newTestApp(t, source)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := app.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
	assert.Empty(t, source.prompts)
}

func TestRun_UnsupportedInitialMode(t *testing.T) {
	source := &scriptedSource{}
	app, _ := newTestApp(t, source, WithEditMode(Vi))

	err := app.Run(context.Background())
	var unsupported *UnsupportedModeError
	require.ErrorAs(t, err, &unsupported)
	assert.True(t, source.closed)
}

func TestRun_AppliesSettings(t *testing.T) {
	updates := make(chan Settings, 1)
	updates <- Settings{Prompt: "xcli> ", LogLevel: "debug"}
	close(updates)

	source := &scriptedSource{steps: lines("exit")}
	app, _ := newTestApp(t, source, WithSettings(updates))

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, []string{"xcli> "}, source.prompts)
	assert.Equal(t, LevelDebug, app.LogLevel())
}

// =============================================================================
// SETTINGS
// =============================================================================

func TestApply_PartialFailure(t *testing.T) {
	source := &scriptedSource{}
	app, _ := newTestApp(t, source)

	err := app.Apply(Settings{Prompt: "> ", LogLevel: "loud", EditMode: "vi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidLogLevel)
	assert.Contains(t, err.Error(), "edit mode")

	// The valid field still took effect.
	assert.Equal(t, "> ", app.prompt)
	assert.Equal(t, LevelError, app.LogLevel())
}
