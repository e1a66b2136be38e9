// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/xcli/pkg/commands"
)

// dispatch runs one line against app the way the read loop does.
func dispatch(t *testing.T, app *App, line string) (commands.ExecCode, error) {
	t.Helper()
	return commands.Run(app, app.Root(), strings.Fields(line))
}

func TestLogCommand(t *testing.T) {
	app, out := newTestApp(t, &scriptedSource{})

	_, err := dispatch(t, app, "log")
	require.NoError(t, err)
	assert.Equal(t, "Current log level is: ERROR\n", out.String())

	out.Reset()
	_, err = dispatch(t, app, "l trace")
	require.NoError(t, err)
	assert.Equal(t, LevelTrace, app.LogLevel())
	assert.Empty(t, out.String())

	_, err = dispatch(t, app, "log OFF")
	require.NoError(t, err)
	assert.Equal(t, LevelOff, app.LogLevel())
}

func TestLogCommand_Errors(t *testing.T) {
	tests := []struct {
		name    string
		line    string
		wantErr error
		wantOut string
	}{
		{
			name:    "unknown level",
			line:    "log loud",
			wantErr: &commands.BadArgumentError{},
			wantOut: "Bad argument: loud, invalid log level\n\nUsage:       log [off|error|warn|info|debug|trace]\n",
		},
		{
			name:    "too many arguments",
			line:    "log info debug",
			wantErr: &commands.BadSyntaxError{},
			wantOut: "Bad syntax\n\nUsage:       log [off|error|warn|info|debug|trace]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := newTestApp(t, &scriptedSource{})

			code, err := dispatch(t, app, tt.line)
			assert.Equal(t, commands.Ok, code)
			require.Error(t, err)
			assert.IsType(t, tt.wantErr, err)
			assert.Equal(t, tt.wantOut, out.String())
			assert.Equal(t, LevelError, app.LogLevel())
		})
	}
}

func TestModeCommand(t *testing.T) {
	source := &scriptedSource{viOK: true}
	app, out := newTestApp(t, source)

	_, err := dispatch(t, app, "mode")
	require.NoError(t, err)
	assert.Equal(t, "Current edit mode is: Emacs\n", out.String())

	out.Reset()
	_, err = dispatch(t, app, "mode VI")
	require.NoError(t, err)
	assert.Equal(t, Vi, source.mode)

	_, err = dispatch(t, app, "mode")
	require.NoError(t, err)
	assert.Equal(t, "Current edit mode is: Vi\n", out.String())
}

func TestModeCommand_Errors(t *testing.T) {
	t.Run("unknown mode", func(t *testing.T) {
		app, out := newTestApp(t, &scriptedSource{})
		_, err := dispatch(t, app, "mode Nano")
		var bad *commands.BadArgumentError
		require.True(t, errors.As(err, &bad))
		assert.Equal(t, "nano", bad.Detail)
		assert.Contains(t, out.String(), "Usage:       mode [vi|emacs]")
	})

	t.Run("unsupported by source", func(t *testing.T) {
		source := &scriptedSource{}
		app, out := newTestApp(t, source)
		_, err := dispatch(t, app, "mode vi")
		var other *commands.OtherError
		require.True(t, errors.As(err, &other))
		assert.Equal(t, "vi mode is not supported by the scripted line source\n", out.String())
		assert.Equal(t, Emacs, source.mode)
	})

	t.Run("too many arguments", func(t *testing.T) {
		app, _ := newTestApp(t, &scriptedSource{})
		_, err := dispatch(t, app, "mode vi emacs")
		assert.IsType(t, &commands.BadSyntaxError{}, err)
	})
}

func TestHelpCommand(t *testing.T) {
	app, out := newTestApp(t, &scriptedSource{})

	_, err := dispatch(t, app, "help")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"tree            : tree",
		"mode            : mode [vi|emacs]",
		"log, l          : log [off|error|warn|info|debug|trace]",
		"help, h         : help [command]",
		"exit            : exit",
		"version, v      : version",
		"",
	}, "\n"), out.String())

	out.Reset()
	_, err = dispatch(t, app, "h log")
	require.NoError(t, err)
	assert.Equal(t, "Command:     log, l \n"+
		"Usage:       log [off|error|warn|info|debug|trace]\n"+
		"Description: manages log level filter\n", out.String())

	out.Reset()
	_, err = dispatch(t, app, "help nothing here")
	require.NoError(t, err)
	assert.Equal(t, "Unrecognized command [\"nothing\" \"here\"]\n", out.String())
}

func TestHelpCommand_Category(t *testing.T) {
	app, out := newTestApp(t, &scriptedSource{})
	app.AddCommand(commands.New("demo").About("demo commands").Subcommands(
		commands.NewWithAlias("test1", "t1").Usage("test1 [args]"),
	))

	_, err := dispatch(t, app, "help demo")
	require.NoError(t, err)
	assert.Equal(t, "Command:     demo\n"+
		"Usage:       demo\n"+
		"Description: demo commands\n"+
		"\n"+
		"test1, t1       : test1 [args]\n", out.String())
}

func TestTreeCommand(t *testing.T) {
	app, out := newTestApp(t, &scriptedSource{})
	app.AddCommand(commands.New("demo").Subcommand(commands.New("inner")))

	_, err := dispatch(t, app, "tree")
	require.NoError(t, err)
	assert.Equal(t, "├──tree\n├──mode\n├──log\n├──help\n├──exit\n├──version\n├──demo\n├──────inner\n\n", out.String())
}

func TestExitAndVersion(t *testing.T) {
	app, out := newTestApp(t, &scriptedSource{})

	code, err := dispatch(t, app, "exit")
	require.NoError(t, err)
	assert.Equal(t, commands.Exit, code)

	code, err = dispatch(t, app, "v")
	require.NoError(t, err)
	assert.Equal(t, commands.Ok, code)
	assert.Equal(t, "xCLI\nTest Author\nv0.1\n\n", out.String())
}
