// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/xcli/pkg/commands"
)

func testCompleter() *commands.Completer {
	root := commands.New("").Subcommands(
		commands.New("log").Subcommand(commands.New("level")),
		commands.New("list"),
	)
	return commands.NewCompleter(root)
}

// =============================================================================
// EDIT MODE
// =============================================================================

func TestParseEditMode(t *testing.T) {
	mode, err := ParseEditMode("VI")
	require.NoError(t, err)
	assert.Equal(t, Vi, mode)
	assert.Equal(t, "Vi", mode.String())

	mode, err = ParseEditMode("emacs")
	require.NoError(t, err)
	assert.Equal(t, Emacs, mode)
	assert.Equal(t, "Emacs", mode.String())

	_, err = ParseEditMode("nano")
	assert.ErrorIs(t, err, ErrInvalidEditMode)
}

func TestLinerSource_EditMode(t *testing.T) {
	s := &LinerSource{}
	assert.Equal(t, Emacs, s.EditMode())
	assert.NoError(t, s.SetEditMode(Emacs))

	err := s.SetEditMode(Vi)
	var unsupported *UnsupportedModeError
	require.ErrorAs(t, err, &unsupported)
	assert.Equal(t, "vi mode is not supported by the liner line source", err.Error())
}

func TestLinerSource_SaveHistoryDisabled(t *testing.T) {
	s := &LinerSource{}
	assert.NoError(t, s.SaveHistory())
	assert.Error(t, s.LoadHistory())
}

// =============================================================================
// COMPLETION ADAPTERS
// =============================================================================

func TestLinerWordCompleter(t *testing.T) {
	complete := linerWordCompleter(testCompleter())

	tests := []struct {
		name     string
		line     string
		pos      int
		wantComp []string
		wantTail string
	}{
		{"ambiguous", "l", 1, []string{"log ", "list "}, ""},
		{"partial", "lo", 2, []string{"log "}, ""},
		{"nested", "log l", 5, []string{"log level "}, ""},
		{"cursor mid line", "lo xyz", 2, []string{"log "}, " xyz"},
		{"cursor past end", "li", 10, []string{"list "}, ""},
		{"no match", "zz", 2, []string{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			head, comp, tail := complete(tt.line, tt.pos)
			assert.Empty(t, head)
			assert.Equal(t, tt.wantComp, comp)
			assert.Equal(t, tt.wantTail, tail)
		})
	}
}

func TestReadlineSource_Do(t *testing.T) {
	s := &ReadlineSource{completer: testCompleter()}

	tests := []struct {
		name       string
		line       string
		pos        int
		want       []string
		wantLength int
	}{
		{"ambiguous", "l", 1, []string{"og ", "ist "}, 1},
		{"nested", "log l", 5, []string{"evel "}, 1},
		{"complete token", "log", 3, []string{" "}, 3},
		{"after separator", "log ", 4, []string{"level "}, 0},
		{"no match", "zz", 2, []string{}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, length := s.Do([]rune(tt.line), tt.pos)
			words := make([]string, len(got))
			for i, r := range got {
				words[i] = string(r)
			}
			assert.Equal(t, tt.want, words)
			assert.Equal(t, tt.wantLength, length)
		})
	}
}

func TestReadlineSource_DoWithoutCompleter(t *testing.T) {
	got, length := (&ReadlineSource{}).Do([]rune("log"), 3)
	assert.Nil(t, got)
	assert.Zero(t, length)
}

func TestWordLength(t *testing.T) {
	assert.Equal(t, 0, wordLength(nil))
	assert.Equal(t, 3, wordLength([]rune("log")))
	assert.Equal(t, 2, wordLength([]rune("log ün")))
	assert.Equal(t, 0, wordLength([]rune("log ")))
}
