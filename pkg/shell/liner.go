// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/peterh/liner"

	"github.com/jeranaias/xcli/internal/util"
	"github.com/jeranaias/xcli/pkg/commands"
)

// =============================================================================
// LINER SOURCE
// =============================================================================

// LinerSource reads lines with peterh/liner. It supports emacs key bindings
// only and keeps history in memory until Close writes it out.
type LinerSource struct {
	state       *liner.State
	historyFile string
}

// NewLinerSource puts the terminal into raw mode and returns a source that
// saves history to historyFile on Close. An empty historyFile disables
// persistence.
func NewLinerSource(historyFile string) *LinerSource {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetTabCompletionStyle(liner.TabPrints)
	return &LinerSource{state: state, historyFile: historyFile}
}

// LoadHistory reads the history file into the editor.
func (s *LinerSource) LoadHistory() error {
	if s.historyFile == "" {
		return errors.New("no history file configured")
	}
	f, err := os.Open(s.historyFile)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := s.state.ReadHistory(f); err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}
	return nil
}

// Prompt reads one line. Ctrl-C is reported as ErrInterrupted and Ctrl-D on
// an empty line as io.EOF.
func (s *LinerSource) Prompt(prompt string) (string, error) {
	line, err := s.state.Prompt(prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrInterrupted
	}
	return line, err
}

// AppendHistory records line.
func (s *LinerSource) AppendHistory(line string) {
	s.state.AppendHistory(line)
}

// SetCompleter installs c as the Tab handler.
func (s *LinerSource) SetCompleter(c *commands.Completer) {
	s.state.SetWordCompleter(linerWordCompleter(c))
}

// EditMode always returns Emacs.
func (s *LinerSource) EditMode() EditMode { return Emacs }

// SetEditMode accepts Emacs and rejects Vi.
func (s *LinerSource) SetEditMode(mode EditMode) error {
	if mode != Emacs {
		return &UnsupportedModeError{Source: "liner", Mode: mode}
	}
	return nil
}

// SaveHistory writes the history file, replacing it atomically.
func (s *LinerSource) SaveHistory() error {
	if s.historyFile == "" {
		return nil
	}
	var buf bytes.Buffer
	if _, err := s.state.WriteHistory(&buf); err != nil {
		return fmt.Errorf("failed to serialize history: %w", err)
	}
	if err := util.AtomicWriteFile(s.historyFile, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}

// Close saves history and restores the terminal.
func (s *LinerSource) Close() error {
	saveErr := s.SaveHistory()
	return errors.Join(saveErr, s.state.Close())
}

// linerWordCompleter adapts c to liner, whose cursor position counts runes.
// Candidates are inserted at the cursor, so head is everything before it.
func linerWordCompleter(c *commands.Completer) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		runes := []rune(line)
		if pos < 0 {
			pos = 0
		}
		if pos > len(runes) {
			pos = len(runes)
		}
		head, tail := string(runes[:pos]), string(runes[pos:])
		_, candidates := c.Complete(head, len(head))

		completions := make([]string, len(candidates))
		for i, candidate := range candidates {
			completions[i] = head + candidate
		}
		return "", completions, tail
	}
}
