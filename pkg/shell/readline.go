// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/chzyer/readline"

	"github.com/jeranaias/xcli/pkg/commands"
)

// =============================================================================
// READLINE SOURCE
// =============================================================================

// ReadlineSource reads lines with chzyer/readline, which supports both emacs
// and vi key bindings. History is appended to the file as lines are accepted.
type ReadlineSource struct {
	instance  *readline.Instance
	completer *commands.Completer

	// historyErr is the last failure to append to the history file.
	historyErr error
}

// NewReadlineSource opens a readline session on the terminal.
func NewReadlineSource(historyFile string, mode EditMode) (*ReadlineSource, error) {
	s := &ReadlineSource{}
	instance, err := readline.NewEx(&readline.Config{
		Prompt:                 DefaultPrompt,
		HistoryFile:            historyFile,
		DisableAutoSaveHistory: true,
		HistorySearchFold:      true,
		AutoComplete:           s,
		InterruptPrompt:        "^C",
		VimMode:                mode == Vi,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start readline: %w", err)
	}
	s.instance = instance
	return s, nil
}

// Prompt reads one line. Ctrl-C is reported as ErrInterrupted and Ctrl-D on
// an empty line as io.EOF.
func (s *ReadlineSource) Prompt(prompt string) (string, error) {
	s.instance.SetPrompt(prompt)
	line, err := s.instance.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", ErrInterrupted
	}
	return line, err
}

// AppendHistory records line in memory and in the history file.
func (s *ReadlineSource) AppendHistory(line string) {
	if err := s.instance.SaveHistory(line); err != nil {
		s.historyErr = err
	}
}

// SetCompleter installs c as the Tab handler.
func (s *ReadlineSource) SetCompleter(c *commands.Completer) {
	s.completer = c
}

// EditMode reports the active key bindings.
func (s *ReadlineSource) EditMode() EditMode {
	if s.instance.IsVimMode() {
		return Vi
	}
	return Emacs
}

// SetEditMode switches key bindings.
func (s *ReadlineSource) SetEditMode(mode EditMode) error {
	s.instance.SetVimMode(mode == Vi)
	return nil
}

// Close restores the terminal. It also reports the last history write that
// failed, if any.
func (s *ReadlineSource) Close() error {
	closeErr := s.instance.Close()
	if s.historyErr != nil {
		return errors.Join(fmt.Errorf("failed to save history: %w", s.historyErr), closeErr)
	}
	return closeErr
}

// Do implements readline.AutoCompleter. Candidates are inserted at the
// cursor; length is the rune count of the word being completed, which
// readline uses to line up the candidate list.
func (s *ReadlineSource) Do(line []rune, pos int) ([][]rune, int) {
	if s.completer == nil {
		return nil, 0
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(line) {
		pos = len(line)
	}
	head := string(line[:pos])
	_, candidates := s.completer.Complete(head, len(head))

	out := make([][]rune, len(candidates))
	for i, candidate := range candidates {
		out[i] = []rune(candidate)
	}
	return out, wordLength(line[:pos])
}

// wordLength counts the runes after the last space.
func wordLength(line []rune) int {
	n := 0
	for i := len(line) - 1; i >= 0 && !unicode.IsSpace(line[i]); i-- {
		n++
	}
	return n
}
