// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"errors"

	"github.com/jeranaias/xcli/pkg/commands"
)

// ErrInterrupted is returned by LineSource.Prompt when the user pressed
// Ctrl-C. End of input is reported as io.EOF.
var ErrInterrupted = errors.New("interrupted")

// LineSource is the line editor the shell reads from. It owns key bindings,
// history and how completions are presented.
type LineSource interface {
	// Prompt shows prompt and returns the next line without its newline.
	Prompt(prompt string) (string, error)

	// AppendHistory records a line the shell accepted.
	AppendHistory(line string)

	// SetCompleter installs the completer consulted on Tab.
	SetCompleter(c *commands.Completer)

	// EditMode returns the current key bindings.
	EditMode() EditMode

	// SetEditMode switches key bindings, or returns *UnsupportedModeError.
	SetEditMode(mode EditMode) error

	// Close persists history and restores the terminal.
	Close() error
}

// HistoryLoader is implemented by line sources whose history has to be
// loaded explicitly before the first prompt.
type HistoryLoader interface {
	LoadHistory() error
}
