// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"io"

	"github.com/charmbracelet/log"
)

// Option configures an App.
type Option func(*App)

// WithVersion sets the version printed by the version command.
func WithVersion(version string) Option {
	return func(a *App) { a.version = version }
}

// WithAuthor sets the author printed by the version command.
func WithAuthor(author string) Option {
	return func(a *App) { a.author = author }
}

// WithOutput redirects command output. Defaults to os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(a *App) { a.out = w }
}

// WithLogger replaces the default stderr logger. The shell sets its level.
func WithLogger(logger *log.Logger) Option {
	return func(a *App) { a.logger = logger }
}

// WithLogLevel sets the initial verbosity. Defaults to LevelError.
func WithLogLevel(level LogLevel) Option {
	return func(a *App) { a.logLevel = level }
}

// WithEditMode sets the initial key bindings. Defaults to Emacs.
func WithEditMode(mode EditMode) Option {
	return func(a *App) { a.editMode = mode }
}

// WithLineSource replaces the default liner source.
func WithLineSource(source LineSource) Option {
	return func(a *App) { a.source = source }
}

// WithHistoryFile sets where the default liner source keeps history.
func WithHistoryFile(path string) Option {
	return func(a *App) { a.historyFile = path }
}

// WithPrompt sets the prompt. Defaults to DefaultPrompt.
func WithPrompt(prompt string) Option {
	return func(a *App) { a.prompt = prompt }
}

// WithQuitPrompt sets the question asked after Ctrl-C or Ctrl-D.
func WithQuitPrompt(prompt string) Option {
	return func(a *App) { a.quitPrompt = prompt }
}

// WithSettings subscribes the shell to live settings updates.
func WithSettings(updates <-chan Settings) Option {
	return func(a *App) { a.settings = updates }
}
