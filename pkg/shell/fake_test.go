// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/jeranaias/xcli/internal/cli"
	"github.com/jeranaias/xcli/pkg/commands"
)

func TestMain(m *testing.M) {
	cli.ForceColorsEnabled(false)
	os.Exit(m.Run())
}

// step is one scripted reply to Prompt.
type step struct {
	line string
	err  error
}

// scriptedSource replays steps, then reports io.EOF forever.
type scriptedSource struct {
	steps     []step
	prompts   []string
	history   []string
	completer *commands.Completer
	mode      EditMode
	viOK      bool
	closed    bool
}

func lines(ls ...string) []step {
	steps := make([]step, len(ls))
	for i, l := range ls {
		steps[i] = step{line: l}
	}
	return steps
}

func (s *scriptedSource) Prompt(prompt string) (string, error) {
	s.prompts = append(s.prompts, prompt)
	if len(s.steps) == 0 {
		return "", io.EOF
	}
	next := s.steps[0]
	s.steps = s.steps[1:]
	return next.line, next.err
}

func (s *scriptedSource) AppendHistory(line string) { s.history = append(s.history, line) }

func (s *scriptedSource) SetCompleter(c *commands.Completer) { s.completer = c }

func (s *scriptedSource) EditMode() EditMode { return s.mode }

func (s *scriptedSource) SetEditMode(mode EditMode) error {
	if mode == Vi && !s.viOK {
		return &UnsupportedModeError{Source: "scripted", Mode: mode}
	}
	s.mode = mode
	return nil
}

func (s *scriptedSource) Close() error {
	s.closed = true
	return nil
}

// newTestApp returns an App writing to a buffer, with logging discarded.
func newTestApp(t *testing.T, source LineSource, opts ...Option) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	base := []Option{
		WithOutput(&out),
		WithLogger(log.New(io.Discard)),
		WithVersion("v0.1"),
		WithAuthor("Test Author"),
		WithLineSource(source),
	}
	return New("xCLI", append(base, opts...)...), &out
}
