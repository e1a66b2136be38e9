// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"bytes"
	"io"

	"github.com/charmbracelet/log"
)

// testContext is a minimal Context backed by a buffer.
type testContext struct {
	root     *Command
	handlers map[string]any
	out      bytes.Buffer
	logger   *log.Logger
}

func newTestContext(root *Command) *testContext {
	return &testContext{
		root:     root,
		handlers: make(map[string]any),
		logger:   log.New(io.Discard),
	}
}

func (c *testContext) Name() string        { return "test" }
func (c *testContext) Version() string     { return "v0.0" }
func (c *testContext) Author() string      { return "tester" }
func (c *testContext) Root() *Command      { return c.root }
func (c *testContext) Out() io.Writer      { return &c.out }
func (c *testContext) Logger() *log.Logger { return c.logger }

func (c *testContext) Handler(name string) (any, error) {
	value, ok := c.handlers[name]
	if !ok {
		return nil, MissingHandler(name)
	}
	return value, nil
}
