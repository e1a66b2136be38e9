// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"io"

	"github.com/charmbracelet/log"
)

// =============================================================================
// EXECUTION RESULT
// =============================================================================

// ExecCode is the successful outcome of an action.
type ExecCode int

const (
	// Ok means the action finished and the shell keeps reading input.
	Ok ExecCode = iota

	// Exit asks the shell to leave its read loop.
	Exit
)

// String returns the name of the code.
func (c ExecCode) String() string {
	switch c {
	case Ok:
		return "Ok"
	case Exit:
		return "Exit"
	default:
		return "Unknown"
	}
}

// =============================================================================
// ACTION CONTRACT
// =============================================================================

// Action is the work bound to a command. args holds the tokens that were not
// consumed while resolving the command; it may be empty.
type Action interface {
	Exec(ctx Context, args []string) (ExecCode, error)
}

// ActionFunc adapts an ordinary function to the Action interface.
type ActionFunc func(ctx Context, args []string) (ExecCode, error)

// Exec calls f(ctx, args).
func (f ActionFunc) Exec(ctx Context, args []string) (ExecCode, error) {
	return f(ctx, args)
}

// Context gives actions access to the application that dispatched them.
//
// State an action needs between invocations belongs in the user-data registry
// reached through Handler, not in a closure.
type Context interface {
	// Name, Version and Author describe the application.
	Name() string
	Version() string
	Author() string

	// Root is the top of the command tree, for help and introspection.
	Root() *Command

	// Handler returns the value registered for a command name, or a
	// *MissingHandlerError.
	Handler(name string) (any, error)

	// Out is where commands write user-facing output.
	Out() io.Writer

	// Logger is the application's logger. Never nil.
	Logger() *log.Logger
}
