// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
	"io"
)

// =============================================================================
// DISPATCH
// =============================================================================

// Run resolves args against root and runs the deepest matching command.
//
// Each token is compared against the children of the current node by name
// and alias, first match wins. Resolution stops when the tokens run out or no
// child matches, and the node reached is the dispatch target:
//
//   - with an action, the action runs with the unconsumed tokens; an error
//     it returns is printed to ctx.Out() and returned unchanged
//   - without an action and with tokens left, an unknown-command notice is
//     printed
//   - without an action and no tokens left, the node's help and a summary of
//     its children are printed
//
// At most one action runs per call. When err is non-nil the code is Ok.
func Run(ctx Context, root *Command, args []string) (ExecCode, error) {
	return run(ctx, root, args, 0)
}

// run resolves args[next:] below node. Tokens are addressed by index so the
// caller's slice is never copied.
func run(ctx Context, node *Command, args []string, next int) (ExecCode, error) {
	if next < len(args) {
		if sub := node.child(args[next]); sub != nil {
			return run(ctx, sub, args, next+1)
		}
	}

	rest := args[next:]
	out := ctx.Out()

	if node.action != nil {
		ctx.Logger().Debug("dispatching command", "command", node.name, "args", rest)
		code, err := node.action.Exec(ctx, rest)
		if err != nil {
			writeError(out, node, err)
			return Ok, err
		}
		return code, nil
	}

	if len(rest) > 0 {
		ctx.Logger().Debug("command has no action but got arguments", "command", node.name, "args", rest)
		fmt.Fprintf(out, "Unknown command or arguments: %q\n", rest)
		return Ok, nil
	}

	ctx.Logger().Debug("command has no action, showing help", "command", node.name)
	node.WriteHelp(out)
	node.WriteSubcommandHelp(out)
	return Ok, nil
}

// writeError prints an action failure. OtherError speaks for itself; every
// other error is followed by the command's usage.
func writeError(w io.Writer, cmd *Command, err error) {
	var other *OtherError
	if errors.As(err, &other) {
		fmt.Fprintln(w, other.Message)
		return
	}
	fmt.Fprintf(w, "%v\n\n", err)
	cmd.WriteUsage(w)
}

// =============================================================================
// LOOKUP
// =============================================================================

// Locate returns the command reached by following args from root, or nil
// as soon as a token matches no child. It never runs anything.
func Locate(root *Command, args []string) *Command {
	node := root
	for _, arg := range args {
		node = node.child(arg)
		if node == nil {
			return nil
		}
	}
	return node
}
