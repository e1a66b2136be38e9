// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package commands provides the command tree behind an interactive shell.
//
// Commands form an ordered tree. Each node has a name, an optional alias,
// display text and an optional Action. Input lines are split into tokens and
// resolved against the tree one level per token; the deepest matching node
// runs its action with whatever tokens were left over.
//
// # Key Types
//
//   - Command: a node in the tree, built with chained setters
//   - Action: the unit of work bound to a leaf (ActionFunc adapts a func)
//   - Context: what an action may see of the application
//   - Completer: prefix completion over a snapshot of the tree
//
// # Usage
//
// Build a tree and dispatch a line:
//
//	root := commands.New("").Subcommands(
//	    commands.NewWithAlias("status", "st").
//	        About("shows status").
//	        ActionFunc(func(ctx commands.Context, args []string) (commands.ExecCode, error) {
//	            fmt.Fprintln(ctx.Out(), "ok")
//	            return commands.Ok, nil
//	        }),
//	)
//	code, err := commands.Run(ctx, root, strings.Fields(line))
//
// Complete a partially typed line:
//
//	completer := commands.NewCompleter(root)
//	_, candidates := completer.Complete("st", 2)
//	// candidates == []string{"atus "}
package commands
