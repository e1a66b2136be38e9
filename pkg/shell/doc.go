// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package shell runs an interactive read-resolve-execute loop over a
// command tree.
//
// An App owns the tree (pre-populated with built-in commands), a registry of
// per-command user data, its own log level and a LineSource that does the
// actual line editing. Each line read is split on whitespace and dispatched
// through commands.Run.
//
// # Key Types
//
//   - App: the shell, also the commands.Context handed to every action
//   - LineSource: line editing backend (LinerSource, ReadlineSource)
//   - LogLevel: shell-owned verbosity, set with the "log" command
//   - EditMode: emacs or vi key bindings, set with the "mode" command
//   - Settings: live updates applied between lines
//
// # Built-in Commands
//
//   - tree: print the command tree
//   - mode [vi|emacs]: show or change the edit mode
//   - log [off|error|warn|info|debug|trace]: show or change verbosity
//   - help [command...]: describe the root or a subtree
//   - exit: leave the loop
//   - version: print name, author and version
//
// # Usage
//
//	app := shell.New("xCLI", shell.WithVersion("v0.1"), shell.WithAuthor("me"))
//	app.AddCommand(commands.New("qwert").
//	    About("controls testing features").
//	    ActionFunc(func(ctx commands.Context, _ []string) (commands.ExecCode, error) {
//	        fmt.Fprintln(ctx.Out(), "tested")
//	        return commands.Ok, nil
//	    }))
//	if err := app.Run(context.Background()); err != nil {
//	    log.Fatal(err)
//	}
package shell
