// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"

	"github.com/jeranaias/xcli/pkg/commands"
	"github.com/jeranaias/xcli/pkg/shell"
)

// registerDemoCommands adds a handful of commands that exercise dispatch,
// error reporting and per-command state.
func registerDemoCommands(app *shell.App) {
	app.AddCommand(commands.New("qwert").
		About("controls testing features").
		Usage("qwert").
		ActionFunc(qwertCommand))

	app.AddCommand(commands.New("demo").
		About("sample commands for every outcome").
		Subcommands(
			commands.NewWithAlias("test1", "t1").
				About("prints a marker").
				Usage("test1 [args...]").
				ActionFunc(test1Command),
			commands.New("mismatch").
				About("always wants ten arguments").
				Usage("mismatch a1 ... a10").
				ActionFunc(mismatchCommand),
			commands.New("bad").
				About("rejects its argument").
				Usage("bad [arg]").
				ActionFunc(badCommand),
			commands.New("missing").
				About("always misses an argument").
				Usage("missing <arg>").
				ActionFunc(missingCommand),
		))

	counter := 0
	app.AddCommandWithUserdata(commands.New("counter").
		About("counts its invocations").
		Usage("counter [reset]").
		ActionFunc(counterCommand), &counter)
}

func qwertCommand(ctx commands.Context, _ []string) (commands.ExecCode, error) {
	if sh, ok := ctx.(shell.Shell); ok {
		sh.SetLogLevel(shell.LevelInfo)
	}
	ctx.Logger().Info("qwert invoked")
	fmt.Fprintln(ctx.Out(), "tested")
	return commands.Ok, nil
}

func test1Command(ctx commands.Context, args []string) (commands.ExecCode, error) {
	fmt.Fprintln(ctx.Out(), "tested")
	ctx.Logger().Debug("test1 arguments", "args", args)
	return commands.Ok, nil
}

func mismatchCommand(_ commands.Context, args []string) (commands.ExecCode, error) {
	return commands.Ok, commands.MismatchArgument(10, len(args))
}

func badCommand(_ commands.Context, _ []string) (commands.ExecCode, error) {
	return commands.Ok, commands.BadArgument("bad")
}

func missingCommand(_ commands.Context, _ []string) (commands.ExecCode, error) {
	return commands.Ok, commands.MissingArgument()
}

func counterCommand(ctx commands.Context, args []string) (commands.ExecCode, error) {
	value, err := ctx.Handler("counter")
	if err != nil {
		return commands.Ok, err
	}
	count, ok := value.(*int)
	if !ok {
		return commands.Ok, commands.Otherf("counter state has unexpected type %T", value)
	}

	switch {
	case len(args) == 0:
		*count++
	case len(args) == 1 && args[0] == "reset":
		*count = 0
	case len(args) == 1:
		return commands.Ok, commands.BadArgument(args[0])
	default:
		return commands.Ok, commands.BadSyntax()
	}
	fmt.Fprintf(ctx.Out(), "counter = %d\n", *count)
	return commands.Ok, nil
}
