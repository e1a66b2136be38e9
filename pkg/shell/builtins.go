// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"fmt"
	"strings"

	"github.com/jeranaias/xcli/internal/cli"
	"github.com/jeranaias/xcli/pkg/commands"
)

// builtinCommands returns the root every App starts from.
func builtinCommands() *commands.Command {
	return commands.New("").About("Interactive CLI").Subcommands(
		commands.New("tree").
			About("prints the whole command tree").
			Usage("tree").
			ActionFunc(treeCommand),
		commands.New("mode").
			About("manages the line editor mode, vi/emacs").
			Usage("mode [vi|emacs]").
			ActionFunc(modeCommand),
		commands.NewWithAlias("log", "l").
			About("manages log level filter").
			Usage("log [off|error|warn|info|debug|trace]").
			ActionFunc(logCommand),
		commands.NewWithAlias("help", "h").
			About("displays help information").
			Usage("help [command]").
			ActionFunc(helpCommand),
		commands.New("exit").
			About("quits CLI and exits to shell").
			ActionFunc(exitCommand),
		commands.NewWithAlias("version", "v").
			About("shows version information").
			ActionFunc(versionCommand),
	)
}

func treeCommand(ctx commands.Context, _ []string) (commands.ExecCode, error) {
	commands.PrintTree(ctx.Out(), ctx.Root(), "")
	return commands.Ok, nil
}

func modeCommand(ctx commands.Context, args []string) (commands.ExecCode, error) {
	sh, ok := ctx.(Shell)
	if !ok {
		return commands.Ok, commands.Other("edit mode is not available here")
	}

	switch len(args) {
	case 0:
		fmt.Fprintf(ctx.Out(), "Current edit mode is: %s\n", sh.EditMode())
		return commands.Ok, nil
	case 1:
		mode, err := ParseEditMode(args[0])
		if err != nil {
			return commands.Ok, commands.BadArgument(strings.ToLower(args[0]))
		}
		if err := sh.SetEditMode(mode); err != nil {
			return commands.Ok, commands.Other(err.Error())
		}
		ctx.Logger().Info("edit mode changed", "mode", mode)
		return commands.Ok, nil
	default:
		return commands.Ok, commands.BadSyntax()
	}
}

func logCommand(ctx commands.Context, args []string) (commands.ExecCode, error) {
	sh, ok := ctx.(Shell)
	if !ok {
		return commands.Ok, commands.Other("log level is not available here")
	}

	switch len(args) {
	case 0:
		fmt.Fprintf(ctx.Out(), "Current log level is: %s\n", sh.LogLevel())
		return commands.Ok, nil
	case 1:
		level, err := ParseLogLevel(args[0])
		if err != nil {
			return commands.Ok, commands.BadArgument(fmt.Sprintf("%s, %v", args[0], err))
		}
		sh.SetLogLevel(level)
		return commands.Ok, nil
	default:
		return commands.Ok, commands.BadSyntax()
	}
}

func helpCommand(ctx commands.Context, args []string) (commands.ExecCode, error) {
	out := ctx.Out()
	if len(args) == 0 {
		ctx.Root().WriteSubcommandHelp(out)
		return commands.Ok, nil
	}

	cmd := commands.Locate(ctx.Root(), args)
	if cmd == nil {
		fmt.Fprintf(out, "Unrecognized command %q\n", args)
		return commands.Ok, nil
	}
	cmd.WriteHelp(out)
	if len(cmd.Children()) > 0 {
		fmt.Fprintln(out)
		cmd.WriteSubcommandHelp(out)
	}
	return commands.Ok, nil
}

func exitCommand(_ commands.Context, _ []string) (commands.ExecCode, error) {
	return commands.Exit, nil
}

func versionCommand(ctx commands.Context, _ []string) (commands.ExecCode, error) {
	fmt.Fprintf(ctx.Out(), "%s\n%s\n%s\n\n",
		cli.RenderConditional(cli.TitleStyle, ctx.Name()), ctx.Author(), ctx.Version())
	return commands.Ok, nil
}
