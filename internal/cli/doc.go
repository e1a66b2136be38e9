// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli holds the terminal-facing helpers shared by the shell and the
// xcli binary.
//
// # Key Types
//
//   - ValidationError, ConfigError: failures reported by the binary
//   - TerminalCapabilities: what the attached terminal supports
//
// # Terminal Handling
//
// Colors follow the usual conventions: NO_COLOR disables them, FORCE_COLOR
// enables them, and otherwise they are on only when stdout is a terminal.
// Every style renders as plain text when colors are off, so output captured
// in tests or piped to a file is stable.
//
// # Usage
//
//	fmt.Fprintln(out, cli.RenderConditional(cli.DimStyle, "No previous history."))
//	if cli.ParseConfirmation(answer) {
//	    return nil
//	}
//	os.Exit(cli.GetExitCode(err))
package cli
