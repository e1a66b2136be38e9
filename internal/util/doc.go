// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util holds small helpers shared by the shell and its config.
//
// # Key Functions
//
//   - AtomicWriteFile: crash-safe file replacement (history, config)
//   - PadRight: pad to a display width, counting wide runes as two columns
//
// # Usage
//
//	err := util.AtomicWriteFile(historyPath, data, 0600)
//	line := util.PadRight("log, l ", 16) + ": " + usage
package util
