// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// confirm.go - Yes/no answers for interactive confirmation.
//
// Every confirmation defaults to "no": only an explicit y or yes, in any
// case, counts as agreement. The prompt itself is read by whatever line
// source is active, so history and editing work there too.

package cli

import "strings"

// DefaultQuitPrompt asks before leaving the shell on Ctrl-C or Ctrl-D.
const DefaultQuitPrompt = "Do you really want to quit? [y/N] "

// ParseConfirmation reports whether answer agrees to a [y/N] prompt.
func ParseConfirmation(answer string) bool {
	response := strings.ToLower(strings.TrimSpace(answer))
	return response == "y" || response == "yes"
}
