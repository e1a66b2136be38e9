// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "github.com/mattn/go-runewidth"

// PadRight pads s with spaces to the given display width. Strings already
// at least that wide are returned unchanged.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}
