// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"errors"
	"fmt"
	"strings"
)

// EditMode selects the key bindings of the line editor.
type EditMode int

const (
	Emacs EditMode = iota
	Vi
)

// ErrInvalidEditMode is returned by ParseEditMode for unknown names.
var ErrInvalidEditMode = errors.New("invalid edit mode")

// String returns "Emacs" or "Vi".
func (m EditMode) String() string {
	if m == Vi {
		return "Vi"
	}
	return "Emacs"
}

// ParseEditMode parses "vi" or "emacs", ignoring case.
func ParseEditMode(s string) (EditMode, error) {
	switch strings.ToLower(s) {
	case "vi":
		return Vi, nil
	case "emacs":
		return Emacs, nil
	default:
		return Emacs, ErrInvalidEditMode
	}
}

// UnsupportedModeError is returned by a line source that cannot switch to
// the requested mode.
type UnsupportedModeError struct {
	Source string
	Mode   EditMode
}

func (e *UnsupportedModeError) Error() string {
	return fmt.Sprintf("%s mode is not supported by the %s line source", strings.ToLower(e.Mode.String()), e.Source)
}
