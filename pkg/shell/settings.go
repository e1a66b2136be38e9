// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package shell

import (
	"errors"
	"fmt"
)

// Settings is a batch of changes applied to a running shell. Empty fields
// are left alone.
type Settings struct {
	Prompt   string
	LogLevel string
	EditMode string
}

// Apply changes the shell's settings. Every valid field is applied even when
// another field is rejected.
func (a *App) Apply(s Settings) error {
	var errs []error

	if s.Prompt != "" {
		a.prompt = s.Prompt
	}
	if s.LogLevel != "" {
		level, err := ParseLogLevel(s.LogLevel)
		if err != nil {
			errs = append(errs, fmt.Errorf("log level %q: %w", s.LogLevel, err))
		} else {
			a.SetLogLevel(level)
		}
	}
	if s.EditMode != "" {
		mode, err := ParseEditMode(s.EditMode)
		if err == nil {
			err = a.SetEditMode(mode)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("edit mode %q: %w", s.EditMode, err))
		}
	}
	return errors.Join(errs...)
}

// applySettings applies every update waiting on the settings channel.
func (a *App) applySettings() {
	for {
		select {
		case s, ok := <-a.settings:
			if !ok {
				a.settings = nil
				return
			}
			if err := a.Apply(s); err != nil {
				a.logger.Warn("settings partly rejected", "err", err)
				continue
			}
			a.logger.Info("settings applied")
		default:
			return
		}
	}
}
