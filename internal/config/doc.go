// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config loads the settings of the xcli shell.
//
// # Key Types
//
//   - Config: all settings, grouped into shell, logging and editor tables
//   - Watcher: reloads the config file when it changes on disk
//
// # Configuration Precedence
//
// Settings are resolved from (highest first):
//   - Command-line flags (applied by the binary)
//   - Environment variables (XCLI_*)
//   - ~/.xcli/config.toml, or the file given with --config
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(cfg.Logging.Level)
//
// Follow edits while the shell runs:
//
//	w, err := config.NewWatcher(path, logger)
//	go w.Run(ctx)
//	for cfg := range w.Updates() { ... }
package config
