// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/xcli/internal/cli"
	"github.com/jeranaias/xcli/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete xcli configuration.
type Config struct {
	// Shell holds prompt and loop settings
	Shell ShellConfig `toml:"shell"`

	// Logging holds the initial verbosity
	Logging LoggingConfig `toml:"logging"`

	// Editor selects and configures the line source
	Editor EditorConfig `toml:"editor"`
}

// ShellConfig contains settings of the read loop.
type ShellConfig struct {
	// Prompt is printed before every line
	Prompt string `toml:"prompt"`

	// QuitPrompt is asked on Ctrl-C or Ctrl-D before leaving
	QuitPrompt string `toml:"quit_prompt"`

	// Watch reloads this file while the shell runs
	Watch bool `toml:"watch"`
}

// LoggingConfig contains log settings.
type LoggingConfig struct {
	// Level is one of off, error, warn, info, debug, trace
	Level string `toml:"level"`
}

// EditorConfig contains line editing settings.
type EditorConfig struct {
	// LineSource is "liner" or "readline"
	LineSource string `toml:"line_source"`

	// Mode is "emacs" or "vi"; liner only supports emacs
	Mode string `toml:"mode"`

	// HistoryFile is where input history is kept; "~/" is expanded
	HistoryFile string `toml:"history_file"`
}

// Accepted values, lowercase.
var (
	LogLevels   = []string{"off", "error", "warn", "info", "debug", "trace"}
	EditModes   = []string{"emacs", "vi"}
	LineSources = []string{"liner", "readline"}
)

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a configuration with every field set.
func Default() *Config {
	return &Config{
		Shell: ShellConfig{
			Prompt:     "# ",
			QuitPrompt: cli.DefaultQuitPrompt,
			Watch:      false,
		},
		Logging: LoggingConfig{
			Level: "error",
		},
		Editor: EditorConfig{
			LineSource:  "liner",
			Mode:        "emacs",
			HistoryFile: defaultHistoryFile(),
		},
	}
}

func defaultHistoryFile() string {
	dir, err := ConfigDir()
	if err != nil {
		return "history.txt"
	}
	return filepath.Join(dir, "history.txt")
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the xcli configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".xcli"), nil
}

// ConfigPathTOML returns the path to the default config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ExpandPath replaces a leading "~/" with the home directory.
func ExpandPath(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load reads ~/.xcli/config.toml when it exists, then applies environment
// overrides and validates. A missing file is not an error.
func Load() (*Config, error) {
	if path, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads the TOML file at path with overrides and validation.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}
	if err := LoadTOML(cfg, path); err != nil {
		return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
	}

	cfg.ApplyEnvOverrides()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadTOML decodes the file at path into cfg and fills unset fields.
// Keys the schema does not know are rejected, so typos surface early.
func LoadTOML(cfg *Config, path string) error {
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, key := range undecoded {
			keys = append(keys, key.String())
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	fillDefaults(cfg)
	return nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Shell.Prompt == "" {
		cfg.Shell.Prompt = defaults.Shell.Prompt
	}
	if cfg.Shell.QuitPrompt == "" {
		cfg.Shell.QuitPrompt = defaults.Shell.QuitPrompt
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Logging.Level
	}
	if cfg.Editor.LineSource == "" {
		cfg.Editor.LineSource = defaults.Editor.LineSource
	}
	if cfg.Editor.Mode == "" {
		cfg.Editor.Mode = defaults.Editor.Mode
	}
	if cfg.Editor.HistoryFile == "" {
		cfg.Editor.HistoryFile = defaults.Editor.HistoryFile
	}
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save writes cfg to the default config file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML writes cfg to path atomically with 0600 permissions.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	buf.WriteString("# xcli configuration file\n")
	buf.WriteString("# Generated by xcli - edit with care\n\n")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	msgs := make([]string, 0, len(e))
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks every enumerated field. Values are compared
// case-insensitively, matching how the shell parses them.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if !oneOf(c.Logging.Level, LogLevels) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("invalid level '%s', must be one of: %s", c.Logging.Level, strings.Join(LogLevels, ", ")),
		})
	}
	if !oneOf(c.Editor.Mode, EditModes) {
		errs = append(errs, ValidationError{
			Field:   "editor.mode",
			Message: fmt.Sprintf("invalid mode '%s', must be one of: %s", c.Editor.Mode, strings.Join(EditModes, ", ")),
		})
	}
	if !oneOf(c.Editor.LineSource, LineSources) {
		errs = append(errs, ValidationError{
			Field:   "editor.line_source",
			Message: fmt.Sprintf("invalid line source '%s', must be one of: %s", c.Editor.LineSource, strings.Join(LineSources, ", ")),
		})
	}
	if strings.EqualFold(c.Editor.LineSource, "liner") && strings.EqualFold(c.Editor.Mode, "vi") {
		errs = append(errs, ValidationError{
			Field:   "editor.mode",
			Message: "vi mode requires line_source = \"readline\"",
		})
	}
	if c.Shell.Prompt == "" {
		errs = append(errs, ValidationError{
			Field:   "shell.prompt",
			Message: "prompt cannot be empty",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - XCLI_PROMPT: overrides shell.prompt
//   - XCLI_WATCH: "1" or "true" enables shell.watch
//   - XCLI_LOG: overrides logging.level
//   - XCLI_LINE_SOURCE: overrides editor.line_source
//   - XCLI_MODE: overrides editor.mode
//   - XCLI_HISTORY: overrides editor.history_file
func (c *Config) ApplyEnvOverrides() {
	if prompt := os.Getenv("XCLI_PROMPT"); prompt != "" {
		c.Shell.Prompt = prompt
	}
	if watch := os.Getenv("XCLI_WATCH"); watch != "" {
		c.Shell.Watch = watch == "1" || strings.ToLower(watch) == "true"
	}
	if level := os.Getenv("XCLI_LOG"); level != "" {
		c.Logging.Level = level
	}
	if source := os.Getenv("XCLI_LINE_SOURCE"); source != "" {
		c.Editor.LineSource = source
	}
	if mode := os.Getenv("XCLI_MODE"); mode != "" {
		c.Editor.Mode = mode
	}
	if history := os.Getenv("XCLI_HISTORY"); history != "" {
		c.Editor.HistoryFile = history
	}
}
