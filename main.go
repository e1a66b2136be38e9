// xcli - interactive command-tree shell.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/jeranaias/xcli/internal/cli"
	"github.com/jeranaias/xcli/internal/config"
	"github.com/jeranaias/xcli/pkg/shell"
)

// Version information (set at build time)
var (
	Version = "v0.1"
	Author  = "Jesse Morgan / Morgan Forge"
)

const appName = "xCLI"

// flags holds the command-line overrides. Empty means "use the config".
type flags struct {
	configPath string
	logLevel   string
	editMode   string
	lineSource string
	history    string
	watch      bool
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	f, err := parseFlags(args)
	if errors.Is(err, pflag.ErrHelp) {
		return cli.ExitSuccess
	}
	if err != nil {
		return fail(err)
	}

	cfg, configPath, err := loadConfig(f)
	if err != nil {
		return fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	app, err := newApp(ctx, cfg, configPath)
	if err != nil {
		return fail(err)
	}
	registerDemoCommands(app)

	printBanner()
	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fail(err)
	}
	return cli.ExitSuccess
}

func fail(err error) int {
	fmt.Fprintln(os.Stderr, cli.RenderConditional(cli.ErrorStyle, "Error: "+err.Error()))
	return cli.GetExitCode(err)
}

// =============================================================================
// FLAGS AND CONFIG
// =============================================================================

func parseFlags(args []string) (*flags, error) {
	f := &flags{}
	fs := pflag.NewFlagSet("xcli", pflag.ContinueOnError)
	fs.StringVarP(&f.configPath, "config", "c", "", "config file (default ~/.xcli/config.toml)")
	fs.StringVarP(&f.logLevel, "log", "l", "", "log level: off, error, warn, info, debug, trace")
	fs.StringVarP(&f.editMode, "mode", "m", "", "edit mode: emacs or vi (vi needs --line-source readline)")
	fs.StringVar(&f.lineSource, "line-source", "", "line editor: liner or readline")
	fs.StringVar(&f.history, "history", "", "history file")
	fs.BoolVarP(&f.watch, "watch", "w", false, "apply config file changes while running")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, cli.NewValidationErrorWithExample("arguments", fs.Arg(0), "xcli takes no positional arguments", "xcli --log debug")
	}

	if f.logLevel != "" {
		if _, err := shell.ParseLogLevel(f.logLevel); err != nil {
			return nil, cli.NewValidationErrorWithExample("--log", f.logLevel, "unknown log level", "--log debug")
		}
	}
	if f.editMode != "" {
		if _, err := shell.ParseEditMode(f.editMode); err != nil {
			return nil, cli.NewValidationErrorWithExample("--mode", f.editMode, "unknown edit mode", "--mode vi")
		}
	}
	if f.lineSource != "" && f.lineSource != "liner" && f.lineSource != "readline" {
		return nil, cli.NewValidationErrorWithExample("--line-source", f.lineSource, "unknown line source", "--line-source readline")
	}
	return f, nil
}

// loadConfig reads the config file, then lets flags override it. The
// returned path is the file to watch.
func loadConfig(f *flags) (*config.Config, string, error) {
	path := f.configPath
	var (
		cfg *config.Config
		err error
	)
	if path != "" {
		cfg, err = config.LoadFromPath(config.ExpandPath(path))
	} else {
		path, _ = config.ConfigPathTOML()
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, "", &cli.ConfigError{Path: path, Err: err}
	}

	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.editMode != "" {
		cfg.Editor.Mode = f.editMode
	}
	if f.lineSource != "" {
		cfg.Editor.LineSource = f.lineSource
	}
	if f.history != "" {
		cfg.Editor.HistoryFile = config.ExpandPath(f.history)
	}
	if f.watch {
		cfg.Shell.Watch = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", &cli.ConfigError{Path: path, Err: err}
	}
	return cfg, path, nil
}

// =============================================================================
// APPLICATION
// =============================================================================

func newApp(ctx context.Context, cfg *config.Config, configPath string) (*shell.App, error) {
	level, _ := shell.ParseLogLevel(cfg.Logging.Level)
	mode, _ := shell.ParseEditMode(cfg.Editor.Mode)

	opts := []shell.Option{
		shell.WithVersion(Version),
		shell.WithAuthor(Author),
		shell.WithPrompt(cfg.Shell.Prompt),
		shell.WithQuitPrompt(cfg.Shell.QuitPrompt),
		shell.WithHistoryFile(cfg.Editor.HistoryFile),
		shell.WithLogLevel(level),
		shell.WithEditMode(mode),
	}

	if cfg.Editor.LineSource == "readline" {
		source, err := shell.NewReadlineSource(cfg.Editor.HistoryFile, mode)
		if err != nil {
			return nil, err
		}
		opts = append(opts, shell.WithLineSource(source))
	}

	var settings chan shell.Settings
	if cfg.Shell.Watch {
		settings = make(chan shell.Settings, 1)
		opts = append(opts, shell.WithSettings(settings))
	}

	app := shell.New(appName, opts...)
	app.Logger().Debug("terminal", "caps", fmt.Sprintf("%+v", cli.GetTerminalCapabilities()))

	if settings != nil {
		if err := watchConfig(ctx, configPath, app, settings); err != nil {
			app.Logger().Warn("config watching disabled", "err", err)
		}
	}
	return app, nil
}

// watchConfig forwards reloaded configs to the shell as Settings. Line
// source and history file changes need a restart and are not forwarded.
func watchConfig(ctx context.Context, path string, app *shell.App, settings chan shell.Settings) error {
	watcher, err := config.NewWatcher(path, app.Logger())
	if err != nil {
		return err
	}
	go watcher.Run(ctx)
	go func() {
		defer watcher.Close()
		for cfg := range watcher.Updates() {
			update := shell.Settings{
				Prompt:   cfg.Shell.Prompt,
				LogLevel: cfg.Logging.Level,
				EditMode: cfg.Editor.Mode,
			}
			select {
			case <-settings:
			default:
			}
			select {
			case settings <- update:
			case <-ctx.Done():
				return
			}
		}
	}()
	app.Logger().Info("watching config", "path", path)
	return nil
}

func printBanner() {
	fmt.Println(cli.RenderConditional(cli.TitleStyle, appName) + " " + Version)
	fmt.Println(cli.RenderSeparator(40))
	fmt.Println("Type \"help\" for commands, Tab to complete.")
}
