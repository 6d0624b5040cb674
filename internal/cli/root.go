// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jeranaias/pocketkit/internal/config"
)

// Version information (overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// App is the state shared by the commands of one invocation.
type App struct {
	// Global flags
	ConfigPath string
	Verbose    bool
	Quiet      bool
	NoColor    bool

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg    *config.Config
	log    *logrus.Logger
	colors bool
}

// Config returns the loaded configuration, loading it on first use.
func (a *App) Config() (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	var (
		cfg *config.Config
		err error
	)
	if a.ConfigPath != "" {
		cfg, err = config.LoadFromPath(a.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, NewCommandError("config", "load", "could not load configuration", err)
	}

	a.cfg = cfg
	a.log.SetLevel(levelFor(cfg.Log.Level, a.Verbose, a.Quiet))
	a.log.WithField("path", a.ConfigPath).Debug("configuration loaded")
	return cfg, nil
}

// Logger returns the process logger.
func (a *App) Logger() *logrus.Logger {
	return a.log
}

// NewRootCmd builds the command tree reading from in and writing to out
// and errOut.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	app := &App{
		in:     in,
		out:    out,
		errOut: errOut,
		log:    newLogger(errOut, logrus.WarnLevel, false),
	}

	root := &cobra.Command{
		Use:           "pocketkit",
		Short:         "Pocket tools: a calculator, a currency converter and Rock-Paper-Scissors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.Verbose && app.Quiet {
				return &UsageError{fmt.Errorf("--verbose and --quiet cannot be used together")}
			}
			app.colors = ColorsEnabled(app.NoColor, out)
			applyColorProfile(app.colors)
			app.log = newLogger(errOut, levelFor("warn", app.Verbose, app.Quiet), ColorsEnabled(app.NoColor, errOut))
			return nil
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &UsageError{err}
	})

	flags := root.PersistentFlags()
	flags.StringVar(&app.ConfigPath, "config", "", "configuration file (default ~/.pocketkit/config.toml)")
	flags.BoolVarP(&app.Verbose, "verbose", "v", false, "debug logging to stderr")
	flags.BoolVarP(&app.Quiet, "quiet", "q", false, "only log errors")
	flags.BoolVar(&app.NoColor, "no-color", false, "disable colored output")

	root.AddCommand(
		newCalcCmd(app),
		newCurrencyCmd(app),
		newRPSCmd(app),
		newConfigCmd(app),
		newVersionCmd(app),
	)
	root.SetHelpCommand(newHelpCmd(app))

	return root
}

// Execute runs the CLI with args and returns the process exit code.
func Execute(args []string) int {
	return run(args, os.Stdin, os.Stdout, os.Stderr)
}

func run(args []string, in io.Reader, out, errOut io.Writer) int {
	root := NewRootCmd(in, out, errOut)
	root.SetArgs(args)

	err := root.Execute()
	if err != nil {
		var usageErr *UsageError
		if !errors.As(err, &usageErr) && isCobraUsageError(err) {
			err = &UsageError{err}
		}
		DisplayError(errOut, err)
	}
	return GetExitCode(err)
}

// isCobraUsageError recognizes the argument errors cobra returns as plain
// errors (unknown command, wrong argument count).
func isCobraUsageError(err error) bool {
	msg := err.Error()
	for _, prefix := range []string{"unknown command", "accepts ", "requires ", "unknown shorthand flag", "unknown flag"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
