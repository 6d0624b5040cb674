// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jeranaias/pocketkit/internal/config"
)

const apiKeyField = "currency.api_key"

func newConfigCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change settings",
		Long: `Show or change settings in ~/.pocketkit/config.toml (or the file
given with --config).`,
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "show",
			Short: "Show the effective configuration",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return configShow(app)
			},
		},
		&cobra.Command{
			Use:   "get <key>",
			Short: "Print one setting",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return configGet(app, args[0])
			},
		},
		&cobra.Command{
			Use:     "set <key> <value>",
			Short:   "Change one setting and save it",
			Example: "  pocketkit config set calc.entry_max_len 20\n  pocketkit config set ui.theme light",
			Args:    cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				return configSet(app, args[0], args[1])
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print the configuration file path",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				path, err := config.ResolvePath(app.ConfigPath)
				if err != nil {
					return NewCommandError("config", "path", "could not resolve path", err)
				}
				fmt.Fprintln(app.out, path)
				return nil
			},
		},
	)
	return cmd
}

func configShow(app *App) error {
	cfg, err := app.Config()
	if err != nil {
		return err
	}

	fmt.Fprintln(app.out, TitleStyle.Render("Configuration"))
	for _, key := range config.GetAllKeys() {
		value, err := cfg.Get(key)
		if err != nil {
			return NewCommandError("config", "show", "unreadable key "+key, err)
		}
		fmt.Fprintln(app.out, LabelStyle.Render(key)+ValueStyle.Render(displayValue(key, value)))
	}
	return nil
}

func configGet(app *App, key string) error {
	cfg, err := app.Config()
	if err != nil {
		return err
	}
	value, err := cfg.Get(key)
	if err != nil {
		return &UsageError{err}
	}
	fmt.Fprintln(app.out, displayValue(key, value))
	return nil
}

// configSet edits the file itself rather than the effective configuration,
// so environment overrides are never written back.
func configSet(app *App, key, value string) error {
	path, err := config.ResolvePath(app.ConfigPath)
	if err != nil {
		return NewCommandError("config", "set", "could not resolve path", err)
	}
	cfg, err := config.LoadRaw(path)
	if err != nil {
		return NewCommandError("config", "set", "could not read "+path, err)
	}
	if err := cfg.Set(key, value); err != nil {
		return &UsageError{err}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.SaveFile(cfg, path); err != nil {
		return NewCommandError("config", "set", "could not save "+path, err)
	}

	app.log.WithField("key", key).WithField("path", path).Debug("config saved")
	fmt.Fprintln(app.out, SuccessStyle.Render("Saved")+" "+key+" = "+displayValue(key, value))
	return nil
}

func displayValue(key string, value interface{}) string {
	s := fmt.Sprint(value)
	if strings.ReplaceAll(strings.ToLower(key), "-", "_") == apiKeyField && s != "" {
		return "[REDACTED]"
	}
	if s == "" {
		return DimStyle.Render("(not set)")
	}
	return s
}
