// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bufio"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jeranaias/pocketkit/internal/calc"
	"github.com/jeranaias/pocketkit/internal/ui/calcview"
	"github.com/jeranaias/pocketkit/internal/ui/styles"
)

func newCalcCmd(app *App) *cobra.Command {
	var keys string

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Four-function calculator",
		Long: `Open the calculator keypad.

With --keys, or when stdin is not a terminal, the key sequence is applied
without a UI and the final display is printed: the expression line (when
there is one) and then the entry.`,
		Example: `  pocketkit calc
  pocketkit calc --keys "12+3="
  echo "5/0=" | pocketkit calc`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}

			if cmd.Flags().Changed("keys") {
				return runCalcKeys(app, calc.ParseKeys(keys))
			}
			if !isTerminal(app.in) || !isTerminal(app.out) {
				events, err := readKeys(app.in)
				if err != nil {
					return NewCommandError("calc", "read", "could not read keys from stdin", err)
				}
				return runCalcKeys(app, events)
			}

			model := calcview.New(calc.New(), calcview.Options{
				EntryMaxLen: cfg.Calc.EntryMaxLen,
				Margin:      cfg.Calc.Margin,
				Theme:       styles.NewTheme(cfg.UI.Theme),
				Logger:      app.log,
			})
			opts := []tea.ProgramOption{tea.WithInput(app.in), tea.WithOutput(app.out)}
			if cfg.UI.AltScreen {
				opts = append(opts, tea.WithAltScreen())
			}
			if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
				return NewCommandError("calc", "run", "terminal UI failed", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&keys, "keys", "", `key sequence to apply, e.g. "12+3=" or "5 neg * 2 ="`)
	return cmd
}

// runCalcKeys applies events to a fresh calculator and prints the display.
func runCalcKeys(app *App, events []string) error {
	c := calc.New()
	for _, e := range events {
		if err := c.Dispatch(e); err != nil {
			return &UsageError{err}
		}
		app.log.WithField("event", e).WithField("state", c.State()).Trace("calc event")
	}

	d := c.Display()
	if d.Expression != "" {
		fmt.Fprintln(app.out, d.Expression)
	}
	fmt.Fprintln(app.out, d.Entry)
	return nil
}

// readKeys parses every line of r as a key sequence.
func readKeys(r io.Reader) ([]string, error) {
	var events []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		events = append(events, calc.ParseKeys(scanner.Text())...)
	}
	return events, scanner.Err()
}
