// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/jeranaias/pocketkit/internal/rps"
)

func newRPSCmd(app *App) *cobra.Command {
	var seed int64

	cmd := &cobra.Command{
		Use:     "rps",
		Aliases: []string{"game"},
		Short:   "Play Rock-Paper-Scissors against the computer",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.RPS.Seed
			}
			app.log.WithField("seed", seed).Debug("starting rps")

			prompter := newPrompter(app.in, app.out, "rps", app.log)
			defer prompter.Close()

			session := rps.NewSession(prompter, app.out, rps.NewRandomChooser(seed))
			if err := session.Run(); err != nil {
				return NewCommandError("rps", "read", "input failed", err)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&seed, "seed", 0, "seed for the computer's moves (0 uses the clock)")
	return cmd
}
