// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/jeranaias/pocketkit/internal/currency"
)

func newCurrencyCmd(app *App) *cobra.Command {
	var baseURL string

	cmd := &cobra.Command{
		Use:     "currency",
		Aliases: []string{"cc"},
		Short:   "Interactive currency converter",
		Long: `Start the currency converter.

Commands at the prompt: list, rate, convert, q. The API key is read from
CURRENCY_API_KEY or currency.api_key in the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.Config()
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.Currency.BaseURL = baseURL
			}

			client := currency.NewClient(currency.Config{
				BaseURL:         cfg.Currency.BaseURL,
				APIKey:          cfg.Currency.APIKey,
				Timeout:         cfg.Currency.Timeout(),
				RequestsPerHour: cfg.Currency.RequestsPerHour,
				Logger:          app.log,
			})
			if !client.IsConfigured() {
				app.log.Debug("no API key configured")
			}

			ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
			defer stop()

			prompter := newPrompter(app.in, app.out, "currency", app.log)
			defer prompter.Close()

			err = currency.NewSession(client, prompter, app.out).Run(ctx)
			if errors.Is(err, currency.ErrMissingAPIKey) {
				return &reportedError{err}
			}
			return err
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "override the exchange-rate API base URL")
	return cmd
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
