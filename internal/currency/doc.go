// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package currency provides a client for the CurrencyConverterAPI
// exchange-rate service and the interactive session built on it.
//
// # Key Types
//
//   - Client: HTTP client for the currencies and convert endpoints
//   - Config: endpoint, API key, timeout and request pacing
//   - Session: the list/rate/convert command loop
//   - APIError: a non-2xx response from the service
//
// # Usage
//
//	client := currency.NewClient(currency.Config{
//	    BaseURL: "https://free.currconv.com/",
//	    APIKey:  key,
//	    Timeout: 10 * time.Second,
//	})
//	r, err := client.Rate(ctx, "USD", "EUR")
//
// # Errors
//
// A missing API key is reported as ErrMissingAPIKey before any request is
// made. Unparseable bodies wrap ErrMalformedResponse; an empty convert
// result is ErrEmptyResponse and a result without the requested pair is
// ErrUnsupportedPair.
package currency
