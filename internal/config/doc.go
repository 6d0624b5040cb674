// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for pocketkit.
//
// Supports both TOML and JSON configuration formats, with defaults,
// environment variable overrides, and validation.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - CalcConfig: Calculator entry limits and layout
//   - CurrencyConfig: Exchange-rate API endpoint, key and pacing
//   - RPSConfig: Game settings
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (CURRENCY_API_KEY, POCKETKIT_*)
//   - ~/.pocketkit/config.toml
//   - ~/.pocketkit/config.json
//   - Built-in defaults
//
// # Usage
//
//	cfg, err := config.Load()
//	if err != nil {
//	    return err
//	}
//	maxLen := cfg.Calc.EntryMaxLen
package config
