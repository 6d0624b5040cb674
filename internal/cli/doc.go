// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the pocketkit command-line interface.
//
// # Key Types
//
//   - App: shared state of one invocation (streams, flags, config, logger)
//   - CommandError: a failed command with the exit code it maps to
//   - Prompter: line input for the interactive tools, liner-backed on a TTY
//
// # Usage
//
//	os.Exit(cli.Execute(os.Args[1:]))
//
// # Commands Overview
//
//   - calc: calculator TUI, or a one-shot evaluation with --keys
//   - currency: interactive exchange-rate client
//   - rps: Rock-Paper-Scissors
//   - config: show, get, set and locate configuration
//   - version, help
package cli
