// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package rps implements a Rock-Paper-Scissors game against the computer.
//
// Winner decides a single round; Session runs the prompt loop and keeps a
// Scoreboard. The computer's moves come from a Chooser, random by default
// and seedable for reproducible games.
package rps
