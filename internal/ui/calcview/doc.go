// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package calcview provides the Bubble Tea front end of the calculator.
//
// Model wraps one calc.Calculator: key presses become calculator events,
// and after every event the view redraws the Display snapshot with the
// entry in the largest big-text scale that fits the window.
package calcview
