// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package calc implements the calculator's input and display state machine.
//
// A Calculator accepts discrete key events (digits, point, sign toggle,
// backspace, clear, the four operators and equals) and maintains the two
// visible lines of a pocket calculator: the entry being typed and the
// pending expression above it. It has no dependency on any UI toolkit;
// front ends read the Display snapshot after every event.
//
// # Key Types
//
//   - Calculator: the state machine
//   - Display: what a renderer draws after each event
//   - Operator: one of + - * /
//   - State: the derived state (Idle, EnteringLeft, PendingOp, ...)
//
// # Usage
//
//	c := calc.New()
//	_ = c.Run(calc.ParseKeys("12+3=")...)
//	d := c.Display() // d.Entry == "15", d.Expression == "12 + 3 ="
//
// # Errors
//
// Arithmetic faults never escape: dividing by zero puts the calculator in
// an error state that shows the message in place of the entry and disables
// operator input until the next digit, point, backspace or clear.
package calc
