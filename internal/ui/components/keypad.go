// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/pocketkit/internal/calc"
	"github.com/jeranaias/pocketkit/internal/ui/styles"
)

// KeyKind groups keys that share a style.
type KeyKind int

const (
	KeyDigit KeyKind = iota
	KeyOperator
	KeyEquals
	KeyControl
)

// Button is one keypad key.
type Button struct {
	Label string
	Event string
	Kind  KeyKind
}

// Layout is the keypad grid, top row first.
var Layout = [][]Button{
	{{"C", calc.EventClear, KeyControl}, {"<", calc.EventBackspace, KeyControl}, {"±", calc.EventNegate, KeyControl}, {"÷", string(calc.Div), KeyOperator}},
	{{"7", "7", KeyDigit}, {"8", "8", KeyDigit}, {"9", "9", KeyDigit}, {"×", string(calc.Mul), KeyOperator}},
	{{"4", "4", KeyDigit}, {"5", "5", KeyDigit}, {"6", "6", KeyDigit}, {"-", string(calc.Sub), KeyOperator}},
	{{"1", "1", KeyDigit}, {"2", "2", KeyDigit}, {"3", "3", KeyDigit}, {"+", string(calc.Add), KeyOperator}},
	{{"0", "0", KeyDigit}, {".", calc.EventPoint, KeyDigit}, {"=", calc.EventEquals, KeyEquals}},
}

// Keypad renders Layout with a theme.
type Keypad struct {
	theme *styles.Theme
}

// NewKeypad creates a keypad.
func NewKeypad(theme *styles.Theme) *Keypad {
	return &Keypad{theme: theme}
}

// Enabled reports whether b accepts input given the calculator's operator
// state.
func (b Button) Enabled(operatorsEnabled bool) bool {
	if b.Kind == KeyOperator || b.Kind == KeyEquals {
		return operatorsEnabled
	}
	return true
}

// View draws the keypad. Operator and equals keys are drawn disabled when
// operatorsEnabled is false.
func (k *Keypad) View(operatorsEnabled bool) string {
	rows := make([]string, 0, len(Layout))
	for _, row := range Layout {
		cells := make([]string, 0, len(row))
		for _, b := range row {
			cells = append(cells, k.style(b, operatorsEnabled).Render(b.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (k *Keypad) style(b Button, operatorsEnabled bool) lipgloss.Style {
	if !b.Enabled(operatorsEnabled) {
		return k.theme.KeyDisabled
	}
	switch b.Kind {
	case KeyOperator:
		return k.theme.KeyOperator
	case KeyEquals:
		return k.theme.KeyEquals
	case KeyControl:
		return k.theme.KeyControl
	default:
		return k.theme.Key
	}
}
