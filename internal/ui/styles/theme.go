// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the styled components of the calculator view.
type Theme struct {
	// Name is the requested mode: "dark", "light" or "auto".
	Name string

	IsDark       bool
	ColorProfile termenv.Profile

	// Display area
	Frame      lipgloss.Style
	Expression lipgloss.Style
	Entry      lipgloss.Style
	EntryError lipgloss.Style

	// Keypad
	Key         lipgloss.Style
	KeyOperator lipgloss.Style
	KeyEquals   lipgloss.Style
	KeyControl  lipgloss.Style
	KeyDisabled lipgloss.Style

	// Footer
	Help lipgloss.Style
}

// NewTheme creates a theme. "dark" and "light" pin the palette; anything
// else follows the terminal background.
func NewTheme(name string) *Theme {
	t := &Theme{
		Name:         name,
		ColorProfile: lipgloss.ColorProfile(),
	}

	switch name {
	case "dark":
		t.IsDark = true
	case "light":
		t.IsDark = false
	default:
		t.Name = "auto"
		t.IsDark = lipgloss.HasDarkBackground()
	}

	t.initStyles()
	return t
}

// color picks the palette side for adaptive colors in a pinned theme.
func (t *Theme) color(c lipgloss.AdaptiveColor) lipgloss.TerminalColor {
	if t.Name == "auto" {
		return c
	}
	return pin(c, t.IsDark)
}

func (t *Theme) initStyles() {
	t.Frame = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(t.color(Overlay)).
		Padding(0, 1)

	t.Expression = lipgloss.NewStyle().
		Foreground(t.color(TextMuted))

	t.Entry = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.color(Cyan))

	t.EntryError = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.color(Rose))

	key := lipgloss.NewStyle().
		Background(t.color(SurfaceBright)).
		Padding(0, 1).
		MarginRight(1)

	t.Key = key.Foreground(t.color(TextPrimary))
	t.KeyOperator = key.Foreground(t.color(Purple)).Bold(true)
	t.KeyEquals = key.Foreground(t.color(Emerald)).Bold(true)
	t.KeyControl = key.Foreground(t.color(Amber))

	// Strikethrough gives disabled keys a cue that does not rely on color.
	t.KeyDisabled = key.Foreground(t.color(TextMuted)).Strikethrough(true)

	t.Help = lipgloss.NewStyle().
		Foreground(t.color(TextMuted))
}
