// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// THEME CREATION TESTS
// =============================================================================

func TestNewTheme_Modes(t *testing.T) {
	testCases := []struct {
		name     string
		wantName string
		wantDark bool
	}{
		{"dark", "dark", true},
		{"light", "light", false},
	}

	for _, tc := range testCases {
		theme := NewTheme(tc.name)
		if theme.Name != tc.wantName {
			t.Errorf("NewTheme(%q).Name = %q, want %q", tc.name, theme.Name, tc.wantName)
		}
		if theme.IsDark != tc.wantDark {
			t.Errorf("NewTheme(%q).IsDark = %v, want %v", tc.name, theme.IsDark, tc.wantDark)
		}
	}
}

func TestNewTheme_UnknownFallsBackToAuto(t *testing.T) {
	if got := NewTheme("neon").Name; got != "auto" {
		t.Errorf("expected auto, got %q", got)
	}
	if got := NewTheme("").Name; got != "auto" {
		t.Errorf("expected auto, got %q", got)
	}
}

func TestThemeInitStyles(t *testing.T) {
	theme := NewTheme("dark")

	styles := []struct {
		name  string
		style lipgloss.Style
	}{
		{"Frame", theme.Frame},
		{"Expression", theme.Expression},
		{"Entry", theme.Entry},
		{"EntryError", theme.EntryError},
		{"Key", theme.Key},
		{"KeyOperator", theme.KeyOperator},
		{"KeyEquals", theme.KeyEquals},
		{"KeyControl", theme.KeyControl},
		{"KeyDisabled", theme.KeyDisabled},
		{"Help", theme.Help},
	}

	for _, s := range styles {
		if rendered := s.style.Render("7"); rendered == "" {
			t.Errorf("%s style should render", s.name)
		}
	}
}

func TestPinnedColors(t *testing.T) {
	dark := NewTheme("dark")
	if got := dark.color(Rose); got != lipgloss.Color(Rose.Dark) {
		t.Errorf("dark theme should pin Rose to %s, got %v", Rose.Dark, got)
	}

	light := NewTheme("light")
	if got := light.color(Rose); got != lipgloss.Color(Rose.Light) {
		t.Errorf("light theme should pin Rose to %s, got %v", Rose.Light, got)
	}

	auto := NewTheme("auto")
	if _, ok := auto.color(Rose).(lipgloss.AdaptiveColor); !ok {
		t.Error("auto theme should keep adaptive colors")
	}
}

func TestKeyPadding(t *testing.T) {
	theme := NewTheme("light")
	if w := lipgloss.Width(theme.Key.Render("7")); w != 4 {
		t.Errorf("key cap width = %d, want 4 (padding 1 + glyph + padding 1 + margin 1)", w)
	}
}
