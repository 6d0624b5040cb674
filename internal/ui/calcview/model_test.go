// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calcview

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeranaias/pocketkit/internal/calc"
	"github.com/jeranaias/pocketkit/internal/ui/components"
	"github.com/jeranaias/pocketkit/internal/ui/styles"
)

func newModel(maxLen int) Model {
	return New(calc.New(), Options{EntryMaxLen: maxLen, Margin: 2, Theme: styles.NewTheme("dark")})
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press feeds each rune of keys as a separate key press.
func press(t *testing.T, m Model, keys string) Model {
	t.Helper()
	for _, r := range keys {
		next, _ := m.Update(runes(string(r)))
		m = next.(Model)
	}
	return m
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func TestModel_TypingAndEquals(t *testing.T) {
	m := press(t, newModel(0), "12+3")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	d := m.Calculator().Display()
	assert.Equal(t, "15", d.Entry)
	assert.Equal(t, "12 + 3 =", d.Expression)
}

func TestModel_KeyAliases(t *testing.T) {
	m := press(t, newModel(0), "6x7=")
	assert.Equal(t, "42", m.Calculator().Entry())

	m = press(t, m, "c")
	assert.Equal(t, "0", m.Calculator().Entry())

	m = press(t, m, "1,5n")
	assert.Equal(t, "-1.5", m.Calculator().Entry())
}

func TestModel_BackspaceAndEsc(t *testing.T) {
	m := press(t, newModel(0), "123")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "12", m.Calculator().Entry())

	m = press(t, m, "+")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, calc.Display{Entry: "0", OperatorsEnabled: true}, m.Calculator().Display())
}

func TestModel_DisabledOperatorsIgnored(t *testing.T) {
	m := press(t, newModel(0), "5/0=")
	require.True(t, m.Calculator().InError())

	m = press(t, m, "+-*/=")
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, calc.MsgDivisionByZero, m.Calculator().Entry())

	m = press(t, m, "7")
	assert.False(t, m.Calculator().InError())
	assert.Equal(t, "7", m.Calculator().Entry())
}

func TestModel_EntryMaxLen(t *testing.T) {
	m := press(t, newModel(4), "123456")
	assert.Equal(t, "1234", m.Calculator().Entry())

	m = press(t, m, ".")
	assert.Equal(t, "1234", m.Calculator().Entry(), "point past the cap is ignored")

	m = press(t, m, "+9")
	assert.Equal(t, "9", m.Calculator().Entry(), "a new operand starts below the cap")

	m = press(t, m, "=5")
	assert.Equal(t, "5", m.Calculator().Entry(), "digits replace a shown result")
}

func TestModel_Quit(t *testing.T) {
	for _, msg := range []tea.KeyMsg{runes("q"), {Type: tea.KeyCtrlC}} {
		_, cmd := send(t, newModel(0), msg)
		require.NotNil(t, cmd)
		assert.IsType(t, tea.QuitMsg{}, cmd())
	}
}

func TestModel_UnknownKeyIgnored(t *testing.T) {
	m := press(t, newModel(0), "7z")
	assert.Equal(t, "7", m.Calculator().Entry())
}

func TestModel_HelpToggle(t *testing.T) {
	m := newModel(0)
	short := m.View()
	m = press(t, m, "?")
	assert.NotEqual(t, short, m.View())
	assert.Contains(t, m.View(), "operator")
}

func TestModel_WindowResizeRefits(t *testing.T) {
	m := press(t, newModel(0), "12345")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, components.ScaleSpaced, m.Scale())

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 24, Height: 40})
	assert.Equal(t, components.ScalePacked, m.Scale())

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 10, Height: 40})
	assert.Equal(t, components.ScalePlain, m.Scale())
}

func TestModel_ErrorShownPlain(t *testing.T) {
	m, _ := send(t, newModel(0), tea.WindowSizeMsg{Width: 200, Height: 40})
	m = press(t, m, "0/0=")
	assert.Equal(t, components.ScalePlain, m.Scale())
	assert.Contains(t, m.View(), calc.MsgUndefined)
}

func TestModel_ViewShowsExpression(t *testing.T) {
	m, _ := send(t, newModel(0), tea.WindowSizeMsg{Width: 80, Height: 40})
	m = press(t, m, "12+")
	view := m.View()
	assert.Contains(t, view, "12 +")
	assert.True(t, strings.Count(view, "\n") > 8)
}
