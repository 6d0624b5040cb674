// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package calcview

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/jeranaias/pocketkit/internal/calc"
	"github.com/jeranaias/pocketkit/internal/ui/components"
	"github.com/jeranaias/pocketkit/internal/ui/styles"
	"github.com/jeranaias/pocketkit/internal/util"
)

// DefaultWidth is used until the first WindowSizeMsg arrives.
const DefaultWidth = 40

// Options configure a Model.
type Options struct {
	// EntryMaxLen caps the entry length; digits and points past it are
	// ignored. Zero means no cap.
	EntryMaxLen int

	// Margin is kept free when fitting the entry to the window width.
	Margin int

	Theme  *styles.Theme
	Logger logrus.FieldLogger
}

// Model is the Bubble Tea model for the calculator.
type Model struct {
	calc   *calc.Calculator
	keys   KeyMap
	help   help.Model
	keypad *components.Keypad
	theme  *styles.Theme
	log    logrus.FieldLogger

	maxLen int
	margin int

	width  int
	height int
	scale  int
}

// New creates a model driving c.
func New(c *calc.Calculator, opts Options) Model {
	if opts.Theme == nil {
		opts.Theme = styles.NewTheme("auto")
	}
	if opts.Logger == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		opts.Logger = l
	}

	m := Model{
		calc:   c,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		keypad: components.NewKeypad(opts.Theme),
		theme:  opts.Theme,
		log:    opts.Logger,
		maxLen: opts.EntryMaxLen,
		margin: opts.Margin,
		width:  DefaultWidth,
	}
	m.refit()
	return m
}

// Calculator returns the calculator the model drives.
func (m Model) Calculator() *calc.Calculator {
	return m.calc
}

// Scale returns the big-text scale the entry is drawn at.
func (m Model) Scale() int {
	return m.scale
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.refit()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	event, ok := m.eventFor(msg)
	if !ok {
		return m, nil
	}
	if calc.IsOperatorEvent(event) && !m.calc.Display().OperatorsEnabled {
		return m, nil
	}
	if m.exceedsMax(event) {
		return m, nil
	}

	if err := m.calc.Dispatch(event); err != nil {
		m.log.WithError(err).WithField("event", event).Debug("calculator rejected event")
		return m, nil
	}
	m.log.WithFields(logrus.Fields{
		"event": event,
		"state": m.calc.State().String(),
	}).Trace("calculator event")

	m.refit()
	return m, nil
}

// eventFor maps a key press to a calculator event name.
func (m Model) eventFor(msg tea.KeyMsg) (string, bool) {
	switch {
	case key.Matches(msg, m.keys.Digit):
		return msg.String(), true
	case key.Matches(msg, m.keys.Point):
		return calc.EventPoint, true
	case key.Matches(msg, m.keys.Operator):
		return calc.Canonical(msg.String()), true
	case key.Matches(msg, m.keys.Equals):
		return calc.EventEquals, true
	case key.Matches(msg, m.keys.Backspace):
		return calc.EventBackspace, true
	case key.Matches(msg, m.keys.Clear):
		return calc.EventClear, true
	case key.Matches(msg, m.keys.Negate):
		return calc.EventNegate, true
	}
	return "", false
}

// exceedsMax reports whether event would grow the entry past maxLen.
func (m Model) exceedsMax(event string) bool {
	if m.maxLen <= 0 || m.calc.InError() || m.calc.ResultShown() {
		return false
	}
	entry := m.calc.Entry()
	if util.StringWidth(entry) < m.maxLen {
		return false
	}
	switch {
	case event == calc.EventPoint:
		return !strings.Contains(entry, ".")
	case len(event) == 1 && event[0] >= '0' && event[0] <= '9':
		return entry != calc.DefaultEntry
	}
	return false
}

// refit recomputes the entry scale for the current width.
func (m *Model) refit() {
	m.scale = components.FitScale(m.calc.Entry(), m.width, m.displayOverhead(), components.MaxScale)
}

// displayOverhead is the margin plus the frame's border and padding.
func (m Model) displayOverhead() int {
	return m.margin + m.theme.Frame.GetHorizontalFrameSize()
}

// View implements tea.Model.
func (m Model) View() string {
	d := m.calc.Display()
	inner := m.width - m.displayOverhead()
	if inner < 1 {
		inner = 1
	}
	line := lipgloss.NewStyle().Width(inner).Align(lipgloss.Right)

	entryStyle := m.theme.Entry
	if !d.OperatorsEnabled {
		entryStyle = m.theme.EntryError
	}

	expression := util.TruncateWidth(d.Expression, inner)
	if expression == "" {
		expression = " "
	}

	display := lipgloss.JoinVertical(lipgloss.Right,
		line.Render(m.theme.Expression.Render(expression)),
		line.Render(entryStyle.Render(components.RenderBig(d.Entry, m.scale))),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Frame.Render(display),
		"",
		m.keypad.View(d.OperatorsEnabled),
		"",
		m.theme.Help.Render(m.help.View(m.keys)),
	)
}
