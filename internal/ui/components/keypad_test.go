// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"
	"testing"

	"github.com/jeranaias/pocketkit/internal/calc"
	"github.com/jeranaias/pocketkit/internal/ui/styles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayout_EventsDispatch(t *testing.T) {
	c := calc.New()
	for _, row := range Layout {
		for _, b := range row {
			require.NoError(t, c.Dispatch(b.Event), "button %q", b.Label)
		}
	}
}

func TestLayout_OperatorKinds(t *testing.T) {
	for _, row := range Layout {
		for _, b := range row {
			isOp := b.Kind == KeyOperator || b.Kind == KeyEquals
			assert.Equal(t, calc.IsOperatorEvent(b.Event), isOp, "button %q", b.Label)
		}
	}
}

func TestButton_Enabled(t *testing.T) {
	plus := Button{"+", "+", KeyOperator}
	seven := Button{"7", "7", KeyDigit}
	clear := Button{"C", calc.EventClear, KeyControl}

	assert.True(t, plus.Enabled(true))
	assert.False(t, plus.Enabled(false))
	assert.True(t, seven.Enabled(false))
	assert.True(t, clear.Enabled(false))
}

func TestKeypad_View(t *testing.T) {
	k := NewKeypad(styles.NewTheme("dark"))

	view := k.View(true)
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, len(Layout))
	for _, label := range []string{"C", "÷", "×", "=", "0", "±"} {
		assert.Contains(t, view, label)
	}

	assert.NotEmpty(t, k.View(false))
}
