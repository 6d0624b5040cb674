// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components provides the rendering pieces of the calculator TUI.

# Big Text (bigtext.go)

RenderBig draws numbers in a three-row segment font. FitScale picks the
largest scale whose rendering fits the available width:

	scale := components.FitScale(entry, width, margin, components.MaxScale)
	view := components.RenderBig(entry, scale)

Scale 3 draws glyphs with a column between them, scale 2 packs them and
scale 1 is plain text. Text the font cannot draw, such as an error message,
only fits at scale 1.

# Keypad (keypad.go)

Keypad lays out the calculator buttons and draws operator keys disabled
while the calculator is in its error state.
*/
package components
