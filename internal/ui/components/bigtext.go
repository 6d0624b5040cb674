// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Display scales.
const (
	ScalePlain  = 1
	ScalePacked = 2
	ScaleSpaced = 3

	// MaxScale is the scale FitScale starts from.
	MaxScale = ScaleSpaced
)

// glyphRows is the height of a big glyph.
const glyphRows = 3

// font maps the runes a number can contain to segment glyphs.
var font = map[rune][glyphRows]string{
	'0': {" _ ", "| |", "|_|"},
	'1': {"   ", "  |", "  |"},
	'2': {" _ ", " _|", "|_ "},
	'3': {" _ ", " _|", " _|"},
	'4': {"   ", "|_|", "  |"},
	'5': {" _ ", "|_ ", " _|"},
	'6': {" _ ", "|_ ", "|_|"},
	'7': {" _ ", "  |", "  |"},
	'8': {" _ ", "|_|", "|_|"},
	'9': {" _ ", "|_|", " _|"},
	'.': {" ", " ", "."},
	'-': {"   ", " _ ", "   "},
	'+': {"   ", "_|_", " | "},
	'e': {" _ ", "|_ ", "|_ "},
}

// Drawable reports whether every rune of s has a big glyph.
func Drawable(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if _, ok := font[r]; !ok {
			return false
		}
	}
	return true
}

// Measure returns the width in columns of s rendered at scale. Text that
// is not Drawable is measured as plain text at every scale.
func Measure(s string, scale int) int {
	if scale <= ScalePlain || !Drawable(s) {
		return runewidth.StringWidth(s)
	}
	width := 0
	n := 0
	for _, r := range s {
		width += runewidth.StringWidth(font[r][0])
		n++
	}
	if scale >= ScaleSpaced && n > 1 {
		width += n - 1
	}
	return width
}

// FitScale returns the largest scale, starting at maxScale, at which s
// fits in width minus margin columns. It bottoms out at ScalePlain even if
// the plain text is still too wide.
func FitScale(s string, width, margin, maxScale int) int {
	available := width - margin
	for scale := maxScale; scale > ScalePlain; scale-- {
		if Drawable(s) && Measure(s, scale) <= available {
			return scale
		}
	}
	return ScalePlain
}

// RenderBig draws s at scale. Scales above ScalePlain return glyphRows
// lines joined by newlines; text that is not Drawable is returned as is.
func RenderBig(s string, scale int) string {
	if scale <= ScalePlain || !Drawable(s) {
		return s
	}
	gap := ""
	if scale >= ScaleSpaced {
		gap = " "
	}

	var rows [glyphRows]strings.Builder
	first := true
	for _, r := range s {
		g := font[r]
		for i := range rows {
			if !first {
				rows[i].WriteString(gap)
			}
			rows[i].WriteString(g[i])
		}
		first = false
	}

	lines := make([]string, glyphRows)
	for i := range rows {
		lines[i] = rows[i].String()
	}
	return strings.Join(lines, "\n")
}
