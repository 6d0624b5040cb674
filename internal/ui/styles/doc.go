// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling system for the pocketkit
calculator TUI.

All colors use Lip Gloss AdaptiveColor for automatic light/dark terminal
detection. A Theme can also be pinned to a dark or light palette from the
ui.theme setting.

# Color System (colors.go)

  - Cyan - entry text and the focused key
  - Purple - operator keys
  - Emerald - the equals key
  - Rose - error messages
  - TextMuted - the expression line and disabled keys

# Theme (theme.go)

	theme := styles.NewTheme("auto")
	line := theme.Entry.Render("42")
*/
package styles
