// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the pocketkit tools.
//
// # Key Functions
//
// Display width:
//   - StringWidth: terminal column width of a string (wide runes count 2)
//   - TruncateWidth: cut a string to a column budget with an ellipsis
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	w := util.StringWidth("１２３") // 6
//	err := util.AtomicWriteFile(path, data, 0600)
package util
