// Package tui provides the terminal user interface for gix.
//
// It handles:
//   - Interactive prompts (text and confirm with bubbletea, selection with survey)
//   - Prompt input validation (Validator)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
