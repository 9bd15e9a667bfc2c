// Package tui renders msgprep tables for the terminal.
//
// Output is styled with lipgloss when written to a terminal, and plain
// (ASCII borders, no colour) otherwise, so piped output stays stable.
package tui
