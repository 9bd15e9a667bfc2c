package tui

import (
	"io"
	"os"

	"golang.org/x/term"
)

// Mode represents how output is rendered.
type Mode int

const (
	// ModePlain is used for pipes, files and NO_COLOR terminals.
	ModePlain Mode = iota
	// ModeStyled is used when a human is at the terminal.
	ModeStyled
)

// DetectMode determines whether output written to w should be styled.
//
// Returns ModePlain if:
//   - w is not an *os.File
//   - w is not a terminal
//   - NO_COLOR is set (accessibility/automation indicator)
//
// Returns ModeStyled otherwise.
func DetectMode(w io.Writer) Mode {
	if os.Getenv("NO_COLOR") != "" {
		return ModePlain
	}

	f, ok := w.(*os.File)
	if !ok {
		return ModePlain
	}
	if !term.IsTerminal(int(f.Fd())) {
		return ModePlain
	}

	return ModeStyled
}
