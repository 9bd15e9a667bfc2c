package logging

import (
	"fmt"
	"io"

	"github.com/vvka-141/msgprep/pkg/msgprep"
)

// Log formats accepted by New.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// New returns the logger for the requested format. An empty format means console.
func New(format string, out io.Writer, verbose bool, runID string) (msgprep.Logger, error) {
	switch format {
	case "", FormatConsole:
		return NewConsoleLoggerTo(out, verbose), nil
	case FormatJSON:
		return NewZapLogger(out, verbose, runID), nil
	default:
		return nil, fmt.Errorf("unknown log format %q (expected %s or %s): %w",
			format, FormatConsole, FormatJSON, msgprep.ErrInvalidConfig)
	}
}
