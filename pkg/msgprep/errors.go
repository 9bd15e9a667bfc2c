package msgprep

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for the failure kinds of a run.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	err := pipeline.Run(ctx, config)
//	if errors.Is(err, msgprep.ErrSchema) {
//	    // Input files do not have the expected columns
//	}
var (
	// ErrIO indicates an input path could not be read or the destination could not be written.
	ErrIO = errors.New("i/o error")

	// ErrSchema indicates the input does not have the expected structure
	// (missing identifier column, non-uniform category tokens, ...).
	ErrSchema = errors.New("schema error")

	// ErrValue indicates a decoded category value could not be coerced to a number.
	ErrValue = errors.New("value error")

	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUsage indicates the command line was malformed (wrong argument count).
	ErrUsage = errors.New("usage error")

	// ErrRelationNotFound indicates the requested relation does not exist in the store.
	ErrRelationNotFound = errors.New("relation not found")
)

// Stage names used in StageError.
const (
	StageLoad  = "load"
	StageClean = "clean"
	StageSave  = "save"
)

// StageError records which pipeline stage failed and on what input.
// It unwraps to the underlying error so errors.Is keeps working on sentinels.
type StageError struct {
	Stage string
	Input string
	Err   error
}

func (e *StageError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("%s failed: %v", e.Stage, e.Err)
	}
	return fmt.Sprintf("%s failed (%s): %v", e.Stage, e.Input, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrUsage):
		return ExitUsageError
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrIO):
		return ExitIOError
	case errors.Is(err, ErrSchema):
		return ExitSchemaError
	case errors.Is(err, ErrValue):
		return ExitValueError
	}

	// Cobra reports flag problems as plain errors
	errStr := err.Error()
	if strings.HasPrefix(errStr, "unknown flag") ||
		strings.HasPrefix(errStr, "unknown shorthand flag") ||
		strings.HasPrefix(errStr, "invalid argument") ||
		strings.HasPrefix(errStr, "unknown command") ||
		strings.Contains(errStr, "flag needs an argument") {
		return ExitUsageError
	}

	return ExitGeneralError
}
