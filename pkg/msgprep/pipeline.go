package msgprep

import "context"

// Pipeline runs the load, clean and save stages once.
type Pipeline interface {
	// Run executes one run. Failures are returned as *StageError.
	Run(ctx context.Context, config RunConfig) error
}
