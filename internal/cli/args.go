package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

// requireRunArgs validates the three positional arguments of a run.
// On a wrong count the usage text goes to the command's stdout.
func requireRunArgs(cmd *cobra.Command, args []string) error {
	if len(args) != 3 {
		_ = cmd.Usage()
		return fmt.Errorf("expected 3 arguments <messages_path> <categories_path> <destination>, received %d: %w",
			len(args), msgprep.ErrUsage)
	}
	return nil
}

// requireDestination validates that exactly one destination argument is provided.
func requireDestination(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		_ = cmd.Usage()
		return fmt.Errorf("expected 1 argument <destination>, received %d: %w", len(args), msgprep.ErrUsage)
	}
	return nil
}
