package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vvka-141/msgprep/internal/config"
	"github.com/vvka-141/msgprep/internal/logging"
	"github.com/vvka-141/msgprep/internal/store"
	"github.com/vvka-141/msgprep/internal/tui"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

const defaultInspectLimit = 10

type inspectFlagValues struct {
	table string
	limit int
}

func newInspectCmd(pflags *persistentFlagValues) *cobra.Command {
	f := &inspectFlagValues{}

	cmd := &cobra.Command{
		Use:   "inspect <destination>",
		Short: "Show the columns and first rows of a saved relation",
		Long: `Inspect reads a relation written by msgprep back from the destination
and prints its column kinds and first rows.

The relation name is resolved the same way as for a run: --table, then the
table setting of the config and env files, then the destination itself
(SQLite) or "messages" (PostgreSQL).`,
		Example: `  msgprep inspect DisasterResponse.db
  msgprep inspect DisasterResponse.db --table messages --limit 5
  msgprep inspect postgres://user@localhost/etl`,
		Args: requireDestination,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args[0], pflags, f)
		},
	}

	cmd.Flags().StringVar(&f.table, "table", "", "Relation to read (default: resolved like a run)")
	cmd.Flags().IntVar(&f.limit, "limit", defaultInspectLimit, "Number of rows to show (0 shows all)")

	return cmd
}

func runInspect(cmd *cobra.Command, destination string, pflags *persistentFlagValues, f *inspectFlagValues) error {
	settings, err := config.Resolve(".", pflags.configPath, pflags.envFiles)
	if err != nil {
		return err
	}
	if pflags.logFormat != "" {
		settings.LogFormat = pflags.logFormat
	}
	if f.limit < 0 {
		return fmt.Errorf("--limit cannot be negative: %w", msgprep.ErrInvalidConfig)
	}

	logger, err := logging.New(settings.LogFormat, cmd.ErrOrStderr(), pflags.verbose, uuid.NewString())
	if err != nil {
		return err
	}
	defer syncLogger(logger)

	tableName := settings.Table
	if cmd.Flags().Changed("table") {
		tableName = f.table
	}
	relation := store.RelationName(destination, tableName)

	ctx, stop := withSignalCancel(cmd.Context(), cmd)
	defer stop()

	st, err := store.OpenExisting(ctx, destination, logger)
	if err != nil {
		return err
	}
	defer st.Close()

	t, err := st.Read(ctx, relation)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	mode := tui.DetectMode(out)
	fmt.Fprint(out, tui.RenderSummary(relation, t, mode))
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.RenderRows(t, f.limit, mode))
	if f.limit > 0 && t.Len() > f.limit {
		fmt.Fprintf(out, "(%d of %d rows shown)\n", f.limit, t.Len())
	}
	return nil
}
