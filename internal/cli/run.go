package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vvka-141/msgprep/internal/config"
	"github.com/vvka-141/msgprep/internal/files/filesystem"
	"github.com/vvka-141/msgprep/internal/logging"
	"github.com/vvka-141/msgprep/internal/services"
	"github.com/vvka-141/msgprep/internal/store"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

type runFlagValues struct {
	table            string
	idColumn         string
	messageColumn    string
	categoriesColumn string
	delimiter        string
	timeout          time.Duration
}

func addRunFlags(cmd *cobra.Command, f *runFlagValues) {
	flags := cmd.Flags()
	flags.StringVar(&f.table, "table", "", "Relation to replace (default: the destination for SQLite, \"messages\" for PostgreSQL)")
	flags.StringVar(&f.idColumn, "id-column", msgprep.DefaultIDColumn, "Identifier column shared by both inputs")
	flags.StringVar(&f.messageColumn, "message-column", msgprep.DefaultMessageColumn, "Message text column, used for deduplication")
	flags.StringVar(&f.categoriesColumn, "categories-column", msgprep.DefaultCategoriesColumn, "Column holding the encoded categories")
	flags.StringVar(&f.delimiter, "delimiter", string(msgprep.DefaultDelimiter), "Field delimiter of both input files (a single character, or \\t)")
	flags.DurationVar(&f.timeout, "timeout", msgprep.DefaultTimeout,
		"Deadline for the whole run (0 disables it)\n"+
			"Examples: 30s, 5m, 1h30m")
}

// buildRunConfig resolves the run configuration from files, env files and flags.
// Only flags set explicitly on the command line override the lower layers.
func buildRunConfig(cmd *cobra.Command, args []string, pflags *persistentFlagValues, f *runFlagValues) (msgprep.RunConfig, config.Settings, error) {
	settings, err := config.Resolve(".", pflags.configPath, pflags.envFiles)
	if err != nil {
		return msgprep.RunConfig{}, config.Settings{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("table") {
		settings.Table = f.table
	}
	if flags.Changed("id-column") {
		settings.IDColumn = f.idColumn
	}
	if flags.Changed("message-column") {
		settings.MessageColumn = f.messageColumn
	}
	if flags.Changed("categories-column") {
		settings.CategoriesColumn = f.categoriesColumn
	}
	if flags.Changed("delimiter") {
		d, err := config.ParseDelimiter(f.delimiter)
		if err != nil {
			return msgprep.RunConfig{}, config.Settings{}, err
		}
		settings.Delimiter = d
	}
	if flags.Changed("timeout") {
		settings.Timeout = f.timeout
	}
	if pflags.logFormat != "" {
		settings.LogFormat = pflags.logFormat
	}

	cfg := msgprep.RunConfig{
		MessagesPath:   args[0],
		CategoriesPath: args[1],
		Destination:    args[2],
		Verbose:        pflags.verbose,
	}
	settings.Apply(&cfg)

	if err := cfg.Validate(); err != nil {
		return msgprep.RunConfig{}, config.Settings{}, err
	}
	return cfg, settings, nil
}

func runPipeline(cmd *cobra.Command, args []string, pflags *persistentFlagValues, f *runFlagValues) error {
	cfg, settings, err := buildRunConfig(cmd, args, pflags, f)
	if err != nil {
		return err
	}

	runID := uuid.NewString()
	logger, err := logging.New(settings.LogFormat, cmd.ErrOrStderr(), cfg.Verbose, runID)
	if err != nil {
		return err
	}
	defer syncLogger(logger)

	logger.Verbose("Run %s", runID)
	logger.Verbose("Relation: %s", store.RelationName(cfg.Destination, cfg.Table))
	logger.Verbose("Columns: id=%s message=%s categories=%s, delimiter %q",
		cfg.IDColumn, cfg.MessageColumn, cfg.CategoriesColumn, cfg.Delimiter)

	pipeline := services.NewPipelineService(
		filesystem.NewOSFileSystem(),
		store.NewOpener(logger),
		logger,
		cmd.OutOrStdout(),
	)

	ctx, stop := withSignalCancel(cmd.Context(), cmd)
	defer stop()

	// cobra prints the returned error as the one-line diagnostic.
	if err := pipeline.Run(ctx, cfg); err != nil {
		logger.Verbose("Run %s failed", runID)
		return err
	}
	return nil
}

// withSignalCancel returns a context cancelled on SIGINT or SIGTERM.
func withSignalCancel(parent context.Context, cmd *cobra.Command) (context.Context, func()) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintln(cmd.ErrOrStderr(), "\n[INTERRUPT] Received interrupt signal, cancelling run...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}

func syncLogger(logger msgprep.Logger) {
	if s, ok := logger.(interface{ Sync() error }); ok {
		_ = s.Sync()
	}
}
