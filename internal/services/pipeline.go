package services

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vvka-141/msgprep/internal/files/filesystem"
	"github.com/vvka-141/msgprep/internal/files/loader"
	"github.com/vvka-141/msgprep/internal/store"
	"github.com/vvka-141/msgprep/internal/transform"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

// PipelineService implements the Pipeline interface.
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance.
type PipelineService struct {
	fsProvider filesystem.FileSystemProvider
	openStore  store.Opener
	logger     msgprep.Logger
	out        io.Writer
}

// NewPipelineService creates a new PipelineService with all dependencies injected.
// Progress lines are written to out; diagnostics go to logger.
func NewPipelineService(
	fsProvider filesystem.FileSystemProvider,
	openStore store.Opener,
	logger msgprep.Logger,
	out io.Writer,
) *PipelineService {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if openStore == nil {
		panic("openStore cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if out == nil {
		panic("out cannot be nil")
	}

	return &PipelineService{
		fsProvider: fsProvider,
		openStore:  openStore,
		logger:     logger,
		out:        out,
	}
}

// Run loads both sources, cleans the joined table and replaces the destination relation.
// The destination is not touched unless loading and cleaning succeed.
func (s *PipelineService) Run(ctx context.Context, config msgprep.RunConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}

	if config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, config.Timeout)
		defer cancel()
	}

	s.printf("Loading data...\n    MESSAGES: %s\n    CATEGORIES: %s\n", config.MessagesPath, config.CategoriesPath)
	joined, err := s.load(ctx, config)
	if err != nil {
		return &msgprep.StageError{
			Stage: msgprep.StageLoad,
			Input: config.MessagesPath + ", " + config.CategoriesPath,
			Err:   err,
		}
	}

	s.printf("Cleaning data...\n")
	cleaned, err := s.clean(joined, config)
	if err != nil {
		return &msgprep.StageError{Stage: msgprep.StageClean, Input: config.CategoriesPath, Err: err}
	}

	display := store.DisplayName(config.Destination)
	s.printf("Saving data...\n    DATABASE: %s\n", display)
	if err := s.save(ctx, cleaned, config); err != nil {
		return &msgprep.StageError{Stage: msgprep.StageSave, Input: display, Err: err}
	}

	s.printf("Cleaned data saved to database!\n")
	return nil
}

func (s *PipelineService) load(ctx context.Context, config msgprep.RunConfig) (*msgprep.Table, error) {
	l := loader.NewLoader(s.fsProvider, loader.Options{
		IDColumn:    config.IDColumn,
		Delimiter:   config.Delimiter,
		TextColumns: []string{config.MessageColumn, config.CategoriesColumn},
	})

	table, err := l.Load(ctx, config.MessagesPath, config.CategoriesPath)
	if err != nil {
		return nil, err
	}
	// A column present in both sources comes back suffixed, so it counts as missing.
	for _, name := range []string{config.MessageColumn, config.CategoriesColumn} {
		if table.ColumnIndex(name) < 0 {
			return nil, fmt.Errorf("joined table has no column %q (columns: %s): %w",
				name, strings.Join(table.ColumnNames(), ", "), msgprep.ErrSchema)
		}
	}
	s.logger.Verbose("Joined %d rows on %q (%d columns)", table.Len(), config.IDColumn, len(table.Columns))
	return table, nil
}

func (s *PipelineService) clean(table *msgprep.Table, config msgprep.RunConfig) (*msgprep.Table, error) {
	cleaned, err := transform.Clean(table, transform.Options{
		CategoriesColumn: config.CategoriesColumn,
		MessageColumn:    config.MessageColumn,
	})
	if err != nil {
		return nil, err
	}
	s.logger.Verbose("Cleaned table has %d rows and %d columns (%d duplicate messages removed)",
		cleaned.Len(), len(cleaned.Columns), table.Len()-cleaned.Len())
	return cleaned, nil
}

func (s *PipelineService) save(ctx context.Context, table *msgprep.Table, config msgprep.RunConfig) (err error) {
	st, err := s.openStore(ctx, config.Destination)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := st.Close(); closeErr != nil {
			if err == nil {
				err = fmt.Errorf("close store: %w: %w", closeErr, msgprep.ErrIO)
			} else {
				s.logger.Error("Failed to close store: %v", closeErr)
			}
		}
	}()

	relation := store.RelationName(config.Destination, config.Table)
	s.logger.Verbose("Writing %d rows to relation %q", table.Len(), relation)
	return st.Save(ctx, table, relation)
}

func (s *PipelineService) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}

var _ msgprep.Pipeline = (*PipelineService)(nil)
