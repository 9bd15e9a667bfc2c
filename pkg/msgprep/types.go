package msgprep

import (
	"errors"
	"fmt"
	"time"
)

// Kind is the storage type of a column.
type Kind int

const (
	KindText Kind = iota
	KindInteger
	KindReal
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Column describes one column of a Table.
type Column struct {
	Name string
	Kind Kind
}

// Value is a single cell: nil (missing), string, int64 or float64.
type Value = any

// Row holds one value per column, in column order.
type Row []Value

// Table is a row-oriented, column-typed dataset.
//
// Stages treat tables as values: each stage returns a new Table and leaves its
// input untouched. Use Clone before modifying a table you did not create.
type Table struct {
	Columns []Column
	Rows    []Row
}

// ColumnIndex returns the position of the named column, or -1 if absent.
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c.Name == name {
			return i
		}
	}
	return -1
}

// ColumnNames returns the column names in order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Clone returns a deep copy of the table structure. Cell values are immutable
// scalars and are shared.
func (t *Table) Clone() *Table {
	clone := &Table{
		Columns: append([]Column(nil), t.Columns...),
		Rows:    make([]Row, len(t.Rows)),
	}
	for i, row := range t.Rows {
		clone.Rows[i] = append(Row(nil), row...)
	}
	return clone
}

// Equal reports whether both tables have the same columns and rows in the same order.
func (t *Table) Equal(other *Table) bool {
	if t == nil || other == nil {
		return t == other
	}
	if len(t.Columns) != len(other.Columns) || len(t.Rows) != len(other.Rows) {
		return false
	}
	for i := range t.Columns {
		if t.Columns[i] != other.Columns[i] {
			return false
		}
	}
	for i := range t.Rows {
		if len(t.Rows[i]) != len(other.Rows[i]) {
			return false
		}
		for j := range t.Rows[i] {
			if t.Rows[i][j] != other.Rows[i][j] {
				return false
			}
		}
	}
	return true
}

// RunConfig contains all parameters needed for one pipeline run.
type RunConfig struct {
	// MessagesPath is the delimited text file holding the messages
	MessagesPath string

	// CategoriesPath is the delimited text file holding the category encodings
	CategoriesPath string

	// Destination identifies the store: a SQLite file path or a PostgreSQL URL
	Destination string

	// Table is the relation to replace. Empty means derived from Destination.
	Table string

	// IDColumn is the join key present in both sources
	IDColumn string

	// MessageColumn is the deduplication key
	MessageColumn string

	// CategoriesColumn holds the raw category-encoding string
	CategoriesColumn string

	// Delimiter separates fields in both input files
	Delimiter rune

	// Timeout is the end-to-end deadline for the run (0 disables it)
	Timeout time.Duration

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the RunConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *RunConfig) Validate() error {
	var errs []error

	if c.MessagesPath == "" {
		errs = append(errs, fmt.Errorf("MessagesPath is required: %w", ErrInvalidConfig))
	}
	if c.CategoriesPath == "" {
		errs = append(errs, fmt.Errorf("CategoriesPath is required: %w", ErrInvalidConfig))
	}
	if c.Destination == "" {
		errs = append(errs, fmt.Errorf("Destination is required: %w", ErrInvalidConfig))
	}
	if c.IDColumn == "" {
		errs = append(errs, fmt.Errorf("IDColumn is required: %w", ErrInvalidConfig))
	}
	if c.MessageColumn == "" {
		errs = append(errs, fmt.Errorf("MessageColumn is required: %w", ErrInvalidConfig))
	}
	if c.CategoriesColumn == "" {
		errs = append(errs, fmt.Errorf("CategoriesColumn is required: %w", ErrInvalidConfig))
	}
	if c.CategoriesColumn != "" && c.CategoriesColumn == c.IDColumn {
		errs = append(errs, fmt.Errorf("CategoriesColumn must differ from IDColumn: %w", ErrInvalidConfig))
	}
	if c.Delimiter == 0 || c.Delimiter == '\r' || c.Delimiter == '\n' || c.Delimiter == '"' {
		errs = append(errs, fmt.Errorf("invalid delimiter %q: %w", c.Delimiter, ErrInvalidConfig))
	}
	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	return errors.Join(errs...)
}

// DefaultRunConfig returns a RunConfig with the default column names and delimiter.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		IDColumn:         DefaultIDColumn,
		MessageColumn:    DefaultMessageColumn,
		CategoriesColumn: DefaultCategoriesColumn,
		Delimiter:        DefaultDelimiter,
		Timeout:          DefaultTimeout,
	}
}
