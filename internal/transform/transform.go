package transform

import (
	"fmt"
	"strings"

	"github.com/vvka-141/msgprep/pkg/msgprep"
)

// Options names the columns Clean works on.
type Options struct {
	// CategoriesColumn holds the raw category-encoding string
	CategoriesColumn string

	// MessageColumn is the deduplication key
	MessageColumn string
}

// DefaultOptions returns the column names of the standard message datasets.
func DefaultOptions() Options {
	return Options{
		CategoriesColumn: msgprep.DefaultCategoriesColumn,
		MessageColumn:    msgprep.DefaultMessageColumn,
	}
}

// Clean decodes the categories column into one numeric column per category,
// drops the raw column and removes rows with a duplicate message.
//
// A table without the categories column is taken as already decoded and is
// only deduplicated, so Clean(Clean(t)) equals Clean(t).
func Clean(table *msgprep.Table, opts Options) (*msgprep.Table, error) {
	if opts.CategoriesColumn == "" || opts.MessageColumn == "" {
		return nil, fmt.Errorf("categories and message column names are required: %w", msgprep.ErrInvalidConfig)
	}
	if table.ColumnIndex(opts.MessageColumn) < 0 {
		return nil, fmt.Errorf("message column %q not found: %w", opts.MessageColumn, msgprep.ErrSchema)
	}

	catIdx := table.ColumnIndex(opts.CategoriesColumn)
	if catIdx < 0 {
		return Dedupe(table, opts.MessageColumn)
	}

	decoded, err := decode(table, catIdx)
	if err != nil {
		return nil, err
	}

	return Dedupe(decoded, opts.MessageColumn)
}

// decode replaces column catIdx with the decoded category columns.
func decode(table *msgprep.Table, catIdx int) (*msgprep.Table, error) {
	baseCols := make([]msgprep.Column, 0, len(table.Columns)-1)
	baseCols = append(baseCols, table.Columns[:catIdx]...)
	baseCols = append(baseCols, table.Columns[catIdx+1:]...)

	if table.Len() == 0 {
		return &msgprep.Table{Columns: baseCols, Rows: []msgprep.Row{}}, nil
	}

	tokens := make([][]string, table.Len())
	for i, row := range table.Rows {
		raw, ok := row[catIdx].(string)
		if !ok {
			return nil, fmt.Errorf("row %d: categories value %v is not text: %w", i, row[catIdx], msgprep.ErrSchema)
		}
		tokens[i] = strings.Split(raw, msgprep.TokenSeparator)
	}

	names, err := headerFromFirstRow(tokens[0])
	if err != nil {
		return nil, err
	}
	for _, c := range baseCols {
		for _, n := range names {
			if c.Name == n {
				return nil, fmt.Errorf("category %q collides with an existing column: %w", n, msgprep.ErrSchema)
			}
		}
	}

	// cells[c][r] is the raw value of category c in row r
	cells := make([][]string, len(names))
	for c := range cells {
		cells[c] = make([]string, len(tokens))
	}
	for r, row := range tokens {
		if len(row) != len(names) {
			return nil, fmt.Errorf("row %d: expected %d category tokens, got %d: %w",
				r, len(names), len(row), msgprep.ErrSchema)
		}
		for c, tok := range row {
			name, value, found := strings.Cut(tok, msgprep.NameValueSeparator)
			if !found {
				return nil, fmt.Errorf("row %d: malformed category token %q: %w", r, tok, msgprep.ErrSchema)
			}
			if name != names[c] {
				return nil, fmt.Errorf("row %d: category %d is %q, expected %q: %w",
					r, c, name, names[c], msgprep.ErrSchema)
			}
			cells[c][r] = value
		}
	}

	catCols := make([]msgprep.Column, len(names))
	values := make([][]msgprep.Value, len(names))
	for c, name := range names {
		kind, vals, err := coerce(name, cells[c])
		if err != nil {
			return nil, err
		}
		catCols[c] = msgprep.Column{Name: name, Kind: kind}
		values[c] = vals
	}

	out := &msgprep.Table{
		Columns: append(baseCols, catCols...),
		Rows:    make([]msgprep.Row, table.Len()),
	}
	for r, row := range table.Rows {
		newRow := make(msgprep.Row, 0, len(out.Columns))
		newRow = append(newRow, row[:catIdx]...)
		newRow = append(newRow, row[catIdx+1:]...)
		for c := range names {
			newRow = append(newRow, values[c][r])
		}
		out.Rows[r] = newRow
	}

	return out, nil
}

// headerFromFirstRow derives category names from the first row's tokens.
func headerFromFirstRow(tokens []string) ([]string, error) {
	names := make([]string, len(tokens))
	seen := make(map[string]struct{}, len(tokens))
	for i, tok := range tokens {
		name, _, found := strings.Cut(tok, msgprep.NameValueSeparator)
		if !found {
			return nil, fmt.Errorf("row 0: malformed category token %q: %w", tok, msgprep.ErrSchema)
		}
		if name == "" {
			return nil, fmt.Errorf("row 0: empty category name in token %q: %w", tok, msgprep.ErrSchema)
		}
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("row 0: duplicate category %q: %w", name, msgprep.ErrSchema)
		}
		seen[name] = struct{}{}
		names[i] = name
	}
	return names, nil
}

// coerce converts one decoded category column to numbers.
func coerce(name string, cells []string) (msgprep.Kind, []msgprep.Value, error) {
	for r, cell := range cells {
		if cell == "" {
			return 0, nil, fmt.Errorf("column %q, row %d: empty value: %w", name, r, msgprep.ErrValue)
		}
	}
	kind, values, bad := msgprep.ParseNumeric(cells)
	if bad >= 0 {
		return 0, nil, fmt.Errorf("column %q, row %d: %q is not numeric: %w", name, bad, cells[bad], msgprep.ErrValue)
	}
	return kind, values, nil
}
