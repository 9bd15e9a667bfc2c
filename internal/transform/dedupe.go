package transform

import (
	"fmt"

	"github.com/vvka-141/msgprep/pkg/msgprep"
)

// Dedupe returns a copy of table without rows whose value in column equals the
// value of an earlier row. Values compare exactly; text is not normalized.
func Dedupe(table *msgprep.Table, column string) (*msgprep.Table, error) {
	idx := table.ColumnIndex(column)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not found: %w", column, msgprep.ErrSchema)
	}

	out := &msgprep.Table{
		Columns: append([]msgprep.Column(nil), table.Columns...),
		Rows:    make([]msgprep.Row, 0, table.Len()),
	}
	seen := make(map[msgprep.Value]struct{}, table.Len())
	for _, row := range table.Rows {
		key := row[idx]
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out.Rows = append(out.Rows, append(msgprep.Row(nil), row...))
	}

	return out, nil
}
