package loader

import "github.com/vvka-141/msgprep/pkg/msgprep"

// buildTable turns string records into a typed table. A column becomes numeric
// only if it has at least one non-empty cell and every non-empty cell parses.
func buildTable(header []string, records [][]string, textColumns []string) *msgprep.Table {
	forceText := make(map[string]bool, len(textColumns))
	for _, c := range textColumns {
		forceText[c] = true
	}

	table := &msgprep.Table{
		Columns: make([]msgprep.Column, len(header)),
		Rows:    make([]msgprep.Row, len(records)),
	}
	for i := range records {
		table.Rows[i] = make(msgprep.Row, len(header))
	}

	cells := make([]string, len(records))
	for col, name := range header {
		nonEmpty := 0
		for i, rec := range records {
			cells[i] = rec[col]
			if rec[col] != "" {
				nonEmpty++
			}
		}

		kind := msgprep.KindText
		var values []msgprep.Value
		if !forceText[name] && nonEmpty > 0 {
			var bad int
			kind, values, bad = msgprep.ParseNumeric(cells)
			if bad >= 0 {
				kind = msgprep.KindText
			}
		}

		table.Columns[col] = msgprep.Column{Name: name, Kind: kind}
		for i := range records {
			if kind == msgprep.KindText {
				table.Rows[i][col] = cells[i]
			} else {
				table.Rows[i][col] = values[i]
			}
		}
	}

	return table
}
