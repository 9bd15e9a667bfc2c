package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

// nullText marks missing values.
const nullText = "NULL"

// maxCellWidth truncates long message texts.
const maxCellWidth = 60

// RenderSummary describes a relation: its name, row count and column kinds.
func RenderSummary(relation string, t *msgprep.Table, mode Mode) string {
	var b strings.Builder

	title := fmt.Sprintf("%s (%d rows, %d columns)", relation, t.Len(), len(t.Columns))
	if mode == ModeStyled {
		title = TitleStyle.Render(title)
	}
	b.WriteString(title)
	b.WriteString("\n")

	width := 0
	for _, col := range t.Columns {
		width = max(width, len(col.Name))
	}
	for _, col := range t.Columns {
		fmt.Fprintf(&b, "  %-*s  %s\n", width, col.Name, col.Kind)
	}
	return b.String()
}

// RenderRows renders the first limit rows of t as a bordered table.
// A limit <= 0 renders every row.
func RenderRows(t *msgprep.Table, limit int, mode Mode) string {
	rows := t.Rows
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	cells := make([][]string, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(row))
		for j, v := range row {
			cells[i][j] = FormatValue(v)
		}
	}

	tbl := table.New().
		Headers(t.ColumnNames()...).
		Rows(cells...)

	if mode == ModeStyled {
		tbl = tbl.
			Border(lipgloss.RoundedBorder()).
			BorderStyle(BorderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return HeaderStyle
				}
				if row >= 0 && row < len(rows) && rows[row][col] == nil {
					return NullStyle
				}
				return CellStyle
			})
	} else {
		tbl = tbl.
			Border(lipgloss.ASCIIBorder()).
			StyleFunc(func(row, col int) lipgloss.Style { return plainCellStyle })
	}

	return tbl.String()
}

// FormatValue renders a table value for display.
func FormatValue(v msgprep.Value) string {
	switch x := v.(type) {
	case nil:
		return nullText
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return truncate(x, maxCellWidth)
	default:
		return truncate(fmt.Sprint(x), maxCellWidth)
	}
}

func truncate(s string, width int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-3]) + "..."
}
