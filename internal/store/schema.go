package store

import (
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

// dialect holds the SQL that differs between the stores.
type dialect struct {
	integerType string
	realType    string
	textType    string
	placeholder func(n int) string
}

var sqliteDialect = dialect{
	integerType: "INTEGER",
	realType:    "REAL",
	textType:    "TEXT",
	placeholder: func(int) string { return "?" },
}

var postgresDialect = dialect{
	integerType: "BIGINT",
	realType:    "DOUBLE PRECISION",
	textType:    "TEXT",
	placeholder: func(n int) string { return fmt.Sprintf("$%d", n) },
}

func quoteIdent(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

func (d dialect) columnType(kind msgprep.Kind) string {
	switch kind {
	case msgprep.KindInteger:
		return d.integerType
	case msgprep.KindReal:
		return d.realType
	default:
		return d.textType
	}
}

func (d dialect) dropTable(relation string) string {
	return "DROP TABLE IF EXISTS " + quoteIdent(relation)
}

func (d dialect) createTable(relation string, columns []msgprep.Column) string {
	defs := make([]string, len(columns))
	for i, col := range columns {
		defs[i] = quoteIdent(col.Name) + " " + d.columnType(col.Kind)
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(relation), strings.Join(defs, ", "))
}

func (d dialect) insertRow(relation string, columns []msgprep.Column) string {
	names := make([]string, len(columns))
	params := make([]string, len(columns))
	for i, col := range columns {
		names[i] = quoteIdent(col.Name)
		params[i] = d.placeholder(i + 1)
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		quoteIdent(relation), strings.Join(names, ", "), strings.Join(params, ", "))
}

func (d dialect) selectAll(relation string) string {
	return "SELECT * FROM " + quoteIdent(relation)
}

// validateSave rejects inputs no store can write.
func validateSave(table *msgprep.Table, relation string) error {
	if table == nil {
		return fmt.Errorf("table is nil: %w", msgprep.ErrInvalidConfig)
	}
	if relation == "" {
		return fmt.Errorf("relation name is required: %w", msgprep.ErrInvalidConfig)
	}
	if len(table.Columns) == 0 {
		return fmt.Errorf("table has no columns: %w", msgprep.ErrSchema)
	}
	seen := make(map[string]struct{}, len(table.Columns))
	for _, col := range table.Columns {
		key := strings.ToLower(col.Name)
		if _, dup := seen[key]; dup {
			return fmt.Errorf("duplicate column %q: %w", col.Name, msgprep.ErrSchema)
		}
		seen[key] = struct{}{}
	}
	for i, row := range table.Rows {
		if len(row) != len(table.Columns) {
			return fmt.Errorf("row %d has %d values, expected %d: %w", i, len(row), len(table.Columns), msgprep.ErrSchema)
		}
	}
	return nil
}

// ioError marks a store failure as msgprep.ErrIO.
func ioError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, err, msgprep.ErrIO)
}

// normalizeValue maps driver values onto the msgprep value set.
func normalizeValue(v any) msgprep.Value {
	switch x := v.(type) {
	case nil:
		return nil
	case int64, float64, string:
		return x
	case int:
		return int64(x)
	case int16:
		return int64(x)
	case int32:
		return int64(x)
	case float32:
		return float64(x)
	case []byte:
		return string(x)
	case bool:
		if x {
			return int64(1)
		}
		return int64(0)
	default:
		return fmt.Sprint(x)
	}
}
