package msgprep_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

func sampleTable() *msgprep.Table {
	return &msgprep.Table{
		Columns: []msgprep.Column{
			{Name: "id", Kind: msgprep.KindInteger},
			{Name: "message", Kind: msgprep.KindText},
		},
		Rows: []msgprep.Row{
			{int64(1), "help"},
			{int64(2), "ok"},
		},
	}
}

func TestTable_ColumnIndex(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, 0, tbl.ColumnIndex("id"))
	assert.Equal(t, 1, tbl.ColumnIndex("message"))
	assert.Equal(t, -1, tbl.ColumnIndex("categories"))
	assert.Equal(t, []string{"id", "message"}, tbl.ColumnNames())
	assert.Equal(t, 2, tbl.Len())
}

func TestTable_CloneIsIndependent(t *testing.T) {
	tbl := sampleTable()
	clone := tbl.Clone()
	require.True(t, tbl.Equal(clone))

	clone.Rows[0][1] = "changed"
	clone.Columns[0].Name = "key"

	assert.Equal(t, "help", tbl.Rows[0][1])
	assert.Equal(t, "id", tbl.Columns[0].Name)
	assert.False(t, tbl.Equal(clone))
}

func TestTable_Equal(t *testing.T) {
	a := sampleTable()

	b := sampleTable()
	b.Rows[1][0] = int64(3)
	assert.False(t, a.Equal(b))

	c := sampleTable()
	c.Columns[0].Kind = msgprep.KindText
	assert.False(t, a.Equal(c))

	d := sampleTable()
	d.Rows = d.Rows[:1]
	assert.False(t, a.Equal(d))

	var nilTable *msgprep.Table
	assert.True(t, nilTable.Equal(nil))
	assert.False(t, a.Equal(nil))
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "text", msgprep.KindText.String())
	assert.Equal(t, "integer", msgprep.KindInteger.String())
	assert.Equal(t, "real", msgprep.KindReal.String())
	assert.Equal(t, "kind(9)", msgprep.Kind(9).String())
}

func TestRunConfig_Validate(t *testing.T) {
	valid := func() msgprep.RunConfig {
		cfg := msgprep.DefaultRunConfig()
		cfg.MessagesPath = "messages.csv"
		cfg.CategoriesPath = "categories.csv"
		cfg.Destination = "out.db"
		return cfg
	}

	tests := []struct {
		name      string
		mutate    func(*msgprep.RunConfig)
		wantError bool
	}{
		{"valid config", func(*msgprep.RunConfig) {}, false},
		{"missing messages path", func(c *msgprep.RunConfig) { c.MessagesPath = "" }, true},
		{"missing categories path", func(c *msgprep.RunConfig) { c.CategoriesPath = "" }, true},
		{"missing destination", func(c *msgprep.RunConfig) { c.Destination = "" }, true},
		{"missing id column", func(c *msgprep.RunConfig) { c.IDColumn = "" }, true},
		{"categories equals id", func(c *msgprep.RunConfig) { c.CategoriesColumn = "id" }, true},
		{"quote delimiter", func(c *msgprep.RunConfig) { c.Delimiter = '"' }, true},
		{"zero delimiter", func(c *msgprep.RunConfig) { c.Delimiter = 0 }, true},
		{"tab delimiter", func(c *msgprep.RunConfig) { c.Delimiter = '\t' }, false},
		{"negative timeout", func(c *msgprep.RunConfig) { c.Timeout = -time.Second }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, msgprep.ErrInvalidConfig), "expected ErrInvalidConfig, got: %v", err)
		})
	}
}

func TestRunConfig_ValidateReportsAllProblems(t *testing.T) {
	cfg := msgprep.RunConfig{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MessagesPath is required")
	assert.Contains(t, err.Error(), "CategoriesPath is required")
	assert.Contains(t, err.Error(), "Destination is required")
}
