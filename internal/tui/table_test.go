package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

func sampleTable() *msgprep.Table {
	return &msgprep.Table{
		Columns: []msgprep.Column{
			{Name: "id", Kind: msgprep.KindInteger},
			{Name: "message", Kind: msgprep.KindText},
			{Name: "related", Kind: msgprep.KindInteger},
		},
		Rows: []msgprep.Row{
			{int64(1), "help", int64(1)},
			{int64(2), "water please", nil},
			{int64(3), "food", int64(0)},
		},
	}
}

func TestRenderSummary(t *testing.T) {
	got := RenderSummary("messages", sampleTable(), ModePlain)

	assert.Equal(t, "messages (3 rows, 3 columns)\n"+
		"  id       integer\n"+
		"  message  text\n"+
		"  related  integer\n", got)
}

func TestRenderRows_Plain(t *testing.T) {
	got := RenderRows(sampleTable(), 0, ModePlain)

	assert.Contains(t, got, "id")
	assert.Contains(t, got, "water please")
	assert.Contains(t, got, nullText)
	assert.Contains(t, got, "+")
	assert.NotContains(t, got, "\x1b[", "plain output must not contain ANSI escapes")
}

func TestRenderRows_Limit(t *testing.T) {
	got := RenderRows(sampleTable(), 2, ModePlain)

	assert.Contains(t, got, "help")
	assert.Contains(t, got, "water please")
	assert.NotContains(t, got, "food")
}

func TestRenderRows_EmptyTable(t *testing.T) {
	empty := &msgprep.Table{Columns: sampleTable().Columns}
	got := RenderRows(empty, 10, ModePlain)

	assert.Contains(t, got, "message")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "NULL", FormatValue(nil))
	assert.Equal(t, "42", FormatValue(int64(42)))
	assert.Equal(t, "0.5", FormatValue(0.5))
	assert.Equal(t, "a b", FormatValue("a\nb"))

	long := strings.Repeat("x", 100)
	got := FormatValue(long)
	assert.Len(t, got, maxCellWidth)
	assert.True(t, strings.HasSuffix(got, "..."))
}
