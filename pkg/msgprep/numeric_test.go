package msgprep_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		name     string
		cells    []string
		wantKind msgprep.Kind
		want     []msgprep.Value
		wantBad  int
	}{
		{"integers", []string{"0", "1", "-7"}, msgprep.KindInteger, []msgprep.Value{int64(0), int64(1), int64(-7)}, -1},
		{"integers with gap", []string{"1", "", "2"}, msgprep.KindInteger, []msgprep.Value{int64(1), nil, int64(2)}, -1},
		{"mixed int and float", []string{"1", "2.5"}, msgprep.KindReal, []msgprep.Value{1.0, 2.5}, -1},
		{"text", []string{"1", "x", "2"}, msgprep.KindText, nil, 1},
		{"int overflow falls back to real", []string{"99999999999999999999"}, msgprep.KindReal, []msgprep.Value{1e20}, -1},
		{"whitespace is not trimmed", []string{" 1"}, msgprep.KindText, nil, 0},
		{"empty column", []string{}, msgprep.KindInteger, []msgprep.Value{}, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, values, bad := msgprep.ParseNumeric(tt.cells)
			assert.Equal(t, tt.wantKind, kind)
			assert.Equal(t, tt.wantBad, bad)
			assert.Equal(t, tt.want, values)
		})
	}
}
