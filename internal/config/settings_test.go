package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

func TestResolve_DefaultsWithoutSources(t *testing.T) {
	settings, err := Resolve(t.TempDir(), "", nil)
	require.NoError(t, err)
	assert.Equal(t, Defaults(), settings)
}

func TestResolve_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, "table: from_yaml\nid_column: yaml_id\ntimeout: 1m\n")
	env := writeFile(t, dir, ".env", "MSGPREP_TABLE=from_env\n")

	settings, err := Resolve(dir, "", []string{env})
	require.NoError(t, err)

	assert.Equal(t, "from_env", settings.Table, "env file beats yaml")
	assert.Equal(t, "yaml_id", settings.IDColumn, "yaml beats defaults")
	assert.Equal(t, time.Minute, settings.Timeout)
	assert.Equal(t, msgprep.DefaultMessageColumn, settings.MessageColumn)
}

func TestResolve_ExplicitConfigPath(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, "table: ignored\n")
	other := writeFile(t, dir, "custom.yaml", "table: custom\n")

	settings, err := Resolve(dir, other, nil)
	require.NoError(t, err)
	assert.Equal(t, "custom", settings.Table)
}

func TestResolve_ExplicitConfigMustExist(t *testing.T) {
	_, err := Resolve(t.TempDir(), "/nonexistent/msgprep.yaml", nil)
	assert.ErrorIs(t, err, msgprep.ErrInvalidConfig)
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestResolve_InvalidValues(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ConfigFileName, "delimiter: ab\ntimeout: soon\n")

	_, err := Resolve(dir, "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, msgprep.ErrInvalidConfig)
	assert.Contains(t, err.Error(), "delimiter")
	assert.Contains(t, err.Error(), "timeout")
}

func TestSettings_Apply(t *testing.T) {
	settings := Defaults()
	settings.Table = "messages"
	settings.Delimiter = '\t'

	cfg := msgprep.RunConfig{MessagesPath: "m.csv"}
	settings.Apply(&cfg)

	assert.Equal(t, "m.csv", cfg.MessagesPath)
	assert.Equal(t, "messages", cfg.Table)
	assert.Equal(t, '\t', cfg.Delimiter)
	assert.Equal(t, msgprep.DefaultIDColumn, cfg.IDColumn)
	assert.Equal(t, msgprep.DefaultTimeout, cfg.Timeout)
}

func TestParseDelimiter(t *testing.T) {
	tests := []struct {
		input   string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{";", ';', false},
		{"|", '|', false},
		{`\t`, '\t', false},
		{"tab", '\t', false},
		{"\t", '\t', false},
		{"", 0, true},
		{",,", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDelimiter(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, msgprep.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
