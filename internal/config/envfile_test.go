package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

func TestLoadEnvFiles_ReadsPrefixedKeys(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, ".env", `# msgprep settings
MSGPREP_ID_COLUMN=msg_id
MSGPREP_TABLE="clean messages"
MSGPREP_TIMEOUT=30s
DATABASE_URL=ignored
`)

	cfg, err := LoadEnvFiles(path)
	require.NoError(t, err)

	assert.Equal(t, "msg_id", cfg.IDColumn)
	assert.Equal(t, "clean messages", cfg.Table)
	assert.Equal(t, "30s", cfg.Timeout)
	assert.Equal(t, "", cfg.MessageColumn)
}

func TestLoadEnvFiles_LaterFilesWin(t *testing.T) {
	dir := t.TempDir()
	first := writeFile(t, dir, "base.env", "MSGPREP_TABLE=base\nMSGPREP_ID_COLUMN=key\n")
	second := writeFile(t, dir, "override.env", "MSGPREP_TABLE=override\n")

	cfg, err := LoadEnvFiles(first, second)
	require.NoError(t, err)

	assert.Equal(t, "override", cfg.Table)
	assert.Equal(t, "key", cfg.IDColumn)
}

func TestLoadEnvFiles_Errors(t *testing.T) {
	dir := t.TempDir()
	unknown := writeFile(t, dir, "unknown.env", "MSGPREP_TABEL=typo\n")

	tests := []struct {
		name string
		path string
	}{
		{"missing file", dir + "/missing.env"},
		{"unknown prefixed key", unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadEnvFiles(tt.path)
			assert.ErrorIs(t, err, msgprep.ErrInvalidConfig)
		})
	}
}

func TestLoadEnvFiles_NoFiles(t *testing.T) {
	cfg, err := LoadEnvFiles()
	require.NoError(t, err)
	assert.Equal(t, &FileConfig{}, cfg)
}
