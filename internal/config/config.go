package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vvka-141/msgprep/pkg/msgprep"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// FileConfig is one layer of settings. Empty fields leave lower layers in effect.
type FileConfig struct {
	IDColumn         string `yaml:"id_column"`
	MessageColumn    string `yaml:"message_column"`
	CategoriesColumn string `yaml:"categories_column"`
	Delimiter        string `yaml:"delimiter"`
	Table            string `yaml:"table"`
	Timeout          string `yaml:"timeout"`
	LogFormat        string `yaml:"log_format"`
}

const ConfigFileName = "msgprep.yaml"

// Load reads msgprep.yaml from dir.
func Load(dir string) (*FileConfig, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads a yaml config file. Unknown keys are rejected.
func LoadFile(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%s: %w", path, ErrConfigNotFound)
		}
		return nil, err
	}

	var cfg FileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %v: %w", path, err, msgprep.ErrInvalidConfig)
	}
	return &cfg, nil
}
