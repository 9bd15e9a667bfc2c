package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/vvka-141/msgprep/pkg/msgprep"
)

// EnvPrefix marks the .env keys read by msgprep. Other keys are ignored.
const EnvPrefix = "MSGPREP_"

// envKeys maps MSGPREP_* keys to the FileConfig field they set.
var envKeys = map[string]func(*FileConfig) *string{
	"ID_COLUMN":         func(c *FileConfig) *string { return &c.IDColumn },
	"MESSAGE_COLUMN":    func(c *FileConfig) *string { return &c.MessageColumn },
	"CATEGORIES_COLUMN": func(c *FileConfig) *string { return &c.CategoriesColumn },
	"DELIMITER":         func(c *FileConfig) *string { return &c.Delimiter },
	"TABLE":             func(c *FileConfig) *string { return &c.Table },
	"TIMEOUT":           func(c *FileConfig) *string { return &c.Timeout },
	"LOG_FORMAT":        func(c *FileConfig) *string { return &c.LogFormat },
}

// LoadEnvFiles reads the given .env files in order; values from later files win.
// Missing files and unknown MSGPREP_* keys are configuration errors.
func LoadEnvFiles(paths ...string) (*FileConfig, error) {
	cfg := &FileConfig{}
	for _, path := range paths {
		values, err := godotenv.Read(path)
		if err != nil {
			return nil, fmt.Errorf("env file %s: %v: %w", path, err, msgprep.ErrInvalidConfig)
		}
		if err := applyEnv(cfg, values); err != nil {
			return nil, fmt.Errorf("env file %s: %w", path, err)
		}
	}
	return cfg, nil
}

func applyEnv(cfg *FileConfig, values map[string]string) error {
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		name, ok := strings.CutPrefix(key, EnvPrefix)
		if !ok {
			continue
		}
		field, known := envKeys[name]
		if !known {
			return fmt.Errorf("unknown key %s: %w", key, msgprep.ErrInvalidConfig)
		}
		*field(cfg) = values[key]
	}
	return nil
}
