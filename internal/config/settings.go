package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vvka-141/msgprep/pkg/msgprep"
)

// Settings are the resolved, typed values of all layers below the command line.
type Settings struct {
	IDColumn         string
	MessageColumn    string
	CategoriesColumn string
	Delimiter        rune
	Table            string
	Timeout          time.Duration
	LogFormat        string
}

// Defaults returns the built-in settings.
func Defaults() Settings {
	return Settings{
		IDColumn:         msgprep.DefaultIDColumn,
		MessageColumn:    msgprep.DefaultMessageColumn,
		CategoriesColumn: msgprep.DefaultCategoriesColumn,
		Delimiter:        msgprep.DefaultDelimiter,
		Timeout:          msgprep.DefaultTimeout,
		LogFormat:        "console",
	}
}

// Resolve builds Settings from defaults, the yaml file and the env files.
// An empty configPath falls back to msgprep.yaml in dir when that file exists;
// an explicit configPath must exist.
func Resolve(dir, configPath string, envFiles []string) (Settings, error) {
	settings := Defaults()

	var fileCfg *FileConfig
	var err error
	if configPath != "" {
		fileCfg, err = LoadFile(configPath)
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				return Settings{}, fmt.Errorf("%w: %w", err, msgprep.ErrInvalidConfig)
			}
			return Settings{}, err
		}
	} else {
		fileCfg, err = Load(dir)
		if err != nil && !errors.Is(err, ErrConfigNotFound) {
			return Settings{}, fmt.Errorf("failed to load %s: %w", ConfigFileName, err)
		}
	}

	if fileCfg != nil {
		if settings, err = settings.Merge(fileCfg); err != nil {
			return Settings{}, fmt.Errorf("config file: %w", err)
		}
	}

	if len(envFiles) > 0 {
		envCfg, err := LoadEnvFiles(envFiles...)
		if err != nil {
			return Settings{}, err
		}
		if settings, err = settings.Merge(envCfg); err != nil {
			return Settings{}, fmt.Errorf("env files: %w", err)
		}
	}

	return settings, nil
}

// Merge returns s with every non-empty field of layer applied.
func (s Settings) Merge(layer *FileConfig) (Settings, error) {
	var errs []error

	setString(&s.IDColumn, layer.IDColumn)
	setString(&s.MessageColumn, layer.MessageColumn)
	setString(&s.CategoriesColumn, layer.CategoriesColumn)
	setString(&s.Table, layer.Table)

	if layer.Delimiter != "" {
		d, err := ParseDelimiter(layer.Delimiter)
		if err != nil {
			errs = append(errs, err)
		} else {
			s.Delimiter = d
		}
	}
	if layer.Timeout != "" {
		d, err := time.ParseDuration(layer.Timeout)
		if err != nil {
			errs = append(errs, fmt.Errorf("invalid timeout %q: %w", layer.Timeout, msgprep.ErrInvalidConfig))
		} else {
			s.Timeout = d
		}
	}
	if layer.LogFormat != "" {
		s.LogFormat = strings.ToLower(layer.LogFormat)
	}

	if err := errors.Join(errs...); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Apply copies the settings into a run configuration.
func (s Settings) Apply(cfg *msgprep.RunConfig) {
	cfg.IDColumn = s.IDColumn
	cfg.MessageColumn = s.MessageColumn
	cfg.CategoriesColumn = s.CategoriesColumn
	cfg.Delimiter = s.Delimiter
	cfg.Table = s.Table
	cfg.Timeout = s.Timeout
}

// ParseDelimiter converts a delimiter setting to a rune.
// Accepts a single character, `\t` or "tab".
func ParseDelimiter(value string) (rune, error) {
	switch value {
	case `\t`, "tab", "TAB":
		return '\t', nil
	}
	if utf8.RuneCountInString(value) != 1 {
		return 0, fmt.Errorf("invalid delimiter %q: must be a single character: %w", value, msgprep.ErrInvalidConfig)
	}
	r, _ := utf8.DecodeRuneInString(value)
	return r, nil
}

func setString(dst *string, value string) {
	if value != "" {
		*dst = value
	}
}
