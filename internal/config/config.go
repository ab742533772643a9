package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"github.com/mcncl/flatjson/internal/errors"
	"gopkg.in/yaml.v3"
)

// Parse strategy names
const (
	StrategyStrict     = "strict"
	StrategyRepair     = "repair"
	StrategyPermissive = "permissive"
)

// Key cases applied to parsed keys
const (
	KeyCaseNone       = "none"
	KeyCaseSnake      = "snake"
	KeyCaseCamel      = "camel"
	KeyCaseLowerCamel = "lower_camel"
	KeyCaseKebab      = "kebab"
)

// Output formats
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatKV   = "kv"
)

// Config represents the complete configuration for flatjson
type Config struct {
	Parser ParserConfig `yaml:"parser"`
	Output OutputConfig `yaml:"output"`
	Dev    DevConfig    `yaml:"dev"`
}

// ParserConfig controls the tolerant parse chain
type ParserConfig struct {
	// Strategies are tried in order; the first non-empty result wins.
	Strategies []string `yaml:"strategies"`
	// Sentinel is stored for values that are not strings or numbers.
	Sentinel string `yaml:"sentinel"`
	KeyCase  string `yaml:"key_case"`
}

// OutputConfig controls how results are rendered
type OutputConfig struct {
	Format string `yaml:"format"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Parser: ParserConfig{
			Strategies: []string{StrategyStrict, StrategyPermissive},
			Sentinel:   "0",
			KeyCase:    KeyCaseNone,
		},
		Output: OutputConfig{
			Format: FormatJSON,
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".flatjson.yml", ".flatjson.yaml", "flatjson.yml", "flatjson.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// Validate checks strategy names, key case and output format
func (c *Config) Validate() error {
	if len(c.Parser.Strategies) == 0 {
		return errors.NewConfigError("parser.strategies must not be empty", errors.ErrNoStrategies)
	}
	for _, name := range c.Parser.Strategies {
		switch name {
		case StrategyStrict, StrategyRepair, StrategyPermissive:
		default:
			return errors.NewConfigError(fmt.Sprintf("unknown strategy '%s'", name), errors.ErrUnknownStrategy)
		}
	}

	switch c.Parser.KeyCase {
	case "", KeyCaseNone, KeyCaseSnake, KeyCaseCamel, KeyCaseLowerCamel, KeyCaseKebab:
	default:
		return errors.NewConfigError(fmt.Sprintf("unknown key case '%s'", c.Parser.KeyCase), errors.ErrUnknownKeyCase)
	}

	switch c.Output.Format {
	case FormatJSON, FormatYAML, FormatKV:
	default:
		return errors.NewConfigError(fmt.Sprintf("unknown output format '%s'", c.Output.Format), errors.ErrUnknownFormat)
	}

	return nil
}

// NormalizeKey returns key converted to the configured key case
func (c *Config) NormalizeKey(key string) string {
	switch c.Parser.KeyCase {
	case KeyCaseSnake:
		return strcase.ToSnake(key)
	case KeyCaseCamel:
		return strcase.ToCamel(key)
	case KeyCaseLowerCamel:
		return strcase.ToLowerCamel(key)
	case KeyCaseKebab:
		return strcase.ToKebab(key)
	default:
		return key
	}
}

// LoadConfigWithCLI loads config with CLI argument precedence.
// Empty CLI values leave the file (or default) values untouched.
func LoadConfigWithCLI(configPath, cliFormat, cliKeyCase string, cliDebug bool) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliFormat != "" {
		cfg.Output.Format = cliFormat
	}
	if cliKeyCase != "" {
		cfg.Parser.KeyCase = cliKeyCase
	}
	// A debug flag can only switch debugging on
	if cliDebug {
		cfg.Dev.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}
