package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mcncl/flatjson/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "flatjson_config_*.yml")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(tmpFile.Name()) })

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	_ = tmpFile.Close()

	return tmpFile.Name()
}

func TestConfig_DefaultValues(t *testing.T) {
	cfg := NewConfig()

	assert.Equal(t, []string{StrategyStrict, StrategyPermissive}, cfg.Parser.Strategies)
	assert.Equal(t, "0", cfg.Parser.Sentinel)
	assert.Equal(t, KeyCaseNone, cfg.Parser.KeyCase)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
	assert.False(t, cfg.Dev.Debug)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_LoadFromYAML(t *testing.T) {
	path := writeTempConfig(t, `
parser:
  strategies: [strict, repair, permissive]
  sentinel: ""
  key_case: snake
output:
  format: yaml
dev:
  debug: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{StrategyStrict, StrategyRepair, StrategyPermissive}, cfg.Parser.Strategies)
	assert.Equal(t, "", cfg.Parser.Sentinel)
	assert.Equal(t, KeyCaseSnake, cfg.Parser.KeyCase)
	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.True(t, cfg.Dev.Debug)
}

func TestConfig_LoadPartialKeepsDefaults(t *testing.T) {
	path := writeTempConfig(t, `
output:
  format: kv
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, FormatKV, cfg.Output.Format)
	assert.Equal(t, []string{StrategyStrict, StrategyPermissive}, cfg.Parser.Strategies)
	assert.Equal(t, "0", cfg.Parser.Sentinel)
}

func TestConfig_LoadNonExistentFile(t *testing.T) {
	_, err := LoadConfig("/non/existent/config.yml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no such file or directory")
}

func TestConfig_LoadInvalidYAML(t *testing.T) {
	path := writeTempConfig(t, `
parser:
  strategies: [unclosed array
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "defaults",
			mutate: func(*Config) {},
		},
		{
			name:    "unknown strategy",
			mutate:  func(c *Config) { c.Parser.Strategies = []string{"strict", "fuzzy"} },
			wantErr: errors.ErrUnknownStrategy,
		},
		{
			name:    "no strategies",
			mutate:  func(c *Config) { c.Parser.Strategies = nil },
			wantErr: errors.ErrNoStrategies,
		},
		{
			name:    "unknown key case",
			mutate:  func(c *Config) { c.Parser.KeyCase = "screaming" },
			wantErr: errors.ErrUnknownKeyCase,
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Output.Format = "toml" },
			wantErr: errors.ErrUnknownFormat,
		},
		{
			name:   "empty key case is allowed",
			mutate: func(c *Config) { c.Parser.KeyCase = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, &errors.AppError{Kind: errors.KindConfig})
		})
	}
}

func TestConfig_LoadRejectsUnknownStrategy(t *testing.T) {
	path := writeTempConfig(t, `
parser:
  strategies: [strict, guess]
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownStrategy)
}

func TestConfig_NormalizeKey(t *testing.T) {
	tests := []struct {
		keyCase string
		key     string
		want    string
	}{
		{KeyCaseNone, "userId", "userId"},
		{"", "user_id", "user_id"},
		{KeyCaseSnake, "userId", "user_id"},
		{KeyCaseCamel, "user_id", "UserId"},
		{KeyCaseLowerCamel, "user_id", "userId"},
		{KeyCaseKebab, "userId", "user-id"},
	}

	for _, tt := range tests {
		t.Run(tt.keyCase+"/"+tt.key, func(t *testing.T) {
			cfg := NewConfig()
			cfg.Parser.KeyCase = tt.keyCase
			assert.Equal(t, tt.want, cfg.NormalizeKey(tt.key))
		})
	}
}

func TestConfig_FindConfigFile(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "config_search_test")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(tmpDir) }()

	nestedDir := filepath.Join(tmpDir, "project", "subdir")
	err = os.MkdirAll(nestedDir, 0o755)
	require.NoError(t, err)

	// Config lives in the project root
	configPath := filepath.Join(tmpDir, "project", ".flatjson.yml")
	err = os.WriteFile(configPath, []byte("output:\n  format: kv\n"), 0o644)
	require.NoError(t, err)

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(originalWd) }()

	err = os.Chdir(nestedDir)
	require.NoError(t, err)

	foundPath := FindConfigFile()
	require.NotEmpty(t, foundPath, "Should find config file")

	foundContent, err := os.ReadFile(foundPath)
	require.NoError(t, err)
	assert.Contains(t, string(foundContent), "format: kv")
}

func TestConfig_FindConfigFileNotFound(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "no_config_test")
	require.NoError(t, err)
	defer func() { _ = os.RemoveAll(tmpDir) }()

	originalWd, err := os.Getwd()
	require.NoError(t, err)
	defer func() { _ = os.Chdir(originalWd) }()

	err = os.Chdir(tmpDir)
	require.NoError(t, err)

	assert.Empty(t, FindConfigFile())
}

func TestLoadConfigWithCLI_Precedence(t *testing.T) {
	path := writeTempConfig(t, `
parser:
  key_case: kebab
output:
  format: yaml
`)

	cfg, err := LoadConfigWithCLI(path, "kv", "snake", true)
	require.NoError(t, err)

	// CLI > config file > defaults
	assert.Equal(t, FormatKV, cfg.Output.Format)
	assert.Equal(t, KeyCaseSnake, cfg.Parser.KeyCase)
	assert.True(t, cfg.Dev.Debug)
	assert.Equal(t, "0", cfg.Parser.Sentinel)
}

func TestLoadConfigWithCLI_NoOverrides(t *testing.T) {
	path := writeTempConfig(t, `
output:
  format: yaml
dev:
  debug: true
`)

	cfg, err := LoadConfigWithCLI(path, "", "", false)
	require.NoError(t, err)

	assert.Equal(t, FormatYAML, cfg.Output.Format)
	assert.True(t, cfg.Dev.Debug)
	assert.Equal(t, KeyCaseNone, cfg.Parser.KeyCase)
}

func TestLoadConfigWithCLI_InvalidOverride(t *testing.T) {
	_, err := LoadConfigWithCLI("", "xml", "", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, errors.ErrUnknownFormat)
}
