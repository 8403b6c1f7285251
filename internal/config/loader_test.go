package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets keys for the duration of the test. godotenv only fills
// variables that are absent, so an empty value would mask the dotenv file.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load_MissingEnvFile(t *testing.T) {
	clearEnv(t, "TODO_COLLECTION_NAME")

	cfg, err := NewLoader().WithEnvFile(filepath.Join(t.TempDir(), "absent.env")).Load()

	require.NoError(t, err)
	assert.Equal(t, "My ToDo List", cfg.Collection.DefaultName)
}

func TestLoader_Load_EnvFile(t *testing.T) {
	clearEnv(t, "TODO_COLLECTION_NAME", "TODO_LOG_LEVEL", "TODO_EXPORT_DEFAULT_FORMAT")
	t.Setenv("TODO_LOG_LEVEL", "warn")
	path := writeEnvFile(t, "TODO_COLLECTION_NAME=From File\nTODO_LOG_LEVEL=debug\nTODO_EXPORT_DEFAULT_FORMAT=csv\n")

	cfg, err := NewLoader().WithEnvFile(path).Load()

	require.NoError(t, err)
	assert.Equal(t, "From File", cfg.Collection.DefaultName)
	assert.Equal(t, "warn", cfg.Logging.Level, "environment wins over the dotenv file")
	assert.Equal(t, FormatCSV, cfg.Commands.ExportDefaultFormat)
}

func TestLoader_Load_DisabledEnvFile(t *testing.T) {
	clearEnv(t, "TODO_COLLECTION_NAME")
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile(DefaultEnvFile, []byte("TODO_COLLECTION_NAME=Ignored\n"), 0o600))

	cfg, err := NewLoader().WithEnvFile("").Load()

	require.NoError(t, err)
	assert.Equal(t, "My ToDo List", cfg.Collection.DefaultName)
}

func TestLoader_Load_InvalidEnvironment(t *testing.T) {
	t.Setenv("TODO_LOG_LEVEL", "chatty")

	_, err := NewLoader().WithEnvFile("").Load()

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "logging.level", configErr.Field)
}

func TestLoader_LoadWithOverrides(t *testing.T) {
	clearEnv(t, "TODO_COLLECTION_NAME", "TODO_LOG_LEVEL", "TODO_LIST_DEFAULT_SORT")

	name := "Flags"
	level := "error"
	sortKey := SortName
	relative := true
	verbose := true

	cfg, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{
		CollectionName:  &name,
		LogLevel:        &level,
		ListDefaultSort: &sortKey,
		RelativeTimes:   &relative,
		Verbose:         &verbose,
	})

	require.NoError(t, err)
	assert.Equal(t, "Flags", cfg.Collection.DefaultName)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.Equal(t, SortName, cfg.Commands.ListDefaultSort)
	assert.True(t, cfg.Display.RelativeTimes)
	assert.True(t, cfg.Application.Verbose)
	assert.Equal(t, FormatJSON, cfg.Commands.ExportDefaultFormat)
}

func TestLoader_LoadWithOverrides_Invalid(t *testing.T) {
	format := "xml"

	_, err := NewLoader().WithEnvFile("").LoadWithOverrides(&ConfigOverrides{ExportDefaultFormat: &format})

	var configErr *ConfigError
	require.ErrorAs(t, err, &configErr)
	assert.Equal(t, "commands.export_default_format", configErr.Field)
}

func TestParseWithFallback(t *testing.T) {
	assert.Equal(t, 4, ParseIntWithFallback("4", 1))
	assert.Equal(t, 1, ParseIntWithFallback("four", 1))
	assert.True(t, ParseBoolWithFallback("true", false))
	assert.False(t, ParseBoolWithFallback("maybe", false))
}
