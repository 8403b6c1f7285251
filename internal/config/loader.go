package config

import (
	"errors"
	"io/fs"
	"strconv"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is the dotenv file read by Load when present.
const DefaultEnvFile = ".env"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config  *Config
	envFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config:  NewConfig(),
		envFile: DefaultEnvFile,
	}
}

// WithEnvFile sets the dotenv file to read. An empty path disables it.
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Populate the process environment from the dotenv file, if any
// 3. Override with environment variables
// 4. Override with command line flags (see LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if l.envFile != "" {
		// godotenv never overwrites variables already set in the environment.
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigError{Field: "env_file", Message: err.Error()}
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		overrides.Apply(config)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides. A nil field means the
// flag was not given.
type ConfigOverrides struct {
	// Collection overrides
	CollectionName *string

	// Display overrides
	TimeFormat    *string
	RelativeTimes *bool

	// Logging overrides
	LogLevel *string
	LogFile  *string

	// Application overrides
	Verbose *bool

	// Commands overrides
	ListDefaultSort     *string
	ExportDefaultFormat *string
}

// Apply copies every set override into config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.CollectionName != nil {
		config.Collection.DefaultName = *o.CollectionName
	}

	if o.TimeFormat != nil {
		config.Display.TimeFormat = *o.TimeFormat
	}
	if o.RelativeTimes != nil {
		config.Display.RelativeTimes = *o.RelativeTimes
	}

	if o.LogLevel != nil {
		config.Logging.Level = *o.LogLevel
	}
	if o.LogFile != nil {
		config.Logging.File = *o.LogFile
	}

	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}

	if o.ListDefaultSort != nil {
		config.Commands.ListDefaultSort = *o.ListDefaultSort
	}
	if o.ExportDefaultFormat != nil {
		config.Commands.ExportDefaultFormat = *o.ExportDefaultFormat
	}
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
