package config

import (
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
)

// Sort keys accepted by Commands.ListDefaultSort.
const (
	SortNone     = "none"
	SortPriority = "priority"
	SortName     = "name"
	SortCreated  = "created"
)

// Export formats accepted by Commands.ExportDefaultFormat.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

var (
	sortKeys      = []string{SortNone, SortPriority, SortName, SortCreated}
	exportFormats = []string{FormatJSON, FormatYAML, FormatCSV}
)

// Config holds all configuration options for the todo application
type Config struct {
	Collection  CollectionConfig
	Display     DisplayConfig
	Logging     LoggingConfig
	Application ApplicationConfig
	Commands    CommandsConfig
}

// CollectionConfig holds collection-related configuration
type CollectionConfig struct {
	DefaultName string `env:"TODO_COLLECTION_NAME"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	TimeFormat    string `env:"TODO_TIME_FORMAT"`
	RelativeTimes bool   `env:"TODO_RELATIVE_TIMES"`
}

// LoggingConfig holds logger and log rotation configuration
type LoggingConfig struct {
	Level      string `env:"TODO_LOG_LEVEL"`
	File       string `env:"TODO_LOG_FILE"`
	MaxSizeMB  int    `env:"TODO_LOG_MAX_SIZE_MB"`
	MaxBackups int    `env:"TODO_LOG_MAX_BACKUPS"`
	MaxAgeDays int    `env:"TODO_LOG_MAX_AGE_DAYS"`
	Compress   bool   `env:"TODO_LOG_COMPRESS"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `env:"TODO_VERBOSE"`
}

// CommandsConfig holds command-specific defaults
type CommandsConfig struct {
	ListDefaultSort     string `env:"TODO_LIST_DEFAULT_SORT"`
	ExportDefaultFormat string `env:"TODO_EXPORT_DEFAULT_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Collection: CollectionConfig{
			DefaultName: "My ToDo List",
		},
		Display: DisplayConfig{
			TimeFormat:    "2006-01-02 15:04:05",
			RelativeTimes: false,
		},
		Logging: LoggingConfig{
			Level:      "info",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
			Compress:   true,
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
		Commands: CommandsConfig{
			ListDefaultSort:     SortNone,
			ExportDefaultFormat: FormatJSON,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables.
// Unparseable numeric and boolean values leave the current value in place.
func (c *Config) LoadFromEnvironment() error {
	// Collection configuration
	if name := os.Getenv("TODO_COLLECTION_NAME"); name != "" {
		c.Collection.DefaultName = name
	}

	// Display configuration
	if format := os.Getenv("TODO_TIME_FORMAT"); format != "" {
		c.Display.TimeFormat = format
	}
	if relative := os.Getenv("TODO_RELATIVE_TIMES"); relative != "" {
		c.Display.RelativeTimes = ParseBoolWithFallback(relative, c.Display.RelativeTimes)
	}

	// Logging configuration
	if level := os.Getenv("TODO_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if file := os.Getenv("TODO_LOG_FILE"); file != "" {
		c.Logging.File = file
	}
	if size := os.Getenv("TODO_LOG_MAX_SIZE_MB"); size != "" {
		c.Logging.MaxSizeMB = ParseIntWithFallback(size, c.Logging.MaxSizeMB)
	}
	if backups := os.Getenv("TODO_LOG_MAX_BACKUPS"); backups != "" {
		c.Logging.MaxBackups = ParseIntWithFallback(backups, c.Logging.MaxBackups)
	}
	if age := os.Getenv("TODO_LOG_MAX_AGE_DAYS"); age != "" {
		c.Logging.MaxAgeDays = ParseIntWithFallback(age, c.Logging.MaxAgeDays)
	}
	if compress := os.Getenv("TODO_LOG_COMPRESS"); compress != "" {
		c.Logging.Compress = ParseBoolWithFallback(compress, c.Logging.Compress)
	}

	// Application configuration
	if verbose := os.Getenv("TODO_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}

	// Commands configuration
	if sortKey := os.Getenv("TODO_LIST_DEFAULT_SORT"); sortKey != "" {
		c.Commands.ListDefaultSort = strings.ToLower(sortKey)
	}
	if format := os.Getenv("TODO_EXPORT_DEFAULT_FORMAT"); format != "" {
		c.Commands.ExportDefaultFormat = strings.ToLower(format)
	}

	return nil
}

// Validate validates the configuration and returns the first error found
func (c *Config) Validate() error {
	// Validate collection configuration
	if strings.TrimSpace(c.Collection.DefaultName) == "" {
		return &ConfigError{Field: "collection.default_name", Message: "default collection name cannot be empty"}
	}

	// Validate display configuration
	if c.Display.TimeFormat == "" {
		return &ConfigError{Field: "display.time_format", Message: "time format cannot be empty"}
	}

	// Validate logging configuration
	if _, err := logrus.ParseLevel(c.Logging.Level); err != nil {
		return &ConfigError{Field: "logging.level", Message: "unknown log level " + strconv.Quote(c.Logging.Level)}
	}
	if c.Logging.MaxSizeMB <= 0 {
		return &ConfigError{Field: "logging.max_size_mb", Message: "max log size must be positive"}
	}
	if c.Logging.MaxBackups <= 0 {
		return &ConfigError{Field: "logging.max_backups", Message: "max log backups must be positive"}
	}
	if c.Logging.MaxAgeDays <= 0 {
		return &ConfigError{Field: "logging.max_age_days", Message: "max log age must be positive"}
	}

	// Validate commands configuration
	if !slices.Contains(sortKeys, c.Commands.ListDefaultSort) {
		return &ConfigError{Field: "commands.list_default_sort", Message: "sort must be one of " + strings.Join(sortKeys, ", ")}
	}
	if !slices.Contains(exportFormats, c.Commands.ExportDefaultFormat) {
		return &ConfigError{Field: "commands.export_default_format", Message: "format must be one of " + strings.Join(exportFormats, ", ")}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
