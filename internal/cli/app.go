package cli

import (
	"time"

	"github.com/sirupsen/logrus"

	"todo-tracker/internal/collection"
	"todo-tracker/internal/config"
	"todo-tracker/internal/logging"
)

// timeNow is a variable that can be replaced in tests
var timeNow = time.Now

// App holds the dependencies shared by command handlers
type App struct {
	config *config.Config
	logger logrus.FieldLogger
	source string
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(cfg *config.Config, logger logrus.FieldLogger) *App {
	if logger == nil {
		logger = logging.Discard()
	}
	return &App{
		config: cfg,
		logger: logger,
	}
}

// SetSource sets the record file that commands load their collection from.
// An empty path selects the sample collection.
func (a *App) SetSource(path string) {
	a.source = path
}

// SetLogger replaces the logger handed to collections.
func (a *App) SetLogger(logger logrus.FieldLogger) {
	if logger != nil {
		a.logger = logger
	}
}

// LoadCollection builds the working collection from the source file, or the
// sample collection when no source is set. Records that fail to import are
// logged and left out.
func (a *App) LoadCollection() (*collection.TaskCollection, error) {
	if a.source == "" {
		return NewSampleCollection(collection.WithLogger(a.logger)), nil
	}

	records, err := ReadRecordFile(a.source)
	if err != nil {
		return nil, err
	}

	c := collection.New(a.config.Collection.DefaultName, collection.WithLogger(a.logger))
	report := c.ImportRecordsWithReport(records)
	if len(report.Skipped) > 0 {
		a.logger.WithFields(logrus.Fields{
			"file":    a.source,
			"skipped": len(report.Skipped),
		}).Warn("Some records were not loaded")
	}
	return c, nil
}
