package cli

import (
	"fmt"
	"io"

	"todo-tracker/internal/collection"
	"todo-tracker/internal/errors"
)

// ImportCommand handles the import command
type ImportCommand struct {
	app *App
}

// NewImportCommand creates a new import command handler
func NewImportCommand(app *App) *ImportCommand {
	return &ImportCommand{app: app}
}

// Execute imports the record file named by args[0] into a fresh collection,
// reports skipped records and prints the result.
func (c *ImportCommand) Execute(out io.Writer, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "import", "usage: todo import FILE")
	}
	path := args[0]

	records, err := ReadRecordFile(path)
	if err != nil {
		return err
	}

	tasks := collection.New(c.app.config.Collection.DefaultName, collection.WithLogger(c.app.logger))
	report := tasks.ImportRecordsWithReport(records)

	fmt.Fprintf(out, "Imported %d of %d records from %s\n", report.Imported, len(records), path)
	handler := NewErrorHandler()
	for _, skipped := range report.Skipped {
		label := fmt.Sprintf("record %d", skipped.Index+1)
		if field := handler.FieldOf(skipped.Err); field != "" {
			label += " [" + field + "]"
		}
		fmt.Fprintf(out, "  Skipped %s: %s\n", label, errors.GetUserMessage(skipped.Err))
	}

	DisplayTasks(out, tasks, DisplayOptions{
		ShowTimestamps: c.app.config.Application.Verbose,
		TimeFormat:     c.app.config.Display.TimeFormat,
	})
	return nil
}
