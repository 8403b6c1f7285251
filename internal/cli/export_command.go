package cli

import (
	"io"
	"strings"
)

// ExportCommand handles the export command
type ExportCommand struct {
	app    *App
	Format string
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app}
}

// Execute writes every task record to out in the selected format
func (c *ExportCommand) Execute(out io.Writer, args []string) error {
	format := c.Format
	if format == "" {
		format = c.app.config.Commands.ExportDefaultFormat
	}

	tasks, err := c.app.LoadCollection()
	if err != nil {
		return err
	}

	return WriteRecords(out, strings.ToLower(format), tasks.ExportToRecords())
}
