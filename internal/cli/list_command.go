package cli

import (
	"io"
	"strings"

	"todo-tracker/internal/collection"
	"todo-tracker/internal/config"
	"todo-tracker/internal/errors"
)

// ListOptions holds the list command flags
type ListOptions struct {
	Status   string
	Sort     string
	Reverse  bool
	Stats    bool
	Relative bool
}

// ListCommand handles the list command
type ListCommand struct {
	app  *App
	opts ListOptions
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Options exposes the flag targets for binding
func (c *ListCommand) Options() *ListOptions {
	return &c.opts
}

// Execute runs the list command
func (c *ListCommand) Execute(out io.Writer, args []string) error {
	tasks, err := c.app.LoadCollection()
	if err != nil {
		return err
	}

	sortKey := c.opts.Sort
	if sortKey == "" {
		sortKey = c.app.config.Commands.ListDefaultSort
	}
	if err := applySort(tasks, strings.ToLower(sortKey), c.opts.Reverse); err != nil {
		return err
	}

	DisplayTasks(out, tasks, DisplayOptions{
		StatusFilter:   c.opts.Status,
		ShowStatistics: c.opts.Stats,
		RelativeTimes:  c.opts.Relative || c.app.config.Display.RelativeTimes,
		ShowTimestamps: c.app.config.Application.Verbose,
		TimeFormat:     c.app.config.Display.TimeFormat,
	})
	return nil
}

// applySort orders the collection by key. Priority sorts highest first
// unless reversed; the other keys sort ascending unless reversed.
func applySort(tasks *collection.TaskCollection, key string, reverse bool) error {
	switch key {
	case config.SortNone:
	case config.SortPriority:
		tasks.SortByPriority(!reverse)
	case config.SortName:
		tasks.SortByName(reverse)
	case config.SortCreated:
		tasks.SortByCreatedDate(reverse)
	default:
		return errors.NewInvalidInputError("sort", key, "must be one of none, priority, name, created")
	}
	return nil
}
