package cli

import (
	"fmt"
	"io"
	"strings"

	"todo-tracker/internal/collection"
	"todo-tracker/internal/domain"
)

// DemoCommand walks through the collection operations on the sample list
type DemoCommand struct {
	app *App
}

// NewDemoCommand creates a new demo command handler
func NewDemoCommand(app *App) *DemoCommand {
	return &DemoCommand{app: app}
}

// Execute runs the demonstration
func (c *DemoCommand) Execute(out io.Writer, args []string) error {
	banner := strings.Repeat("=", 70)
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, "           TODO APPLICATION DEMONSTRATION")
	fmt.Fprintln(out, banner)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Creating sample todo list...")
	tasks := NewSampleCollection(collection.WithLogger(c.app.logger))
	fmt.Fprintf(out, "Created: %s\n\n", tasks)

	fmt.Fprintln(out, "All tasks:")
	DisplayTasks(out, tasks, DisplayOptions{ShowStatistics: true})
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Pending tasks only:")
	DisplayTasks(out, tasks, DisplayOptions{StatusFilter: domain.StatusPending.String()})
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Tasks sorted by priority (highest first):")
	tasks.SortByPriority(true)
	DisplayTasks(out, tasks, DisplayOptions{})
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Marking tasks as completed...")
	for _, name := range []string{"Write unit tests", "Code review"} {
		if tasks.MarkTaskCompleted(name) {
			fmt.Fprintf(out, "  Completed: %s\n", name)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Updated statistics:")
	printStatistics(out, tasks.GetStatistics())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "High priority tasks (priority 4-5):")
	n := 0
	for _, task := range tasks.All() {
		if task.Priority() >= 4 {
			n++
			fmt.Fprintf(out, "  %d. %s\n", n, task)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Export/Import demonstration:")
	exported := tasks.ExportToRecords()
	fmt.Fprintf(out, "Exported %d tasks\n", len(exported))
	imported := collection.New("Imported Tasks", collection.WithLogger(c.app.logger))
	count := imported.ImportFromRecords(exported)
	fmt.Fprintf(out, "Imported %d tasks to new list\n", count)
	fmt.Fprintln(out)

	fmt.Fprintln(out, banner)
	fmt.Fprintln(out, "           DEMONSTRATION COMPLETED")
	fmt.Fprintln(out, banner)
	return nil
}
