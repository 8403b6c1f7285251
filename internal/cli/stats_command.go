package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"todo-tracker/internal/collection"
	"todo-tracker/internal/validation"
)

// StatsCommand handles the stats command
type StatsCommand struct {
	app    *App
	AsJSON bool
}

// NewStatsCommand creates a new stats command handler
func NewStatsCommand(app *App) *StatsCommand {
	return &StatsCommand{app: app}
}

// Execute runs the stats command
func (c *StatsCommand) Execute(out io.Writer, args []string) error {
	tasks, err := c.app.LoadCollection()
	if err != nil {
		return err
	}

	stats := tasks.GetStatistics()
	if c.AsJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(stats)
	}

	printStatistics(out, stats)
	return nil
}

func printStatistics(w io.Writer, stats collection.Statistics) {
	fmt.Fprintf(w, "  Total Tasks: %d\n", stats.TotalTasks)
	fmt.Fprintf(w, "  Completed: %d\n", stats.Completed)
	fmt.Fprintf(w, "  Pending: %d\n", stats.Pending)
	fmt.Fprintf(w, "  In Progress: %d\n", stats.InProgress)
	fmt.Fprintf(w, "  Cancelled: %d\n", stats.Cancelled)
	fmt.Fprintf(w, "  Completion Rate: %.2f%%\n", stats.CompletionRate)

	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Priority Distribution:")
	for p := validation.MinPriority; p <= validation.MaxPriority; p++ {
		key := strconv.Itoa(p)
		fmt.Fprintf(w, "    Priority %s: %d tasks\n", key, stats.PriorityDistribution[key])
	}
}
