package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"todo-tracker/internal/collection"
	"todo-tracker/internal/domain"
)

const ruleWidth = 60

// DisplayOptions controls how a collection is printed.
type DisplayOptions struct {
	// StatusFilter limits output to tasks with this status. Empty shows all.
	StatusFilter string
	// ShowStatistics appends the completion summary.
	ShowStatistics bool
	// RelativeTimes appends a humanized creation time to each task.
	RelativeTimes bool
	// ShowTimestamps appends the creation time formatted with TimeFormat.
	ShowTimestamps bool
	TimeFormat     string
}

// DisplayTasks prints the collection as a numbered table framed by rules.
// An unknown status filter or an empty result prints a message instead.
func DisplayTasks(w io.Writer, c *collection.TaskCollection, opts DisplayOptions) {
	tasks := c.Tasks()
	var filter domain.TaskStatus

	if opts.StatusFilter != "" {
		status, err := domain.ParseTaskStatus(opts.StatusFilter)
		if err != nil {
			fmt.Fprintf(w, "Invalid status filter: %s\n", opts.StatusFilter)
			return
		}
		filter = status
		tasks = c.FindTasksByStatus(domain.StatusValue(status))
	}

	if len(tasks) == 0 {
		if filter != "" {
			fmt.Fprintln(w, "No tasks found for the specified status!")
		} else {
			fmt.Fprintln(w, "No tasks found!")
		}
		return
	}

	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, strings.ToUpper(c.Name()))
	if filter != "" {
		fmt.Fprintf(w, "Filtered by: %s\n", strings.ToUpper(filter.String()))
	}
	fmt.Fprintln(w, rule)

	for i, task := range tasks {
		fmt.Fprintf(w, "%2d. %s%s\n", i+1, task, taskSuffix(task, opts))
	}

	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "Total: %d tasks\n", len(tasks))

	if opts.ShowStatistics {
		stats := c.GetStatistics()
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Statistics:")
		fmt.Fprintf(w, "  Completed: %d (%.1f%%)\n", stats.Completed, stats.CompletionRate)
		fmt.Fprintf(w, "  Pending: %d\n", stats.Pending)
		fmt.Fprintf(w, "  In Progress: %d\n", stats.InProgress)
		fmt.Fprintf(w, "  Cancelled: %d\n", stats.Cancelled)
	}
}

func taskSuffix(task *domain.Task, opts DisplayOptions) string {
	switch {
	case opts.RelativeTimes:
		return fmt.Sprintf(" (created %s)", humanize.RelTime(task.CreatedAt(), timeNow(), "ago", "from now"))
	case opts.ShowTimestamps && opts.TimeFormat != "":
		return fmt.Sprintf(" (created %s)", task.CreatedAt().Format(opts.TimeFormat))
	default:
		return ""
	}
}
