package collection

import (
	"strconv"

	"todo-tracker/internal/validation"
)

// Statistics is a summary of a collection at one point in time.
type Statistics struct {
	TotalTasks           int            `json:"total_tasks" yaml:"total_tasks"`
	Completed            int            `json:"completed" yaml:"completed"`
	Pending              int            `json:"pending" yaml:"pending"`
	InProgress           int            `json:"in_progress" yaml:"in_progress"`
	Cancelled            int            `json:"cancelled" yaml:"cancelled"`
	CompletionRate       float64        `json:"completion_rate" yaml:"completion_rate"`
	PriorityDistribution map[string]int `json:"priority_distribution" yaml:"priority_distribution"`
}

// GetStatistics computes counts per status, the completion percentage and
// the number of tasks at each priority level. Every level from 1 to 5 is
// present in the distribution, including those with zero tasks.
func (c *TaskCollection) GetStatistics() Statistics {
	stats := Statistics{
		TotalTasks:           len(c.tasks),
		Completed:            c.CompletedCount(),
		Pending:              c.PendingCount(),
		InProgress:           c.InProgressCount(),
		Cancelled:            c.CancelledCount(),
		PriorityDistribution: make(map[string]int, validation.MaxPriority),
	}
	if stats.TotalTasks > 0 {
		stats.CompletionRate = float64(stats.Completed) / float64(stats.TotalTasks) * 100
	}
	for p := validation.MinPriority; p <= validation.MaxPriority; p++ {
		stats.PriorityDistribution[strconv.Itoa(p)] = len(c.GetTasksByPriority(p))
	}
	return stats
}
