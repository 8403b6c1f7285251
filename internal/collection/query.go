package collection

import (
	"todo-tracker/internal/domain"
)

// FindTasksByStatus returns the tasks with the given status in collection
// order. Unrecognized status text yields an empty result rather than an error.
func (c *TaskCollection) FindTasksByStatus(status domain.StatusArg) []*domain.Task {
	resolved, err := status.Resolve()
	if err != nil {
		c.logger.WithField("status", status.String()).Debug("Unrecognized status filter")
		return []*domain.Task{}
	}
	return c.filter(func(t *domain.Task) bool { return t.Status() == resolved })
}

// GetTasksByPriority returns the tasks with exactly the given priority in
// collection order.
func (c *TaskCollection) GetTasksByPriority(priority int) []*domain.Task {
	return c.filter(func(t *domain.Task) bool { return t.Priority() == priority })
}

func (c *TaskCollection) filter(keep func(*domain.Task) bool) []*domain.Task {
	matches := []*domain.Task{}
	for _, task := range c.tasks {
		if keep(task) {
			matches = append(matches, task)
		}
	}
	return matches
}

// TaskCount returns the total number of tasks.
func (c *TaskCollection) TaskCount() int {
	return len(c.tasks)
}

// CompletedCount returns the number of completed tasks.
func (c *TaskCollection) CompletedCount() int {
	return c.countStatus(domain.StatusCompleted)
}

// PendingCount returns the number of pending tasks.
func (c *TaskCollection) PendingCount() int {
	return c.countStatus(domain.StatusPending)
}

// InProgressCount returns the number of in-progress tasks.
func (c *TaskCollection) InProgressCount() int {
	return c.countStatus(domain.StatusInProgress)
}

// CancelledCount returns the number of cancelled tasks.
func (c *TaskCollection) CancelledCount() int {
	return c.countStatus(domain.StatusCancelled)
}

func (c *TaskCollection) countStatus(status domain.TaskStatus) int {
	return len(c.FindTasksByStatus(domain.StatusValue(status)))
}
