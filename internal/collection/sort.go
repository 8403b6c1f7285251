package collection

import (
	"cmp"
	"slices"
	"strings"

	"todo-tracker/internal/domain"
)

// All sorts are stable: tasks that compare equal keep their relative order,
// in either direction.

// SortByPriority orders tasks by priority, highest first when descending.
func (c *TaskCollection) SortByPriority(descending bool) {
	c.sortStable(descending, func(a, b *domain.Task) int {
		return cmp.Compare(a.Priority(), b.Priority())
	})
	c.logger.Info("Tasks sorted by priority")
}

// SortByName orders tasks alphabetically, ignoring case.
func (c *TaskCollection) SortByName(reverse bool) {
	c.sortStable(reverse, func(a, b *domain.Task) int {
		return strings.Compare(strings.ToLower(a.Name()), strings.ToLower(b.Name()))
	})
	c.logger.Info("Tasks sorted by name")
}

// SortByCreatedDate orders tasks by creation time, newest first when reversed.
func (c *TaskCollection) SortByCreatedDate(reverse bool) {
	c.sortStable(reverse, func(a, b *domain.Task) int {
		return a.CreatedAt().Compare(b.CreatedAt())
	})
	c.logger.Info("Tasks sorted by creation date")
}

func (c *TaskCollection) sortStable(reverse bool, compare func(a, b *domain.Task) int) {
	if reverse {
		slices.SortStableFunc(c.tasks, func(a, b *domain.Task) int { return compare(b, a) })
		return
	}
	slices.SortStableFunc(c.tasks, compare)
}

// ClearCompleted removes every completed task, keeping the order of the rest,
// and returns how many were removed.
func (c *TaskCollection) ClearCompleted() int {
	before := len(c.tasks)
	c.tasks = slices.DeleteFunc(c.tasks, (*domain.Task).IsCompleted)
	removed := before - len(c.tasks)
	c.logger.WithField("removed", removed).Info("Cleared completed tasks")
	return removed
}
