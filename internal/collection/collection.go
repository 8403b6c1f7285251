// Package collection holds TaskCollection, the ordered in-memory aggregate of
// tasks. A collection is owned by a single caller and is not safe for
// concurrent use.
package collection

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/validation"
)

// DefaultName is used when a collection is created without a name.
const DefaultName = "My ToDo List"

// Option configures a TaskCollection.
type Option func(*TaskCollection)

// WithLogger sets the logger that receives diagnostic events.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *TaskCollection) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// TaskCollection is an ordered sequence of tasks. Insertion order is the
// canonical order and names are not unique.
type TaskCollection struct {
	name          string
	tasks         []*domain.Task
	logger        logrus.FieldLogger
	taskValidator *validation.TaskValidator
	mapper        *domain.RecordMapper
}

// New creates an empty collection. An empty name is replaced by DefaultName.
func New(name string, opts ...Option) *TaskCollection {
	if name == "" {
		name = DefaultName
	}
	c := &TaskCollection{
		name:          name,
		logger:        logging.Discard(),
		taskValidator: validation.NewTaskValidator(),
		mapper:        domain.NewRecordMapper(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the collection label.
func (c *TaskCollection) Name() string {
	return c.name
}

// String renders the summary line "name (N tasks)".
func (c *TaskCollection) String() string {
	return fmt.Sprintf("%s (%d tasks)", c.name, len(c.tasks))
}

// Len returns the number of tasks.
func (c *TaskCollection) Len() int {
	return len(c.tasks)
}

// Tasks returns the tasks in collection order. The slice is a copy; the
// tasks are shared.
func (c *TaskCollection) Tasks() []*domain.Task {
	return slices.Clone(c.tasks)
}

// All iterates over index and task in collection order.
func (c *TaskCollection) All() iter.Seq2[int, *domain.Task] {
	return func(yield func(int, *domain.Task) bool) {
		for i, task := range c.tasks {
			if !yield(i, task) {
				return
			}
		}
	}
}

// AddTask validates the input, creates a task with the trimmed name and
// appends it. Nothing is appended when validation fails.
func (c *TaskCollection) AddTask(name string, status domain.StatusArg, priority int) (*domain.Task, error) {
	trimmedName, err := c.taskValidator.GetValidTaskName(name)
	if err != nil {
		return nil, errors.NewValidationError("task name cannot be empty", err)
	}

	resolved, err := status.Resolve()
	if err != nil {
		return nil, err
	}

	task, err := domain.NewTask(trimmedName, resolved, priority)
	if err != nil {
		return nil, err
	}

	c.tasks = append(c.tasks, task)
	c.logger.WithField("task", task.Name()).Info("Added task")
	return task, nil
}

// Add appends a pending task with the default priority.
func (c *TaskCollection) Add(name string) (*domain.Task, error) {
	return c.AddTask(name, domain.StatusArg{}, domain.DefaultPriority)
}

// RemoveTask removes the first task whose name matches case-insensitively.
func (c *TaskCollection) RemoveTask(name string) bool {
	i := c.indexOf(name)
	if i < 0 {
		c.logger.WithField("task", name).Warn("Task not found")
		return false
	}
	removed := c.tasks[i]
	c.tasks = slices.Delete(c.tasks, i, i+1)
	c.logger.WithField("task", removed.Name()).Info("Removed task")
	return true
}

// RemoveTaskByIndex removes and returns the task at index, or nil when index
// is out of range.
func (c *TaskCollection) RemoveTaskByIndex(index int) *domain.Task {
	if index < 0 || index >= len(c.tasks) {
		c.logger.WithField("index", index).Warn("Invalid task index")
		return nil
	}
	removed := c.tasks[index]
	c.tasks = slices.Delete(c.tasks, index, index+1)
	c.logger.WithFields(logrus.Fields{"index": index, "task": removed.Name()}).Info("Removed task by index")
	return removed
}

// FindTask returns the first task whose name matches case-insensitively, or nil.
func (c *TaskCollection) FindTask(name string) *domain.Task {
	if i := c.indexOf(name); i >= 0 {
		return c.tasks[i]
	}
	return nil
}

func (c *TaskCollection) indexOf(name string) int {
	return slices.IndexFunc(c.tasks, func(t *domain.Task) bool {
		return strings.EqualFold(t.Name(), name)
	})
}

// MarkTaskCompleted marks the first matching task completed.
func (c *TaskCollection) MarkTaskCompleted(name string) bool {
	return c.markTask(name, "completion", (*domain.Task).MarkCompleted)
}

// MarkTaskPending marks the first matching task pending.
func (c *TaskCollection) MarkTaskPending(name string) bool {
	return c.markTask(name, "pending", (*domain.Task).MarkPending)
}

// MarkTaskInProgress marks the first matching task in progress.
func (c *TaskCollection) MarkTaskInProgress(name string) bool {
	return c.markTask(name, "in progress", (*domain.Task).MarkInProgress)
}

// MarkTaskCancelled marks the first matching task cancelled.
func (c *TaskCollection) MarkTaskCancelled(name string) bool {
	return c.markTask(name, "cancellation", (*domain.Task).MarkCancelled)
}

func (c *TaskCollection) markTask(name, action string, mark func(*domain.Task) bool) bool {
	task := c.FindTask(name)
	if task == nil {
		c.logger.WithField("task", name).Warnf("Task not found for %s", action)
		return false
	}
	if mark(task) {
		c.logger.WithFields(logrus.Fields{"task": task.Name(), "status": task.Status()}).Info("Task status changed")
	}
	return true
}
