package collection

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/domain"
)

func TestGetStatistics(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(t *testing.T, c *TaskCollection)
		expected Statistics
	}{
		{
			name:  "empty collection",
			setup: func(t *testing.T, c *TaskCollection) {},
			expected: Statistics{
				PriorityDistribution: map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0},
			},
		},
		{
			name: "mixed statuses",
			setup: func(t *testing.T, c *TaskCollection) {
				mustAdd(t, c, "a", domain.StatusPending, 1)
				mustAdd(t, c, "b", domain.StatusCompleted, 3)
				mustAdd(t, c, "c", domain.StatusInProgress, 5)
			},
			expected: Statistics{
				TotalTasks:           3,
				Completed:            1,
				Pending:              1,
				InProgress:           1,
				Cancelled:            0,
				CompletionRate:       100.0 / 3,
				PriorityDistribution: map[string]int{"1": 1, "2": 0, "3": 1, "4": 0, "5": 1},
			},
		},
		{
			name: "all cancelled",
			setup: func(t *testing.T, c *TaskCollection) {
				mustAdd(t, c, "a", domain.StatusCancelled, 2)
				mustAdd(t, c, "b", domain.StatusCancelled, 2)
			},
			expected: Statistics{
				TotalTasks:           2,
				Cancelled:            2,
				PriorityDistribution: map[string]int{"1": 0, "2": 2, "3": 0, "4": 0, "5": 0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New("")
			tt.setup(t, c)

			stats := c.GetStatistics()

			assert.InDelta(t, tt.expected.CompletionRate, stats.CompletionRate, 0.01)
			stats.CompletionRate = tt.expected.CompletionRate
			assert.Equal(t, tt.expected, stats)
		})
	}
}

func TestStatistics_JSONKeys(t *testing.T) {
	c := New("")
	mustAdd(t, c, "a", domain.StatusCompleted, 4)

	data, err := json.Marshal(c.GetStatistics())
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &decoded))
	for _, key := range []string{"total_tasks", "completed", "pending", "in_progress", "cancelled", "completion_rate", "priority_distribution"} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, float64(100), decoded["completion_rate"])
}
