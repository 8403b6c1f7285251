package cli

import (
	"todo-tracker/internal/collection"
	"todo-tracker/internal/domain"
)

// SampleCollectionName labels the collection built by NewSampleCollection.
const SampleCollectionName = "Sample Project Tasks"

type sampleTask struct {
	name     string
	status   domain.TaskStatus
	priority int
}

var sampleTasks = []sampleTask{
	{"Design database schema", domain.StatusCompleted, 5},
	{"Implement user authentication", domain.StatusInProgress, 4},
	{"Write unit tests", domain.StatusPending, 3},
	{"Create API documentation", domain.StatusPending, 2},
	{"Deploy to staging", domain.StatusPending, 4},
	{"Code review", domain.StatusPending, 3},
	{"Update README", domain.StatusPending, 1},
}

// NewSampleCollection returns a seven-task project list used by the demo and
// as the default source when no record file is given.
func NewSampleCollection(opts ...collection.Option) *collection.TaskCollection {
	c := collection.New(SampleCollectionName, opts...)
	for _, st := range sampleTasks {
		// The fixture is valid by construction.
		if _, err := c.AddTask(st.name, domain.StatusValue(st.status), st.priority); err != nil {
			panic(err)
		}
	}
	return c
}
