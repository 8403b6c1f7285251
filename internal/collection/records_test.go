package collection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
)

func TestExportToRecords(t *testing.T) {
	c := New("")
	task := mustAdd(t, c, "Write docs", domain.StatusInProgress, 4)

	records := c.ExportToRecords()
	require.Len(t, records, 1)

	record := records[0]
	assert.Len(t, record, 5)
	assert.Equal(t, "Write docs", record["name"])
	assert.Equal(t, "in_progress", record["status"])
	assert.Equal(t, 4, record["priority"])
	assert.Equal(t, task.CreatedAt().Format(domain.TimestampLayout), record["createdAt"])
	assert.Equal(t, task.UpdatedAt().Format(domain.TimestampLayout), record["updatedAt"])
}

func TestExportImport_RoundTrip(t *testing.T) {
	source := New("source")
	mustAdd(t, source, "a", domain.StatusPending, 1)
	mustAdd(t, source, "b", domain.StatusCompleted, 5)
	mustAdd(t, source, "c", domain.StatusCancelled, 3)
	mustAdd(t, source, "d", domain.StatusInProgress, 2)

	target := New("target")
	imported := target.ImportFromRecords(source.ExportToRecords())
	require.Equal(t, 4, imported)

	want := source.Tasks()
	got := target.Tasks()
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].Name(), got[i].Name())
		assert.Equal(t, want[i].Status(), got[i].Status())
		assert.Equal(t, want[i].Priority(), got[i].Priority())
		assert.True(t, want[i].CreatedAt().Equal(got[i].CreatedAt()))
		assert.True(t, want[i].UpdatedAt().Equal(got[i].UpdatedAt()))
	}
}

func TestImportFromRecords_Defaults(t *testing.T) {
	c := New("")
	before := time.Now()

	require.Equal(t, 1, c.ImportFromRecords([]domain.Record{{"name": "bare"}}))

	task := c.FindTask("bare")
	require.NotNil(t, task)
	assert.Equal(t, domain.StatusPending, task.Status())
	assert.Equal(t, domain.DefaultPriority, task.Priority())
	assert.False(t, task.CreatedAt().Before(before))
}

func TestImportFromRecords_AppendsToExisting(t *testing.T) {
	c := New("")
	mustAdd(t, c, "existing", domain.StatusPending, 3)

	imported := c.ImportFromRecords([]domain.Record{{"name": "existing"}, {"name": "new"}})

	assert.Equal(t, 2, imported)
	assert.Equal(t, []string{"existing", "existing", "new"}, names(c.Tasks()))
}

func TestImportRecordsWithReport_PartiallyInvalid(t *testing.T) {
	records := []domain.Record{
		{"name": "valid 1", "status": "completed", "priority": 2},
		{"status": "pending"},
		{"name": "bad status", "status": "done"},
		{"name": "valid 2"},
		{"name": "bad priority", "priority": 9},
		{"name": "bad timestamp", "createdAt": "yesterday"},
		{"name": 42},
		{"name": "valid 3", "status": "IN_PROGRESS", "priority": 5.0},
	}

	c := New("")
	report := c.ImportRecordsWithReport(records)

	assert.Equal(t, 3, report.Imported)
	assert.Less(t, report.Imported, len(records))
	assert.Equal(t, []string{"valid 1", "valid 2", "valid 3"}, names(c.Tasks()))
	assert.Equal(t, domain.StatusInProgress, c.FindTask("valid 3").Status())

	skipped := make([]int, len(report.Skipped))
	for i, s := range report.Skipped {
		skipped[i] = s.Index
		assert.True(t, errors.IsErrorType(s.Err, errors.ErrorTypeValidation), "record %d", s.Index)
	}
	assert.Equal(t, []int{1, 2, 4, 5, 6}, skipped)
}

func TestImportFromRecords_CountOnly(t *testing.T) {
	c := New("")
	imported := c.ImportFromRecords([]domain.Record{{"name": "ok"}, {"priority": 1}})
	assert.Equal(t, 1, imported)
	assert.Equal(t, 1, c.Len())
}

func TestImportFromRecords_Empty(t *testing.T) {
	c := New("")
	assert.Equal(t, 0, c.ImportFromRecords(nil))
	assert.Empty(t, c.ImportRecordsWithReport([]domain.Record{}).Skipped)
}

func TestImportFromRecords_TimestampsWithoutOffset(t *testing.T) {
	c := New("")

	imported := c.ImportFromRecords([]domain.Record{
		{"name": "fractional", "createdAt": "2024-01-15T10:30:00.123456", "updatedAt": "2024-01-15T10:30:00.123456"},
		{"name": "whole", "createdAt": "2024-01-15T10:30:00"},
	})

	assert.Equal(t, 2, imported)
	assert.Equal(t, []string{"fractional", "whole"}, names(c.Tasks()))
}
