package collection

import (
	"github.com/sirupsen/logrus"

	"todo-tracker/internal/domain"
)

// SkippedRecord identifies a record that could not be imported.
type SkippedRecord struct {
	Index int
	Err   error
}

// ImportReport describes the outcome of an import.
type ImportReport struct {
	Imported int
	Skipped  []SkippedRecord
}

// ExportToRecords converts every task to a Record, in collection order.
func (c *TaskCollection) ExportToRecords() []domain.Record {
	return c.mapper.ToRecords(c.tasks)
}

// ImportFromRecords appends a task for each valid record and returns the
// number imported. Invalid records are skipped.
func (c *TaskCollection) ImportFromRecords(records []domain.Record) int {
	return c.ImportRecordsWithReport(records).Imported
}

// ImportRecordsWithReport appends a task for each valid record, in input
// order, and reports which records were skipped and why. Existing tasks are
// kept and duplicates are not merged.
func (c *TaskCollection) ImportRecordsWithReport(records []domain.Record) ImportReport {
	report := ImportReport{}
	for i, record := range records {
		task, err := c.mapper.FromRecord(record)
		if err != nil {
			c.logger.WithError(err).WithField("index", i).Warn("Failed to import task")
			report.Skipped = append(report.Skipped, SkippedRecord{Index: i, Err: err})
			continue
		}
		c.tasks = append(c.tasks, task)
		report.Imported++
	}
	c.logger.WithFields(logrus.Fields{
		"imported": report.Imported,
		"skipped":  len(report.Skipped),
	}).Info("Imported tasks")
	return report
}
