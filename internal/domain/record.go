package domain

import (
	"encoding/json"
	"fmt"
	"math"
	"time"

	"todo-tracker/internal/errors"
)

// Record keys. A Record carries exactly these keys when produced by ToRecord.
const (
	RecordKeyName      = "name"
	RecordKeyStatus    = "status"
	RecordKeyPriority  = "priority"
	RecordKeyCreatedAt = "createdAt"
	RecordKeyUpdatedAt = "updatedAt"
)

// TimestampLayout is the ISO-8601 layout used for record timestamps.
const TimestampLayout = time.RFC3339Nano

// LocalTimestampLayout accepts ISO-8601 text without a UTC offset, read as
// local time.
const LocalTimestampLayout = "2006-01-02T15:04:05.999999999"

// Record is the plain interchange form of a Task.
type Record map[string]interface{}

// RecordMapper handles conversion between Tasks and Records.
type RecordMapper struct{}

// NewRecordMapper creates a new RecordMapper instance.
func NewRecordMapper() *RecordMapper {
	return &RecordMapper{}
}

// ToRecord converts a Task to a Record.
func (m *RecordMapper) ToRecord(task *Task) Record {
	return Record{
		RecordKeyName:      task.Name(),
		RecordKeyStatus:    task.Status().String(),
		RecordKeyPriority:  task.Priority(),
		RecordKeyCreatedAt: task.CreatedAt().Format(TimestampLayout),
		RecordKeyUpdatedAt: task.UpdatedAt().Format(TimestampLayout),
	}
}

// ToRecords converts a slice of Tasks to Records.
func (m *RecordMapper) ToRecords(tasks []*Task) []Record {
	records := make([]Record, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}

// FromRecord builds a Task from a Record. name is required; status defaults
// to pending, priority to DefaultPriority and missing timestamps to now.
func (m *RecordMapper) FromRecord(record Record) (*Task, error) {
	rawName, ok := record[RecordKeyName]
	if !ok || rawName == nil {
		return nil, errors.NewValidationError("record is missing name", nil).
			WithContext("field", RecordKeyName)
	}
	name, ok := rawName.(string)
	if !ok {
		return nil, invalidField(RecordKeyName, rawName, "must be text")
	}

	status := StatusPending
	if rawStatus, ok := record[RecordKeyStatus]; ok && rawStatus != nil {
		var text string
		switch v := rawStatus.(type) {
		case string:
			text = v
		case TaskStatus:
			text = string(v)
		default:
			return nil, invalidField(RecordKeyStatus, rawStatus, "must be text")
		}
		parsed, err := ParseTaskStatus(text)
		if err != nil {
			return nil, err
		}
		status = parsed
	}

	priority := DefaultPriority
	if rawPriority, ok := record[RecordKeyPriority]; ok && rawPriority != nil {
		p, err := toInt(rawPriority)
		if err != nil {
			return nil, invalidField(RecordKeyPriority, rawPriority, err.Error())
		}
		priority = p
	}

	createdAt, err := toTime(record, RecordKeyCreatedAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := toTime(record, RecordKeyUpdatedAt)
	if err != nil {
		return nil, err
	}

	return RestoreTask(name, status, priority, createdAt, updatedAt)
}

func invalidField(field string, value interface{}, reason string) error {
	return errors.NewValidationError(fmt.Sprintf("record field %s %s", field, reason), nil).
		WithContext("field", field).
		WithContext("value", value)
}

// toInt accepts Go integers, integral floats (as decoded from JSON) and json.Number.
func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint:
		return int(n), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float32:
		return floatToInt(float64(n))
	case float64:
		return floatToInt(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i), nil
		}
		f, err := n.Float64()
		if err != nil {
			return 0, fmt.Errorf("must be an integer")
		}
		return floatToInt(f)
	default:
		return 0, fmt.Errorf("must be an integer")
	}
}

func floatToInt(f float64) (int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, fmt.Errorf("must be an integer")
	}
	return int(f), nil
}

// toTime returns the zero time when key is absent so RestoreTask stamps it.
func toTime(record Record, key string) (time.Time, error) {
	raw, ok := record[key]
	if !ok || raw == nil {
		return time.Time{}, nil
	}
	switch v := raw.(type) {
	case time.Time:
		return v, nil
	case string:
		t, err := parseTimestamp(v)
		if err != nil {
			return time.Time{}, errors.NewValidationError(fmt.Sprintf("record field %s is not an ISO-8601 timestamp", key), err).
				WithContext("field", key).
				WithContext("value", v)
		}
		return t, nil
	default:
		return time.Time{}, invalidField(key, raw, "must be an ISO-8601 timestamp")
	}
}

func parseTimestamp(text string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, text)
	if err == nil {
		return t, nil
	}
	if local, localErr := time.ParseInLocation(LocalTimestampLayout, text, time.Local); localErr == nil {
		return local, nil
	}
	return time.Time{}, err
}
