package cli

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
)

var csvHeader = []string{
	domain.RecordKeyName,
	domain.RecordKeyStatus,
	domain.RecordKeyPriority,
	domain.RecordKeyCreatedAt,
	domain.RecordKeyUpdatedAt,
}

// ReadRecordFile decodes a list of task records from path. Files ending in
// .yaml or .yml are read as YAML, everything else as JSON.
func ReadRecordFile(path string) ([]domain.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewIOError("read record file", path, err)
	}

	var records []domain.Record
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, errors.NewInvalidInputError("file", path, "not a YAML list of records: "+err.Error())
		}
	default:
		decoder := json.NewDecoder(bytes.NewReader(data))
		decoder.UseNumber()
		if err := decoder.Decode(&records); err != nil {
			return nil, errors.NewInvalidInputError("file", path, "not a JSON list of records: "+err.Error())
		}
	}
	return records, nil
}

// WriteRecords encodes records to w in the given export format.
func WriteRecords(w io.Writer, format string, records []domain.Record) error {
	switch format {
	case config.FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if records == nil {
			records = []domain.Record{}
		}
		return encoder.Encode(records)
	case config.FormatYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(records); err != nil {
			return fmt.Errorf("failed to write YAML: %w", err)
		}
		return encoder.Close()
	case config.FormatCSV:
		return writeCSV(w, records)
	default:
		return errors.NewInvalidInputError("format", format, "unsupported format")
	}
}

func writeCSV(w io.Writer, records []domain.Record) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, record := range records {
		row := make([]string, len(csvHeader))
		for i, key := range csvHeader {
			switch v := record[key].(type) {
			case string:
				row[i] = v
			case int:
				row[i] = strconv.Itoa(v)
			default:
				row[i] = fmt.Sprint(v)
			}
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
