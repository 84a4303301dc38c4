package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/snappy"
)

// CSVExporter writes records to data.csv.
type CSVExporter struct{}

func (CSVExporter) Format() string { return "csv" }

func (CSVExporter) Export(records []Record, outputDir string) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	file, err := createOutput(outputDir, "data.csv")
	if err != nil {
		return err
	}
	defer file.Close()

	cols := columns(records)
	w := csv.NewWriter(file)
	if err := w.Write(cols); err != nil {
		return fmt.Errorf("export: writing csv header: %w", err)
	}
	row := make([]string, len(cols))
	for _, record := range records {
		for i, col := range cols {
			row[i] = fmt.Sprintf("%v", record[col])
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("export: writing csv row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// JSONExporter writes records to data.json as one indented array.
type JSONExporter struct{}

func (JSONExporter) Format() string { return "json" }

func (JSONExporter) Export(records []Record, outputDir string) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	file, err := createOutput(outputDir, "data.json")
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("export: encoding json: %w", err)
	}
	return nil
}

// SnappyJSONLExporter writes records to data.jsonl.sz: one JSON object
// per line inside a snappy-framed stream. Suited to large datasets
// that will be streamed back record by record.
type SnappyJSONLExporter struct{}

func (SnappyJSONLExporter) Format() string { return "jsonl-snappy" }

func (SnappyJSONLExporter) Export(records []Record, outputDir string) error {
	if len(records) == 0 {
		return ErrNoRecords
	}
	file, err := createOutput(outputDir, "data.jsonl.sz")
	if err != nil {
		return err
	}
	defer file.Close()

	sw := snappy.NewBufferedWriter(file)
	enc := json.NewEncoder(sw)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("export: encoding jsonl record: %w", err)
		}
	}
	if err := sw.Close(); err != nil {
		return fmt.Errorf("export: flushing snappy stream: %w", err)
	}
	return nil
}

func createOutput(outputDir, name string) (*os.File, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("export: creating output directory: %w", err)
	}
	file, err := os.Create(filepath.Join(outputDir, name))
	if err != nil {
		return nil, fmt.Errorf("export: creating output file: %w", err)
	}
	return file, nil
}
