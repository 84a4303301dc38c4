// Package export writes lists of flat problem records to disk. The
// record shape is a plain field map; column order for tabular formats
// is the sorted key set of the first record, so repeated exports of
// the same dataset are byte-identical.
package export

import (
	"errors"
	"fmt"
	"sort"
)

// Record is one flat exported row.
type Record = map[string]any

// ErrUnsupportedFormat indicates an unknown exporter format name.
var ErrUnsupportedFormat = errors.New("export: unsupported format")

// ErrNoRecords indicates an export was attempted with an empty dataset.
var ErrNoRecords = errors.New("export: no records to export")

// Exporter writes a dataset to a directory.
type Exporter interface {
	// Export writes the records into the output directory, creating it
	// if needed.
	Export(records []Record, outputDir string) error
	// Format names the exporter's format.
	Format() string
}

// Formats lists the supported format names.
func Formats() []string {
	return []string{"csv", "json", "jsonl-snappy"}
}

// For returns the exporter for a format name.
func For(format string) (Exporter, error) {
	switch format {
	case "csv":
		return CSVExporter{}, nil
	case "json":
		return JSONExporter{}, nil
	case "jsonl-snappy":
		return SnappyJSONLExporter{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// columns returns the sorted key set of the first record.
func columns(records []Record) []string {
	keys := make([]string, 0, len(records[0]))
	for k := range records[0] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
