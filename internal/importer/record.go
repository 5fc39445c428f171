package importer

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Record is one flat, string-keyed unit of input data describing a candidate
// entity. Values are raw: strings for CSV input, native JSON scalars (or nil)
// for JSON input. Dotted keys such as "vendor.name" reference related entities
// by name; keys with the "extra." prefix carry free-form attributes.
type Record map[string]any

// Batch-level parse failures. These abort the whole import before any record
// is processed; everything else is reported per record.
var (
	ErrNoHeaders  = errors.New("CSV file has no headers")
	ErrNotAnArray = errors.New("JSON must contain an array of objects")
)

// Format is the declared encoding of an uploaded file.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// DetectFormat picks the Format from a filename extension. Anything other
// than .csv or .json is rejected before parsing is attempted.
func DetectFormat(filename string) (Format, error) {
	switch {
	case strings.HasSuffix(filename, ".csv"):
		return FormatCSV, nil
	case strings.HasSuffix(filename, ".json"):
		return FormatJSON, nil
	default:
		return "", errors.New("unsupported file format, use .csv or .json files")
	}
}

// Parse decodes content in the given format into an ordered record sequence.
func Parse(content string, format Format) ([]Record, error) {
	switch format {
	case FormatCSV:
		return ParseCSV(content)
	case FormatJSON:
		return ParseJSON(content)
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// ParseCSV parses CSV content into records keyed by the header row. A file
// with a header but no data rows is valid and yields an empty sequence; a
// file with no lines at all fails with ErrNoHeaders. Rows shorter than the
// header get nil values for the missing columns.
func ParseCSV(content string) ([]Record, error) {
	content = strings.TrimPrefix(content, "\ufeff")
	r := csv.NewReader(strings.NewReader(content))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoHeaders
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rec := make(Record, len(header))
		for i, name := range header {
			if i < len(row) {
				rec[name] = row[i]
			} else {
				rec[name] = nil
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// ParseJSON parses JSON content that must decode to a top-level array of
// objects, one record per object. Any other top-level shape, including a
// single object, fails with ErrNotAnArray.
func ParseJSON(content string) ([]Record, error) {
	var raw any
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, ErrNotAnArray
	}
	records := make([]Record, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return nil, ErrNotAnArray
		}
		records = append(records, Record(obj))
	}
	return records, nil
}
