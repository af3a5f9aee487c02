// Package export serializes flat result sets into downloadable payloads.
// Records arrive as loosely-typed documents straight from the store; column
// order is the sorted union of keys with "_id" pinned first so repeated
// exports of the same data are byte-stable.
package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"gstrex/internal/domain"
)

// BOM is prepended to CSV output for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// Encode serializes records in the requested format and returns the payload
// together with its MIME type and a filename built from the base name.
func Encode(records []map[string]any, format domain.ExportFormat, baseName string) ([]byte, string, string, error) {
	if len(records) == 0 {
		return nil, "", "", domain.ErrEmptyExport
	}

	var (
		payload []byte
		err     error
	)
	switch format {
	case domain.FormatCSV:
		payload, err = ToCSV(records)
	case domain.FormatExcel:
		payload, err = ToExcel(records)
	case domain.FormatJSON:
		payload, err = ToJSON(records)
	case domain.FormatPDF:
		payload, err = ToPDF(records, baseName)
	default:
		return nil, "", "", domain.ErrUnsupportedFormat
	}
	if err != nil {
		return nil, "", "", err
	}

	filename := fmt.Sprintf("%s.%s", SanitizeFilename(baseName), domain.ExportExtensions[format])
	return payload, domain.ExportMIMETypes[format], filename, nil
}

// Columns returns the export column order: the sorted union of keys across
// all records, with "_id" first when present.
func Columns(records []map[string]any) []string {
	seen := make(map[string]bool)
	var cols []string
	hasID := false
	for _, rec := range records {
		for k := range rec {
			if k == "_id" {
				hasID = true
				continue
			}
			if !seen[k] {
				seen[k] = true
				cols = append(cols, k)
			}
		}
	}
	sort.Strings(cols)
	if hasID {
		cols = append([]string{"_id"}, cols...)
	}
	return cols
}

// ToCSV writes records as BOM-prefixed CSV with a header row.
func ToCSV(records []map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(BOM)

	cols := Columns(records)
	w := csv.NewWriter(&buf)
	if err := w.Write(cols); err != nil {
		return nil, err
	}
	for _, rec := range records {
		row := make([]string, len(cols))
		for i, col := range cols {
			row[i] = CellString(rec[col])
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ToJSON writes records as indented JSON.
func ToJSON(records []map[string]any) ([]byte, error) {
	return json.MarshalIndent(records, "", "  ")
}

// CellString renders a single document value for a tabular cell.
func CellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", t)
	}
}
