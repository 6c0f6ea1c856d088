// Package export serializes filtered feedback slices for download.
//
// Two slices are exported: the negative-comment slice and the full filtered
// slice. Both re-apply the rating threshold defensively where it applies,
// so an exported negative slice can never contain a row above the
// threshold regardless of upstream filter state.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/xuri/excelize/v2"

	"github.com/rgerjeki/Customer-Feedback-Insights/engine"
)

// Supported output formats.
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// File is a named, ready-to-download export buffer.
type File struct {
	Name string
	Data []byte
}

var negativeHeader = []string{"created_at", "product", "rating", "review_text"}

// Full slice: canonical + derived columns minus the raw date-string helper,
// with created_at as a plain date and month as "Jan 2006".
var fullHeader = []string{"created_at", "product", "rating", "review_text", "month"}

// NegativeSlice serializes the negative-comment slice. The threshold is
// re-applied here regardless of what the caller filtered upstream.
func NegativeSlice(view engine.RecordView, threshold float64, format string) (File, error) {
	rows := make([][]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		rec := view.At(i)
		if rec.Rating > threshold {
			continue
		}
		rows = append(rows, []string{
			rec.CreatedDate,
			rec.Product,
			ratingString(rec.Rating),
			rec.ReviewText,
		})
	}

	name := fmt.Sprintf("negative_comments_le_%s.%s", trimFloat(threshold), format)
	data, err := serialize(negativeHeader, rows, format)
	if err != nil {
		return File{}, eris.Wrapf(err, "export: negative slice as %s", format)
	}
	return File{Name: name, Data: data}, nil
}

// FullSlice serializes the full filtered slice with human-readable date
// and month columns.
func FullSlice(view engine.RecordView, format string) (File, error) {
	rows := make([][]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		rec := view.At(i)
		rows = append(rows, []string{
			rec.CreatedDate,
			rec.Product,
			ratingString(rec.Rating),
			rec.ReviewText,
			engine.FormatMonth(rec.Month),
		})
	}

	name := "full_filtered_feedback." + format
	data, err := serialize(fullHeader, rows, format)
	if err != nil {
		return File{}, eris.Wrapf(err, "export: full slice as %s", format)
	}
	return File{Name: name, Data: data}, nil
}

// ============================================================================
// SERIALIZATION
// ============================================================================

func serialize(header []string, rows [][]string, format string) ([]byte, error) {
	switch format {
	case FormatCSV, "":
		return writeCSV(header, rows)
	case FormatXLSX:
		return writeXLSX(header, rows)
	default:
		return nil, eris.Errorf("unsupported export format %q", format)
	}
}

func writeCSV(header []string, rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(header); err != nil {
		return nil, err
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeXLSX(header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"

	if err := setRow(f, sheet, 1, header); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := setRow(f, sheet, i+2, row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, rowNum int, values []string) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(values))
	for i, v := range values {
		row[i] = v
	}
	return f.SetSheetRow(sheet, cell, &row)
}

// ============================================================================
// FORMATTING
// ============================================================================

// ratingString renders whole-number ratings without a decimal tail.
func ratingString(r float64) string {
	if r == float64(int64(r)) {
		return strconv.FormatInt(int64(r), 10)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// trimFloat renders a threshold compactly for filenames ("3", "2.5").
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
