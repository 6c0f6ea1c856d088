package schema

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/rgerjeki/Customer-Feedback-Insights/engine"
)

// ============================================================================
// NORMALIZER — Raw CSV → Canonical Table
// ============================================================================
// Contract:
//   - Header names are trimmed; canonical fields resolve via alias lookup
//     (exact canonical name wins, then aliases case-insensitively in order).
//   - A missing product column is synthesized as "Unknown".
//   - created_at and rating are coerced; values that fail to parse make the
//     row unusable and it is silently dropped — parse failures never
//     propagate as errors.
//   - created_at_date and month are derived once from the parsed timestamp.
//   - Only an unreadable file or header is fatal: the load fails before any
//     partial table is produced.
// ============================================================================

// Report summarizes one normalization pass. Only Loaded is surfaced to the
// user; the rest feeds logging.
type Report struct {
	SourceRows int               // data rows read from the file
	Loaded     int               // rows retained in the canonical table
	Dropped    int               // rows excluded for unparseable created_at or rating
	Resolved   map[string]string // canonical field → source header (absent if synthesized)
}

// Accepted created_at layouts, tried in order.
var timeLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"02/01/2006",
	"Jan 2, 2006",
	"2 Jan 2006",
}

// Normalize parses CSV bytes into the canonical feedback table.
// The returned slice is the immutable base table — downstream components
// read filtered views of it and never mutate it.
func Normalize(data []byte) ([]engine.Record, *Report, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if err != nil {
		return nil, nil, eris.Wrap(err, "normalize: read csv header")
	}
	if len(headers) == 0 {
		return nil, nil, eris.New("normalize: csv has no columns")
	}

	for i := range headers {
		headers[i] = strings.TrimSpace(headers[i])
	}

	cols, resolved := resolveColumns(headers)
	if cols[FieldCreatedAt] < 0 {
		return nil, nil, eris.New("normalize: no created_at column (or recognized alias) found")
	}
	if cols[FieldRating] < 0 {
		return nil, nil, eris.New("normalize: no rating column (or recognized alias) found")
	}

	report := &Report{Resolved: resolved}

	var records []engine.Record
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows
		}
		report.SourceRows++

		created, ok := parseTime(cell(row, cols[FieldCreatedAt]))
		if !ok {
			report.Dropped++
			continue
		}
		rating, ok := parseRating(cell(row, cols[FieldRating]))
		if !ok {
			report.Dropped++
			continue
		}

		product := cell(row, cols[FieldProduct])
		if product == "" {
			product = UnknownProduct
		}

		records = append(records, engine.Record{
			CreatedAt:   created,
			CreatedDate: created.Format("2006-01-02"),
			Month:       created.Format("2006-01") + "-01",
			Product:     product,
			Rating:      rating,
			ReviewText:  cell(row, cols[FieldReviewText]),
		})
	}

	report.Loaded = len(records)
	return records, report, nil
}

// NormalizeView is a convenience wrapper returning a RecordView.
func NormalizeView(data []byte) (engine.RecordView, *Report, error) {
	records, report, err := Normalize(data)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewSliceView(records), report, nil
}

// ============================================================================
// COLUMN RESOLUTION
// ============================================================================

// resolveColumns maps each canonical field to a source column index, or -1
// when no header matches. An exact canonical header wins; otherwise the
// canonical name and its aliases are tried case-insensitively, first alias
// in declaration order taking precedence.
func resolveColumns(headers []string) (map[string]int, map[string]string) {
	lower := make(map[string]int, len(headers))
	for i, h := range headers {
		key := strings.ToLower(h)
		if _, exists := lower[key]; !exists {
			lower[key] = i
		}
	}

	cols := make(map[string]int, len(Fields))
	resolved := make(map[string]string, len(Fields))

	for _, field := range Fields {
		cols[field.Key] = -1

		exact := false
		for i, h := range headers {
			if h == field.Key {
				cols[field.Key] = i
				resolved[field.Key] = h
				exact = true
				break
			}
		}
		if exact {
			continue
		}

		for _, cand := range append([]string{field.Key}, field.Aliases...) {
			if i, ok := lower[cand]; ok {
				cols[field.Key] = i
				resolved[field.Key] = headers[i]
				break
			}
		}
	}

	return cols, resolved
}

// cell safely reads a trimmed value from a row; a -1 index (unresolved
// column) reads as empty.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ============================================================================
// VALUE COERCION
// ============================================================================

func parseTime(s string) (time.Time, bool) {
	if s == "" || isNullToken(s) {
		return time.Time{}, false
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func parseRating(s string) (float64, bool) {
	if s == "" || isNullToken(s) {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "") // tolerate "1,234.5"
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

func isNullToken(s string) bool {
	switch s {
	case "null", "NULL", "N/A", "n/a", "nan", "NaN":
		return true
	}
	return false
}
