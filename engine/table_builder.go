package engine

import (
	"fmt"
	"strconv"
)

// ============================================================================
// TABLE BUILDER — Produces TableData for the presentation layer
// ============================================================================

// BuildSegmentTable renders per-product rollups as a table.
func BuildSegmentTable(segments []Segment) *TableData {
	columns := []Column{
		{Key: "product", Label: "Product", Type: "text", Align: "left"},
		{Key: "tickets", Label: "Tickets", Type: "number", Align: "right"},
		{Key: "avg_rating", Label: "Avg Rating", Type: "number", Align: "right"},
	}

	rows := make([][]string, 0, len(segments))
	var total int
	for _, s := range segments {
		rows = append(rows, []string{
			s.Product,
			strconv.Itoa(s.Tickets),
			fmt.Sprintf("%.2f", s.AvgRating),
		})
		total += s.Tickets
	}

	return &TableData{
		Title:   "Segments by Product",
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label:  "Total",
			Values: map[string]string{"tickets": FormatInt(total)},
		},
	}
}

// BuildNegativeTable renders the sorted negative-comment slice as a table.
// Dates display day-granular, matching the comment browser.
func BuildNegativeTable(view RecordView) *TableData {
	columns := []Column{
		{Key: "created_at", Label: "Created", Type: "date", Align: "left"},
		{Key: "product", Label: "Product", Type: "text", Align: "left"},
		{Key: "rating", Label: "Rating", Type: "number", Align: "right"},
		{Key: "review_text", Label: "Comment", Type: "text", Align: "left"},
	}

	rows := make([][]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		rec := view.At(i)
		rows = append(rows, []string{
			rec.CreatedDate,
			rec.Product,
			formatRating(rec.Rating),
			rec.ReviewText,
		})
	}

	return &TableData{
		Title:   "All Negative Comments (filtered)",
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label:  fmt.Sprintf("%d comments", view.Len()),
			Values: map[string]string{},
		},
	}
}

// BuildKeywordTable renders ranked keyword stats as a table.
func BuildKeywordTable(stats []KeywordStat) *TableData {
	columns := []Column{
		{Key: "keyword", Label: "Keyword", Type: "text", Align: "left"},
		{Key: "mentions", Label: "Mentions", Type: "number", Align: "right"},
		{Key: "avg_rating", Label: "Avg Rating", Type: "number", Align: "right"},
		{Key: "count", Label: "Comments", Type: "number", Align: "right"},
	}

	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Keyword,
			strconv.Itoa(s.Mentions),
			fmt.Sprintf("%.2f", s.AvgRating),
			strconv.Itoa(s.Comments),
		})
	}

	return &TableData{
		Title:   "Keywords ranked by frequency",
		Columns: columns,
		Rows:    rows,
	}
}

// formatRating renders whole-number ratings without a decimal tail.
func formatRating(r float64) string {
	if r == float64(int64(r)) {
		return strconv.FormatInt(int64(r), 10)
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
