package engine

import "time"

// ============================================================================
// ENGINE TYPES — Feedback Analytics
// ============================================================================

// ============================================================================
// RECORD — One canonical feedback row
// ============================================================================

// Record is a single normalized feedback row. Rows only enter the engine
// after schema normalization, so CreatedAt and Rating are always set and
// Product is never empty.
type Record struct {
	CreatedAt   time.Time `json:"created_at"`
	CreatedDate string    `json:"created_at_date"` // YYYY-MM-DD projection
	Month       string    `json:"month"`           // YYYY-MM-01, first of month
	Product     string    `json:"product"`
	Rating      float64   `json:"rating"`
	ReviewText  string    `json:"review_text"`
}

// ============================================================================
// FILTERSPEC — Contract between the presentation layer and the engine
// ============================================================================

// SortMode selects the ordering of the negative-comment slice.
type SortMode string

const (
	SortMostRecent     SortMode = "most_recent"
	SortLowestRating   SortMode = "lowest_rating"
	SortLongestComment SortMode = "longest_comment"
	SortHighestRating  SortMode = "highest_rating"
)

// DateRange is an inclusive calendar-day range.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// FilterSpec defines which records to include. It is rebuilt from the
// current presentation state on every render cycle — nothing persists.
//
// Products and Dates apply everywhere; NegThreshold and Keyword apply only
// on the negative-insight path.
type FilterSpec struct {
	Products     []string   `json:"products"`      // empty = all products
	Dates        *DateRange `json:"dates"`         // nil = all dates
	NegThreshold float64    `json:"neg_threshold"` // include rating <= threshold
	Keyword      string     `json:"keyword"`       // case-insensitive substring, empty = all
	SortMode     SortMode   `json:"sort_mode"`
}

// HasProducts returns true if a product filter is set.
func (f FilterSpec) HasProducts() bool { return len(f.Products) > 0 }

// ============================================================================
// AGGREGATE RESULTS
// ============================================================================

// KPI is the headline summary over the filtered selection.
type KPI struct {
	Total     int     `json:"total_tickets"`
	AvgRating float64 `json:"avg_rating"`
}

// TrendPoint is one month of ticket volume and average rating.
type TrendPoint struct {
	Month     string  `json:"month"` // YYYY-MM-01
	Volume    int     `json:"volume"`
	AvgRating float64 `json:"avg_rating"`
}

// Segment is a per-product rollup.
type Segment struct {
	Product   string  `json:"product"`
	Tickets   int     `json:"tickets"`
	AvgRating float64 `json:"avg_rating"`
}

// KeywordStat is one ranked keyword from the negative-comment slice.
//
// Mentions counts every token occurrence (duplicates within a comment count
// multiply). Comments counts distinct comments containing the keyword, and
// AvgRating is the mean rating over those comments. The two counts use
// different deduplication rules on purpose — frequency is weighted by raw
// mentions, rating association by document presence.
type KeywordStat struct {
	Keyword   string  `json:"keyword"`
	Mentions  int     `json:"mentions"`
	Comments  int     `json:"count"`
	AvgRating float64 `json:"avg_rating"`
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"` // "bar", "line"
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "date"
	Align string `json:"align"` // "left", "center", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}
