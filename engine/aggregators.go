package engine

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// ============================================================================
// AGGREGATORS — KPI, Trend, and Segment Rollups via RecordView
// ============================================================================
// All rollups read the product+date selection (ApplyFilters), never the
// negative threshold or keyword. Empty selections produce zero values or
// empty slices, never an error.
// ============================================================================

// Summarize computes the KPI row over a selection.
// Empty selection → {0, 0.0}; no division by zero.
func Summarize(view RecordView) KPI {
	n := view.Len()
	if n == 0 {
		return KPI{}
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += view.At(i).Rating
	}
	return KPI{Total: n, AvgRating: RoundTo2(sum / float64(n))}
}

// Trend groups a selection by month and returns per-month volume and
// average rating, ordered ascending by month.
func Trend(view RecordView) []TrendPoint {
	grouped, order := groupBy(view, func(r Record) string { return r.Month })

	// YYYY-MM-01 keys sort chronologically as strings
	sort.Strings(order)

	points := make([]TrendPoint, 0, len(order))
	for _, month := range order {
		indices := grouped[month]
		points = append(points, TrendPoint{
			Month:     month,
			Volume:    len(indices),
			AvgRating: avgRating(view, indices),
		})
	}
	return points
}

// Segments groups a selection by product and returns per-product ticket
// counts and average rating, ordered descending by tickets. Ties keep
// group-encounter order — deterministic for identical input because
// grouping preserves the order products first appear.
func Segments(view RecordView) []Segment {
	grouped, order := groupBy(view, func(r Record) string { return r.Product })

	segments := make([]Segment, 0, len(order))
	for _, product := range order {
		indices := grouped[product]
		segments = append(segments, Segment{
			Product:   product,
			Tickets:   len(indices),
			AvgRating: avgRating(view, indices),
		})
	}

	sort.SliceStable(segments, func(i, j int) bool {
		return segments[i].Tickets > segments[j].Tickets
	})
	return segments
}

// ============================================================================
// GROUPING
// ============================================================================

// groupBy buckets view indices by key, preserving first-encounter order.
func groupBy(view RecordView, key func(Record) string) (map[string][]int, []string) {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		k := key(view.At(i))
		if _, exists := grouped[k]; !exists {
			order = append(order, k)
		}
		grouped[k] = append(grouped[k], i)
	}
	return grouped, order
}

func avgRating(view RecordView, indices []int) float64 {
	if len(indices) == 0 {
		return 0
	}
	var sum float64
	for _, i := range indices {
		sum += view.At(i).Rating
	}
	return RoundTo2(sum / float64(len(indices)))
}

// ============================================================================
// FILTER OPTION DERIVATION
// ============================================================================

// UniqueProducts returns the distinct product labels across a view, sorted
// alphabetically. The presentation layer seeds its product selector with
// this list.
func UniqueProducts(view RecordView) []string {
	seen := make(map[string]bool)
	var result []string
	for i := 0; i < view.Len(); i++ {
		p := view.At(i).Product
		if p != "" && !seen[p] {
			seen[p] = true
			result = append(result, p)
		}
	}
	sort.Strings(result)
	return result
}

// DateBounds returns the earliest and latest created_at across a view.
// ok is false for an empty view.
func DateBounds(view RecordView) (min, max time.Time, ok bool) {
	n := view.Len()
	if n == 0 {
		return time.Time{}, time.Time{}, false
	}
	min = view.At(0).CreatedAt
	max = min
	for i := 1; i < n; i++ {
		t := view.At(i).CreatedAt
		if t.Before(min) {
			min = t
		}
		if t.After(max) {
			max = t
		}
	}
	return min, max, true
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// RoundTo2 rounds to 2 decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// FormatMonth renders a YYYY-MM-01 month key as "Jan 2006".
// Unparseable keys pass through unchanged.
func FormatMonth(month string) string {
	t, err := time.Parse("2006-01-02", month)
	if err != nil {
		return month
	}
	return t.Format("Jan 2006")
}
