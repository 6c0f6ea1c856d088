package engine

import (
	"strings"
	"time"
)

// ============================================================================
// FILTERS — FilterSpec Predicates via RecordView
// ============================================================================
// Single-pass filter: checks ALL active predicates per record in one loop.
// Predicates are conjunctive and side-effect-free, so ordering is
// irrelevant. Returns a SubView (index list into parent) — zero data copy.
// ============================================================================

// ApplyFilters returns a view of records matching the product and date
// predicates of the spec. This is the selection the aggregation engine
// reads — the negative threshold and keyword do NOT apply here.
func ApplyFilters(view RecordView, spec FilterSpec) RecordView {
	return filter(view, spec, false)
}

// ApplyNegativeFilters returns a view of records matching the full
// predicate set: products, dates, rating <= NegThreshold, and keyword.
func ApplyNegativeFilters(view RecordView, spec FilterSpec) RecordView {
	return filter(view, spec, true)
}

func filter(view RecordView, spec FilterSpec, negative bool) RecordView {
	products := toLowerSet(spec.Products)
	keyword := strings.ToLower(strings.TrimSpace(spec.Keyword))

	var start, end time.Time
	if spec.Dates != nil {
		start = dayFloor(spec.Dates.Start)
		end = dayFloor(spec.Dates.End)
	}

	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		rec := view.At(i)

		if len(products) > 0 && !products[strings.ToLower(rec.Product)] {
			continue
		}
		if spec.Dates != nil {
			day := dayFloor(rec.CreatedAt)
			if day.Before(start) || day.After(end) {
				continue
			}
		}
		if negative {
			if rec.Rating > spec.NegThreshold {
				continue
			}
			if keyword != "" && !strings.Contains(strings.ToLower(rec.ReviewText), keyword) {
				continue
			}
		}
		indices = append(indices, i)
	}

	return newSubView(view, indices)
}

// dayFloor truncates a timestamp to its calendar day. Both range bounds are
// inclusive at day granularity.
func dayFloor(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
