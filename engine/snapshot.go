package engine

// ============================================================================
// SNAPSHOT — One Render Cycle
// ============================================================================
// Entry point: BuildSnapshot(view, spec, opts...)
//
// Pipeline:
//   1. Apply product+date filters → aggregate selection (SubView)
//   2. KPI, trend, segment rollups over that selection
//   3. Apply full predicate set → negative slice, sorted
//   4. Keyword frequency + per-keyword rating over the negative slice
//   5. Build render-ready chart and table configs
//
// Everything is computed fresh from (canonical table, FilterSpec) — no
// state survives between render cycles. Empty selections yield empty
// results and nil charts, never an error.
// ============================================================================

// Snapshot is the complete derived output of one render cycle: the four
// derived tables of the collaborator contract plus the keyword summary and
// render configs.
type Snapshot struct {
	Spec      FilterSpec `json:"spec"`
	TotalRows int        `json:"total_rows"` // canonical table size, pre-filter

	KPI      KPI          `json:"kpi"`
	Trend    []TrendPoint `json:"trend"`
	Segments []Segment    `json:"segments"`

	Negative []Record      `json:"negative"` // sorted negative slice
	Keywords []KeywordStat `json:"keywords"`

	TrendChart   *ChartConfig `json:"trendChart,omitempty"`
	KeywordChart *ChartConfig `json:"keywordChart,omitempty"`

	SegmentTable  *TableData `json:"segmentTable,omitempty"`
	NegativeTable *TableData `json:"negativeTable,omitempty"`
	KeywordTable  *TableData `json:"keywordTable,omitempty"`
}

// HasData reports whether the aggregate selection matched any rows.
// A false value is the "no data for the selected filters" state.
func (s *Snapshot) HasData() bool { return s.KPI.Total > 0 }

// HasNegative reports whether any negative comments matched.
func (s *Snapshot) HasNegative() bool { return len(s.Negative) > 0 }

// HasKeywords reports whether any meaningful keywords were extracted.
func (s *Snapshot) HasKeywords() bool { return len(s.Keywords) > 0 }

// BuildSnapshot runs one full render cycle against the canonical table.
func BuildSnapshot(view RecordView, spec FilterSpec, opts ...Option) *Snapshot {
	snap := &Snapshot{
		Spec:      spec,
		TotalRows: view.Len(),
	}

	// Aggregate path: product + date predicates only
	selection := ApplyFilters(view, spec)
	snap.KPI = Summarize(selection)
	snap.Trend = Trend(selection)
	snap.Segments = Segments(selection)

	// Negative path: full predicate set, then sort
	negative := NegativeSlice(view, spec)
	snap.Negative = Records(negative)
	snap.Keywords = Keywords(negative, opts...)

	snap.TrendChart = BuildTrendChart(snap.Trend)
	snap.KeywordChart = BuildKeywordChart(snap.Keywords)
	snap.SegmentTable = BuildSegmentTable(snap.Segments)
	snap.NegativeTable = BuildNegativeTable(negative)
	snap.KeywordTable = BuildKeywordTable(snap.Keywords)

	return snap
}
