package engine

// ============================================================================
// CHART BUILDER — Produces ChartConfig from aggregated results
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// BuildTrendChart produces a volume-over-time chart from trend points.
// A single month renders as a bar; two or more render as a line.
// Returns nil when there is nothing to plot.
func BuildTrendChart(points []TrendPoint) *ChartConfig {
	if len(points) == 0 {
		return nil
	}

	chartType := "line"
	if len(points) == 1 {
		chartType = "bar"
	}

	data := make([]ChartPoint, 0, len(points))
	for _, p := range points {
		data = append(data, ChartPoint{
			Label: FormatMonth(p.Month),
			Value: float64(p.Volume),
		})
	}

	return &ChartConfig{
		ChartType: chartType,
		Title:     "Trend",
		XAxis:     "Month",
		YAxis:     "Ticket Volume",
		Series: []ChartSeries{{
			Name: "Ticket Volume",
			Data: data,
		}},
		Colors:     assignColors(1),
		ShowLegend: false,
		ShowGrid:   true,
	}
}

// BuildKeywordChart produces a mention-frequency bar chart from ranked
// keyword stats. Returns nil when no keywords were extracted.
func BuildKeywordChart(stats []KeywordStat) *ChartConfig {
	if len(stats) == 0 {
		return nil
	}

	data := make([]ChartPoint, 0, len(stats))
	for _, s := range stats {
		data = append(data, ChartPoint{
			Label: s.Keyword,
			Value: float64(s.Mentions),
		})
	}

	return &ChartConfig{
		ChartType: "bar",
		Title:     "Keyword Frequency (from negative comments)",
		XAxis:     "Keyword",
		YAxis:     "Mentions",
		Series: []ChartSeries{{
			Name: "Mentions",
			Data: data,
		}},
		Colors:     assignColors(1),
		ShowLegend: false,
		ShowGrid:   true,
	}
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}
