package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSnapshotEndToEnd(t *testing.T) {
	// The two-row scenario: KPIs over everything, negative slice holds
	// exactly the low-rated row.
	table := NewSliceView([]Record{
		rec("2024-01-05", "Widgets", 2, "shipping was slow"),
		rec("2024-01-20", "Widgets", 5, "great!"),
	})

	snap := BuildSnapshot(table, FilterSpec{NegThreshold: 3, SortMode: SortMostRecent})

	assert.Equal(t, 2, snap.TotalRows)
	assert.Equal(t, 2, snap.KPI.Total)
	assert.Equal(t, 3.5, snap.KPI.AvgRating)

	require.Len(t, snap.Negative, 1)
	assert.Equal(t, "2024-01-05", snap.Negative[0].CreatedDate)
	assert.Equal(t, 2.0, snap.Negative[0].Rating)

	require.Len(t, snap.Segments, 1)
	assert.Equal(t, "Widgets", snap.Segments[0].Product)
	assert.Equal(t, 2, snap.Segments[0].Tickets)

	assert.True(t, snap.HasData())
	assert.True(t, snap.HasNegative())
	assert.True(t, snap.HasKeywords())
}

func TestBuildSnapshotNegativeHonorsAggregateFilters(t *testing.T) {
	snap := BuildSnapshot(testTable, FilterSpec{
		Products:     []string{"Widgets"},
		NegThreshold: 3,
	})

	// Gadgets rating-1 row is excluded by the product filter even though
	// it passes the threshold.
	require.Len(t, snap.Negative, 2)
	for _, r := range snap.Negative {
		assert.Equal(t, "Widgets", r.Product)
	}
}

func TestBuildSnapshotEmptySelection(t *testing.T) {
	snap := BuildSnapshot(testTable, FilterSpec{Products: []string{"Nonexistent"}})

	assert.False(t, snap.HasData())
	assert.Equal(t, KPI{}, snap.KPI)
	assert.Empty(t, snap.Trend)
	assert.Empty(t, snap.Segments)
	assert.Empty(t, snap.Negative)
	assert.Empty(t, snap.Keywords)
	assert.Nil(t, snap.TrendChart)
	assert.Nil(t, snap.KeywordChart)

	// Empty states are informational, not errors: tables exist with no rows.
	require.NotNil(t, snap.NegativeTable)
	assert.Empty(t, snap.NegativeTable.Rows)
}

func TestBuildSnapshotChartShapes(t *testing.T) {
	// Single month → bar; the full table spans three months → line.
	single := NewSliceView([]Record{rec("2024-01-05", "Widgets", 2, "slow slow slow")})

	snap := BuildSnapshot(single, FilterSpec{NegThreshold: 3})
	require.NotNil(t, snap.TrendChart)
	assert.Equal(t, "bar", snap.TrendChart.ChartType)

	snap = BuildSnapshot(testTable, FilterSpec{NegThreshold: 3})
	require.NotNil(t, snap.TrendChart)
	assert.Equal(t, "line", snap.TrendChart.ChartType)
	require.Len(t, snap.TrendChart.Series, 1)
	assert.Equal(t, "Jan 2024", snap.TrendChart.Series[0].Data[0].Label)

	require.NotNil(t, snap.KeywordChart)
	assert.Equal(t, "bar", snap.KeywordChart.ChartType)
}

func TestBuildSnapshotTables(t *testing.T) {
	snap := BuildSnapshot(testTable, FilterSpec{NegThreshold: 3, SortMode: SortMostRecent})

	require.NotNil(t, snap.SegmentTable)
	assert.Len(t, snap.SegmentTable.Rows, 2)

	require.NotNil(t, snap.NegativeTable)
	require.Len(t, snap.NegativeTable.Rows, 3)
	// most_recent: the March row leads
	assert.Equal(t, "2024-03-01", snap.NegativeTable.Rows[0][0])

	require.NotNil(t, snap.KeywordTable)
	assert.Len(t, snap.KeywordTable.Rows, len(snap.Keywords))
}
