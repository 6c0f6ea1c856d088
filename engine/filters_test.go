package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rec builds a canonical record the way the normalizer would.
func rec(date, product string, rating float64, text string) Record {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return Record{
		CreatedAt:   t,
		CreatedDate: date,
		Month:       t.Format("2006-01") + "-01",
		Product:     product,
		Rating:      rating,
		ReviewText:  text,
	}
}

func day(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	return t
}

var testTable = NewSliceView([]Record{
	rec("2024-01-05", "Widgets", 2, "shipping was slow"),
	rec("2024-01-20", "Widgets", 5, "great!"),
	rec("2024-02-03", "Gadgets", 1, "Broken on arrival"),
	rec("2024-02-14", "Gadgets", 4, "works well"),
	rec("2024-03-01", "Widgets", 3, "Support was SLOW to reply"),
})

func TestApplyFiltersProducts(t *testing.T) {
	spec := FilterSpec{Products: []string{"gadgets"}} // case-insensitive
	got := ApplyFilters(testTable, spec)

	require.Equal(t, 2, got.Len())
	assert.Equal(t, "Gadgets", got.At(0).Product)
	assert.Equal(t, "Gadgets", got.At(1).Product)
}

func TestApplyFiltersProductPartitionsCoverEverything(t *testing.T) {
	a := ApplyFilters(testTable, FilterSpec{Products: []string{"Widgets"}})
	b := ApplyFilters(testTable, FilterSpec{Products: []string{"Gadgets"}})

	assert.Equal(t, testTable.Len(), a.Len()+b.Len())
}

func TestApplyFiltersDateRangeInclusive(t *testing.T) {
	spec := FilterSpec{Dates: &DateRange{Start: day("2024-01-05"), End: day("2024-02-03")}}
	got := ApplyFilters(testTable, spec)

	require.Equal(t, 3, got.Len())
	assert.Equal(t, "2024-01-05", got.At(0).CreatedDate, "start bound is inclusive")
	assert.Equal(t, "2024-02-03", got.At(2).CreatedDate, "end bound is inclusive")
}

func TestApplyFiltersDisjointRangesIntersectEmpty(t *testing.T) {
	january := ApplyFilters(testTable, FilterSpec{
		Dates: &DateRange{Start: day("2024-01-01"), End: day("2024-01-31")},
	})
	// narrowing the January view by a disjoint February range
	narrowed := ApplyFilters(january, FilterSpec{
		Dates: &DateRange{Start: day("2024-02-01"), End: day("2024-02-28")},
	})

	assert.Equal(t, 0, narrowed.Len())
}

func TestApplyFiltersEmptySpecIsIdentity(t *testing.T) {
	got := ApplyFilters(testTable, FilterSpec{})
	assert.Equal(t, testTable.Len(), got.Len())
}

func TestApplyNegativeFiltersThreshold(t *testing.T) {
	got := ApplyNegativeFilters(testTable, FilterSpec{NegThreshold: 3})

	require.Equal(t, 3, got.Len())
	for i := 0; i < got.Len(); i++ {
		assert.LessOrEqual(t, got.At(i).Rating, 3.0)
	}
}

func TestApplyNegativeFiltersKeywordCaseInsensitive(t *testing.T) {
	got := ApplyNegativeFilters(testTable, FilterSpec{NegThreshold: 3, Keyword: "slow"})

	require.Equal(t, 2, got.Len())
	assert.Equal(t, "shipping was slow", got.At(0).ReviewText)
	assert.Equal(t, "Support was SLOW to reply", got.At(1).ReviewText)
}

func TestApplyNegativeFiltersConjunction(t *testing.T) {
	spec := FilterSpec{
		Products:     []string{"Widgets"},
		Dates:        &DateRange{Start: day("2024-01-01"), End: day("2024-01-31")},
		NegThreshold: 3,
		Keyword:      "shipping",
	}
	got := ApplyNegativeFilters(testTable, spec)

	require.Equal(t, 1, got.Len())
	assert.Equal(t, "2024-01-05", got.At(0).CreatedDate)
}
