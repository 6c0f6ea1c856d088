package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgerjeki/Customer-Feedback-Insights/engine"
	"github.com/rgerjeki/Customer-Feedback-Insights/export"
)

var scenarioCSV = []byte(`date,service,stars,comment
2024-01-05,Widgets,2,shipping was slow
2024-01-20,Widgets,5,great!
`)

func TestSessionLoadAndRender(t *testing.T) {
	sess := New(nil)

	loaded, err := sess.Load("test.csv", scenarioCSV)
	require.NoError(t, err)
	assert.Equal(t, 2, loaded)
	assert.True(t, sess.Loaded())
	assert.Equal(t, 2, sess.RowCount())
	assert.Equal(t, []string{"Widgets"}, sess.Products())

	snap, err := sess.Render(engine.FilterSpec{NegThreshold: 3})
	require.NoError(t, err)

	assert.Equal(t, 2, snap.KPI.Total)
	assert.Equal(t, 3.5, snap.KPI.AvgRating)
	require.Len(t, snap.Negative, 1)
	assert.Equal(t, "2024-01-05", snap.Negative[0].CreatedDate)
}

func TestSessionRejectsRenderBeforeLoad(t *testing.T) {
	sess := New(nil)

	_, err := sess.Render(engine.FilterSpec{})
	assert.Error(t, err)

	_, err = sess.ExportNegative(engine.FilterSpec{}, export.FormatCSV)
	assert.Error(t, err)

	_, err = sess.ExportFull(engine.FilterSpec{}, export.FormatCSV)
	assert.Error(t, err)
}

func TestSessionLoadFailureLeavesNoPartialTable(t *testing.T) {
	sess := New(nil)

	_, err := sess.Load("bad.csv", []byte("product,comment\nWidgets,no usable columns\n"))
	require.Error(t, err)
	assert.False(t, sess.Loaded())
}

func TestSessionExports(t *testing.T) {
	sess := New(nil)
	_, err := sess.Load("test.csv", scenarioCSV)
	require.NoError(t, err)

	spec := engine.FilterSpec{NegThreshold: 3, SortMode: engine.SortMostRecent}

	neg, err := sess.ExportNegative(spec, export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "negative_comments_le_3.csv", neg.Name)
	assert.NotEmpty(t, neg.Data)

	full, err := sess.ExportFull(spec, export.FormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "full_filtered_feedback.csv", full.Name)
	assert.NotEmpty(t, full.Data)
}

func TestSessionsAreIsolated(t *testing.T) {
	a := New(nil)
	b := New(nil)
	assert.NotEqual(t, a.ID(), b.ID())

	_, err := a.Load("a.csv", scenarioCSV)
	require.NoError(t, err)

	assert.True(t, a.Loaded())
	assert.False(t, b.Loaded(), "loading into one session must not touch another")
}

func TestSamples(t *testing.T) {
	names := Samples()
	require.NotEmpty(t, names)
	assert.Contains(t, names, "sample_feedback_widgets")
	assert.Contains(t, names, "sample_feedback_support")
}

func TestLoadSample(t *testing.T) {
	sess := New(nil)

	loaded, err := sess.LoadSample("sample_feedback_widgets")
	require.NoError(t, err)
	assert.Equal(t, 22, loaded)

	snap, err := sess.Render(engine.FilterSpec{NegThreshold: 2, SortMode: engine.SortLowestRating})
	require.NoError(t, err)
	assert.True(t, snap.HasNegative())
	assert.True(t, snap.HasKeywords())

	_, err = sess.LoadSample("does-not-exist")
	assert.Error(t, err)
}

func TestLoadSampleAliasHeaders(t *testing.T) {
	// The support sample uses date/queue/score/comment headers — all
	// resolved through aliases.
	sess := New(nil)

	loaded, err := sess.LoadSample("sample_feedback_support")
	require.NoError(t, err)
	assert.Equal(t, 18, loaded)

	products := sess.Products()
	assert.Equal(t, []string{"Billing", "Onboarding", "Technical"}, products)
}
