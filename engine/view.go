package engine

// ============================================================================
// RECORD VIEW — Zero-Copy Data Access
// ============================================================================
// The canonical table is immutable after normalization. The engine never
// copies it — filters and sorts produce SubViews (index lists into the
// parent) and every downstream computation reads through RecordView.
//
// Implementations:
//   SliceView — wraps []Record (the canonical table)
//   SubView   — filtered/reordered subset (indices into parent)
// ============================================================================

// RecordView provides indexed read access to a dataset.
// At is called in tight loops — keep implementations fast.
type RecordView interface {
	Len() int
	At(index int) Record
}

// ============================================================================
// SLICE VIEW — wraps the canonical table
// ============================================================================

// SliceView wraps a []Record slice as a RecordView.
type SliceView struct {
	records []Record
}

// NewSliceView creates a RecordView from a []Record slice.
// The view holds a reference — callers must not mutate the slice afterwards.
func NewSliceView(records []Record) RecordView {
	return &SliceView{records: records}
}

func (v *SliceView) Len() int { return len(v.records) }

func (v *SliceView) At(i int) Record {
	if i < 0 || i >= len(v.records) {
		return Record{}
	}
	return v.records[i]
}

// ============================================================================
// SUB VIEW — filtered subset (zero-copy)
// ============================================================================

// SubView is a filtered or reordered subset of a parent RecordView.
// Holds indices into the parent — no data copy.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) At(i int) Record {
	if i < 0 || i >= len(v.indices) {
		return Record{}
	}
	return v.parent.At(v.indices[i])
}

// Records materializes a view into a slice. Used at the presentation and
// export boundaries where a concrete row set is needed.
func Records(view RecordView) []Record {
	out := make([]Record, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		out = append(out, view.At(i))
	}
	return out
}
