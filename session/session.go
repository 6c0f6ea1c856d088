// Package session ties one user's canonical table, filter state, and
// exports together. Sessions are fully isolated: each owns its own table
// rebuilt from the uploaded or sample source, so nothing is shared across
// simultaneous users and no state survives a reload.
package session

import (
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/rgerjeki/Customer-Feedback-Insights/engine"
	"github.com/rgerjeki/Customer-Feedback-Insights/export"
	"github.com/rgerjeki/Customer-Feedback-Insights/schema"
)

// Session owns one canonical table and answers render and export requests
// against it. All computation per request runs to completion before the
// next — there is no background work.
type Session struct {
	id     string
	log    *zap.Logger
	source string
	table  engine.RecordView
	report *schema.Report
	opts   []engine.Option
}

// New creates an empty session. A nil logger disables logging.
func New(log *zap.Logger, opts ...engine.Option) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	id := uuid.NewString()
	return &Session{
		id:   id,
		log:  log.With(zap.String("session", id)),
		opts: opts,
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// ============================================================================
// LOADING
// ============================================================================

// Load normalizes raw CSV bytes into this session's canonical table,
// replacing any previously loaded table. A failed load leaves no partial
// table behind. Returns the number of rows retained.
func (s *Session) Load(source string, data []byte) (int, error) {
	records, report, err := schema.Normalize(data)
	if err != nil {
		s.log.Warn("load failed", zap.String("source", source), zap.Error(err))
		return 0, eris.Wrapf(err, "session: load %s", source)
	}

	s.source = source
	s.table = engine.NewSliceView(records)
	s.report = report

	s.log.Info("loaded dataset",
		zap.String("source", source),
		zap.Int("rows", report.Loaded),
		zap.Int("dropped", report.Dropped),
	)
	return report.Loaded, nil
}

// Loaded reports whether a table is present.
func (s *Session) Loaded() bool { return s.table != nil }

// RowCount returns the canonical table size.
func (s *Session) RowCount() int {
	if s.table == nil {
		return 0
	}
	return s.table.Len()
}

// Report returns the last load report, or nil before any load.
func (s *Session) Report() *schema.Report { return s.report }

// ============================================================================
// FILTER OPTION DERIVATION
// ============================================================================

// Products returns the distinct product labels for seeding a selector.
func (s *Session) Products() []string {
	if s.table == nil {
		return nil
	}
	return engine.UniqueProducts(s.table)
}

// DateBounds returns the earliest and latest created_at of the table.
func (s *Session) DateBounds() (min, max time.Time, ok bool) {
	if s.table == nil {
		return time.Time{}, time.Time{}, false
	}
	return engine.DateBounds(s.table)
}

// ============================================================================
// RENDER + EXPORT
// ============================================================================

// Render runs one full render cycle against the canonical table.
func (s *Session) Render(spec engine.FilterSpec) (*engine.Snapshot, error) {
	if s.table == nil {
		return nil, eris.New("session: no dataset loaded")
	}

	snap := engine.BuildSnapshot(s.table, spec, s.opts...)
	s.log.Debug("rendered snapshot",
		zap.Int("selected", snap.KPI.Total),
		zap.Int("negative", len(snap.Negative)),
		zap.Int("keywords", len(snap.Keywords)),
	)
	return snap, nil
}

// ExportNegative serializes the sorted negative slice for the given spec.
// The rating threshold is enforced again inside the serializer.
func (s *Session) ExportNegative(spec engine.FilterSpec, format string) (export.File, error) {
	if s.table == nil {
		return export.File{}, eris.New("session: no dataset loaded")
	}

	slice := engine.NegativeSlice(s.table, spec)
	file, err := export.NegativeSlice(slice, spec.NegThreshold, format)
	if err != nil {
		return export.File{}, err
	}

	s.log.Info("exported negative slice",
		zap.String("file", file.Name),
		zap.Int("rows", slice.Len()),
	)
	return file, nil
}

// ExportFull serializes the full filtered slice (product and date
// predicates only) for the given spec.
func (s *Session) ExportFull(spec engine.FilterSpec, format string) (export.File, error) {
	if s.table == nil {
		return export.File{}, eris.New("session: no dataset loaded")
	}

	slice := engine.ApplyFilters(s.table, spec)
	file, err := export.FullSlice(slice, format)
	if err != nil {
		return export.File{}, err
	}

	s.log.Info("exported full slice",
		zap.String("file", file.Name),
		zap.Int("rows", slice.Len()),
	)
	return file, nil
}
