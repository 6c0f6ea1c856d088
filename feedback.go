// Package feedback provides an in-memory customer-feedback analytics core.
//
// Usage:
//
//	table, loaded, err := schema.Normalize(csvBytes)
//	snap := engine.BuildSnapshot(table, engine.FilterSpec{NegThreshold: 3})
//
// The pipeline is: raw CSV → schema.Normalize (alias resolution, type
// coercion, derived calendar fields) → immutable canonical table →
// engine.BuildSnapshot (filters, KPIs, trend, segments, negative-comment
// insights) → render-ready chart/table data and export buffers.
//
// The engine never calls any external service — all computation is local,
// and every derived artifact is a pure function of the canonical table and
// the current FilterSpec.
package feedback
