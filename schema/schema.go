package schema

// ============================================================================
// SCHEMA — Canonical feedback fields and header alias tables
// ============================================================================
// The feedback schema is fixed: four logical fields resolved from
// heterogeneous input headers via alias lookup. The normalizer uses this
// table to unify whatever column names the source file carries.
// ============================================================================

// Canonical field keys of the normalized table.
const (
	FieldCreatedAt  = "created_at"
	FieldProduct    = "product"
	FieldRating     = "rating"
	FieldReviewText = "review_text"
)

// Derived field keys, computed during normalization and never read from
// the source file.
const (
	FieldCreatedDate = "created_at_date" // YYYY-MM-DD
	FieldMonth       = "month"           // YYYY-MM-01
)

// UnknownProduct is substituted when no product column can be resolved,
// and for rows whose product cell is blank.
const UnknownProduct = "Unknown"

// Field describes one canonical field and the source headers that map to
// it. Aliases are matched case-insensitively in declaration order; an
// exact canonical header always wins over any alias.
type Field struct {
	Key      string
	Required bool // rows lacking a parseable value are dropped
	Aliases  []string
}

// Fields lists the canonical schema in resolution order.
var Fields = []Field{
	{Key: FieldCreatedAt, Required: true, Aliases: []string{"date", "timestamp", "created", "submitted_at"}},
	{Key: FieldProduct, Aliases: []string{"category", "service", "queue", "team"}},
	{Key: FieldRating, Required: true, Aliases: []string{"score", "stars", "satisfaction"}},
	{Key: FieldReviewText, Aliases: []string{"comment", "message", "text", "body", "feedback"}},
}
