package models

// SortDirection is the ordering direction of an ORDER BY clause.
type SortDirection string

const (
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Predicate is a single equality predicate from a WHERE clause. Values
// holds one literal for "col = 'v'" and several for "col IN (...)".
type Predicate struct {
	Column string
	Values []string
}

// ParsedQuery is the structural reading of one LLM-authored pseudo-SQL
// SELECT statement. Built once per request, never mutated.
type ParsedQuery struct {
	Table      string
	Columns    []string // projected column names; empty for SELECT *
	Predicates []Predicate
	OrderBy    string
	Direction  SortDirection
	Limit      int // 0 means no LIMIT clause
	Raw        string
}

// Role is the inferred player role a stat query targets.
type Role string

const (
	RolePitcher Role = "pitcher"
	RoleBatter  Role = "batter"
	// RoleBoth means the keyword evidence tied, so no role-based
	// exclusion filter is applied.
	RoleBoth Role = "both"
)

// FilterKind identifies a client-side post-filter.
type FilterKind string

const (
	// FilterNonNull drops rows whose named column is null. Used for
	// role exclusion and rate-stat projections.
	FilterNonNull FilterKind = "non_null"
	// FilterQualifiedPA drops batters below the proportional
	// plate-appearance threshold (multiplier × team games played).
	// The executor resolves the threshold per team, or as a league
	// average when Team is empty.
	FilterQualifiedPA FilterKind = "qualified_pa"
)

// FilterSpec describes one client-side post-filter of a compiled plan.
// Specs are declarative; the execution adapter materializes them.
type FilterSpec struct {
	Kind   FilterKind
	Column string // column the filter inspects
	Team   string // qualified-PA scope; empty means league average
	// Season pins the qualified-PA threshold query to one season so
	// game counts from completed seasons never inflate the floor. Empty
	// falls back to the executor's configured season.
	Season string
}

// RemoteOp is a single read-only call against the remote store: one
// table with equality filters. An IN (...) predicate compiles to one op
// per value; the executor merges and deduplicates the results.
type RemoteOp struct {
	Table   string
	Filters map[string]string
}

// CompiledPlan is the backend-shaped execution plan derived from a
// ParsedQuery. Discarded after execution.
type CompiledPlan struct {
	Ops         []RemoteOp
	PostFilters []FilterSpec
	Role        Role

	OrderBy   string
	Direction SortDirection
	Limit     int

	// ClientSideSort forces sort+limit to happen locally after the
	// post-filters run. It is set whenever PostFilters is non-empty,
	// because the store cannot combine a computed filter with
	// order+limit without truncating the candidate set first.
	ClientSideSort bool
}
