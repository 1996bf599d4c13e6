package models

import "time"

// DateKind describes how a date reference was resolved.
type DateKind int

const (
	// DateNone means the question carries no date reference.
	DateNone DateKind = iota
	// DateExplicit means an absolute date appeared in the text.
	DateExplicit
	// DateOffset means an "N days before/after" expression resolved
	// relative to the reference time.
	DateOffset
	// DateRelative means a named term (today, yesterday, next friday)
	// resolved relative to the reference time.
	DateRelative
)

// ResolvedDate is a single canonical date together with how it was found.
// Explicit dates always win over co-occurring relative terms.
type ResolvedDate struct {
	Date time.Time
	Kind DateKind
}

// IsZero reports whether no date was resolved.
func (d ResolvedDate) IsZero() bool { return d.Kind == DateNone }

// ISO returns the date formatted as YYYY-MM-DD, or "" when unresolved.
func (d ResolvedDate) ISO() string {
	if d.IsZero() {
		return ""
	}
	return d.Date.Format("2006-01-02")
}

// ResolvedEntities holds everything the entity extractor pulled out of
// one question. Built once per request, never mutated.
type ResolvedEntities struct {
	Date ResolvedDate

	// Teams are canonical team codes, in order of appearance. An alias
	// resolves to exactly one code or is absent.
	Teams []string

	// Players are known-player-name candidates ranked longest first, so
	// a multi-character name is never masked by a shorter substring.
	// A value that is also a known team code never appears here.
	Players []string
}

// HasTeam reports whether a specific team was named.
func (e ResolvedEntities) HasTeam() bool { return len(e.Teams) > 0 }

// PrimaryTeam returns the first named team code, or "".
func (e ResolvedEntities) PrimaryTeam() string {
	if len(e.Teams) == 0 {
		return ""
	}
	return e.Teams[0]
}
