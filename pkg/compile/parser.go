// Package compile turns LLM-authored pseudo-SQL into an execution plan
// of REST operations plus client-side post-filters. The store cannot
// execute SQL; the statement is parsed structurally and reinterpreted.
package compile

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dugoutlabs/kbochat-engine/pkg/apperrors"
	"github.com/dugoutlabs/kbochat-engine/pkg/models"
	"github.com/dugoutlabs/kbochat-engine/pkg/sql"
)

var (
	fromPattern    = regexp.MustCompile(`(?is)\bFROM\s+([A-Za-z_][A-Za-z0-9_]*)`)
	orderByPattern = regexp.MustCompile(`(?is)\bORDER\s+BY\s+([A-Za-z_][A-Za-z0-9_]*)(?:\s+(ASC|DESC))?`)
	limitPattern   = regexp.MustCompile(`(?is)\bLIMIT\s+(\d+)`)

	// column = 'literal' | "literal" | bare-word | number
	eqPattern = regexp.MustCompile(`(?is)([A-Za-z_][A-Za-z0-9_]*)\s*=\s*('(?:[^'\\]|\\.)*'|"(?:[^"\\]|\\.)*"|[A-Za-z0-9_.\-]+)`)
	inPattern = regexp.MustCompile(`(?is)([A-Za-z_][A-Za-z0-9_]*)\s+IN\s*\(([^)]*)\)`)

	mutatingVerbPattern = regexp.MustCompile(`\b(INSERT|UPDATE|DELETE|DROP|ALTER|CREATE|TRUNCATE)\b`)
)

// ParseSelect parses one pseudo-SQL statement into its structural
// reading. Fails with a CompileError wrapper whenever the text is not a
// single well-formed read-only SELECT.
func ParseSelect(raw string) (models.ParsedQuery, error) {
	result := sql.ValidateAndNormalize(raw)
	if result.Error != nil {
		return models.ParsedQuery{}, fmt.Errorf("%w: %v", apperrors.ErrCompile, result.Error)
	}
	text := result.NormalizedSQL
	if text == "" {
		return models.ParsedQuery{}, fmt.Errorf("%w: empty statement", apperrors.ErrCompile)
	}

	upper := strings.ToUpper(text)
	if !strings.HasPrefix(upper, "SELECT") {
		return models.ParsedQuery{}, fmt.Errorf("%w: only SELECT statements are supported", apperrors.ErrCompile)
	}
	// Read-only guard: mutating verbs anywhere in the statement are
	// rejected outright, subqueries included.
	if m := mutatingVerbPattern.FindString(upper); m != "" {
		return models.ParsedQuery{}, fmt.Errorf("%w: %s is not allowed", apperrors.ErrCompile, m)
	}

	fromMatch := fromPattern.FindStringSubmatch(text)
	if fromMatch == nil {
		return models.ParsedQuery{}, fmt.Errorf("%w: missing FROM clause", apperrors.ErrCompile)
	}

	q := models.ParsedQuery{
		Table:     fromMatch[1],
		Columns:   parseColumns(text),
		OrderBy:   "",
		Direction: models.SortAsc,
		Raw:       text,
	}

	if m := orderByPattern.FindStringSubmatch(text); m != nil {
		q.OrderBy = m[1]
		if strings.EqualFold(m[2], "DESC") {
			q.Direction = models.SortDesc
		}
	}
	if m := limitPattern.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil || n < 0 {
			return models.ParsedQuery{}, fmt.Errorf("%w: bad LIMIT", apperrors.ErrCompile)
		}
		q.Limit = n
	}

	preds, err := parsePredicates(text)
	if err != nil {
		return models.ParsedQuery{}, err
	}
	q.Predicates = preds

	return q, nil
}

// parseColumns extracts the projected column names between SELECT and
// FROM. SELECT * yields an empty list.
func parseColumns(text string) []string {
	upper := strings.ToUpper(text)
	fromIdx := strings.Index(upper, " FROM ")
	if fromIdx == -1 {
		// FROM at line start after a newline
		fromIdx = strings.Index(upper, "\nFROM ")
	}
	if fromIdx == -1 {
		return nil
	}

	clause := strings.TrimSpace(text[len("SELECT"):fromIdx])
	if clause == "" || strings.HasPrefix(clause, "*") {
		return nil
	}

	var columns []string
	for _, part := range splitRespectingParens(clause) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		// Strip alias: "hra AS average" -> hra
		if fields := strings.Fields(part); len(fields) > 0 {
			part = fields[0]
		}
		columns = append(columns, part)
	}
	return columns
}

// splitRespectingParens splits a column list on commas outside parentheses.
func splitRespectingParens(clause string) []string {
	var parts []string
	var current strings.Builder
	depth := 0

	for _, ch := range clause {
		switch ch {
		case '(':
			depth++
			current.WriteRune(ch)
		case ')':
			depth--
			current.WriteRune(ch)
		case ',':
			if depth == 0 {
				parts = append(parts, current.String())
				current.Reset()
			} else {
				current.WriteRune(ch)
			}
		default:
			current.WriteRune(ch)
		}
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}

// parsePredicates extracts equality and IN predicates from the WHERE
// clause. Anything richer (ranges, OR trees, subqueries) is rejected at
// a later stage simply by being ignored; the store only understands
// equality filters.
func parsePredicates(text string) ([]models.Predicate, error) {
	upper := strings.ToUpper(text)
	whereIdx := strings.Index(upper, "WHERE")
	if whereIdx == -1 {
		return nil, nil
	}
	clause := text[whereIdx+len("WHERE"):]

	// Cut the clause at ORDER BY / LIMIT so their arguments are not
	// mistaken for predicates.
	clauseUpper := strings.ToUpper(clause)
	if idx := strings.Index(clauseUpper, "ORDER BY"); idx != -1 {
		clause = clause[:idx]
	} else if idx := strings.Index(clauseUpper, "LIMIT"); idx != -1 {
		clause = clause[:idx]
	}

	var preds []models.Predicate

	consumed := make(map[string]bool)
	for _, m := range inPattern.FindAllStringSubmatch(clause, -1) {
		column := m[1]
		var values []string
		for _, v := range splitRespectingParens(m[2]) {
			v = unquote(strings.TrimSpace(v))
			if v != "" {
				values = append(values, v)
			}
		}
		if len(values) == 0 {
			return nil, fmt.Errorf("%w: empty IN list for %s", apperrors.ErrCompile, column)
		}
		preds = append(preds, models.Predicate{Column: column, Values: values})
		consumed[strings.ToLower(column)] = true
	}

	for _, m := range eqPattern.FindAllStringSubmatch(clause, -1) {
		column := m[1]
		if consumed[strings.ToLower(column)] {
			continue
		}
		// The IN keyword itself can be captured as a bare-word "value"
		// of the preceding column; skip non-predicate matches.
		if strings.EqualFold(column, "in") || strings.EqualFold(m[2], "in") {
			continue
		}
		preds = append(preds, models.Predicate{Column: column, Values: []string{unquote(m[2])}})
	}

	return preds, nil
}

func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '\'' && v[len(v)-1] == '\'') || (v[0] == '"' && v[len(v)-1] == '"') {
			inner := v[1 : len(v)-1]
			inner = strings.ReplaceAll(inner, `\'`, `'`)
			inner = strings.ReplaceAll(inner, `''`, `'`)
			return inner
		}
	}
	return v
}
