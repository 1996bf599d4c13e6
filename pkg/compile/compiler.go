package compile

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/apperrors"
	"github.com/dugoutlabs/kbochat-engine/pkg/models"
	"github.com/dugoutlabs/kbochat-engine/pkg/schema"
	"github.com/dugoutlabs/kbochat-engine/pkg/sql"
)

// rateStats are batter rate columns whose leaderboards are only valid
// over qualified plate appearances.
var rateStats = map[string]bool{
	"hra": true, "obp": true, "slg": true, "ops": true,
	"isop": true, "babip": true, "woba": true, "wrcplus": true,
}

// Weights control role inference scoring. An unambiguous ORDER BY
// column is far stronger evidence than a projected or filtered column.
type Weights struct {
	OrderBy int
	Select  int
}

// DefaultWeights returns the standard role-inference weights.
func DefaultWeights() Weights {
	return Weights{OrderBy: 10, Select: 3}
}

// Compiler derives backend-shaped plans from parsed pseudo-SQL.
// Immutable after construction, safe for concurrent use.
type Compiler struct {
	corpus  *schema.Corpus
	weights Weights
	logger  *zap.Logger
}

// NewCompiler creates a plan compiler over the corpus.
func NewCompiler(corpus *schema.Corpus, weights Weights, logger *zap.Logger) *Compiler {
	return &Compiler{
		corpus:  corpus,
		weights: weights,
		logger:  logger.Named("compile"),
	}
}

// Compile turns a parsed query into a CompiledPlan. It validates the
// table against the corpus, screens literals, expands IN predicates
// into per-value remote operations, drops team codes from player-name
// lists, infers the player role and derives post-filters. Whenever a
// post-filter exists, sort and limit move client-side so the candidate
// set is never truncated before business filters run.
func (c *Compiler) Compile(q models.ParsedQuery) (models.CompiledPlan, error) {
	table := c.corpus.Table(q.Table)
	if table == nil {
		return models.CompiledPlan{}, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedTable, q.Table)
	}

	literals := make(map[string][]string, len(q.Predicates))
	for _, p := range q.Predicates {
		literals[p.Column] = append(literals[p.Column], p.Values...)
	}
	if bad := sql.CheckLiterals(literals); len(bad) > 0 {
		return models.CompiledPlan{}, fmt.Errorf("%w: suspicious literal in %s", apperrors.ErrCompile, bad[0].Column)
	}

	preds, team, season := c.normalizePredicates(table, q.Predicates)

	plan := models.CompiledPlan{
		Ops:       expandOps(q.Table, preds),
		Role:      c.inferRole(q, table),
		OrderBy:   c.resolveColumn(table, q.OrderBy),
		Direction: q.Direction,
		Limit:     q.Limit,
	}

	plan.PostFilters = c.derivePostFilters(q, table, plan, team, season)
	plan.ClientSideSort = len(plan.PostFilters) > 0

	c.logger.Debug("plan compiled",
		zap.String("table", q.Table),
		zap.Int("ops", len(plan.Ops)),
		zap.Int("post_filters", len(plan.PostFilters)),
		zap.String("role", string(plan.Role)),
		zap.Bool("client_side_sort", plan.ClientSideSort))

	return plan, nil
}

// normalizePredicates maps predicate columns through synonyms, resolves
// team aliases to canonical codes and strips team codes out of
// player-name lists. Repeated predicates on the same column are merged
// into one multi-value predicate, so "team = 'HH' OR team = 'OB'" fans
// out like an IN list instead of the values clobbering each other.
// Returns the normalized predicates plus the single named team code and
// season, if any.
func (c *Compiler) normalizePredicates(table *schema.TableDescriptor, preds []models.Predicate) ([]models.Predicate, string, string) {
	var out []models.Predicate
	index := make(map[string]int)

	for _, p := range preds {
		column := c.resolveColumn(table, p.Column)

		values := make([]string, 0, len(p.Values))
		for _, v := range p.Values {
			if isTeamColumn(column) {
				if code := c.corpus.TeamCode(v); code != "" {
					v = code
				}
			}
			if isPlayerColumn(column) && c.corpus.IsTeamCode(v) {
				// Stop-list: a team code is never a player identifier.
				c.logger.Debug("dropped team code from player list", zap.String("value", v))
				continue
			}
			values = append(values, v)
		}
		if len(values) == 0 {
			continue
		}
		if at, ok := index[column]; ok {
			out[at].Values = appendMissing(out[at].Values, values)
			continue
		}
		index[column] = len(out)
		out = append(out, models.Predicate{Column: column, Values: values})
	}

	team, season := "", ""
	for _, p := range out {
		if len(p.Values) != 1 {
			continue
		}
		switch {
		case isTeamColumn(p.Column):
			team = p.Values[0]
		case isSeasonColumn(p.Column):
			season = p.Values[0]
		}
	}

	return out, team, season
}

// appendMissing unions values into dst, keeping first-seen order.
func appendMissing(dst, values []string) []string {
	for _, v := range values {
		dup := false
		for _, have := range dst {
			if have == v {
				dup = true
				break
			}
		}
		if !dup {
			dst = append(dst, v)
		}
	}
	return dst
}

func isTeamColumn(column string) bool   { return strings.EqualFold(column, "team") }
func isPlayerColumn(column string) bool { return strings.EqualFold(column, "name") }
func isSeasonColumn(column string) bool { return strings.EqualFold(column, "season") }

// resolveColumn maps a pseudo-SQL column through the table's synonym
// table, keeping the original spelling when nothing matches.
func (c *Compiler) resolveColumn(table *schema.TableDescriptor, column string) string {
	if column == "" {
		return ""
	}
	if resolved := table.ResolveColumn(column); resolved != "" {
		return resolved
	}
	return column
}

// expandOps turns predicates into remote operations. Multi-value
// predicates become a disjunction: one op per combination of values,
// merged and deduplicated by the executor afterward.
func expandOps(table string, preds []models.Predicate) []models.RemoteOp {
	ops := []models.RemoteOp{{Table: table, Filters: map[string]string{}}}

	for _, p := range preds {
		next := make([]models.RemoteOp, 0, len(ops)*len(p.Values))
		for _, op := range ops {
			for _, v := range p.Values {
				filters := make(map[string]string, len(op.Filters)+1)
				for k, val := range op.Filters {
					filters[k] = val
				}
				filters[p.Column] = v
				next = append(next, models.RemoteOp{Table: table, Filters: filters})
			}
		}
		ops = next
	}

	return ops
}

// inferRole scores the disjoint pitcher/batter keyword sets over the
// projected columns, predicate columns and the ORDER BY column. A tie
// means both roles and no exclusion filter.
func (c *Compiler) inferRole(q models.ParsedQuery, table *schema.TableDescriptor) models.Role {
	pitcher, batter := 0, 0

	score := func(term string, weight int) {
		resolved := c.resolveColumn(table, term)
		if containsFold(c.corpus.PitcherKeywords, resolved) {
			pitcher += weight
		}
		if containsFold(c.corpus.BatterKeywords, resolved) {
			batter += weight
		}
	}

	for _, col := range q.Columns {
		score(col, c.weights.Select)
	}
	for _, p := range q.Predicates {
		score(p.Column, c.weights.Select)
	}
	if q.OrderBy != "" {
		score(q.OrderBy, c.weights.OrderBy)
	}

	switch {
	case pitcher > batter:
		return models.RolePitcher
	case batter > pitcher:
		return models.RoleBatter
	default:
		return models.RoleBoth
	}
}

func containsFold(set []string, term string) bool {
	for _, s := range set {
		if strings.EqualFold(s, term) {
			return true
		}
	}
	return false
}

// derivePostFilters builds the client-side filters a stat query needs.
// The sort column must be non-null, the inferred role excludes rows
// whose signature stat (era for pitchers, hra for batters) is null, and
// any rate stat in the sort key or the projection triggers both its own
// non-null filter and the qualified plate-appearance floor. Rate stats
// matter even without an ORDER BY: a projected batting average is still
// meaningless for an unqualified batter.
func (c *Compiler) derivePostFilters(q models.ParsedQuery, table *schema.TableDescriptor, plan models.CompiledPlan, team, season string) []models.FilterSpec {
	if table.Name != "player_season_stats" {
		return nil
	}

	var filters []models.FilterSpec
	added := make(map[string]bool)
	nonNull := func(column string) {
		if column == "" || added[column] {
			return
		}
		added[column] = true
		filters = append(filters, models.FilterSpec{Kind: models.FilterNonNull, Column: column})
	}

	nonNull(plan.OrderBy)

	if plan.Role == models.RolePitcher {
		// Pitchers rank by innings, not plate appearances, so the PA
		// floor never applies to them.
		nonNull("era")
		return filters
	}
	if plan.Role == models.RoleBatter {
		nonNull("hra")
	}

	qualified := false
	candidates := append([]string{plan.OrderBy}, q.Columns...)
	for _, col := range candidates {
		resolved := c.resolveColumn(table, col)
		if rateStats[resolved] {
			nonNull(resolved)
			qualified = true
		}
	}
	if qualified {
		filters = append(filters, models.FilterSpec{
			Kind:   models.FilterQualifiedPA,
			Column: "ab",
			Team:   team,
			Season: season,
		})
	}

	return filters
}
