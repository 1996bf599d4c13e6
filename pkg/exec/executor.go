// Package exec runs compiled plans against the remote row store. It
// merges fanned-out operations, materializes client-side post-filters
// and applies ordering locally whenever delegation would be unsafe.
package exec

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
	"github.com/dugoutlabs/kbochat-engine/pkg/store"
)

const statsTable = "player_season_stats"

// Executor executes compiled plans. Immutable after construction and
// safe for concurrent use.
type Executor struct {
	store        store.RowStore
	paMultiplier float64
	season       string
	logger       *zap.Logger
}

// NewExecutor creates a plan executor. paMultiplier is the qualified
// plate-appearance multiplier (league rule: 3.1 per team game). season
// scopes threshold queries when the plan itself carries no season, so
// game counts never mix seasons.
func NewExecutor(rs store.RowStore, paMultiplier float64, season string, logger *zap.Logger) *Executor {
	return &Executor{
		store:        rs,
		paMultiplier: paMultiplier,
		season:       season,
		logger:       logger.Named("exec"),
	}
}

// Execute runs the plan and returns the result rows. An empty result is
// not an error; callers map it to category-specific "no data" text.
//
// Ordering is delegated to the store only for a single operation with
// no post-filters. Fanned-out operations are merged and deduplicated
// first, post-filters run next, and only then is the result sorted and
// sliced, so business filters always see the full candidate set.
func (e *Executor) Execute(ctx context.Context, plan models.CompiledPlan) ([]models.Row, error) {
	if len(plan.Ops) == 0 {
		return nil, fmt.Errorf("plan has no operations")
	}

	if !plan.ClientSideSort && len(plan.Ops) == 1 {
		return e.store.SelectOrdered(ctx, plan.Ops[0].Table, plan.Ops[0].Filters, store.Ordering{
			Column:     plan.OrderBy,
			Descending: plan.Direction == models.SortDesc,
			Limit:      plan.Limit,
		})
	}

	rows, err := e.fetchAndMerge(ctx, plan.Ops)
	if err != nil {
		return nil, err
	}

	rows, err = e.applyPostFilters(ctx, plan, rows)
	if err != nil {
		return nil, err
	}

	if plan.OrderBy != "" {
		sortRows(rows, plan.OrderBy, plan.Direction)
	}
	if plan.Limit > 0 && len(rows) > plan.Limit {
		rows = rows[:plan.Limit]
	}

	e.logger.Debug("plan executed",
		zap.Int("ops", len(plan.Ops)),
		zap.Int("rows", len(rows)))

	return rows, nil
}

// fetchAndMerge executes every operation and deduplicates the union.
func (e *Executor) fetchAndMerge(ctx context.Context, ops []models.RemoteOp) ([]models.Row, error) {
	var merged []models.Row
	seen := make(map[string]bool)

	for _, op := range ops {
		rows, err := e.store.Select(ctx, op.Table, op.Filters)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			key := rowKey(row)
			if seen[key] {
				continue
			}
			seen[key] = true
			merged = append(merged, row)
		}
	}

	return merged, nil
}

// rowKey builds a deduplication key. Map keys marshal in sorted order,
// so identical rows always produce identical keys.
func rowKey(row models.Row) string {
	data, err := json.Marshal(row)
	if err != nil {
		return fmt.Sprintf("%v", row)
	}
	return string(data)
}

func (e *Executor) applyPostFilters(ctx context.Context, plan models.CompiledPlan, rows []models.Row) ([]models.Row, error) {
	for _, f := range plan.PostFilters {
		switch f.Kind {
		case models.FilterNonNull:
			rows = filterRows(rows, func(r models.Row) bool {
				return !r.IsNull(f.Column)
			})
		case models.FilterQualifiedPA:
			threshold, err := e.qualifiedPAThreshold(ctx, f)
			if err != nil {
				return nil, err
			}
			rows = filterRows(rows, func(r models.Row) bool {
				pa, ok := r.Float(f.Column)
				return ok && pa >= threshold
			})
			e.logger.Debug("qualified-PA filter applied",
				zap.Float64("threshold", threshold),
				zap.String("team", f.Team),
				zap.Int("rows", len(rows)))
		default:
			return nil, fmt.Errorf("unknown post-filter kind %q", f.Kind)
		}
	}
	return rows, nil
}

// qualifiedPAThreshold computes ceil(multiplier × team games played).
// With a team scope the team's own game count is used; otherwise the
// league-average game count across all clubs. The query is always
// pinned to a single season: a completed 144-game season in the store
// would otherwise inflate the floor past anything reachable mid-season.
func (e *Executor) qualifiedPAThreshold(ctx context.Context, f models.FilterSpec) (float64, error) {
	filters := map[string]string{}
	if f.Team != "" {
		filters["team"] = f.Team
	}
	season := f.Season
	if season == "" {
		season = e.season
	}
	if season != "" {
		filters["season"] = season
	}

	rows, err := e.store.Select(ctx, statsTable, filters)
	if err != nil {
		return 0, err
	}

	games := make(map[string]float64)
	for _, row := range rows {
		g, ok := row.Float("gamenum")
		if !ok {
			continue
		}
		t := row.String("team")
		if g > games[t] {
			games[t] = g
		}
	}
	if len(games) == 0 {
		return 0, nil
	}

	var total float64
	for _, g := range games {
		total += g
	}
	avg := total / float64(len(games))

	return math.Ceil(e.paMultiplier * avg), nil
}

func filterRows(rows []models.Row, keep func(models.Row) bool) []models.Row {
	out := rows[:0:0]
	for _, row := range rows {
		if keep(row) {
			out = append(out, row)
		}
	}
	return out
}

// sortRows orders rows by the column, treating a null sort key as zero.
func sortRows(rows []models.Row, column string, dir models.SortDirection) {
	sort.SliceStable(rows, func(i, j int) bool {
		a := rows[i].SortValue(column)
		b := rows[j].SortValue(column)
		if dir == models.SortDesc {
			return a > b
		}
		return a < b
	})
}
