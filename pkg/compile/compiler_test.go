package compile

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/dugoutlabs/kbochat-engine/pkg/apperrors"
	"github.com/dugoutlabs/kbochat-engine/pkg/models"
	"github.com/dugoutlabs/kbochat-engine/pkg/schema"
)

func newTestCompiler(t *testing.T) *Compiler {
	t.Helper()
	return NewCompiler(schema.DefaultCorpus(), DefaultWeights(), zaptest.NewLogger(t))
}

func mustParse(t *testing.T, sql string) models.ParsedQuery {
	t.Helper()
	q, err := ParseSelect(sql)
	if err != nil {
		t.Fatalf("ParseSelect(%q) failed: %v", sql, err)
	}
	return q
}

func TestCompile_UnknownTableNeverGuessed(t *testing.T) {
	c := newTestCompiler(t)
	_, err := c.Compile(mustParse(t, "SELECT * FROM lineup_table WHERE team = 'HH'"))
	if !errors.Is(err, apperrors.ErrUnsupportedTable) {
		t.Fatalf("expected ErrUnsupportedTable, got %v", err)
	}
}

func TestCompile_BattingAverageLeaderboard(t *testing.T) {
	c := newTestCompiler(t)
	plan, err := c.Compile(mustParse(t,
		"SELECT name, hra FROM player_season_stats WHERE team = 'HH' ORDER BY hra DESC LIMIT 1"))
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	if len(plan.Ops) != 1 {
		t.Fatalf("expected 1 op, got %d", len(plan.Ops))
	}
	if got := plan.Ops[0].Filters["team"]; got != "HH" {
		t.Errorf("team filter = %q, want HH", got)
	}

	if !plan.ClientSideSort {
		t.Error("post-filtered plan must sort client-side")
	}
	if len(plan.PostFilters) != 2 {
		t.Fatalf("expected non-null + qualified-PA filters, got %+v", plan.PostFilters)
	}
	if plan.PostFilters[0].Kind != models.FilterNonNull || plan.PostFilters[0].Column != "hra" {
		t.Errorf("first filter = %+v, want non-null hra", plan.PostFilters[0])
	}
	qpa := plan.PostFilters[1]
	if qpa.Kind != models.FilterQualifiedPA || qpa.Column != "ab" || qpa.Team != "HH" {
		t.Errorf("second filter = %+v, want qualified-PA scoped to HH", qpa)
	}

	if plan.Role != models.RoleBatter {
		t.Errorf("Role = %s, want batter", plan.Role)
	}
	if plan.OrderBy != "hra" || plan.Direction != models.SortDesc || plan.Limit != 1 {
		t.Errorf("ordering = %s %s %d", plan.OrderBy, plan.Direction, plan.Limit)
	}
}

func TestCompile_LeagueWideRateStatUsesLeagueAverageThreshold(t *testing.T) {
	c := newTestCompiler(t)
	plan, err := c.Compile(mustParse(t,
		"SELECT name, ops FROM player_season_stats ORDER BY ops DESC LIMIT 5"))
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	var qpa *models.FilterSpec
	for i := range plan.PostFilters {
		if plan.PostFilters[i].Kind == models.FilterQualifiedPA {
			qpa = &plan.PostFilters[i]
		}
	}
	if qpa == nil {
		t.Fatal("expected qualified-PA filter for a rate-stat leaderboard")
	}
	if qpa.Team != "" {
		t.Errorf("Team = %q, want empty (league average)", qpa.Team)
	}
}

func TestCompile_CountingStatSkipsQualifiedPA(t *testing.T) {
	c := newTestCompiler(t)
	plan, err := c.Compile(mustParse(t,
		"SELECT name, hr FROM player_season_stats ORDER BY hr DESC LIMIT 10"))
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	for _, f := range plan.PostFilters {
		if f.Kind == models.FilterQualifiedPA {
			t.Errorf("home run leaderboard must not require qualified PA: %+v", f)
		}
	}
	// Null exclusion still applies so pitchers don't rank by empty stats.
	if !plan.ClientSideSort {
		t.Error("expected client-side sort while a post-filter exists")
	}
}

func TestCompile_PitcherLeaderboardSkipsQualifiedPA(t *testing.T) {
	c := newTestCompiler(t)
	plan, err := c.Compile(mustParse(t,
		"SELECT name, era FROM player_season_stats ORDER BY era ASC LIMIT 1"))
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	if plan.Role != models.RolePitcher {
		t.Errorf("Role = %s, want pitcher", plan.Role)
	}
	for _, f := range plan.PostFilters {
		if f.Kind == models.FilterQualifiedPA {
			t.Errorf("pitcher plan must not carry a PA filter: %+v", f)
		}
	}
}

func TestCompile_InExpansionAndTeamCodeStopList(t *testing.T) {
	c := newTestCompiler(t)
	plan, err := c.Compile(mustParse(t,
		"SELECT name, hr FROM player_season_stats WHERE name IN ('노시환', 'HH', '김도영')"))
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	if len(plan.Ops) != 2 {
		t.Fatalf("expected 2 ops after dropping the team code, got %d", len(plan.Ops))
	}
	for _, op := range plan.Ops {
		name := op.Filters["name"]
		if c.corpus.IsTeamCode(name) {
			t.Errorf("team code %q survived in a player list", name)
		}
	}
}

func TestCompile_TeamAliasNormalizedInPredicate(t *testing.T) {
	c := newTestCompiler(t)
	plan, err := c.Compile(mustParse(t,
		"SELECT name FROM player_season_stats WHERE team = '한화'"))
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	if got := plan.Ops[0].Filters["team"]; got != "HH" {
		t.Errorf("team filter = %q, want HH", got)
	}
}

func TestCompile_SynonymColumnsResolved(t *testing.T) {
	c := newTestCompiler(t)
	plan, err := c.Compile(mustParse(t,
		"SELECT name, avg FROM player_season_stats ORDER BY avg DESC LIMIT 1"))
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	if plan.OrderBy != "hra" {
		t.Errorf("OrderBy = %q, want hra (resolved from avg)", plan.OrderBy)
	}
}

func TestCompile_NoPostFiltersDelegatesSort(t *testing.T) {
	c := newTestCompiler(t)
	plan, err := c.Compile(mustParse(t,
		"SELECT * FROM game_schedule WHERE gday = '2025-08-29' ORDER BY gtime ASC"))
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	if plan.ClientSideSort {
		t.Error("schedule query without post-filters should delegate ordering")
	}
	if len(plan.PostFilters) != 0 {
		t.Errorf("unexpected post-filters: %+v", plan.PostFilters)
	}
}

func TestCompile_ProjectedRateStatFilteredWithoutOrderBy(t *testing.T) {
	c := newTestCompiler(t)
	plan, err := c.Compile(mustParse(t,
		"SELECT name, hra FROM player_season_stats WHERE team = 'HH'"))
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	var nonNull, qpa *models.FilterSpec
	for i := range plan.PostFilters {
		switch plan.PostFilters[i].Kind {
		case models.FilterNonNull:
			if plan.PostFilters[i].Column == "hra" {
				nonNull = &plan.PostFilters[i]
			}
		case models.FilterQualifiedPA:
			qpa = &plan.PostFilters[i]
		}
	}
	if nonNull == nil {
		t.Error("projected batting average must exclude null rows even without ORDER BY")
	}
	if qpa == nil {
		t.Fatal("projected batting average must require qualified plate appearances")
	}
	if qpa.Team != "HH" {
		t.Errorf("qualified-PA Team = %q, want HH", qpa.Team)
	}
	if !plan.ClientSideSort {
		t.Error("post-filtered plan must sort client-side")
	}
}

func TestCompile_SeasonPredicatePinsQualifiedPA(t *testing.T) {
	c := newTestCompiler(t)
	plan, err := c.Compile(mustParse(t,
		"SELECT name, hra FROM player_season_stats WHERE season = '2024' ORDER BY hra DESC LIMIT 3"))
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	var qpa *models.FilterSpec
	for i := range plan.PostFilters {
		if plan.PostFilters[i].Kind == models.FilterQualifiedPA {
			qpa = &plan.PostFilters[i]
		}
	}
	if qpa == nil {
		t.Fatal("expected qualified-PA filter")
	}
	if qpa.Season != "2024" {
		t.Errorf("qualified-PA Season = %q, want 2024", qpa.Season)
	}
}

func TestCompile_RepeatedTeamPredicateFansOut(t *testing.T) {
	c := newTestCompiler(t)
	plan, err := c.Compile(mustParse(t,
		"SELECT name FROM player_season_stats WHERE team = 'HH' OR team = 'OB'"))
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}

	if len(plan.Ops) != 2 {
		t.Fatalf("expected one op per team, got %d: %+v", len(plan.Ops), plan.Ops)
	}
	teams := map[string]bool{}
	for _, op := range plan.Ops {
		teams[op.Filters["team"]] = true
	}
	if !teams["HH"] || !teams["OB"] {
		t.Errorf("ops cover teams %v, want HH and OB", teams)
	}
	for _, f := range plan.PostFilters {
		if f.Kind == models.FilterQualifiedPA && f.Team != "" {
			t.Errorf("two-team query must use the league-average threshold, got %+v", f)
		}
	}
}

func TestCompile_InjectionLiteralRejected(t *testing.T) {
	c := newTestCompiler(t)
	_, err := c.Compile(mustParse(t,
		"SELECT name FROM player_season_stats WHERE name IN ('a'' OR 1=1--')"))
	if !errors.Is(err, apperrors.ErrCompile) {
		t.Errorf("expected ErrCompile for injection literal, got %v", err)
	}
}

func TestCompile_TiedEvidenceMeansBothRoles(t *testing.T) {
	c := newTestCompiler(t)
	plan, err := c.Compile(mustParse(t,
		"SELECT name FROM player_season_stats WHERE season = '2025'"))
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	if plan.Role != models.RoleBoth {
		t.Errorf("Role = %s, want both when no evidence exists", plan.Role)
	}
}

func TestCompile_OrderByOutweighsSelect(t *testing.T) {
	c := newTestCompiler(t)
	// Three batter columns projected, one pitcher sort key: 3×3 batter
	// vs 10 pitcher evidence, so the sort key wins.
	plan, err := c.Compile(mustParse(t,
		"SELECT hr, rbi, obp FROM player_season_stats ORDER BY era ASC"))
	if err != nil {
		t.Fatalf("Compile() failed: %v", err)
	}
	if plan.Role != models.RolePitcher {
		t.Errorf("Role = %s, want pitcher (ORDER BY dominates)", plan.Role)
	}
}
