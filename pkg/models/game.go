package models

// Game status codes as stored in the schedule table.
const (
	GameStatusBefore = "BEFORE"
	GameStatusLive   = "LIVE"
	GameStatusResult = "RESULT"
)

// Winner markers in the schedule table.
const (
	WinnerHome = "HOME"
	WinnerAway = "AWAY"
)

// ScheduledGame is one row of the game_schedule table.
type ScheduledGame struct {
	GameID       string
	Date         string // YYYY-MM-DD
	DateTime     string // RFC 3339 start time
	Stadium      string
	HomeTeamCode string
	HomeTeamName string
	AwayTeamCode string
	AwayTeamName string
	HomeScore    int
	AwayScore    int
	Winner       string // HOME, AWAY, or ""
	StatusCode   string
}

// Finished reports whether the game has a final result.
func (g ScheduledGame) Finished() bool { return g.StatusCode == GameStatusResult }

// GameRecord is the analyzed record of a played game, fetched from the
// game-record endpoint. Nil when the game has not been played.
type GameRecord struct {
	GameID      string
	HomeTeam    string
	AwayTeam    string
	HomeScore   int
	AwayScore   int
	Winner      string // HOME or AWAY
	WinningHit  string // decisive-hit description when available
	TopBatters  []PlayerLine
	TopPitchers []PlayerLine
}

// PlayerLine is one notable player line inside a game record.
type PlayerLine struct {
	Name string
	Team string
	Line string // rendered stat line, e.g. "3-for-4, 2 RBI"
}

// GamePreview is the pre-game information for an upcoming game, fetched
// from the game-preview endpoint. Nil when no preview is published.
type GamePreview struct {
	GameID       string
	HomeStanding TeamStanding
	AwayStanding TeamStanding
	HomeStarter  Starter
	AwayStarter  Starter
	HomeKeyBat   KeyBatter
	AwayKeyBat   KeyBatter
	// Season head-to-head between the two clubs.
	HomeWins int
	AwayWins int
	Lineups  map[string][]LineupSlot // keyed "home"/"away"
}

// TeamStanding is a club's rank and rate-stat summary.
type TeamStanding struct {
	Rank    int
	WinRate float64
	OPS     float64
	ERA     float64
	// LastFive is the recent form string, e.g. "WWLWL".
	LastFive string
}

// Starter is a probable starting pitcher.
type Starter struct {
	Name   string
	Number string
	ERA    string
	Wins   int
	Losses int
}

// KeyBatter is the preview's featured batter.
type KeyBatter struct {
	Name    string
	Average string
}

// LineupSlot is one slot of a published starting lineup.
type LineupSlot struct {
	Position string
	Name     string
	Number   string
}
