// Package extract resolves dates, team codes and player-name candidates
// from free-text questions. Extraction never fails: absence of a match
// is an explicit zero value.
package extract

import (
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
	"github.com/dugoutlabs/kbochat-engine/pkg/schema"
)

// Extractor resolves entities against the immutable corpus and a known
// player-name index. Safe for concurrent use.
type Extractor struct {
	corpus  *schema.Corpus
	aliases []teamAlias // sorted longest first
	players []string    // known player names sorted longest first
	logger  *zap.Logger
}

// teamAlias is one corpus alias prepared for matching. Latin aliases
// like "KT" must also hit lowercase mentions, so the term is stored
// folded and matched against the folded question.
type teamAlias struct {
	term string // lowercased alias
	code string
}

// NewExtractor creates an entity extractor. playerNames is the known
// player index, typically loaded from the store at startup; it may be
// empty, in which case no player candidates are ever produced.
func NewExtractor(corpus *schema.Corpus, playerNames []string, logger *zap.Logger) *Extractor {
	aliases := make([]teamAlias, 0, len(corpus.TeamAliases))
	for alias, code := range corpus.TeamAliases {
		aliases = append(aliases, teamAlias{term: strings.ToLower(alias), code: code})
	}
	// Longest alias first so 한화이글스 wins over 한화 at the same spot.
	sort.Slice(aliases, func(i, j int) bool {
		if len(aliases[i].term) != len(aliases[j].term) {
			return len(aliases[i].term) > len(aliases[j].term)
		}
		return aliases[i].term < aliases[j].term
	})

	players := make([]string, 0, len(playerNames))
	for _, name := range playerNames {
		name = strings.TrimSpace(name)
		// A value that is also a team code can never be a player candidate.
		if name == "" || corpus.IsTeamCode(name) {
			continue
		}
		players = append(players, name)
	}
	sort.Slice(players, func(i, j int) bool {
		if len(players[i]) != len(players[j]) {
			return len(players[i]) > len(players[j])
		}
		return players[i] < players[j]
	})

	return &Extractor{
		corpus:  corpus,
		aliases: aliases,
		players: players,
		logger:  logger.Named("extract"),
	}
}

// Extract resolves all entities from the question. now anchors relative
// date terms and is injected by the caller for determinism.
func (e *Extractor) Extract(question string, now time.Time) models.ResolvedEntities {
	entities := models.ResolvedEntities{
		Date:    e.resolveDate(question, now),
		Teams:   e.resolveTeams(question),
		Players: e.resolvePlayers(question),
	}

	e.logger.Debug("entities resolved",
		zap.String("date", entities.Date.ISO()),
		zap.Strings("teams", entities.Teams),
		zap.Strings("players", entities.Players))

	return entities
}

// resolveTeams finds canonical team codes by longest-alias-first
// substring matching over the case-folded question, ordered by position
// of first appearance.
func (e *Extractor) resolveTeams(question string) []string {
	type match struct {
		pos  int
		code string
	}
	var matches []match
	seen := make(map[string]bool)

	folded := strings.ToLower(question)
	for _, alias := range e.aliases {
		idx := strings.Index(folded, alias.term)
		if idx == -1 {
			continue
		}
		if seen[alias.code] {
			continue
		}
		seen[alias.code] = true
		matches = append(matches, match{pos: idx, code: alias.code})
	}

	if len(matches) == 0 {
		return nil
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].pos < matches[j].pos })

	codes := make([]string, len(matches))
	for i, m := range matches {
		codes[i] = m.code
	}
	return codes
}

// resolvePlayers collects all known-name substring matches, longest
// first so a full name always outranks a shorter substring of it.
func (e *Extractor) resolvePlayers(question string) []string {
	var candidates []string
	for _, name := range e.players {
		if strings.Contains(question, name) {
			candidates = append(candidates, name)
		}
	}
	return candidates
}
