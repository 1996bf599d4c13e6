// Package schema holds the read-only domain corpus: table descriptors,
// intent exemplars, team aliases and stadium assignments. The corpus is
// loaded once at startup and shared across requests without locking.
package schema

import (
	"fmt"
	"os"
	"strings"

	"github.com/jinzhu/inflection"
	"gopkg.in/yaml.v3"
)

// Column describes one column of a store table.
type Column struct {
	Name     string   `yaml:"name"`
	Type     string   `yaml:"type"` // text, number, date
	Synonyms []string `yaml:"synonyms,omitempty"`
}

// TableDescriptor describes one table the remote store exposes.
type TableDescriptor struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Columns     []Column `yaml:"columns"`
}

// IntentExemplar is one entry of the intent corpus used for similarity
// search when keyword rules are inconclusive.
type IntentExemplar struct {
	Category    string   `yaml:"category"`
	Keywords    []string `yaml:"keywords"`
	Description string   `yaml:"description"`
	Table       string   `yaml:"table,omitempty"`
}

// Corpus is the complete immutable domain corpus.
type Corpus struct {
	Tables    []TableDescriptor `yaml:"tables"`
	Exemplars []IntentExemplar  `yaml:"exemplars"`

	// TeamAliases maps every natural-language team reference to its
	// canonical code.
	TeamAliases map[string]string `yaml:"team_aliases"`

	// TeamNames maps canonical codes back to display names.
	TeamNames map[string]string `yaml:"team_names"`

	// Stadiums maps a canonical team code to its home stadium.
	Stadiums map[string]string `yaml:"stadiums"`

	// PitcherKeywords and BatterKeywords are the disjoint keyword sets
	// used for role inference over pseudo-SQL columns.
	PitcherKeywords []string `yaml:"pitcher_keywords"`
	BatterKeywords  []string `yaml:"batter_keywords"`
}

// LoadCorpus reads a corpus override from a YAML file.
func LoadCorpus(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read corpus: %w", err)
	}

	var c Corpus
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse corpus: %w", err)
	}
	if len(c.Tables) == 0 {
		return nil, fmt.Errorf("corpus %s defines no tables", path)
	}
	return &c, nil
}

// Table returns the descriptor for name, or nil when the store does not
// expose such a table.
func (c *Corpus) Table(name string) *TableDescriptor {
	for i := range c.Tables {
		if c.Tables[i].Name == name {
			return &c.Tables[i]
		}
	}
	return nil
}

// ResolveColumn maps a term from pseudo-SQL onto a real column of the
// table, consulting column synonyms. Terms are compared case-folded and
// singularized, so "averages" still finds the "average" synonym.
// Returns "" when nothing matches.
func (t *TableDescriptor) ResolveColumn(term string) string {
	needle := inflection.Singular(strings.ToLower(strings.TrimSpace(term)))
	for _, col := range t.Columns {
		if strings.ToLower(col.Name) == needle {
			return col.Name
		}
		for _, syn := range col.Synonyms {
			if inflection.Singular(strings.ToLower(syn)) == needle {
				return col.Name
			}
		}
	}
	return ""
}

// IsTeamCode reports whether v is a canonical team code.
func (c *Corpus) IsTeamCode(v string) bool {
	_, ok := c.TeamNames[strings.ToUpper(v)]
	return ok
}

// TeamCode resolves a team alias to its canonical code, or "".
func (c *Corpus) TeamCode(alias string) string {
	if code, ok := c.TeamAliases[alias]; ok {
		return code
	}
	if code, ok := c.TeamAliases[strings.ToUpper(alias)]; ok {
		return code
	}
	return ""
}

// TeamName returns the display name for a canonical code, falling back
// to the code itself.
func (c *Corpus) TeamName(code string) string {
	if name, ok := c.TeamNames[code]; ok {
		return name
	}
	return code
}

// Stadium returns the home stadium for a canonical team code, or "".
func (c *Corpus) Stadium(code string) string {
	return c.Stadiums[code]
}
