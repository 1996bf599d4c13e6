// Package prompts builds the LLM prompts: pseudo-SQL generation from a
// question plus schema context, and answer rendering from result rows.
package prompts

import (
	"fmt"
	"strings"
)

// SQLGenerationInput carries everything the SQL prompt needs.
type SQLGenerationInput struct {
	Question      string
	SchemaContext string // rendered table descriptors
	TableHint     string // optional table suggested by the intent index
	Season        string // season year stat queries default to
	Teams         []string
	Players       []string
	Date          string // resolved ISO date, "" when none
}

// SQLSystemMessage is the system message for pseudo-SQL generation.
const SQLSystemMessage = "You translate Korean baseball questions into a single SQL SELECT statement. " +
	"Reply with only the statement, no explanation and no markdown."

// BuildSQLGenerationPrompt creates the pseudo-SQL generation prompt.
// The statement is parsed structurally afterward, so the prompt pins
// down the only constructs the compiler accepts: equality predicates,
// IN lists, ORDER BY and LIMIT.
func BuildSQLGenerationPrompt(in SQLGenerationInput) string {
	var b strings.Builder

	b.WriteString("## Schema\n\n")
	b.WriteString(in.SchemaContext)
	b.WriteString("\n## Rules\n")
	b.WriteString("- Produce exactly one SELECT statement.\n")
	b.WriteString("- Use only equality predicates (col = 'value') and IN ('a', 'b') lists.\n")
	b.WriteString("- No joins, subqueries, aggregates, ranges, or arithmetic.\n")
	fmt.Fprintf(&b, "- Season stat queries filter season = '%s' unless the question names another year.\n", in.Season)
	b.WriteString("- Use canonical team codes in filters.\n")

	if in.TableHint != "" {
		fmt.Fprintf(&b, "- The question most likely concerns the %s table.\n", in.TableHint)
	}

	b.WriteString("\n## Resolved entities\n")
	if len(in.Teams) > 0 {
		fmt.Fprintf(&b, "- Teams: %s\n", strings.Join(in.Teams, ", "))
	}
	if len(in.Players) > 0 {
		fmt.Fprintf(&b, "- Players: %s\n", strings.Join(in.Players, ", "))
	}
	if in.Date != "" {
		fmt.Fprintf(&b, "- Date: %s\n", in.Date)
	}
	if len(in.Teams) == 0 && len(in.Players) == 0 && in.Date == "" {
		b.WriteString("- none\n")
	}

	fmt.Fprintf(&b, "\n## Question\n%s\n", in.Question)

	return b.String()
}
