package schema

import (
	"strings"
)

// PromptContext renders the table descriptors into the schema block of
// the SQL-generation prompt. When hint is non-empty, only that table is
// rendered so the model is not tempted by unrelated tables.
func (c *Corpus) PromptContext(hint string) string {
	var b strings.Builder
	for _, t := range c.Tables {
		if hint != "" && t.Name != hint {
			continue
		}
		b.WriteString("TABLE ")
		b.WriteString(t.Name)
		b.WriteString(" -- ")
		b.WriteString(t.Description)
		b.WriteString("\n")
		for _, col := range t.Columns {
			b.WriteString("  ")
			b.WriteString(col.Name)
			b.WriteString(" (")
			b.WriteString(col.Type)
			b.WriteString(")")
			if len(col.Synonyms) > 0 {
				b.WriteString(" -- ")
				b.WriteString(strings.Join(col.Synonyms, ", "))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return b.String()
}
