package sql

import (
	"errors"
	"strings"
)

// ErrNoSelect indicates the LLM output carries no SELECT statement.
var ErrNoSelect = errors.New("no SELECT statement found in model output")

// ExtractSelect pulls the first SELECT statement out of raw LLM output.
// Models wrap statements in markdown fences, prefix them with prose, or
// emit trailing commentary; all of that is discarded. The statement ends
// at the first semicolon outside string literals, or at end of input.
func ExtractSelect(raw string) (string, error) {
	cleaned := stripCodeFences(raw)

	upper := strings.ToUpper(cleaned)
	idx := strings.Index(upper, "SELECT")
	if idx == -1 {
		return "", ErrNoSelect
	}
	cleaned = cleaned[idx:]

	if end := semicolonIndexOutsideStrings(cleaned); end != -1 {
		cleaned = cleaned[:end]
	}

	cleaned = strings.TrimSpace(cleaned)
	if cleaned == "" {
		return "", ErrNoSelect
	}
	return cleaned, nil
}

// stripCodeFences removes markdown code fences (```sql ... ```) from text.
func stripCodeFences(text string) string {
	var out strings.Builder
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "```") {
			continue
		}
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}
