package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/dugoutlabs/kbochat-engine/pkg/models"
)

// AnswerSystemMessage is the system message for answer rendering.
const AnswerSystemMessage = "You are a friendly Korean baseball assistant. " +
	"Answer in Korean, concisely, using only the data provided. " +
	"Never invent statistics that are not in the data."

// BuildAnswerPrompt creates the answer-rendering prompt from the
// question and its result rows.
func BuildAnswerPrompt(question string, rows []models.Row) string {
	var b strings.Builder

	b.WriteString("## Question\n")
	b.WriteString(question)
	b.WriteString("\n\n## Data\n")

	for i, row := range rows {
		data, err := json.Marshal(row)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "%d. %s\n", i+1, data)
	}
	if len(rows) == 0 {
		b.WriteString("(no rows)\n")
	}

	b.WriteString("\nAnswer the question from this data only.\n")

	return b.String()
}
