package models

// Answer is the engine's result for one question: either a ranked row
// list headed for the answer renderer, or pre-rendered text from a
// specialized handler. Exactly one of Rows/Text is meaningful.
type Answer struct {
	Category Category
	Text     string
	Rows     []Row
}

// Rendered reports whether the answer already carries final text.
func (a Answer) Rendered() bool { return a.Text != "" }
