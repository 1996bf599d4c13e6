package models

// Category is the resolution strategy assigned to a question by the
// request classifier. Exactly one category is assigned per question.
type Category string

const (
	// CategoryDailySchedule lists every game scheduled on a date.
	CategoryDailySchedule Category = "daily_schedule"
	// CategoryDailyResults analyzes every finished game on a date.
	CategoryDailyResults Category = "daily_results_analysis"
	// CategoryGamePrediction predicts the outcome of an upcoming game.
	CategoryGamePrediction Category = "game_prediction"
	// CategoryFutureGameDetail answers starter/lineup/venue questions
	// about an upcoming game.
	CategoryFutureGameDetail Category = "future_game_detail"
	// CategoryGameAnalysis summarizes a single played game.
	CategoryGameAnalysis Category = "game_analysis"
	// CategoryGeneric routes through the pseudo-SQL compiler.
	CategoryGeneric Category = "generic_query"
)

// String implements fmt.Stringer.
func (c Category) String() string { return string(c) }
