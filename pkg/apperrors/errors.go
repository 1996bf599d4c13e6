package apperrors

import "errors"

var (
	// ErrCompile indicates the LLM-authored pseudo-SQL was not a single
	// well-formed SELECT statement and could not be compiled.
	ErrCompile = errors.New("pseudo-SQL could not be compiled")

	// ErrUnsupportedTable indicates the FROM clause named a table the
	// remote store does not expose. The table is never guessed.
	ErrUnsupportedTable = errors.New("unsupported table")

	// ErrDataUnavailable indicates a remote call failed or timed out.
	ErrDataUnavailable = errors.New("data unavailable")

	// ErrNoMatchingRows indicates a valid query produced an empty result.
	ErrNoMatchingRows = errors.New("no matching rows")
)
