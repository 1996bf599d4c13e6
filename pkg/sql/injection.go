package sql

import (
	libinjection "github.com/corazawaf/libinjection-go"
)

// InjectionCheckResult contains the result of an injection check on a literal value.
type InjectionCheckResult struct {
	IsSQLi      bool   // True if SQL injection pattern detected
	Fingerprint string // libinjection fingerprint of the detected pattern
	Column      string // Column whose literal failed the check
	Value       string // The value that was checked
}

// CheckLiteral uses libinjection to detect SQL injection patterns in a
// WHERE-clause literal before it is forwarded to the remote store as a
// filter value.
//
// Returns nil if no injection is detected.
func CheckLiteral(column, value string) *InjectionCheckResult {
	isSQLi, fingerprint := libinjection.IsSQLi(value)
	if isSQLi {
		return &InjectionCheckResult{
			IsSQLi:      true,
			Fingerprint: string(fingerprint),
			Column:      column,
			Value:       value,
		}
	}

	return nil
}

// CheckLiterals validates every predicate literal of a parsed query.
// Returns one result per literal that failed the check, or an empty
// slice when all literals are clean.
func CheckLiterals(literals map[string][]string) []*InjectionCheckResult {
	var results []*InjectionCheckResult
	for column, values := range literals {
		for _, value := range values {
			if result := CheckLiteral(column, value); result != nil {
				results = append(results, result)
			}
		}
	}
	return results
}
