package logging

import (
	"regexp"
)

const (
	// MaxQueryLogLength is the maximum length of a question or query to log
	MaxQueryLogLength = 200
	// RedactedText is the replacement text for sensitive data
	RedactedText = "[REDACTED]"
)

var (
	// Pattern to match JWT-style bearer tokens
	jwtPattern = regexp.MustCompile(`Bearer\s+[A-Za-z0-9-_]+\.[A-Za-z0-9-_]+\.[A-Za-z0-9-_]*`)

	// Pattern to match API keys passed as query or header values
	apiKeyPattern = regexp.MustCompile(`(?i)(api[_-]?key|apikey|key)=[A-Za-z0-9-_]{20,}`)

	// Pattern to match URL credentials (user:pass@host format)
	credentialPattern = regexp.MustCompile(`://[^:/\s]+:[^@\s]+@[^/\s]+`)
)

// SanitizeError sanitizes error messages that might carry credentials,
// such as errors bubbled up from the store or LLM HTTP clients.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	sanitized := jwtPattern.ReplaceAllString(err.Error(), "Bearer "+RedactedText)
	sanitized = apiKeyPattern.ReplaceAllString(sanitized, "${1}="+RedactedText)
	sanitized = credentialPattern.ReplaceAllString(sanitized, "://"+RedactedText+"@"+RedactedText)

	return sanitized
}

// SanitizeQuery truncates a question or generated query for logging and
// strips anything that looks like a key.
func SanitizeQuery(query string) string {
	if query == "" {
		return ""
	}

	sanitized := query
	if len(sanitized) > MaxQueryLogLength {
		sanitized = sanitized[:MaxQueryLogLength] + "..."
	}

	return apiKeyPattern.ReplaceAllString(sanitized, "${1}="+RedactedText)
}

// MaskKey returns a loggable form of an API key: the first four
// characters followed by an ellipsis, or [REDACTED] for short keys.
func MaskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return RedactedText
	}
	return key[:4] + "..."
}
