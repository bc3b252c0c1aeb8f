// Package redact provides utilities for redacting sensitive information from strings
// before they are logged or returned in error responses. Generated video URIs embed
// the caller's API key and provider errors may echo request fragments, so every error
// string that leaves the gateway passes through this package first.
package redact

import (
	"regexp"
	"sync"
)

// Constants for redaction placeholders
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedTokenPlaceholder      = "[REDACTED_TOKEN]"
	RedactedDataPlaceholder       = "[REDACTED_DATA]"
)

type rule struct {
	pattern     *regexp.Regexp
	replacement string
}

var (
	// Order matters: query parameters are handled before the generic key=value rule
	// so the surrounding URL survives for debugging.
	rules = []rule{
		{
			pattern:     regexp.MustCompile(`(?i)([?&](?:key|api_key|access_token)=)[^&\s"']+`),
			replacement: "${1}" + RedactedKeyPlaceholder,
		},
		{
			pattern:     regexp.MustCompile(`AIza[0-9A-Za-z_\-]{35}`),
			replacement: RedactedKeyPlaceholder,
		},
		{
			pattern:     regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/=]{8,}`),
			replacement: "Bearer " + RedactedTokenPlaceholder,
		},
		{
			pattern: regexp.MustCompile(
				`(?i)(api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
			),
			replacement: RedactedKeyPlaceholder,
		},
		{
			pattern:     regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`),
			replacement: RedactedCredentialPlaceholder,
		},
		{
			pattern:     regexp.MustCompile(`data:([a-z]+/[a-z0-9.+-]+);base64,[A-Za-z0-9+/=]+`),
			replacement: "data:${1};base64," + RedactedDataPlaceholder,
		},
		{
			pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
			replacement: "[REDACTED_EMAIL]",
		},
		{
			pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
			replacement: "[STACK_TRACE_REDACTED]",
		},
	}

	mu sync.RWMutex
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	mu.RLock()
	defer mu.RUnlock()

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.replacement)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}
