package logger

import (
	"context"
	"unicode/utf8"
)

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within
// a context. Fields flow through context enrichment so handlers and services
// do not need to repeat them on every log statement.
type LogFields struct {
	SubmissionID *int64  // Contact submission ID
	MessageCount *int    // Number of transcript messages on a chat request
	Model        *string // Upstream model serving the request
	Component    string  // Component name (e.g. "site.chat.relay")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking
// precedence. Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	merged := mergeFields(GetLogFields(ctx), fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.SubmissionID != nil {
		result.SubmissionID = next.SubmissionID
	}
	if next.MessageCount != nil {
		result.MessageCount = next.MessageCount
	}
	if next.Model != nil {
		result.Model = next.Model
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value, for setting LogFields
// inline: logger.WithLogFields(ctx, logger.LogFields{MessageCount: logger.Ptr(n)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to at most maxLen bytes, appending "..." if
// truncated. The cut backs off to a rune boundary so log output stays valid
// UTF-8. Useful for logging potentially long strings like chat content.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
