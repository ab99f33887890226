package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
)

// Message roles accepted on the wire and sent upstream.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message represents one conversation turn.
type Message struct {
	Role    string
	Content string
}

// Client requests streaming chat completions from the upstream provider.
type Client interface {
	// StreamChat opens a streaming completion for the given message list.
	// The returned stream is lazy: the upstream request is issued on the
	// first Next call, and request errors surface through Err.
	StreamChat(ctx context.Context, messages []Message) (Stream, error)
	Model() string
}

// Stream is an open handle to an incremental completion.
type Stream interface {
	// Next advances to the next non-empty text fragment, returning false
	// on completion or failure. Check Err after Next returns false.
	Next() bool
	// Text returns the current fragment.
	Text() string
	Err() error
	Close() error
}

// ErrorKind classifies upstream failures for logging and HTTP mapping.
// Provider internals are never exposed to the caller.
type ErrorKind string

const (
	ErrorKindAuth      ErrorKind = "auth"
	ErrorKindRateLimit ErrorKind = "rate_limit"
	ErrorKindTimeout   ErrorKind = "timeout"
	ErrorKindUpstream  ErrorKind = "upstream"
	ErrorKindNetwork   ErrorKind = "network"
)

// Classify maps an upstream error to its failure kind.
func Classify(err error) ErrorKind {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return ErrorKindTimeout
	}

	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == 401 || apiErr.StatusCode == 403:
			return ErrorKindAuth
		case apiErr.StatusCode == 429:
			return ErrorKindRateLimit
		default:
			return ErrorKindUpstream
		}
	}

	// No API response at all
	return ErrorKindNetwork
}
