package chat

import (
	"context"
	"fmt"
	"log/slog"

	"ashara.health/site/common/logger"
	"ashara.health/site/core/config"
	"ashara.health/site/internal/llm"
)

// Service opens upstream completion streams for caller-supplied transcripts.
type Service interface {
	// Stream prepends the system prompt and opens a completion stream for
	// the resulting message list. The caller owns the returned stream and
	// must close it.
	Stream(ctx context.Context, history []llm.Message) (llm.Stream, error)
	Model() string
}

type service struct {
	client llm.Client
	system llm.Message
}

func NewService(client llm.Client, practice config.PracticeConfig) Service {
	return &service{
		client: client,
		// Composed once; identical for every request in this deployment
		system: ComposeSystemPrompt(practice),
	}
}

func (s *service) Stream(ctx context.Context, history []llm.Message) (llm.Stream, error) {
	sc := logger.StartSpan(ctx, "chat.stream")
	defer sc.End()
	ctx = sc.Context()

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		MessageCount: logger.Ptr(len(history)),
		Model:        logger.Ptr(s.client.Model()),
		Component:    "site.chat",
	})

	// The system prompt is always first and never part of the stored
	// transcript; it is re-injected here on every call.
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, s.system)
	messages = append(messages, history...)

	stream, err := s.client.StreamChat(ctx, messages)
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "failed to open completion stream", "error", err, "kind", llm.Classify(err))
		return nil, fmt.Errorf("open completion stream: %w", err)
	}

	return stream, nil
}

func (s *service) Model() string {
	return s.client.Model()
}
