package handler_test

import (
	"context"
	"time"

	"ashara.health/site/internal/availability"
	"ashara.health/site/internal/contact"
	"ashara.health/site/internal/llm"
)

type scriptedStream struct {
	chunks   []string
	pos      int
	finalErr error
	closed   bool
}

func (s *scriptedStream) Next() bool {
	if s.pos < len(s.chunks) {
		s.pos++
		return true
	}
	return false
}

func (s *scriptedStream) Text() string { return s.chunks[s.pos-1] }
func (s *scriptedStream) Err() error   { return s.finalErr }
func (s *scriptedStream) Close() error { s.closed = true; return nil }

type mockChatService struct {
	streamFn func(ctx context.Context, history []llm.Message) (llm.Stream, error)
	model    string
}

func (m *mockChatService) Stream(ctx context.Context, history []llm.Message) (llm.Stream, error) {
	if m.streamFn != nil {
		return m.streamFn(ctx, history)
	}
	return &scriptedStream{}, nil
}

func (m *mockChatService) Model() string {
	if m.model != "" {
		return m.model
	}
	return "test-model"
}

type mockDeliverer struct {
	deliverFn func(ctx context.Context, submissionID int64, s contact.Submission) error
}

func (m *mockDeliverer) Deliver(ctx context.Context, submissionID int64, s contact.Submission) error {
	if m.deliverFn != nil {
		return m.deliverFn(ctx, submissionID, s)
	}
	return nil
}

type mockProvider struct {
	slotsFn func(ctx context.Context, from time.Time, days int) (map[string][]availability.Slot, error)
}

func (m *mockProvider) Slots(ctx context.Context, from time.Time, days int) (map[string][]availability.Slot, error) {
	if m.slotsFn != nil {
		return m.slotsFn(ctx, from, days)
	}
	return map[string][]availability.Slot{}, nil
}
