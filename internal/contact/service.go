package contact

import (
	"context"
	"fmt"
	"log/slog"

	"ashara.health/site/common/id"
	"ashara.health/site/common/logger"
)

// Deliverer hands an accepted submission to whatever sits behind the gate
// (email, CRM, database). Nothing is wired in this deployment; LogDeliverer
// is the stand-in until a real collaborator exists.
type Deliverer interface {
	Deliver(ctx context.Context, submissionID int64, s Submission) error
}

// ErrValidation wraps the per-field error map so callers can distinguish
// rejected input from delivery failures.
type ErrValidation struct {
	Fields map[string]string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation failed for %d field(s)", len(e.Fields))
}

// Service validates and forwards contact submissions.
type Service interface {
	Submit(ctx context.Context, s Submission) error
}

type service struct {
	deliverer Deliverer
}

func NewService(deliverer Deliverer) Service {
	return &service{deliverer: deliverer}
}

func (s *service) Submit(ctx context.Context, sub Submission) error {
	if fields := Validate(sub); fields != nil {
		return &ErrValidation{Fields: fields}
	}

	submissionID := id.New()
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SubmissionID: logger.Ptr(submissionID),
		Component:    "site.contact",
	})

	if err := s.deliverer.Deliver(ctx, submissionID, sub); err != nil {
		return fmt.Errorf("deliver submission: %w", err)
	}

	slog.InfoContext(ctx, "contact submission accepted", "email", sub.Email)
	return nil
}

// LogDeliverer acknowledges submissions in the log and nothing else.
type LogDeliverer struct{}

func (LogDeliverer) Deliver(ctx context.Context, submissionID int64, s Submission) error {
	slog.InfoContext(ctx, "contact submission received",
		"name", s.Name,
		"email", s.Email,
		"phone", s.Phone,
		"message", logger.Truncate(s.Message, 200))
	return nil
}
