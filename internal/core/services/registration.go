package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driving"
	"github.com/nyayvidhi/nyaya/internal/logger"
)

// Ensure RegistrationService implements the interface.
var _ driving.RegistrationService = (*RegistrationService)(nil)

// RegistrationService files new FIRs through a local outbox.
type RegistrationService struct {
	outbox  driven.SubmissionStore
	backend driven.Backend
	now     func() time.Time
	newID   func() string
}

// NewRegistrationService creates a new registration service.
// The backend parameter is optional; without it submissions stay queued.
func NewRegistrationService(outbox driven.SubmissionStore, backend driven.Backend) *RegistrationService {
	return &RegistrationService{
		outbox:  outbox,
		backend: backend,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Validate checks a registration without submitting it.
func (s *RegistrationService) Validate(reg domain.Registration) error {
	return reg.Validate()
}

// Submit validates, records and delivers a registration.
func (s *RegistrationService) Submit(ctx context.Context, reg domain.Registration) (*domain.Submission, error) {
	logger.Section("FIR Registration")
	if err := reg.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	sub := &domain.Submission{
		ID:           s.newID(),
		Registration: reg,
		Status:       domain.SubmissionQueued,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.outbox.Save(ctx, *sub); err != nil {
		return nil, fmt.Errorf("queue submission: %w", err)
	}
	logger.Debug("Queued submission %s", sub.ID)

	return sub, s.deliver(ctx, sub)
}

// Pending lists submissions the backend has not accepted yet.
func (s *RegistrationService) Pending(ctx context.Context) ([]domain.Submission, error) {
	subs, err := s.outbox.ListPending(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending submissions: %w", err)
	}
	return subs, nil
}

// Retry redelivers one pending submission.
func (s *RegistrationService) Retry(ctx context.Context, id string) (*domain.Submission, error) {
	sub, err := s.outbox.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("retry %s: %w", id, err)
	}
	if !sub.IsPending() {
		return sub, fmt.Errorf("%w: submission %s was already accepted", domain.ErrInvalidInput, id)
	}
	return sub, s.deliver(ctx, sub)
}

// deliver posts the submission once and records the outcome in the outbox.
func (s *RegistrationService) deliver(ctx context.Context, sub *domain.Submission) error {
	sub.Attempts++

	var sendErr error
	if s.backend == nil {
		sendErr = domain.ErrBackendUnavailable
	} else {
		sendErr = s.backend.Submit(ctx, *sub)
	}

	sub.UpdatedAt = s.now()
	if sendErr != nil {
		sub.Status = domain.SubmissionFailed
		sub.LastError = sendErr.Error()
		logger.Warn("Submission %s failed: %v", sub.ID, sendErr)
	} else {
		sub.Status = domain.SubmissionSubmitted
		sub.LastError = ""
		logger.Info("Submission %s accepted", sub.ID)
	}

	if err := s.outbox.Save(ctx, *sub); err != nil {
		return fmt.Errorf("record submission %s: %w", sub.ID, err)
	}

	if sendErr != nil {
		if errors.Is(sendErr, domain.ErrBackendUnavailable) {
			return fmt.Errorf("submit %s: %w", sub.ID, sendErr)
		}
		return fmt.Errorf("submit %s: %w: %w", sub.ID, domain.ErrBackendUnavailable, sendErr)
	}
	return nil
}
