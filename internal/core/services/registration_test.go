package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayvidhi/nyaya/internal/adapters/driven/storage/memory"
	"github.com/nyayvidhi/nyaya/internal/core/domain"
	"github.com/nyayvidhi/nyaya/internal/core/ports/driven"
)

func testRegistration() domain.Registration {
	return domain.Registration{
		FullName:         "Ravi Kumar",
		FatherName:       "Suresh Kumar",
		Age:              42,
		Gender:           domain.GenderMale,
		Address:          "4 Civil Lines, Amritsar",
		Phone:            "9876543210",
		IncidentDate:     "2025-02-01",
		IncidentTime:     "02:30",
		IncidentLocation: "Hall Bazaar",
		IncidentType:     "theft",
		PoliceStation:    "Civil Lines Police Station, Amritsar",
		Description:      "Shop shutter broken and cash stolen",
		Documents:        []string{"cctv.jpg"},
	}
}

func newTestRegistrationService(backend driven.Backend) (*RegistrationService, *memory.SubmissionStore) {
	outbox := memory.NewSubmissionStore()
	svc := NewRegistrationService(outbox, backend)
	clock := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	n := 0
	svc.newID = func() string {
		n++
		return []string{"sub-1", "sub-2", "sub-3"}[n-1]
	}
	return svc, outbox
}

func TestRegistrationService_Submit_Success(t *testing.T) {
	backend := &mockBackend{}
	svc, outbox := newTestRegistrationService(backend)
	ctx := context.Background()

	sub, err := svc.Submit(ctx, testRegistration())
	require.NoError(t, err)
	assert.Equal(t, "sub-1", sub.ID)
	assert.Equal(t, domain.SubmissionSubmitted, sub.Status)
	assert.Equal(t, 1, sub.Attempts)

	require.Len(t, backend.submitted, 1)
	assert.Equal(t, "Ravi Kumar", backend.submitted[0].Registration.FullName)

	stored, err := outbox.Get(ctx, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionSubmitted, stored.Status)

	pending, err := svc.Pending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestRegistrationService_Submit_InvalidNeverQueued(t *testing.T) {
	svc, outbox := newTestRegistrationService(&mockBackend{})
	reg := testRegistration()
	reg.Age = 0

	_, err := svc.Submit(context.Background(), reg)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	pending, _ := outbox.ListPending(context.Background())
	assert.Empty(t, pending)
}

func TestRegistrationService_Submit_BackendFailureKeepsOutboxEntry(t *testing.T) {
	backend := &mockBackend{submitErr: errors.New("connection refused")}
	svc, _ := newTestRegistrationService(backend)
	ctx := context.Background()

	sub, err := svc.Submit(ctx, testRegistration())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
	require.NotNil(t, sub)
	assert.Equal(t, domain.SubmissionFailed, sub.Status)

	pending, err := svc.Pending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "connection refused", pending[0].LastError)
}

func TestRegistrationService_Submit_NoBackend(t *testing.T) {
	svc, _ := newTestRegistrationService(nil)

	sub, err := svc.Submit(context.Background(), testRegistration())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.Equal(t, domain.SubmissionFailed, sub.Status)
}

func TestRegistrationService_Retry(t *testing.T) {
	backend := &mockBackend{submitErr: errors.New("503")}
	svc, _ := newTestRegistrationService(backend)
	ctx := context.Background()

	sub, err := svc.Submit(ctx, testRegistration())
	require.Error(t, err)

	backend.submitErr = nil
	retried, err := svc.Retry(ctx, sub.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.SubmissionSubmitted, retried.Status)
	assert.Equal(t, 2, retried.Attempts)
	assert.Empty(t, retried.LastError)
	assert.True(t, retried.UpdatedAt.After(retried.CreatedAt))

	_, err = svc.Retry(ctx, sub.ID)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestRegistrationService_RetryUnknown(t *testing.T) {
	svc, _ := newTestRegistrationService(&mockBackend{})

	_, err := svc.Retry(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRegistrationService_Validate(t *testing.T) {
	svc, _ := newTestRegistrationService(nil)

	assert.NoError(t, svc.Validate(testRegistration()))
	assert.ErrorIs(t, svc.Validate(domain.Registration{}), domain.ErrInvalidInput)
}
