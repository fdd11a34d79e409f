package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nyayvidhi/nyaya/internal/core/domain"
)

func TestFIRStore_SeedGetList(t *testing.T) {
	ctx := context.Background()
	store := NewFIRStore(
		domain.FIR{ID: "FIR2025002", Status: domain.FIRInProgress},
		domain.FIR{ID: "FIR2025001", Status: domain.FIRPending},
	)

	fir, err := store.Get(ctx, "FIR2025001")
	require.NoError(t, err)
	assert.Equal(t, domain.FIRPending, fir.Status)

	all, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "FIR2025001", all[0].ID)
	assert.Equal(t, "FIR2025002", all[1].ID)
}

func TestFIRStore_GetMissing(t *testing.T) {
	_, err := NewFIRStore().Get(context.Background(), "FIR2025999")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestFIRStore_SaveUpdates(t *testing.T) {
	ctx := context.Background()
	store := NewFIRStore(domain.FIR{ID: "FIR2025001", Status: domain.FIRPending})

	require.NoError(t, store.Save(ctx, domain.FIR{ID: "FIR2025001", Status: domain.FIRClosed}))

	fir, err := store.Get(ctx, "FIR2025001")
	require.NoError(t, err)
	assert.Equal(t, domain.FIRClosed, fir.Status)
}

func TestFIRStore_GetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	store := NewFIRStore(domain.FIR{ID: "FIR2025001", Station: "Central"})

	fir, _ := store.Get(ctx, "FIR2025001")
	fir.Station = "changed"

	again, _ := store.Get(ctx, "FIR2025001")
	assert.Equal(t, "Central", again.Station)
}
