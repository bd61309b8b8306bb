package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbarovs/uybaho/internal/store"
	domain "github.com/akbarovs/uybaho/pkg/types"
)

func testSaved() *domain.SavedProperty {
	return &domain.SavedProperty{
		ID: uuid.NewString(),
		Listing: domain.Listing{
			Transaction:  domain.TransactionSale,
			Price:        112800,
			Area:         100,
			City:         "Toshkent",
			District:     "Chilonzor",
			Rooms:        3,
			Floor:        4,
			TotalFloors:  9,
			PropertyType: domain.PropertyApartment,
			Condition:    domain.ConditionGood,
			YearBuilt:    2015,
			Description:  "Yaxshi holatdagi kvartira.",
		},
		Analysis: domain.Analysis{
			Score:       7.2,
			Verdict:     domain.VerdictUnderpriced,
			Explanation: "Narx bozor darajasidan past.",
		},
	}
}

func TestMemoryStore_SaveAndGet(t *testing.T) {
	t.Parallel()

	m := store.NewMemoryStore(10)
	ctx := context.Background()

	sp := testSaved()
	require.NoError(t, m.SaveProperty(ctx, sp))
	assert.False(t, sp.CreatedAt.IsZero())

	got, err := m.GetSaved(ctx, sp.ID)
	require.NoError(t, err)
	assert.Equal(t, sp.Listing, got.Listing)
	assert.Equal(t, sp.Analysis.Score, got.Analysis.Score)
}

func TestMemoryStore_GetMissing(t *testing.T) {
	t.Parallel()

	m := store.NewMemoryStore(10)
	_, err := m.GetSaved(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestMemoryStore_CapEnforced(t *testing.T) {
	t.Parallel()

	m := store.NewMemoryStore(3)
	ctx := context.Background()

	for range 3 {
		require.NoError(t, m.SaveProperty(ctx, testSaved()))
	}

	err := m.SaveProperty(ctx, testSaved())
	assert.ErrorIs(t, err, store.ErrLimitReached)

	count, err := m.CountSaved(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestMemoryStore_DeleteFreesCapacity(t *testing.T) {
	t.Parallel()

	m := store.NewMemoryStore(1)
	ctx := context.Background()

	sp := testSaved()
	require.NoError(t, m.SaveProperty(ctx, sp))
	require.ErrorIs(t, m.SaveProperty(ctx, testSaved()), store.ErrLimitReached)

	require.NoError(t, m.DeleteSaved(ctx, sp.ID))
	assert.NoError(t, m.SaveProperty(ctx, testSaved()))
}

func TestMemoryStore_DeleteMissing(t *testing.T) {
	t.Parallel()

	m := store.NewMemoryStore(10)
	assert.ErrorIs(t, m.DeleteSaved(context.Background(), "nope"), store.ErrNotFound)
}

func TestMemoryStore_ListNewestFirst(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)
	clock := now
	m := store.NewMemoryStore(10, store.WithMemoryNowFunc(func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}))
	ctx := context.Background()

	first := testSaved()
	second := testSaved()
	require.NoError(t, m.SaveProperty(ctx, first))
	require.NoError(t, m.SaveProperty(ctx, second))

	saved, err := m.ListSaved(ctx)
	require.NoError(t, err)
	require.Len(t, saved, 2)
	assert.Equal(t, second.ID, saved[0].ID)
	assert.Equal(t, first.ID, saved[1].ID)
}

func TestMemoryStore_DeleteOlderThan(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.August, 26, 12, 0, 0, 0, time.UTC)
	timestamps := []time.Time{
		now.Add(-48 * time.Hour),
		now.Add(-36 * time.Hour),
		now.Add(-1 * time.Hour),
	}
	i := 0
	m := store.NewMemoryStore(10, store.WithMemoryNowFunc(func() time.Time {
		ts := timestamps[i]
		i++
		return ts
	}))
	ctx := context.Background()

	for range timestamps {
		require.NoError(t, m.SaveProperty(ctx, testSaved()))
	}

	removed, err := m.DeleteOlderThan(ctx, now.Add(-24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	count, err := m.CountSaved(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
