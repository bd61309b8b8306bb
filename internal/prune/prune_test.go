package prune_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akbarovs/uybaho/internal/prune"
	"github.com/akbarovs/uybaho/internal/store"
	domain "github.com/akbarovs/uybaho/pkg/types"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewScheduler_RegistersCronEntry(t *testing.T) {
	t.Parallel()

	sched, err := prune.NewScheduler(
		store.NewMemoryStore(10),
		time.Hour,
		24*time.Hour,
		quietLogger(),
	)
	require.NoError(t, err)
	assert.Len(t, sched.Entries(), 1)
}

func TestScheduler_StartStop(t *testing.T) {
	t.Parallel()

	sched, err := prune.NewScheduler(
		store.NewMemoryStore(10),
		time.Hour,
		24*time.Hour,
		quietLogger(),
	)
	require.NoError(t, err)

	sched.Start()
	ctx := sched.Stop()
	<-ctx.Done()
}

func TestScheduler_PruneRemovesStale(t *testing.T) {
	t.Parallel()

	now := time.Now()
	clock := now.Add(-48 * time.Hour)
	ms := store.NewMemoryStore(10, store.WithMemoryNowFunc(func() time.Time {
		return clock
	}))

	// One stale entry, one fresh one.
	stale := domain.SavedProperty{ID: "stale", Listing: domain.Listing{City: "Toshkent"}}
	require.NoError(t, ms.SaveProperty(context.Background(), &stale))

	clock = now
	fresh := domain.SavedProperty{ID: "fresh", Listing: domain.Listing{City: "Samarqand"}}
	require.NoError(t, ms.SaveProperty(context.Background(), &fresh))

	sched, err := prune.NewScheduler(ms, time.Hour, 24*time.Hour, quietLogger())
	require.NoError(t, err)

	require.NoError(t, sched.Prune(context.Background()))

	saved, err := ms.ListSaved(context.Background())
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, "fresh", saved[0].ID)
}

func TestScheduler_PruneEmptyStore(t *testing.T) {
	t.Parallel()

	sched, err := prune.NewScheduler(
		store.NewMemoryStore(10),
		time.Hour,
		24*time.Hour,
		quietLogger(),
	)
	require.NoError(t, err)
	require.NoError(t, sched.Prune(context.Background()))
}
