package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docsift/docsift/internal/core/domain"
)

func record(id string, createdAt time.Time) domain.ReportRecord {
	return domain.ReportRecord{
		ID:            id,
		CreatedAt:     createdAt,
		Persona:       "Researcher",
		Task:          "Summarise methods",
		DocumentCount: 1,
	}
}

func TestReportStore_SaveAndGet(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, record("run-1", time.Now())))

	got, err := store.Get(ctx, "run-1")
	require.NoError(t, err)
	assert.Equal(t, "Researcher", got.Persona)
}

func TestReportStore_GetMissing(t *testing.T) {
	store := NewReportStore()

	_, err := store.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestReportStore_ListNewestFirst(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, record("run-a", base)))
	require.NoError(t, store.Save(ctx, record("run-b", base.Add(time.Minute))))
	require.NoError(t, store.Save(ctx, record("run-c", base.Add(2*time.Minute))))

	records, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "run-c", records[0].ID)
	assert.Equal(t, "run-a", records[2].ID)

	limited, err := store.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestReportStore_ListBreaksTiesByID(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Save(ctx, record("run-b", at)))
	require.NoError(t, store.Save(ctx, record("run-a", at)))

	records, err := store.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "run-a", records[0].ID)
	assert.Equal(t, "run-b", records[1].ID)
}

func TestReportStore_Delete(t *testing.T) {
	store := NewReportStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, record("run-1", time.Now())))
	require.NoError(t, store.Delete(ctx, "run-1"))

	_, err := store.Get(ctx, "run-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "run-1"), domain.ErrNotFound)
}
