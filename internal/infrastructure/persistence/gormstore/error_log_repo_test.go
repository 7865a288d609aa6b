package gormstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	"github.com/tagpoint/rfid-admin/pkg/constants"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

func newErrorLogRepo(t *testing.T) repository.ErrorLogRepository {
	t.Helper()
	return NewErrorLogRepository(newTestDB(t), logger.NewNop())
}

func TestErrorLogCreate_DefaultsTenant(t *testing.T) {
	repo := newErrorLogRepo(t)

	entry := &models.ErrorLog{
		ErrorType:    constants.ErrorTypeMQTTParse,
		ErrorMessage: "unparseable payload",
		RawData:      `{"uid":`,
	}
	require.NoError(t, repo.Create(context.Background(), entry))
	assert.NotZero(t, entry.ID)
	assert.Equal(t, uint(1), entry.TenantID)
}

func TestErrorLogList_Filters(t *testing.T) {
	repo := newErrorLogRepo(t)
	ctx := context.Background()

	old := time.Now().UTC().Add(-72 * time.Hour)
	entries := []*models.ErrorLog{
		{TenantID: 1, ErrorType: constants.ErrorTypeUnknownCard, ErrorMessage: "scan from unregistered card"},
		{TenantID: 1, ErrorType: constants.ErrorTypeUnknownCard, ErrorMessage: "scan from unregistered card", Resolved: true},
		{TenantID: 1, ErrorType: constants.ErrorTypeDatabase, ErrorMessage: "insert failed", CreatedAt: old},
		{TenantID: 2, ErrorType: constants.ErrorTypeValidation, ErrorMessage: "bad reader id"},
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
	}

	tenant1 := uint(1)
	got, total, err := repo.List(ctx, repository.ErrorLogFilter{TenantID: &tenant1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Len(t, got, 3)

	unresolved := false
	got, total, err = repo.List(ctx, repository.ErrorLogFilter{TenantID: &tenant1, Resolved: &unresolved})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	unknownCard := constants.ErrorTypeUnknownCard
	_, total, err = repo.List(ctx, repository.ErrorLogFilter{ErrorType: &unknownCard})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// A lone start bound applies on its own, unlike the access-event range.
	since := time.Now().UTC().Add(-24 * time.Hour)
	got, total, err = repo.List(ctx, repository.ErrorLogFilter{TenantID: &tenant1, StartDate: &since})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, e := range got {
		assert.True(t, e.CreatedAt.After(since.Add(-time.Second)))
	}
}

func TestErrorLogStats(t *testing.T) {
	repo := newErrorLogRepo(t)
	ctx := context.Background()

	old := time.Now().UTC().Add(-48 * time.Hour)
	entries := []*models.ErrorLog{
		{TenantID: 1, ErrorType: constants.ErrorTypeUnknownCard, ErrorMessage: "a"},
		{TenantID: 1, ErrorType: constants.ErrorTypeUnknownCard, ErrorMessage: "b", Resolved: true},
		{TenantID: 1, ErrorType: constants.ErrorTypeDatabase, ErrorMessage: "c", CreatedAt: old},
		{TenantID: 2, ErrorType: constants.ErrorTypeGeneral, ErrorMessage: "other tenant"},
	}
	for _, e := range entries {
		require.NoError(t, repo.Create(ctx, e))
	}

	stats, err := repo.Stats(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Total)
	assert.Equal(t, int64(1), stats.Resolved)
	assert.Equal(t, int64(2), stats.Unresolved)
	assert.Equal(t, int64(2), stats.ByType[constants.ErrorTypeUnknownCard])
	assert.Equal(t, int64(1), stats.ByType[constants.ErrorTypeDatabase])
	assert.Equal(t, int64(2), stats.RecentCount)

	// Types with no entries still appear, at zero.
	assert.Len(t, stats.ByType, len(constants.ErrorLogTypes))
	count, ok := stats.ByType[constants.ErrorTypeMQTTParse]
	assert.True(t, ok)
	assert.Zero(t, count)
}

func TestErrorLogResolve(t *testing.T) {
	repo := newErrorLogRepo(t)
	ctx := context.Background()

	entry := &models.ErrorLog{TenantID: 1, ErrorType: constants.ErrorTypeUnknownReader, ErrorMessage: "scan from unknown reader"}
	require.NoError(t, repo.Create(ctx, entry))

	at := time.Now().UTC().Truncate(time.Second)
	affected, err := repo.Resolve(ctx, entry.ID, "admin", "registered the reader", at)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.FindByID(ctx, entry.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Resolved)
	assert.Equal(t, "admin", got.ResolvedBy)
	assert.Equal(t, "registered the reader", got.ResolutionNotes)
	require.NotNil(t, got.ResolvedAt)

	// Resolving twice is a no-op.
	affected, err = repo.Resolve(ctx, entry.ID, "admin", "again", at)
	require.NoError(t, err)
	assert.Zero(t, affected)

	affected, err = repo.Resolve(ctx, 9999, "admin", "missing", at)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestErrorLogDelete(t *testing.T) {
	repo := newErrorLogRepo(t)
	ctx := context.Background()

	entry := &models.ErrorLog{TenantID: 1, ErrorType: constants.ErrorTypeGeneral, ErrorMessage: "x"}
	require.NoError(t, repo.Create(ctx, entry))

	affected, err := repo.Delete(ctx, entry.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, err := repo.FindByID(ctx, entry.ID)
	require.NoError(t, err)
	assert.Nil(t, got)
}
