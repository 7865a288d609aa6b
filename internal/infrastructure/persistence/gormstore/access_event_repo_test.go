package gormstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagpoint/rfid-admin/internal/domain/repository"
	"github.com/tagpoint/rfid-admin/pkg/logger"
)

func newEventRepo(t *testing.T) (repository.AccessEventRepository, fixture) {
	t.Helper()
	db := newTestDB(t)
	f := seedEvents(t, db)
	return NewAccessEventRepository(db, logger.NewNop()), f
}

func TestAccessEventList_NoFilter(t *testing.T) {
	repo, f := newEventRepo(t)

	events, total, err := repo.List(context.Background(), repository.EventFilter{Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	require.Len(t, events, 6)

	// Most recent first; e1 and e2 share a timestamp so the higher ID wins.
	assert.Equal(t, f.events[5].ID, events[0].ID)
	assert.Equal(t, f.events[4].ID, events[1].ID)
	assert.Equal(t, f.events[3].ID, events[2].ID)
	assert.Equal(t, f.events[2].ID, events[3].ID)
	assert.Equal(t, f.events[1].ID, events[4].ID)
	assert.Equal(t, f.events[0].ID, events[5].ID)
}

func TestAccessEventList_ConjunctiveFilters(t *testing.T) {
	repo, f := newEventRepo(t)

	events, total, err := repo.List(context.Background(), repository.EventFilter{
		TenantID:      &f.tenant1.ID,
		ReaderID:      "R-GATE-1",
		AccessGranted: boolPtr(false),
		Limit:         10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, f.tenant1.ID, e.TenantID)
		assert.Equal(t, "R-GATE-1", e.ReaderID)
		assert.False(t, e.IsAuthorized)
	}
}

func TestAccessEventList_CardTypeExcludesUnregistered(t *testing.T) {
	repo, f := newEventRepo(t)

	// Only the CARD-V event carries a registered vehicle card; the scan from
	// the unregistered UNKNOWN-9 card must not appear under any card type.
	events, total, err := repo.List(context.Background(), repository.EventFilter{
		CardType: "vehicle",
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, events, 1)
	assert.Equal(t, f.events[2].ID, events[0].ID)

	_, total, err = repo.List(context.Background(), repository.EventFilter{
		CardType: "visitor",
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestAccessEventList_DateRangeNeedsBothBounds(t *testing.T) {
	repo, f := newEventRepo(t)

	from := f.base.Add(30 * time.Minute)
	to := f.base.Add(150 * time.Minute)

	events, total, err := repo.List(context.Background(), repository.EventFilter{
		DateFrom: &from,
		DateTo:   &to,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, events, 1)
	assert.Equal(t, f.events[2].ID, events[0].ID)

	// A single bound is ignored entirely.
	_, total, err = repo.List(context.Background(), repository.EventFilter{
		DateFrom: &from,
		Limit:    10,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
}

func TestAccessEventList_Search(t *testing.T) {
	repo, _ := newEventRepo(t)

	cases := []struct {
		name   string
		search string
		total  int64
	}{
		{"staff last name, case-insensitive", "jOhNsOn", 4},
		{"license plate prefix", "ka01", 1},
		{"reader display name", "main gate", 5},
		{"raw card uid", "unknown-9", 1},
		{"no match", "cromulent", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, total, err := repo.List(context.Background(), repository.EventFilter{
				Search: tc.search,
				Limit:  10,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.total, total)
		})
	}
}

func TestAccessEventList_PaginationAndPreloads(t *testing.T) {
	repo, f := newEventRepo(t)

	events, total, err := repo.List(context.Background(), repository.EventFilter{
		TenantID: &f.tenant1.ID,
		Limit:    2,
		Offset:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, events, 2)
	// Tenant-1 order is e6, e4, e3, e2, e1; page two holds e3 and e2.
	assert.Equal(t, f.events[2].ID, events[0].ID)
	assert.Equal(t, f.events[1].ID, events[1].ID)

	// e3 resolves to the registered vehicle card and the dock reader.
	require.NotNil(t, events[0].Card)
	assert.Equal(t, "CARD-V", events[0].Card.CardUID)
	require.NotNil(t, events[0].Card.Vehicle)
	assert.Equal(t, "KA01AB1234", events[0].Card.Vehicle.LicensePlate)
	require.NotNil(t, events[0].Reader)
	assert.Equal(t, "Loading Dock", events[0].Reader.Name)
}

func TestAccessEventList_UnknownCardStaysNil(t *testing.T) {
	repo, _ := newEventRepo(t)

	events, _, err := repo.List(context.Background(), repository.EventFilter{
		CardUID: "UNKNOWN-9",
		Limit:   10,
	})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Nil(t, events[0].Card)
	assert.Equal(t, "UNKNOWN-9", events[0].CardUID)
}

func TestAccessEventCount_MatchesListTotal(t *testing.T) {
	repo, f := newEventRepo(t)

	filter := repository.EventFilter{TenantID: &f.tenant1.ID}
	count, err := repo.Count(context.Background(), filter)
	require.NoError(t, err)

	_, total, err := repo.List(context.Background(), filter.WithAccessGranted(true))
	require.NoError(t, err)

	assert.Equal(t, int64(5), count)
	assert.Equal(t, int64(3), total)
}

func TestAccessEventCountDistinctCards(t *testing.T) {
	repo, f := newEventRepo(t)

	count, err := repo.CountDistinctCards(context.Background(), repository.EventFilter{
		TenantID: &f.tenant1.ID,
	})
	require.NoError(t, err)
	// CARD-A, CARD-V, and the unregistered UNKNOWN-9 all count.
	assert.Equal(t, int64(3), count)
}

func TestAccessEventCountSince(t *testing.T) {
	repo, f := newEventRepo(t)

	count, err := repo.CountSince(context.Background(), nil, f.base.Add(150*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	count, err = repo.CountSince(context.Background(), &f.tenant2.ID, f.base)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestAccessEventCardRollup(t *testing.T) {
	repo, f := newEventRepo(t)

	rollup, err := repo.CardRollup(context.Background(), &f.tenant1.ID)
	require.NoError(t, err)
	// Two registered cards are referenced by tenant-1 events; the unknown
	// UID contributes nothing.
	assert.Equal(t, int64(2), rollup.Total)
	assert.Equal(t, int64(1), rollup.Active)
	assert.Equal(t, int64(1), rollup.Inactive)
	assert.Equal(t, int64(1), rollup.Vehicles)
}

func TestAccessEventReaderRollup(t *testing.T) {
	repo, f := newEventRepo(t)

	rollup, err := repo.ReaderRollup(context.Background(), &f.tenant1.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), rollup.Total)
	assert.Equal(t, int64(1), rollup.Online)
	assert.Equal(t, int64(1), rollup.Offline)
}

func TestAccessEventDailyCounts(t *testing.T) {
	repo, f := newEventRepo(t)

	counts, err := repo.DailyCounts(context.Background(), f.base, f.base.Add(30*time.Hour), &f.tenant1.ID)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "2024-03-10", counts[0].Date)
	assert.Equal(t, int64(4), counts[0].Count)
	assert.Equal(t, "2024-03-11", counts[1].Date)
	assert.Equal(t, int64(1), counts[1].Count)
}

func TestAccessEventCreate_AssignsTimestamp(t *testing.T) {
	db := newTestDB(t)
	f := seedEvents(t, db)
	repo := NewAccessEventRepository(db, logger.NewNop())

	event := &f.events[0]
	fresh := *event
	fresh.ID = 0
	fresh.Timestamp = time.Time{}
	require.NoError(t, repo.Create(context.Background(), &fresh))
	assert.NotZero(t, fresh.ID)
	assert.False(t, fresh.Timestamp.IsZero())
}

func boolPtr(b bool) *bool { return &b }
