package gormstore

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/tagpoint/rfid-admin/internal/domain/models"
	"github.com/tagpoint/rfid-admin/pkg/constants"
)

// newTestDB opens a fresh in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:                                   gormlogger.Default.LogMode(gormlogger.Silent),
		DisableForeignKeyConstraintWhenMigrating: true,
		TranslateError:                           true,
	})
	require.NoError(t, err)

	// One shared connection: every pooled connection to ":memory:" would
	// otherwise see its own empty database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db))
	return db
}

// fixture holds the seeded entities so tests can assert against their IDs.
type fixture struct {
	tenant1, tenant2 models.Tenant
	alice            models.Staff
	truck            models.Vehicle
	staffCard        models.Card
	vehicleCard      models.Card
	gate, dock       models.Reader
	// events in insertion order: e1..e6. e1 and e2 share a timestamp so
	// ordering tests can exercise the ID tie-break.
	events []models.AccessEvent
	base   time.Time
}

func seedEvents(t *testing.T, db *gorm.DB) fixture {
	t.Helper()

	f := fixture{base: time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)}

	f.tenant1 = models.Tenant{TenantCode: "acme", Name: "Acme Corp", IsActive: true}
	f.tenant2 = models.Tenant{TenantCode: "globex", Name: "Globex", IsActive: true}
	require.NoError(t, db.Create(&f.tenant1).Error)
	require.NoError(t, db.Create(&f.tenant2).Error)

	f.alice = models.Staff{
		TenantID:   f.tenant1.ID,
		EmployeeID: "EMP-001",
		FirstName:  "Alice",
		LastName:   "Johnson",
		IsActive:   true,
	}
	require.NoError(t, db.Create(&f.alice).Error)

	f.truck = models.Vehicle{
		TenantID:     f.tenant1.ID,
		LicensePlate: "KA01AB1234",
		VehicleType:  "truck",
		IsActive:     true,
	}
	require.NoError(t, db.Create(&f.truck).Error)

	f.staffCard = models.Card{
		TenantID: f.tenant1.ID,
		CardUID:  "CARD-A",
		CardType: constants.CardTypeStaff,
		StaffID:  &f.alice.ID,
		IsActive: true,
	}
	f.vehicleCard = models.Card{
		TenantID:  f.tenant1.ID,
		CardUID:   "CARD-V",
		CardType:  constants.CardTypeVehicle,
		VehicleID: &f.truck.ID,
		IsActive:  false,
	}
	require.NoError(t, db.Create(&f.staffCard).Error)
	require.NoError(t, db.Create(&f.vehicleCard).Error)

	f.gate = models.Reader{
		TenantID: f.tenant1.ID,
		ReaderID: "R-GATE-1",
		Name:     "Main Gate",
		IsOnline: true,
	}
	f.dock = models.Reader{
		TenantID: f.tenant1.ID,
		ReaderID: "R-GATE-2",
		Name:     "Loading Dock",
		IsOnline: false,
	}
	require.NoError(t, db.Create(&f.gate).Error)
	require.NoError(t, db.Create(&f.dock).Error)

	f.events = []models.AccessEvent{
		{TenantID: f.tenant1.ID, CardUID: "CARD-A", ReaderID: "R-GATE-1", EventType: constants.EventTypeEntry, IsAuthorized: true, Timestamp: f.base},
		{TenantID: f.tenant1.ID, CardUID: "CARD-A", ReaderID: "R-GATE-1", EventType: constants.EventTypeDenied, IsAuthorized: false, Timestamp: f.base},
		{TenantID: f.tenant1.ID, CardUID: "CARD-V", ReaderID: "R-GATE-2", EventType: constants.EventTypeEntry, IsAuthorized: true, Timestamp: f.base.Add(2 * time.Hour)},
		{TenantID: f.tenant1.ID, CardUID: "UNKNOWN-9", ReaderID: "R-GATE-1", EventType: constants.EventTypeDenied, IsAuthorized: false, Timestamp: f.base.Add(3 * time.Hour)},
		{TenantID: f.tenant2.ID, CardUID: "CARD-A", ReaderID: "R-GATE-1", EventType: constants.EventTypeEntry, IsAuthorized: true, Timestamp: f.base.Add(4 * time.Hour)},
		{TenantID: f.tenant1.ID, CardUID: "CARD-A", ReaderID: "R-GATE-1", EventType: constants.EventTypeEntry, IsAuthorized: true, Timestamp: f.base.Add(26 * time.Hour)},
	}
	for i := range f.events {
		require.NoError(t, db.Create(&f.events[i]).Error)
	}

	return f
}
