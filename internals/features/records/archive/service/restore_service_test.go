package service

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	busTripModel "ibt_backend/internals/features/operations/bus_trips/model"
	lostFoundModel "ibt_backend/internals/features/operations/lost_found/model"
	parkingModel "ibt_backend/internals/features/operations/parking/model"
	terminalFeeModel "ibt_backend/internals/features/operations/terminal_fees/model"
	"ibt_backend/internals/features/records/archive/model"
	reportModel "ibt_backend/internals/features/records/reports/model"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&parkingModel.ParkingModel{},
		&busTripModel.BusTripModel{},
		&terminalFeeModel.TerminalFeeModel{},
		&lostFoundModel.LostFoundModel{},
		&reportModel.ReportModel{},
		&model.ArchiveModel{},
	))
	return db
}

func archiveRow(t *testing.T, db *gorm.DB, archiveType string, source any) *model.ArchiveModel {
	t.Helper()
	raw, err := json.Marshal(source)
	require.NoError(t, err)
	archive := &model.ArchiveModel{
		ArchiveType:         archiveType,
		ArchiveOriginalData: raw,
		ArchiveArchivedBy:   "admin@ibt.test",
	}
	require.NoError(t, db.Create(archive).Error)
	return archive
}

func TestRestoreParkingTicket(t *testing.T) {
	db := testDB(t)

	in := time.Date(2026, 5, 2, 9, 30, 0, 0, time.UTC)
	source := parkingModel.ParkingModel{
		ParkingTicketNo: "PK-0001",
		ParkingPlateNo:  "ABC-123",
		ParkingType:     parkingModel.VehicleCar,
		ParkingBaseRate: 20,
		ParkingTimeIn:   in,
		ParkingStatus:   parkingModel.StatusParked,
	}
	require.NoError(t, db.Create(&source).Error)
	archive := archiveRow(t, db, model.ArchiveTypeParking, source)
	require.NoError(t, db.Delete(&source).Error)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return Restore(tx, archive)
	}))

	var restored parkingModel.ParkingModel
	require.NoError(t, db.Where("parking_ticket_no = ?", "PK-0001").First(&restored).Error)
	assert.Equal(t, "ABC-123", restored.ParkingPlateNo)
	assert.Equal(t, 20.0, restored.ParkingBaseRate)
	// Restored rows come back under a fresh primary key.
	assert.NotEqual(t, source.ParkingID, restored.ParkingID)

	// The archive row is consumed by the restore.
	var count int64
	require.NoError(t, db.Model(&model.ArchiveModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestRestoreEachSupportedType(t *testing.T) {
	db := testDB(t)

	sources := map[string]any{
		model.ArchiveTypeBusTrip: busTripModel.BusTripModel{
			BusTripTemplateNo: "BT-01", BusTripRoute: "North Loop",
			BusTripCompany: "Victory", BusTripStatus: busTripModel.StatusPending,
		},
		model.ArchiveTypeTerminalFee: terminalFeeModel.TerminalFeeModel{
			TerminalFeeTicketNo: "TF-01", TerminalFeePassengerType: terminalFeeModel.PassengerStudent,
			TerminalFeePrice: 12,
		},
		model.ArchiveTypeLostFound: lostFoundModel.LostFoundModel{
			LostFoundTrackingNo: "LF-01", LostFoundDescription: "Black umbrella",
			LostFoundStatus: lostFoundModel.StatusUnclaimed,
		},
		model.ArchiveTypeReport: reportModel.ReportModel{
			ReportType: "daily", ReportAuthor: "admin@ibt.test",
			ReportData: datatypes.JSON(`{"total":5}`),
		},
	}

	for archiveType, source := range sources {
		archive := archiveRow(t, db, archiveType, source)
		require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
			return Restore(tx, archive)
		}), "restore %s", archiveType)
	}

	var trips, fees, items, reports int64
	db.Model(&busTripModel.BusTripModel{}).Count(&trips)
	db.Model(&terminalFeeModel.TerminalFeeModel{}).Count(&fees)
	db.Model(&lostFoundModel.LostFoundModel{}).Count(&items)
	db.Model(&reportModel.ReportModel{}).Count(&reports)
	assert.EqualValues(t, 1, trips)
	assert.EqualValues(t, 1, fees)
	assert.EqualValues(t, 1, items)
	assert.EqualValues(t, 1, reports)
}

func TestRestoreUnsupportedType(t *testing.T) {
	db := testDB(t)

	archive := &model.ArchiveModel{
		ArchiveType:         "Employee",
		ArchiveOriginalData: datatypes.JSON(`{"name":"x"}`),
	}
	require.NoError(t, db.Create(archive).Error)

	err := db.Transaction(func(tx *gorm.DB) error {
		return Restore(tx, archive)
	})
	require.ErrorIs(t, err, ErrUnsupportedArchiveType)

	// Nothing was consumed.
	var count int64
	require.NoError(t, db.Model(&model.ArchiveModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDeleteSource(t *testing.T) {
	db := testDB(t)

	item := lostFoundModel.LostFoundModel{
		LostFoundTrackingNo:  "LF-77",
		LostFoundDescription: "Brown wallet",
		LostFoundStatus:      lostFoundModel.StatusClaimed,
	}
	require.NoError(t, db.Create(&item).Error)

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	require.NoError(t, db.Transaction(func(tx *gorm.DB) error {
		return DeleteSource(tx, model.ArchiveTypeLostFound, raw)
	}))

	var count int64
	require.NoError(t, db.Model(&lostFoundModel.LostFoundModel{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeleteSourceUnsupportedType(t *testing.T) {
	db := testDB(t)
	err := DeleteSource(db, "Employee", datatypes.JSON(`{"id":"x"}`))
	assert.ErrorIs(t, err, ErrUnsupportedArchiveType)
}

func TestArchiveRejectsUnsupportedType(t *testing.T) {
	db := testDB(t)
	err := Archive(db, "Employee", "", "admin@ibt.test", datatypes.JSON(`{}`))
	assert.ErrorIs(t, err, ErrUnsupportedArchiveType)
}
