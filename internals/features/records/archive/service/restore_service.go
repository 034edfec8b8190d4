package service

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	busTripModel "ibt_backend/internals/features/operations/bus_trips/model"
	lostFoundModel "ibt_backend/internals/features/operations/lost_found/model"
	parkingModel "ibt_backend/internals/features/operations/parking/model"
	terminalFeeModel "ibt_backend/internals/features/operations/terminal_fees/model"
	"ibt_backend/internals/features/records/archive/model"
	reportModel "ibt_backend/internals/features/records/reports/model"
	tenantModel "ibt_backend/internals/features/tenancy/tenants/model"
)

// ErrUnsupportedArchiveType is returned when an archive carries a type that
// is not in the restore registry. Callers map it to 422.
var ErrUnsupportedArchiveType = errors.New("unsupported archive type")

// registryEntry binds an archive type to its source table. pkKey is the
// primary-key field inside the JSON snapshot; it doubles as the column name.
type registryEntry struct {
	pkKey    string
	newModel func() any
}

var registry = map[string]registryEntry{
	model.ArchiveTypeTerminalFee: {"terminal_fee_id", func() any { return &terminalFeeModel.TerminalFeeModel{} }},
	model.ArchiveTypeParking:     {"parking_id", func() any { return &parkingModel.ParkingModel{} }},
	model.ArchiveTypeBusTrip:     {"bus_trip_id", func() any { return &busTripModel.BusTripModel{} }},
	model.ArchiveTypeLostFound:   {"lost_found_id", func() any { return &lostFoundModel.LostFoundModel{} }},
	model.ArchiveTypeReport:      {"report_id", func() any { return &reportModel.ReportModel{} }},
	model.ArchiveTypeTenantLease: {"tenant_id", func() any { return &tenantModel.TenantModel{} }},
}

func IsSupportedType(archiveType string) bool {
	_, ok := registry[archiveType]
	return ok
}

func SupportedTypes() []string {
	return []string{
		model.ArchiveTypeTerminalFee,
		model.ArchiveTypeParking,
		model.ArchiveTypeBusTrip,
		model.ArchiveTypeLostFound,
		model.ArchiveTypeReport,
		model.ArchiveTypeTenantLease,
	}
}

// Restore re-inserts an archived snapshot into its source table under a
// fresh primary key, then removes the archive row. Runs inside tx so a
// failed insert leaves the archive untouched.
func Restore(tx *gorm.DB, archive *model.ArchiveModel) error {
	entry, ok := registry[archive.ArchiveType]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedArchiveType, archive.ArchiveType)
	}

	var snapshot map[string]any
	if err := json.Unmarshal(archive.ArchiveOriginalData, &snapshot); err != nil {
		return fmt.Errorf("decode archived data: %w", err)
	}
	delete(snapshot, entry.pkKey)

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	target := entry.newModel()
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("archived data does not match %s: %w", archive.ArchiveType, err)
	}

	if err := tx.Create(target).Error; err != nil {
		return err
	}
	return tx.Where("archive_id = ?", archive.ArchiveID).Delete(&model.ArchiveModel{}).Error
}

// DeleteSource removes the live row a snapshot was taken from, identified by
// the primary key embedded in the snapshot JSON.
func DeleteSource(tx *gorm.DB, itemType string, data datatypes.JSON) error {
	entry, ok := registry[itemType]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnsupportedArchiveType, itemType)
	}

	var snapshot map[string]any
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return fmt.Errorf("decode snapshot: %w", err)
	}
	pk, ok := snapshot[entry.pkKey].(string)
	if !ok || pk == "" {
		return fmt.Errorf("snapshot has no %s", entry.pkKey)
	}

	return tx.Where(entry.pkKey+" = ?", pk).Delete(entry.newModel()).Error
}

// Archive stores a snapshot of a record before it disappears from its
// source table.
func Archive(tx *gorm.DB, itemType, description, archivedBy string, data datatypes.JSON) error {
	if !IsSupportedType(itemType) {
		return fmt.Errorf("%w: %q", ErrUnsupportedArchiveType, itemType)
	}
	return tx.Create(&model.ArchiveModel{
		ArchiveType:         itemType,
		ArchiveDescription:  description,
		ArchiveOriginalData: data,
		ArchiveArchivedBy:   archivedBy,
	}).Error
}
