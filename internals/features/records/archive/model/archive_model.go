package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Supported archive types. Restore and source deletion dispatch on this
// closed set; anything else is rejected up front.
const (
	ArchiveTypeTerminalFee = "Terminal Fee"
	ArchiveTypeParking     = "Parking"
	ArchiveTypeBusTrip     = "Bus Trip"
	ArchiveTypeLostFound   = "LostFound"
	ArchiveTypeReport      = "Report"
	ArchiveTypeTenantLease = "Tenant Lease"
)

type ArchiveModel struct {
	ArchiveID           uuid.UUID      `gorm:"column:archive_id;type:uuid;primaryKey" json:"archive_id"`
	ArchiveType         string         `gorm:"column:archive_type;type:varchar(40);not null;index" json:"archive_type"`
	ArchiveDescription  string         `gorm:"column:archive_description;type:text" json:"archive_description"`
	ArchiveOriginalData datatypes.JSON `gorm:"column:archive_original_data;type:jsonb;not null" json:"archive_original_data"`
	ArchiveArchivedBy   string         `gorm:"column:archive_archived_by;type:varchar(255)" json:"archive_archived_by"`
	ArchiveDateArchived time.Time      `gorm:"column:archive_date_archived;autoCreateTime" json:"archive_date_archived"`
}

func (ArchiveModel) TableName() string {
	return "archives"
}

func (m *ArchiveModel) BeforeCreate(tx *gorm.DB) error {
	if m.ArchiveID == uuid.Nil {
		m.ArchiveID = uuid.New()
	}
	return nil
}
