package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const StatusPending = "PENDING"

// DeletionRequestModel holds a staff request to remove a record. The row
// itself is removed once a superadmin resolves it either way.
type DeletionRequestModel struct {
	DeletionRequestID              uuid.UUID      `gorm:"column:deletion_request_id;type:uuid;primaryKey" json:"deletion_request_id"`
	DeletionRequestItemType        string         `gorm:"column:deletion_request_item_type;type:varchar(40);not null" json:"deletion_request_item_type"`
	DeletionRequestItemDescription string         `gorm:"column:deletion_request_item_description;type:text" json:"deletion_request_item_description"`
	DeletionRequestRequestedBy     string         `gorm:"column:deletion_request_requested_by;type:varchar(255);not null" json:"deletion_request_requested_by"`
	DeletionRequestOriginalData    datatypes.JSON `gorm:"column:deletion_request_original_data;type:jsonb;not null" json:"deletion_request_original_data"`
	DeletionRequestReason          string         `gorm:"column:deletion_request_reason;type:text;not null" json:"deletion_request_reason"`
	DeletionRequestStatus          string         `gorm:"column:deletion_request_status;type:varchar(20);not null;default:PENDING" json:"deletion_request_status"`
	DeletionRequestAdminRemarks    string         `gorm:"column:deletion_request_admin_remarks;type:text" json:"deletion_request_admin_remarks"`
	DeletionRequestCreatedAt       time.Time      `gorm:"column:deletion_request_created_at;autoCreateTime" json:"deletion_request_created_at"`
}

func (DeletionRequestModel) TableName() string {
	return "deletion_requests"
}

func (m *DeletionRequestModel) BeforeCreate(tx *gorm.DB) error {
	if m.DeletionRequestID == uuid.Nil {
		m.DeletionRequestID = uuid.New()
	}
	return nil
}
