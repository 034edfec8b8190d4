package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusUnclaimed = "Unclaimed"
	StatusClaimed   = "Claimed"
)

type LostFoundModel struct {
	LostFoundID          uuid.UUID `gorm:"column:lost_found_id;type:uuid;primaryKey" json:"lost_found_id"`
	LostFoundTrackingNo  string    `gorm:"column:lost_found_tracking_no;type:varchar(50);not null" json:"lost_found_tracking_no"`
	LostFoundItemType    string    `gorm:"column:lost_found_item_type;type:varchar(60)" json:"lost_found_item_type"`
	LostFoundDescription string    `gorm:"column:lost_found_description;type:text;not null" json:"lost_found_description"`
	LostFoundLocation    string    `gorm:"column:lost_found_location;type:varchar(120)" json:"lost_found_location"`
	LostFoundDateTime    string    `gorm:"column:lost_found_date_time;type:varchar(30)" json:"lost_found_date_time"`
	LostFoundStatus      string    `gorm:"column:lost_found_status;type:varchar(20);not null;default:Unclaimed" json:"lost_found_status"`
	LostFoundCreatedAt   time.Time `gorm:"column:lost_found_created_at;autoCreateTime" json:"lost_found_created_at"`
	LostFoundUpdatedAt   time.Time `gorm:"column:lost_found_updated_at;autoUpdateTime" json:"lost_found_updated_at"`
}

func (LostFoundModel) TableName() string {
	return "lost_found_items"
}

func (m *LostFoundModel) BeforeCreate(tx *gorm.DB) error {
	if m.LostFoundID == uuid.Nil {
		m.LostFoundID = uuid.New()
	}
	return nil
}
