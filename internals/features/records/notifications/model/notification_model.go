package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TargetRoleAll makes a notification visible to every role.
const TargetRoleAll = "all"

type NotificationModel struct {
	NotificationID         uuid.UUID `gorm:"column:notification_id;type:uuid;primaryKey" json:"notification_id"`
	NotificationTitle      string    `gorm:"column:notification_title;type:varchar(150);not null" json:"notification_title"`
	NotificationMessage    string    `gorm:"column:notification_message;type:text;not null" json:"notification_message"`
	NotificationSource     string    `gorm:"column:notification_source;type:varchar(80)" json:"notification_source"`
	NotificationTargetRole string    `gorm:"column:notification_target_role;type:varchar(20);not null;default:all;index" json:"notification_target_role"`
	NotificationRead       bool      `gorm:"column:notification_read;not null;default:false" json:"notification_read"`
	NotificationCreatedAt  time.Time `gorm:"column:notification_created_at;autoCreateTime" json:"notification_created_at"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}

func (m *NotificationModel) BeforeCreate(tx *gorm.DB) error {
	if m.NotificationID == uuid.Nil {
		m.NotificationID = uuid.New()
	}
	return nil
}
