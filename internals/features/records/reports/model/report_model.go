package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReportModel struct {
	ReportID        uuid.UUID      `gorm:"column:report_id;type:uuid;primaryKey" json:"report_id"`
	ReportType      string         `gorm:"column:report_type;type:varchar(80);not null" json:"report_type"`
	ReportAuthor    string         `gorm:"column:report_author;type:varchar(120);not null" json:"report_author"`
	ReportData      datatypes.JSON `gorm:"column:report_data;type:jsonb" json:"report_data"`
	ReportCreatedAt time.Time      `gorm:"column:report_created_at;autoCreateTime" json:"report_created_at"`
}

func (ReportModel) TableName() string {
	return "reports"
}

func (m *ReportModel) BeforeCreate(tx *gorm.DB) error {
	if m.ReportID == uuid.Nil {
		m.ReportID = uuid.New()
	}
	return nil
}
