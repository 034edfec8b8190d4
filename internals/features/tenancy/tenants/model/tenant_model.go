package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	TenantTypePermanent = "Permanent"
	TenantTypeTemporary = "Temporary"
)

type TenantModel struct {
	TenantID            uuid.UUID      `gorm:"column:tenant_id;type:uuid;primaryKey" json:"tenant_id"`
	TenantSlotNo        string         `gorm:"column:tenant_slot_no;type:varchar(20);not null" json:"tenant_slot_no"`
	TenantName          string         `gorm:"column:tenant_name;type:varchar(120);not null" json:"tenant_name"`
	TenantType          string         `gorm:"column:tenant_type;type:varchar(20);not null" json:"tenant_type"` // Permanent | Temporary
	TenantRentAmount    float64        `gorm:"column:tenant_rent_amount;not null" json:"tenant_rent_amount"`
	TenantUtilityAmount float64        `gorm:"column:tenant_utility_amount;not null;default:0" json:"tenant_utility_amount"`
	TenantTotalAmount   float64        `gorm:"column:tenant_total_amount;not null;default:0" json:"tenant_total_amount"`
	TenantStartDateTime time.Time      `gorm:"column:tenant_start_date_time" json:"tenant_start_date_time"`
	TenantDueDateTime   time.Time      `gorm:"column:tenant_due_date_time" json:"tenant_due_date_time"`
	TenantEmail         string         `gorm:"column:tenant_email;type:varchar(255)" json:"tenant_email"`
	TenantDocuments     pq.StringArray `gorm:"column:tenant_documents;type:text[]" json:"tenant_documents"`
	TenantCreatedAt     time.Time      `gorm:"column:tenant_created_at;autoCreateTime" json:"tenant_created_at"`
	TenantUpdatedAt     time.Time      `gorm:"column:tenant_updated_at;autoUpdateTime" json:"tenant_updated_at"`
}

func (TenantModel) TableName() string {
	return "tenants"
}

func (m *TenantModel) BeforeCreate(tx *gorm.DB) error {
	if m.TenantID == uuid.Nil {
		m.TenantID = uuid.New()
	}
	return nil
}
