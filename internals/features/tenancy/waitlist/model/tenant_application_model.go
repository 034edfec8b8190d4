package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application statuses, in pipeline order. TENANT is terminal: the applicant
// has been promoted and drops off the active waitlist view.
const (
	StatusPending             = "PENDING"
	StatusVerificationPending = "VERIFICATION_PENDING"
	StatusPaymentUnlocked     = "PAYMENT_UNLOCKED"
	StatusPaymentReview       = "PAYMENT_REVIEW"
	StatusContractPending     = "CONTRACT_PENDING"
	StatusContractReview      = "CONTRACT_REVIEW"
	StatusTenant              = "TENANT"
)

type TenantApplicationModel struct {
	TenantApplicationID            uuid.UUID `gorm:"column:tenant_application_id;type:uuid;primaryKey" json:"tenant_application_id"`
	TenantApplicationName          string    `gorm:"column:tenant_application_name;type:varchar(120);not null" json:"tenant_application_name"`
	TenantApplicationEmail         string    `gorm:"column:tenant_application_email;type:varchar(255);not null" json:"tenant_application_email"`
	TenantApplicationBusinessType  string    `gorm:"column:tenant_application_business_type;type:varchar(60)" json:"tenant_application_business_type"`
	TenantApplicationTenantType    string    `gorm:"column:tenant_application_tenant_type;type:varchar(20);not null" json:"tenant_application_tenant_type"` // Permanent | Temporary
	TenantApplicationPreferredSlot string    `gorm:"column:tenant_application_preferred_slot;type:varchar(20)" json:"tenant_application_preferred_slot"`
	TenantApplicationStatus        string    `gorm:"column:tenant_application_status;type:varchar(30);not null;default:PENDING" json:"tenant_application_status"`
	TenantApplicationRemarks       string    `gorm:"column:tenant_application_remarks;type:text" json:"tenant_application_remarks"`
	TenantApplicationCreatedAt     time.Time `gorm:"column:tenant_application_created_at;autoCreateTime" json:"tenant_application_created_at"`
	TenantApplicationUpdatedAt     time.Time `gorm:"column:tenant_application_updated_at;autoUpdateTime" json:"tenant_application_updated_at"`
}

func (TenantApplicationModel) TableName() string {
	return "tenant_applications"
}

func (m *TenantApplicationModel) BeforeCreate(tx *gorm.DB) error {
	if m.TenantApplicationID == uuid.Nil {
		m.TenantApplicationID = uuid.New()
	}
	return nil
}
