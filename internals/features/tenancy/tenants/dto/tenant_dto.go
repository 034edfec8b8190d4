package dto

import (
	"time"

	"github.com/google/uuid"

	"ibt_backend/internals/features/tenancy/tenants/model"
)

// ================== REQUEST ==================
type CreateTenantRequest struct {
	TenantSlotNo        string     `json:"tenant_slot_no" validate:"required"`
	TenantName          string     `json:"tenant_name" validate:"required"`
	TenantType          string     `json:"tenant_type" validate:"required,oneof=Permanent Temporary"`
	TenantRentAmount    float64    `json:"tenant_rent_amount" validate:"required,gt=0"`
	TenantUtilityAmount float64    `json:"tenant_utility_amount" validate:"omitempty,gte=0"`
	TenantStartDateTime *time.Time `json:"tenant_start_date_time"`
	TenantDueDateTime   *time.Time `json:"tenant_due_date_time"`
	TenantEmail         string     `json:"tenant_email" validate:"omitempty,email"`
	TenantDocuments     []string   `json:"tenant_documents"`

	// When set, the waitlist application is flipped to TENANT.
	TransferWaitlistID *uuid.UUID `json:"transfer_waitlist_id"`
}

type UpdateTenantRequest struct {
	TenantSlotNo        *string    `json:"tenant_slot_no"`
	TenantName          *string    `json:"tenant_name"`
	TenantType          *string    `json:"tenant_type" validate:"omitempty,oneof=Permanent Temporary"`
	TenantRentAmount    *float64   `json:"tenant_rent_amount" validate:"omitempty,gt=0"`
	TenantUtilityAmount *float64   `json:"tenant_utility_amount" validate:"omitempty,gte=0"`
	TenantStartDateTime *time.Time `json:"tenant_start_date_time"`
	TenantDueDateTime   *time.Time `json:"tenant_due_date_time"`
	TenantEmail         *string    `json:"tenant_email" validate:"omitempty,email"`
	TenantDocuments     []string   `json:"tenant_documents"`
}

// ================== RESPONSE ==================
type TenantResponse struct {
	TenantID            uuid.UUID `json:"tenant_id"`
	TenantSlotNo        string    `json:"tenant_slot_no"`
	TenantName          string    `json:"tenant_name"`
	TenantType          string    `json:"tenant_type"`
	TenantRentAmount    float64   `json:"tenant_rent_amount"`
	TenantUtilityAmount float64   `json:"tenant_utility_amount"`
	TenantTotalAmount   float64   `json:"tenant_total_amount"`
	TenantStartDateTime time.Time `json:"tenant_start_date_time"`
	TenantDueDateTime   time.Time `json:"tenant_due_date_time"`
	TenantEmail         string    `json:"tenant_email"`
	TenantDocuments     []string  `json:"tenant_documents"`
	TenantCreatedAt     string    `json:"tenant_created_at"`
}

// ================ CONVERSION =================
func (r *CreateTenantRequest) ToModel() *model.TenantModel {
	start := time.Now()
	if r.TenantStartDateTime != nil {
		start = *r.TenantStartDateTime
	}
	due := start.AddDate(0, 1, 0)
	if r.TenantDueDateTime != nil {
		due = *r.TenantDueDateTime
	}
	return &model.TenantModel{
		TenantSlotNo:        r.TenantSlotNo,
		TenantName:          r.TenantName,
		TenantType:          r.TenantType,
		TenantRentAmount:    r.TenantRentAmount,
		TenantUtilityAmount: r.TenantUtilityAmount,
		TenantTotalAmount:   r.TenantRentAmount + r.TenantUtilityAmount,
		TenantStartDateTime: start,
		TenantDueDateTime:   due,
		TenantEmail:         r.TenantEmail,
		TenantDocuments:     r.TenantDocuments,
	}
}

func ToTenantResponse(m *model.TenantModel) *TenantResponse {
	return &TenantResponse{
		TenantID:            m.TenantID,
		TenantSlotNo:        m.TenantSlotNo,
		TenantName:          m.TenantName,
		TenantType:          m.TenantType,
		TenantRentAmount:    m.TenantRentAmount,
		TenantUtilityAmount: m.TenantUtilityAmount,
		TenantTotalAmount:   m.TenantTotalAmount,
		TenantStartDateTime: m.TenantStartDateTime,
		TenantDueDateTime:   m.TenantDueDateTime,
		TenantEmail:         m.TenantEmail,
		TenantDocuments:     m.TenantDocuments,
		TenantCreatedAt:     m.TenantCreatedAt.Format(time.RFC3339),
	}
}

func ToTenantResponseList(models []model.TenantModel) []TenantResponse {
	result := make([]TenantResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToTenantResponse(&models[i]))
	}
	return result
}
