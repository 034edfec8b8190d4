package dto

import (
	"time"

	"github.com/google/uuid"

	"ibt_backend/internals/features/tenancy/waitlist/model"
)

// ================== REQUEST ==================
type CreateApplicationRequest struct {
	TenantApplicationName          string `json:"tenant_application_name" validate:"required"`
	TenantApplicationEmail         string `json:"tenant_application_email" validate:"required,email"`
	TenantApplicationBusinessType  string `json:"tenant_application_business_type"`
	TenantApplicationTenantType    string `json:"tenant_application_tenant_type" validate:"required,oneof=Permanent Temporary"`
	TenantApplicationPreferredSlot string `json:"tenant_application_preferred_slot"`
}

type UpdateApplicationRequest struct {
	TenantApplicationName          *string `json:"tenant_application_name"`
	TenantApplicationEmail         *string `json:"tenant_application_email" validate:"omitempty,email"`
	TenantApplicationBusinessType  *string `json:"tenant_application_business_type"`
	TenantApplicationPreferredSlot *string `json:"tenant_application_preferred_slot"`
	TenantApplicationStatus        *string `json:"tenant_application_status"`
	TenantApplicationRemarks       *string `json:"tenant_application_remarks"`
}

// ================== RESPONSE ==================
type ApplicationResponse struct {
	TenantApplicationID            uuid.UUID `json:"tenant_application_id"`
	TenantApplicationName          string    `json:"tenant_application_name"`
	TenantApplicationEmail         string    `json:"tenant_application_email"`
	TenantApplicationBusinessType  string    `json:"tenant_application_business_type"`
	TenantApplicationTenantType    string    `json:"tenant_application_tenant_type"`
	TenantApplicationPreferredSlot string    `json:"tenant_application_preferred_slot"`
	TenantApplicationStatus        string    `json:"tenant_application_status"`
	TenantApplicationRemarks       string    `json:"tenant_application_remarks"`
	TenantApplicationCreatedAt     string    `json:"tenant_application_created_at"`
}

// ================ CONVERSION =================
func (r *CreateApplicationRequest) ToModel() *model.TenantApplicationModel {
	return &model.TenantApplicationModel{
		TenantApplicationName:          r.TenantApplicationName,
		TenantApplicationEmail:         r.TenantApplicationEmail,
		TenantApplicationBusinessType:  r.TenantApplicationBusinessType,
		TenantApplicationTenantType:    r.TenantApplicationTenantType,
		TenantApplicationPreferredSlot: r.TenantApplicationPreferredSlot,
		TenantApplicationStatus:        model.StatusPending,
	}
}

func ToApplicationResponse(m *model.TenantApplicationModel) *ApplicationResponse {
	return &ApplicationResponse{
		TenantApplicationID:            m.TenantApplicationID,
		TenantApplicationName:          m.TenantApplicationName,
		TenantApplicationEmail:         m.TenantApplicationEmail,
		TenantApplicationBusinessType:  m.TenantApplicationBusinessType,
		TenantApplicationTenantType:    m.TenantApplicationTenantType,
		TenantApplicationPreferredSlot: m.TenantApplicationPreferredSlot,
		TenantApplicationStatus:        m.TenantApplicationStatus,
		TenantApplicationRemarks:       m.TenantApplicationRemarks,
		TenantApplicationCreatedAt:     m.TenantApplicationCreatedAt.Format(time.RFC3339),
	}
}

func ToApplicationResponseList(models []model.TenantApplicationModel) []ApplicationResponse {
	result := make([]ApplicationResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToApplicationResponse(&models[i]))
	}
	return result
}
