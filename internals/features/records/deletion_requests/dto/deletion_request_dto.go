package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ibt_backend/internals/features/records/deletion_requests/model"
)

// ================== REQUEST ==================
type CreateDeletionRequest struct {
	DeletionRequestItemType        string         `json:"deletion_request_item_type" validate:"required"`
	DeletionRequestItemDescription string         `json:"deletion_request_item_description"`
	DeletionRequestOriginalData    datatypes.JSON `json:"deletion_request_original_data" validate:"required"`
	DeletionRequestReason          string         `json:"deletion_request_reason" validate:"required"`
}

// ResolveDeletionRequest carries the superadmin verdict. Remarks are
// mandatory for both outcomes so the requester always gets an explanation.
type ResolveDeletionRequest struct {
	Action       string `json:"action" validate:"required,oneof=approve deny"`
	AdminRemarks string `json:"admin_remarks" validate:"required"`
}

type BulkApproveRequest struct {
	RequestIDs   []uuid.UUID `json:"request_ids" validate:"required,min=1"`
	AdminRemarks string      `json:"admin_remarks" validate:"required"`
}

// ================== RESPONSE ==================
type DeletionRequestResponse struct {
	DeletionRequestID              uuid.UUID      `json:"deletion_request_id"`
	DeletionRequestItemType        string         `json:"deletion_request_item_type"`
	DeletionRequestItemDescription string         `json:"deletion_request_item_description"`
	DeletionRequestRequestedBy     string         `json:"deletion_request_requested_by"`
	DeletionRequestOriginalData    datatypes.JSON `json:"deletion_request_original_data"`
	DeletionRequestReason          string         `json:"deletion_request_reason"`
	DeletionRequestStatus          string         `json:"deletion_request_status"`
	DeletionRequestCreatedAt       string         `json:"deletion_request_created_at"`
}

type BulkApproveResult struct {
	RequestID uuid.UUID `json:"request_id"`
	Approved  bool      `json:"approved"`
	Error     string    `json:"error,omitempty"`
}

// ================ CONVERSION =================
func (r *CreateDeletionRequest) ToModel() *model.DeletionRequestModel {
	return &model.DeletionRequestModel{
		DeletionRequestItemType:        r.DeletionRequestItemType,
		DeletionRequestItemDescription: r.DeletionRequestItemDescription,
		DeletionRequestOriginalData:    r.DeletionRequestOriginalData,
		DeletionRequestReason:          r.DeletionRequestReason,
		DeletionRequestStatus:          model.StatusPending,
	}
}

func ToDeletionRequestResponse(m *model.DeletionRequestModel) *DeletionRequestResponse {
	return &DeletionRequestResponse{
		DeletionRequestID:              m.DeletionRequestID,
		DeletionRequestItemType:        m.DeletionRequestItemType,
		DeletionRequestItemDescription: m.DeletionRequestItemDescription,
		DeletionRequestRequestedBy:     m.DeletionRequestRequestedBy,
		DeletionRequestOriginalData:    m.DeletionRequestOriginalData,
		DeletionRequestReason:          m.DeletionRequestReason,
		DeletionRequestStatus:          m.DeletionRequestStatus,
		DeletionRequestCreatedAt:       m.DeletionRequestCreatedAt.Format(time.RFC3339),
	}
}

func ToDeletionRequestResponseList(models []model.DeletionRequestModel) []DeletionRequestResponse {
	result := make([]DeletionRequestResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToDeletionRequestResponse(&models[i]))
	}
	return result
}
