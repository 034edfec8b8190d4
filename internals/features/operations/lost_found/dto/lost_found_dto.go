package dto

import (
	"time"

	"github.com/google/uuid"

	"ibt_backend/internals/features/operations/lost_found/model"
)

// ================== REQUEST ==================
type CreateLostFoundRequest struct {
	LostFoundTrackingNo  string `json:"lost_found_tracking_no" validate:"required"`
	LostFoundItemType    string `json:"lost_found_item_type"`
	LostFoundDescription string `json:"lost_found_description" validate:"required"`
	LostFoundLocation    string `json:"lost_found_location"`
	LostFoundDateTime    string `json:"lost_found_date_time"`
}

type UpdateLostFoundRequest struct {
	LostFoundItemType    *string `json:"lost_found_item_type"`
	LostFoundDescription *string `json:"lost_found_description"`
	LostFoundLocation    *string `json:"lost_found_location"`
	LostFoundDateTime    *string `json:"lost_found_date_time"`
	LostFoundStatus      *string `json:"lost_found_status" validate:"omitempty,oneof=Unclaimed Claimed"`
}

// ================== RESPONSE ==================
type LostFoundResponse struct {
	LostFoundID          uuid.UUID `json:"lost_found_id"`
	LostFoundTrackingNo  string    `json:"lost_found_tracking_no"`
	LostFoundItemType    string    `json:"lost_found_item_type"`
	LostFoundDescription string    `json:"lost_found_description"`
	LostFoundLocation    string    `json:"lost_found_location"`
	LostFoundDateTime    string    `json:"lost_found_date_time"`
	LostFoundStatus      string    `json:"lost_found_status"`
	LostFoundCreatedAt   string    `json:"lost_found_created_at"`
}

// ================ CONVERSION =================
func (r *CreateLostFoundRequest) ToModel() *model.LostFoundModel {
	dateTime := r.LostFoundDateTime
	if dateTime == "" {
		dateTime = time.Now().Format("2006-01-02 15:04")
	}
	return &model.LostFoundModel{
		LostFoundTrackingNo:  r.LostFoundTrackingNo,
		LostFoundItemType:    r.LostFoundItemType,
		LostFoundDescription: r.LostFoundDescription,
		LostFoundLocation:    r.LostFoundLocation,
		LostFoundDateTime:    dateTime,
		LostFoundStatus:      model.StatusUnclaimed,
	}
}

func ToLostFoundResponse(m *model.LostFoundModel) *LostFoundResponse {
	return &LostFoundResponse{
		LostFoundID:          m.LostFoundID,
		LostFoundTrackingNo:  m.LostFoundTrackingNo,
		LostFoundItemType:    m.LostFoundItemType,
		LostFoundDescription: m.LostFoundDescription,
		LostFoundLocation:    m.LostFoundLocation,
		LostFoundDateTime:    m.LostFoundDateTime,
		LostFoundStatus:      m.LostFoundStatus,
		LostFoundCreatedAt:   m.LostFoundCreatedAt.Format(time.RFC3339),
	}
}

func ToLostFoundResponseList(models []model.LostFoundModel) []LostFoundResponse {
	result := make([]LostFoundResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToLostFoundResponse(&models[i]))
	}
	return result
}
