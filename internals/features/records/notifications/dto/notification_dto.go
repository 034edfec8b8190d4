package dto

import (
	"time"

	"github.com/google/uuid"

	"ibt_backend/internals/features/records/notifications/model"
)

// ================== REQUEST ==================
type CreateNotificationRequest struct {
	NotificationTitle      string `json:"notification_title" validate:"required"`
	NotificationMessage    string `json:"notification_message" validate:"required"`
	NotificationSource     string `json:"notification_source"`
	NotificationTargetRole string `json:"notification_target_role"`
}

// ================== RESPONSE ==================
type NotificationResponse struct {
	NotificationID         uuid.UUID `json:"notification_id"`
	NotificationTitle      string    `json:"notification_title"`
	NotificationMessage    string    `json:"notification_message"`
	NotificationSource     string    `json:"notification_source"`
	NotificationTargetRole string    `json:"notification_target_role"`
	NotificationRead       bool      `json:"notification_read"`
	NotificationCreatedAt  string    `json:"notification_created_at"`
}

// ================ CONVERSION =================
func (r *CreateNotificationRequest) ToModel() *model.NotificationModel {
	target := r.NotificationTargetRole
	if target == "" {
		target = model.TargetRoleAll
	}
	return &model.NotificationModel{
		NotificationTitle:      r.NotificationTitle,
		NotificationMessage:    r.NotificationMessage,
		NotificationSource:     r.NotificationSource,
		NotificationTargetRole: target,
	}
}

func ToNotificationResponse(m *model.NotificationModel) *NotificationResponse {
	return &NotificationResponse{
		NotificationID:         m.NotificationID,
		NotificationTitle:      m.NotificationTitle,
		NotificationMessage:    m.NotificationMessage,
		NotificationSource:     m.NotificationSource,
		NotificationTargetRole: m.NotificationTargetRole,
		NotificationRead:       m.NotificationRead,
		NotificationCreatedAt:  m.NotificationCreatedAt.Format(time.RFC3339),
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	result := make([]NotificationResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToNotificationResponse(&models[i]))
	}
	return result
}
