package dto

import (
	"time"

	"github.com/google/uuid"

	"ibt_backend/internals/features/users/user/model"
)

// ================== REQUEST ==================
type CreateUserRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=6"`
	UserRole     string `json:"user_role" validate:"required"`
}

type UpdateUserRequest struct {
	UserPassword *string `json:"user_password" validate:"omitempty,min=6"`
	UserRole     *string `json:"user_role"`
	UserIsActive *bool   `json:"user_is_active"`
}

// ================== RESPONSE ==================
type UserResponse struct {
	UserID        uuid.UUID `json:"user_id"`
	UserEmail     string    `json:"user_email"`
	UserRole      string    `json:"user_role"`
	UserIsActive  bool      `json:"user_is_active"`
	UserCreatedAt string    `json:"user_created_at"`
}

// ================ CONVERSION =================
func ToUserResponse(m *model.UserModel) *UserResponse {
	return &UserResponse{
		UserID:        m.UserID,
		UserEmail:     m.UserEmail,
		UserRole:      m.UserRole,
		UserIsActive:  m.UserIsActive,
		UserCreatedAt: m.UserCreatedAt.Format(time.RFC3339),
	}
}

func ToUserResponseList(models []model.UserModel) []UserResponse {
	result := make([]UserResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToUserResponse(&models[i]))
	}
	return result
}
