package dto

import (
	userDTO "ibt_backend/internals/features/users/user/dto"
)

// ================== REQUEST ==================
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// ================== RESPONSE ==================
type LoginResponse struct {
	Token string                `json:"token"`
	User  *userDTO.UserResponse `json:"user"`
}
