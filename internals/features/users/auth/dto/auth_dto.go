package dto

import (
	"strings"

	userDTO "invigileye_backend/internals/features/users/user/dto"
)

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin invigilator"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
}

type LoginResponse struct {
	Success bool                 `json:"success"`
	User    userDTO.UserResponse `json:"user"`
	Token   string               `json:"token"`
}
