package dto

import (
	"time"

	uModel "invigileye_backend/internals/features/users/user/model"
)

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

// UserResponse never carries the password.
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	FullName  *string   `json:"full_name"`
	Email     *string   `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModel(m *uModel.UserModel) UserResponse {
	return UserResponse{
		ID:        m.ID,
		Username:  m.Username,
		Role:      m.Role,
		FullName:  m.FullName,
		Email:     m.Email,
		CreatedAt: m.CreatedAt,
	}
}

// InvigilatorItem: dropdown row for assigning exams.
type InvigilatorItem struct {
	ID       uint    `json:"id"`
	Username string  `json:"username"`
	FullName *string `json:"full_name"`
	Email    *string `json:"email"`
}

func ToInvigilatorItems(rows []uModel.UserModel) []InvigilatorItem {
	out := make([]InvigilatorItem, 0, len(rows))
	for i := range rows {
		out = append(out, InvigilatorItem{
			ID:       rows[i].ID,
			Username: rows[i].Username,
			FullName: rows[i].FullName,
			Email:    rows[i].Email,
		})
	}
	return out
}
