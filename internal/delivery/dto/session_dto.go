package dto

import "github.com/google/uuid"

type SessionResponse struct {
	Mode     string    `json:"mode"`
	UserID   uuid.UUID `json:"user_id"`
	Email    string    `json:"email"`
	FullName string    `json:"full_name"`
	Role     string    `json:"role"`
}
