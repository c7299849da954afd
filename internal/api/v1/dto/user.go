package dto

import "app/internal/model"

// UserResponse is the public projection of an account.
type UserResponse struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Premium bool   `json:"premium"`
}

func NewUserResponse(u *model.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		Email:   u.Email,
		Premium: u.Premium,
	}
}
