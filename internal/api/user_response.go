// File: internal/api/user_response.go
package api

import (
	"time"

	"storefront/internal/model"
)

// swagger:model api.UserResponse
type UserResponse struct {
	ID        string    `json:"id" example:"7b0c3f0e-8f43-4c1e-9a57-2f4f6c1d9a10"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"a@b.com"`
	Role      string    `json:"role" example:"user"`
	CreatedAt time.Time `json:"createdAt" example:"2025-05-01T15:04:05Z"`
}

// NewUserResponse 轉為公開欄位，不含密碼雜湊
func NewUserResponse(u *model.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID.String(),
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

// swagger:model api.AuthResponse
type AuthResponse struct {
	Msg     string        `json:"msg,omitempty" example:"Login successful. Redirecting to Account..."`
	Success bool          `json:"success" example:"true"`
	User    *UserResponse `json:"user,omitempty"`
}
