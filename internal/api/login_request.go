package api

// swagger:model api.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"max=254" example:"a@b.com"`
	Password string `json:"password" validate:"max=72" example:"12345678"`
}
