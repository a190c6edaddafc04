package api

// swagger:model api.RegisterRequest
type RegisterRequest struct {
	Name           string `json:"name" validate:"max=100" example:"Alice"`
	Email          string `json:"email" validate:"max=254" example:"a@b.com"`
	Password       string `json:"password" validate:"max=72" example:"12345678"`
	RepeatPassword string `json:"repeatPassword" validate:"max=72" example:"12345678"`
}
