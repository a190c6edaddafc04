package api

// swagger:model api.PromoteRequest
type PromoteRequest struct {
	Email string `json:"email" validate:"max=254" example:"a@b.com"`
}
