package api

// swagger:model api.UpdateStockRequest
type UpdateStockRequest struct {
	Stock *int `json:"stock" example:"10"`
}
