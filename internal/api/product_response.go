// File: internal/api/product_response.go
package api

import (
	"storefront/internal/model"
	"storefront/internal/service"
)

// swagger:model api.ProductResponse
type ProductResponse struct {
	Msg     string         `json:"msg,omitempty" example:"Product created successfully"`
	Success bool           `json:"success" example:"true"`
	Product *model.Product `json:"product"`
}

// swagger:model api.ProductListResponse
type ProductListResponse struct {
	Success  bool            `json:"success" example:"true"`
	Products []model.Product `json:"products"`
	Total    int             `json:"total" example:"13"`
	Page     int             `json:"page" example:"1"`
	Pages    int             `json:"pages" example:"1"`
	Limit    int             `json:"limit" example:"20"`
}

func NewProductListResponse(p *service.Page) ProductListResponse {
	return ProductListResponse{
		Success:  true,
		Products: p.Products,
		Total:    p.Total,
		Page:     p.Page,
		Pages:    p.Pages,
		Limit:    p.Limit,
	}
}

// swagger:model api.ProductsResponse
type ProductsResponse struct {
	Success  bool            `json:"success" example:"true"`
	Products []model.Product `json:"products"`
}
