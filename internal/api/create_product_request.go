// File: internal/api/create_product_request.go
package api

import "storefront/internal/service"

// CreateProductRequest 文字長度、分類等業務規則由 service 在 trim 後驗證，這裡只限制欄位格式
// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Title            string   `json:"title" example:"Anime Rock Star T-Shirt"`
	Description      string   `json:"description" example:"Stylish T-shirt featuring a cute anime girl"`
	LongDescription  string   `json:"longDescription"`
	Price            *float64 `json:"price" validate:"omitempty,gte=0" example:"299"`
	DiscountPrice    *float64 `json:"discountPrice" validate:"omitempty,gte=0"`
	Currency         string   `json:"currency" validate:"omitempty,oneof=NOK EUR USD nok eur usd" example:"NOK"`
	Category         string   `json:"category" example:"tskjorte"`
	ImageURL         string   `json:"imageUrl" example:"https://cdn.example.com/rock.jpg"`
	AdditionalImages []string `json:"additionalImages"`
	Stock            *int     `json:"stock" validate:"omitempty,gte=0" example:"25"`
	Sizes            []string `json:"sizes" validate:"dive,oneof=XS S M L XL XXL" example:"S,M,L,XL"`
	Colors           []string `json:"colors" validate:"dive,max=30" example:"Black,White"`
	Featured         bool     `json:"featured" example:"true"`
	Rating           float64  `json:"rating" validate:"gte=0,lte=5" example:"4.7"`
	NumReviews       int      `json:"numReviews" validate:"gte=0" example:"23"`
}

func (r CreateProductRequest) ToInput() service.ProductInput {
	return service.ProductInput{
		Title:            r.Title,
		Description:      r.Description,
		LongDescription:  r.LongDescription,
		Price:            r.Price,
		DiscountPrice:    r.DiscountPrice,
		Currency:         r.Currency,
		Category:         r.Category,
		ImageURL:         r.ImageURL,
		AdditionalImages: r.AdditionalImages,
		Stock:            r.Stock,
		Sizes:            r.Sizes,
		Colors:           r.Colors,
		Featured:         r.Featured,
		Rating:           r.Rating,
		NumReviews:       r.NumReviews,
	}
}
