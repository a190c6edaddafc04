// File: internal/model/product.go
package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// 商品分類為封閉集合
const (
	CategoryGenser   = "genser"
	CategoryTskjorte = "tskjorte"
)

var Categories = []string{CategoryGenser, CategoryTskjorte}

// 幣別
const (
	CurrencyNOK = "NOK"
	CurrencyEUR = "EUR"
	CurrencyUSD = "USD"
)

var DefaultSizes = []string{"S", "M", "L", "XL"}

// NormalizeCategory 轉小寫並檢查是否屬於允許的分類
func NormalizeCategory(category string) (string, bool) {
	c := strings.ToLower(strings.TrimSpace(category))
	for _, allowed := range Categories {
		if c == allowed {
			return c, true
		}
	}
	return c, false
}

type Product struct {
	ID               uuid.UUID `db:"id" json:"id"`
	Title            string    `db:"title" json:"title"`
	Description      string    `db:"description" json:"description"`
	LongDescription  string    `db:"long_description" json:"longDescription,omitempty"`
	Price            float64   `db:"price" json:"price"`
	DiscountPrice    *float64  `db:"discount_price" json:"discountPrice,omitempty"`
	Currency         string    `db:"currency" json:"currency"`
	Category         string    `db:"category" json:"category"`
	ImageURL         string    `db:"image_url" json:"imageUrl"`
	AdditionalImages []string  `db:"additional_images" json:"additionalImages"`
	Stock            int       `db:"stock" json:"stock"`
	Sizes            []string  `db:"sizes" json:"sizes"`
	Colors           []string  `db:"colors" json:"colors"`
	Featured         bool      `db:"featured" json:"featured"`
	Rating           float64   `db:"rating" json:"rating"`
	NumReviews       int       `db:"num_reviews" json:"numReviews"`
	CreatedAt        time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt        time.Time `db:"updated_at" json:"updatedAt"`
}
