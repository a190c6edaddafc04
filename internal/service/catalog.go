// File: internal/service/catalog.go
package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/google/uuid"
)

const (
	MaxDescriptionLength     = 100
	MaxLongDescriptionLength = 1000
	MaxRating                = 5

	DefaultPageSize    = 20
	DefaultHighlightN  = 5
	categoryMessage    = "Category must be either 'genser' or 'tskjorte'"
	productNotFoundMsg = "Product not found"
)

var (
	storeCreateProduct      = store.CreateProduct
	storeGetProductByID     = store.GetProductByID
	storeUpdateProductStock = store.UpdateProductStock
	storeListProducts       = store.ListProducts
)

// CatalogService 商品建立、查詢與庫存更新
type CatalogService struct {
	db database.DB
}

func NewCatalogService(db database.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ProductInput 建立商品的輸入；指標欄位用來區分「未提供」與零值
type ProductInput struct {
	Title            string
	Description      string
	LongDescription  string
	Price            *float64
	DiscountPrice    *float64
	Currency         string
	Category         string
	ImageURL         string
	AdditionalImages []string
	Stock            *int
	Sizes            []string
	Colors           []string
	Featured         bool
	Rating           float64
	NumReviews       int
}

// ListFilter 商品列表篩選條件，價格區間為閉區間
type ListFilter struct {
	Featured *bool
	MinPrice *float64
	MaxPrice *float64
	Category string
}

// Page 分頁結果
type Page struct {
	Products []model.Product
	Total    int
	Page     int
	Pages    int
	Limit    int
}

// CreateProduct 先驗證輸入再檢查角色，無效輸入不論角色一律回 Validation
func (s *CatalogService) CreateProduct(ctx context.Context, requesterRole model.Role, in ProductInput) (*model.Product, error) {
	p, err := buildProduct(in)
	if err != nil {
		return nil, err
	}
	if requesterRole != model.RoleAdmin {
		return nil, newError(Forbidden, "Admin access required")
	}

	created, err := storeCreateProduct(ctx, s.db, p)
	if err != nil {
		return nil, internalError("create product", err)
	}
	return created, nil
}

func buildProduct(in ProductInput) (*model.Product, error) {
	title := strings.TrimSpace(in.Title)
	description := strings.TrimSpace(in.Description)
	imageURL := strings.TrimSpace(in.ImageURL)
	if title == "" || description == "" || imageURL == "" || strings.TrimSpace(in.Category) == "" {
		return nil, newError(Validation, "All fields are required (title, description, imageUrl, category)")
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, newError(Validation, "Description cannot exceed 100 characters")
	}
	category, ok := model.NormalizeCategory(in.Category)
	if !ok {
		return nil, newError(Validation, categoryMessage)
	}

	longDescription := strings.TrimSpace(in.LongDescription)
	if utf8.RuneCountInString(longDescription) > MaxLongDescriptionLength {
		return nil, newError(Validation, "Long description cannot exceed 1000 characters")
	}
	if in.Price == nil {
		return nil, newError(Validation, "Price is required")
	}
	if *in.Price < 0 {
		return nil, newError(Validation, "Price cannot be negative")
	}
	if in.DiscountPrice != nil && *in.DiscountPrice < 0 {
		return nil, newError(Validation, "Discount price cannot be negative")
	}

	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	switch currency {
	case "":
		currency = model.CurrencyNOK
	case model.CurrencyNOK, model.CurrencyEUR, model.CurrencyUSD:
	default:
		return nil, newError(Validation, "Currency must be one of NOK, EUR, USD")
	}

	stock := 0
	if in.Stock != nil {
		stock = *in.Stock
	}
	if stock < 0 {
		return nil, newError(Validation, "Stock cannot be negative")
	}
	if in.Rating < 0 || in.Rating > MaxRating {
		return nil, newError(Validation, "Rating must be between 0 and 5")
	}
	if in.NumReviews < 0 {
		return nil, newError(Validation, "Number of reviews cannot be negative")
	}

	sizes := in.Sizes
	if len(sizes) == 0 {
		sizes = append([]string(nil), model.DefaultSizes...)
	}
	colors := in.Colors
	if colors == nil {
		colors = []string{}
	}
	images := in.AdditionalImages
	if images == nil {
		images = []string{}
	}

	return &model.Product{
		Title:            title,
		Description:      description,
		LongDescription:  longDescription,
		Price:            *in.Price,
		DiscountPrice:    in.DiscountPrice,
		Currency:         currency,
		Category:         category,
		ImageURL:         imageURL,
		AdditionalImages: images,
		Stock:            stock,
		Sizes:            sizes,
		Colors:           colors,
		Featured:         in.Featured,
		Rating:           in.Rating,
		NumReviews:       in.NumReviews,
	}, nil
}

// ListProducts page 從 1 開始；未知的排序鍵退回最新優先
func (s *CatalogService) ListProducts(ctx context.Context, f ListFilter, sort string, page, limit int) (*Page, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	q := store.ProductQuery{
		Featured: f.Featured,
		MinPrice: f.MinPrice,
		MaxPrice: f.MaxPrice,
		Sort:     sort,
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}
	if f.Category != "" {
		q.Category, _ = model.NormalizeCategory(f.Category)
	}

	products, total, err := storeListProducts(ctx, s.db, q)
	if err != nil {
		return nil, internalError("list products", err)
	}
	return &Page{
		Products: products,
		Total:    total,
		Page:     page,
		Pages:    (total + limit - 1) / limit,
		Limit:    limit,
	}, nil
}

// ListByCategory 分類不在允許集合內時回 InvalidCategory
func (s *CatalogService) ListByCategory(ctx context.Context, category, sort string, page, limit int) (*Page, error) {
	c, ok := model.NormalizeCategory(category)
	if !ok {
		return nil, newError(InvalidCategory, categoryMessage)
	}
	return s.ListProducts(ctx, ListFilter{Category: c}, sort, page, limit)
}

// GetByID 無法解析的 id 與不存在的 id 同樣回 NotFound
func (s *CatalogService) GetByID(ctx context.Context, id string) (*model.Product, error) {
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, newError(NotFound, productNotFoundMsg)
	}
	p, err := storeGetProductByID(ctx, s.db, pid)
	if errors.Is(err, store.ErrNotFound) {
		return nil, newError(NotFound, productNotFoundMsg)
	}
	if err != nil {
		return nil, internalError("get product", err)
	}
	return p, nil
}

// ListNewest 最新商品，limit 預設 5
func (s *CatalogService) ListNewest(ctx context.Context, limit int) ([]model.Product, error) {
	return s.highlight(ctx, nil, limit)
}

// ListFeatured 精選商品，最新優先，limit 預設 5
func (s *CatalogService) ListFeatured(ctx context.Context, limit int) ([]model.Product, error) {
	featured := true
	return s.highlight(ctx, &featured, limit)
}

func (s *CatalogService) highlight(ctx context.Context, featured *bool, limit int) ([]model.Product, error) {
	if limit < 1 {
		limit = DefaultHighlightN
	}
	products, _, err := storeListProducts(ctx, s.db, store.ProductQuery{Featured: featured, Limit: limit})
	if err != nil {
		return nil, internalError("list products", err)
	}
	return products, nil
}

// UpdateStock 覆寫庫存數量，並發更新為 last-write-wins
func (s *CatalogService) UpdateStock(ctx context.Context, requesterRole model.Role, id string, stock *int) (*model.Product, error) {
	if stock == nil || *stock < 0 {
		return nil, newError(Validation, "Stock must be a non-negative number")
	}
	if requesterRole != model.RoleAdmin {
		return nil, newError(Forbidden, "Admin access required")
	}
	pid, err := uuid.Parse(id)
	if err != nil {
		return nil, newError(NotFound, productNotFoundMsg)
	}

	p, err := storeUpdateProductStock(ctx, s.db, pid, *stock)
	if errors.Is(err, store.ErrNotFound) {
		return nil, newError(NotFound, productNotFoundMsg)
	}
	if err != nil {
		return nil, internalError("update stock", err)
	}
	return p, nil
}
