// File: internal/handler/products/service.go
package products

import (
	"context"

	"storefront/internal/model"
	"storefront/internal/service"
)

// Catalog 為商品 handler 所需的服務介面，*service.CatalogService 實作
type Catalog interface {
	CreateProduct(ctx context.Context, requesterRole model.Role, in service.ProductInput) (*model.Product, error)
	ListProducts(ctx context.Context, f service.ListFilter, sort string, page, limit int) (*service.Page, error)
	ListByCategory(ctx context.Context, category, sort string, page, limit int) (*service.Page, error)
	GetByID(ctx context.Context, id string) (*model.Product, error)
	ListNewest(ctx context.Context, limit int) ([]model.Product, error)
	ListFeatured(ctx context.Context, limit int) ([]model.Product, error)
	UpdateStock(ctx context.Context, requesterRole model.Role, id string, stock *int) (*model.Product, error)
}
