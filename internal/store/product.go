package store

import (
	"context"
	"fmt"
	"strings"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// 排序鍵
const (
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortRating    = "rating"
)

const productColumns = `id, title, description, long_description, price, discount_price, currency,
	category, image_url, additional_images, stock, sizes, colors, featured, rating,
	num_reviews, created_at, updated_at`

// ProductQuery 商品查詢條件；nil / 空值代表不篩選
type ProductQuery struct {
	Featured *bool
	MinPrice *float64
	MaxPrice *float64
	Category string
	Sort     string
	Limit    int
	Offset   int
}

func (q ProductQuery) where() (string, []any) {
	var conds []string
	var args []any
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if q.Featured != nil {
		add("featured = $%d", *q.Featured)
	}
	if q.MinPrice != nil {
		add("price >= $%d", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		add("price <= $%d", *q.MaxPrice)
	}
	if q.Category != "" {
		add("category = $%d", q.Category)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// OrderBy 未知排序鍵一律退回最新優先
func OrderBy(sort string) string {
	switch sort {
	case SortPriceAsc:
		return "price ASC, created_at DESC"
	case SortPriceDesc:
		return "price DESC, created_at DESC"
	case SortRating:
		return "rating DESC, created_at DESC"
	default:
		return "created_at DESC"
	}
}

func scanProduct(row pgx.Row, p *model.Product) error {
	return row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.LongDescription,
		&p.Price,
		&p.DiscountPrice,
		&p.Currency,
		&p.Category,
		&p.ImageURL,
		&p.AdditionalImages,
		&p.Stock,
		&p.Sizes,
		&p.Colors,
		&p.Featured,
		&p.Rating,
		&p.NumReviews,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

func CreateProduct(ctx context.Context, db database.DB, p *model.Product) (*model.Product, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	row := db.QueryRow(ctx, `
        INSERT INTO products
            (id, title, description, long_description, price, discount_price, currency,
             category, image_url, additional_images, stock, sizes, colors, featured,
             rating, num_reviews)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
        RETURNING created_at, updated_at
    `,
		p.ID,
		p.Title,
		p.Description,
		p.LongDescription,
		p.Price,
		p.DiscountPrice,
		p.Currency,
		p.Category,
		p.ImageURL,
		p.AdditionalImages,
		p.Stock,
		p.Sizes,
		p.Colors,
		p.Featured,
		p.Rating,
		p.NumReviews,
	)
	if err := row.Scan(&p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateProduct: %w", translate(err))
	}
	return p, nil
}

func GetProductByID(ctx context.Context, db database.DB, id uuid.UUID) (*model.Product, error) {
	row := db.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	p := &model.Product{}
	if err := scanProduct(row, p); err != nil {
		return nil, fmt.Errorf("GetProductByID: %w", translate(err))
	}
	return p, nil
}

// UpdateProductStock 單列覆寫，並發更新為 last-write-wins
func UpdateProductStock(ctx context.Context, db database.DB, id uuid.UUID, stock int) (*model.Product, error) {
	row := db.QueryRow(ctx, `
        UPDATE products SET stock = $1, updated_at = now()
        WHERE id = $2
        RETURNING `+productColumns,
		stock,
		id,
	)
	p := &model.Product{}
	if err := scanProduct(row, p); err != nil {
		return nil, fmt.Errorf("UpdateProductStock: %w", translate(err))
	}
	return p, nil
}

// ListProducts 回傳該頁商品與符合條件的總數
func ListProducts(ctx context.Context, db database.DB, q ProductQuery) ([]model.Product, int, error) {
	where, args := q.where()

	var total int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM products`+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("ListProducts: count: %w", err)
	}

	sql := `SELECT ` + productColumns + ` FROM products` + where + ` ORDER BY ` + OrderBy(q.Sort)
	if q.Limit > 0 {
		args = append(args, q.Limit)
		sql += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if q.Offset > 0 {
		args = append(args, q.Offset)
		sql += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("ListProducts: %w", err)
	}
	defer rows.Close()

	products := []model.Product{}
	for rows.Next() {
		var p model.Product
		if err := scanProduct(rows, &p); err != nil {
			return nil, 0, fmt.Errorf("ListProducts: scan: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("ListProducts: %w", err)
	}
	return products, total, nil
}
