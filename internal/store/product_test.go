package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"storefront/internal/database"
	"storefront/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

func fillProduct(dest []any, p model.Product) {
	*dest[0].(*uuid.UUID) = p.ID
	*dest[1].(*string) = p.Title
	*dest[2].(*string) = p.Description
	*dest[3].(*string) = p.LongDescription
	*dest[4].(*float64) = p.Price
	*dest[5].(**float64) = p.DiscountPrice
	*dest[6].(*string) = p.Currency
	*dest[7].(*string) = p.Category
	*dest[8].(*string) = p.ImageURL
	*dest[9].(*[]string) = p.AdditionalImages
	*dest[10].(*int) = p.Stock
	*dest[11].(*[]string) = p.Sizes
	*dest[12].(*[]string) = p.Colors
	*dest[13].(*bool) = p.Featured
	*dest[14].(*float64) = p.Rating
	*dest[15].(*int) = p.NumReviews
	*dest[16].(*time.Time) = p.CreatedAt
	*dest[17].(*time.Time) = p.UpdatedAt
}

// fakeProductRow: 18 欄 → 完整商品；2 欄 → created_at, updated_at；1 欄 → count
type fakeProductRow struct {
	scanErr error
	product model.Product
	count   int
}

func (r *fakeProductRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	switch len(dest) {
	case 18:
		fillProduct(dest, r.product)
	case 2:
		*dest[0].(*time.Time) = r.product.CreatedAt
		*dest[1].(*time.Time) = r.product.UpdatedAt
	case 1:
		*dest[0].(*int) = r.count
	default:
		panic("fakeProductRow.Scan: unexpected dest count")
	}
	return nil
}

type fakeProductRows struct {
	data    []model.Product
	idx     int
	scanErr error
	err     error
}

func (r *fakeProductRows) Close()                                       {}
func (r *fakeProductRows) Err() error                                   { return r.err }
func (r *fakeProductRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeProductRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeProductRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeProductRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	fillProduct(dest, r.data[r.idx])
	r.idx++
	return nil
}
func (r *fakeProductRows) Values() ([]any, error) { return nil, nil }
func (r *fakeProductRows) RawValues() [][]byte    { return nil }
func (r *fakeProductRows) Conn() *pgx.Conn        { return nil }

/* ---------- 完整測試 ---------- */

func TestProductQueryWhere(t *testing.T) {
	where, args := ProductQuery{}.where()
	require.Empty(t, where)
	require.Empty(t, args)

	featured := true
	lo, hi := 100.0, 300.0
	where, args = ProductQuery{Featured: &featured, MinPrice: &lo, MaxPrice: &hi, Category: "genser"}.where()
	require.Equal(t, " WHERE featured = $1 AND price >= $2 AND price <= $3 AND category = $4", where)
	require.Equal(t, []any{true, 100.0, 300.0, "genser"}, args)
}

func TestOrderBy(t *testing.T) {
	require.Equal(t, "price ASC, created_at DESC", OrderBy(SortPriceAsc))
	require.Equal(t, "price DESC, created_at DESC", OrderBy(SortPriceDesc))
	require.Equal(t, "rating DESC, created_at DESC", OrderBy(SortRating))
	require.Equal(t, "created_at DESC", OrderBy(""))
	require.Equal(t, "created_at DESC", OrderBy("cheapest-first"))
}

func TestProductStore(t *testing.T) {
	now := time.Now().UTC()
	sample := model.Product{
		ID:          uuid.New(),
		Title:       "Anime Rock Star T-Shirt",
		Description: "Stylish T-shirt",
		Price:       299,
		Currency:    model.CurrencyNOK,
		Category:    model.CategoryTskjorte,
		ImageURL:    "https://cdn.example.com/a.jpg",
		Stock:       25,
		Sizes:       []string{"S", "M"},
		Colors:      []string{"Black"},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	t.Run("CreateProduct ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				require.Len(t, args, 16)
				return &fakeProductRow{product: sample}
			},
		}
		p := sample
		p.ID = uuid.Nil
		created, err := CreateProduct(context.Background(), db, &p)
		require.NoError(t, err)
		require.NotEqual(t, uuid.Nil, created.ID)
		require.Equal(t, now, created.CreatedAt)
	})

	t.Run("CreateProduct err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeProductRow{scanErr: errors.New("check violation")}
			},
		}
		p := sample
		_, err := CreateProduct(context.Background(), db, &p)
		require.Error(t, err)
	})

	t.Run("GetProductByID ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeProductRow{product: sample}
			},
		}
		p, err := GetProductByID(context.Background(), db, sample.ID)
		require.NoError(t, err)
		require.Equal(t, sample.Title, p.Title)
		require.Equal(t, 25, p.Stock)
	})

	t.Run("GetProductByID not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeProductRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetProductByID(context.Background(), db, uuid.New())
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("UpdateProductStock ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "RETURNING")
				require.Equal(t, 3, args[0])
				p := sample
				p.Stock = 3
				return &fakeProductRow{product: p}
			},
		}
		p, err := UpdateProductStock(context.Background(), db, sample.ID, 3)
		require.NoError(t, err)
		require.Equal(t, 3, p.Stock)
	})

	t.Run("UpdateProductStock not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeProductRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := UpdateProductStock(context.Background(), db, uuid.New(), 3)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("ListProducts ok", func(t *testing.T) {
		var listSQL string
		var listArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				require.Contains(t, sql, "count(*)")
				return &fakeProductRow{count: 7}
			},
			QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
				listSQL, listArgs = sql, args
				return &fakeProductRows{data: []model.Product{sample, sample}}, nil
			},
		}
		list, total, err := ListProducts(context.Background(), db, ProductQuery{
			Category: "tskjorte", Sort: SortPriceAsc, Limit: 2, Offset: 2,
		})
		require.NoError(t, err)
		require.Equal(t, 7, total)
		require.Len(t, list, 2)
		require.Contains(t, listSQL, "WHERE category = $1 ORDER BY price ASC, created_at DESC LIMIT $2 OFFSET $3")
		require.Equal(t, []any{"tskjorte", 2, 2}, listArgs)
	})

	t.Run("ListProducts empty", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeProductRow{count: 0}
			},
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeProductRows{}, nil
			},
		}
		list, total, err := ListProducts(context.Background(), db, ProductQuery{Limit: 5})
		require.NoError(t, err)
		require.Zero(t, total)
		require.NotNil(t, list)
		require.Empty(t, list)
	})

	t.Run("ListProducts count err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeProductRow{scanErr: errors.New("count fail")}
			},
		}
		_, _, err := ListProducts(context.Background(), db, ProductQuery{})
		require.Error(t, err)
	})

	t.Run("ListProducts query err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeProductRow{count: 1}
			},
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("database fail")
			},
		}
		_, _, err := ListProducts(context.Background(), db, ProductQuery{})
		require.Error(t, err)
	})

	t.Run("ListProducts scan err", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeProductRow{count: 1}
			},
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeProductRows{data: []model.Product{sample}, scanErr: errors.New("scan fail")}, nil
			},
		}
		_, _, err := ListProducts(context.Background(), db, ProductQuery{})
		require.Error(t, err)
	})
}
