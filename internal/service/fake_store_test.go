package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"
	"time"

	"storefront/internal/database"
	"storefront/internal/model"
	"storefront/internal/store"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// memStore 以記憶體取代 store 層函式
type memStore struct {
	mu       sync.Mutex
	users    map[string]*model.User
	products []model.Product
	clock    time.Time
	err      error
}

func newMemStore(t *testing.T) *memStore {
	m := &memStore{
		users: map[string]*model.User{},
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	storeCreateUser = m.createUser
	storeGetUserByEmail = m.getUserByEmail
	storeUpdateUserRole = m.updateUserRole
	storeCreateProduct = m.createProduct
	storeGetProductByID = m.getProductByID
	storeUpdateProductStock = m.updateProductStock
	storeListProducts = m.listProducts

	t.Cleanup(func() {
		storeCreateUser = store.CreateUser
		storeGetUserByEmail = store.GetUserByEmail
		storeUpdateUserRole = store.UpdateUserRole
		storeCreateProduct = store.CreateProduct
		storeGetProductByID = store.GetProductByID
		storeUpdateProductStock = store.UpdateProductStock
		storeListProducts = store.ListProducts
	})
	return m
}

func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Minute)
	return m.clock
}

func (m *memStore) createUser(_ context.Context, _ database.DB, u *model.User) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if _, ok := m.users[u.Email]; ok {
		return nil, store.ErrDuplicate
	}
	cp := *u
	cp.ID = uuid.New()
	cp.CreatedAt = m.tick()
	cp.UpdatedAt = cp.CreatedAt
	m.users[u.Email] = &cp
	out := cp
	return &out, nil
}

func (m *memStore) getUserByEmail(_ context.Context, _ database.DB, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.users[email]
	if !ok {
		return nil, store.ErrNotFound
	}
	out := *u
	return &out, nil
}

func (m *memStore) updateUserRole(_ context.Context, _ database.DB, id uuid.UUID, role model.Role) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			u.Role = role
			return nil
		}
	}
	return store.ErrNotFound
}

// seedUser 直接寫入已雜湊密碼的使用者
func (m *memStore) seedUser(t *testing.T, email, password string, role model.Role) *model.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	u, err := m.createUser(context.Background(), nil, &model.User{Name: "seed", Email: email, PasswordHash: string(hash), Role: role})
	if err != nil {
		t.Fatal(err)
	}
	return u
}

func (m *memStore) createProduct(_ context.Context, _ database.DB, p *model.Product) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	cp := *p
	if cp.ID == uuid.Nil {
		cp.ID = uuid.New()
	}
	cp.CreatedAt = m.tick()
	cp.UpdatedAt = cp.CreatedAt
	m.products = append(m.products, cp)
	return &cp, nil
}

func (m *memStore) getProductByID(_ context.Context, _ database.DB, id uuid.UUID) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ID == id {
			out := p
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) updateProductStock(_ context.Context, _ database.DB, id uuid.UUID, stock int) (*model.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			m.products[i].Stock = stock
			m.products[i].UpdatedAt = m.tick()
			out := m.products[i]
			return &out, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memStore) listProducts(_ context.Context, _ database.DB, q store.ProductQuery) ([]model.Product, int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, 0, m.err
	}

	matched := []model.Product{}
	for _, p := range m.products {
		if q.Featured != nil && p.Featured != *q.Featured {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		matched = append(matched, p)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		switch q.Sort {
		case store.SortPriceAsc:
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		case store.SortPriceDesc:
			if a.Price != b.Price {
				return a.Price > b.Price
			}
		case store.SortRating:
			if a.Rating != b.Rating {
				return a.Rating > b.Rating
			}
		}
		return a.CreatedAt.After(b.CreatedAt)
	})

	total := len(matched)
	start := q.Offset
	if start > total {
		start = total
	}
	end := total
	if q.Limit > 0 && start+q.Limit < end {
		end = start + q.Limit
	}
	return matched[start:end], total, nil
}

var errStoreDown = errors.New("connection refused")
