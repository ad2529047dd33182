package ports

import (
	"context"

	"checky/internal/core/domain"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// Lookups return (nil, nil) when the record does not exist.

// CatalogRepository exposes the static store and product dataset.
type CatalogRepository interface {
	ListStores(ctx context.Context) ([]domain.Store, error)
	GetStore(ctx context.Context, storeID string) (*domain.Store, error)
	// ListProducts returns the products of storeID, or every product when storeID is empty.
	ListProducts(ctx context.Context, storeID string) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
}

// OrderRepository exposes the static staff order table.
type OrderRepository interface {
	GetByID(ctx context.Context, id string) (*domain.StaffOrder, error)
}

// StaffRepository defines lookups for staff accounts.
type StaffRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error)
	GetByID(ctx context.Context, id string) (*domain.StaffUser, error)
}

// UserRepository defines storage operations for customer accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
