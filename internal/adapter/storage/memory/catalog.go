package memory

import (
	"context"
	"strings"

	"checky/internal/core/domain"
)

// CatalogRepo implements ports.CatalogRepository over a fixed dataset.
// The data never changes after construction, so reads take no lock.
type CatalogRepo struct {
	stores   []domain.Store
	products []domain.Product
}

// NewCatalogRepo creates a catalog holding copies of stores and products.
func NewCatalogRepo(stores []domain.Store, products []domain.Product) *CatalogRepo {
	return &CatalogRepo{
		stores:   append([]domain.Store(nil), stores...),
		products: append([]domain.Product(nil), products...),
	}
}

func (r *CatalogRepo) ListStores(ctx context.Context) ([]domain.Store, error) {
	return append([]domain.Store(nil), r.stores...), nil
}

// GetStore matches storeID case-insensitively, so STORE_001 finds store_001.
func (r *CatalogRepo) GetStore(ctx context.Context, storeID string) (*domain.Store, error) {
	for i := range r.stores {
		if strings.EqualFold(r.stores[i].StoreID, storeID) {
			s := r.stores[i]
			return &s, nil
		}
	}
	return nil, nil
}

func (r *CatalogRepo) ListProducts(ctx context.Context, storeID string) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		if storeID == "" || strings.EqualFold(p.StoreID, storeID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *CatalogRepo) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	for i := range r.products {
		if r.products[i].ProductID == productID {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, nil
}
