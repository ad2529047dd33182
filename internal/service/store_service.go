package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"checky/internal/core/domain"
	"checky/internal/core/ports"
	"checky/pkg/apperror"
	"checky/pkg/qrcode"

	"github.com/rs/zerolog"
)

// StoreServiceImpl implements ports.StoreService.
type StoreServiceImpl struct {
	catalog ports.CatalogRepository
	basket  ports.BasketService
	log     zerolog.Logger

	mu      sync.Mutex
	current *domain.Store
}

func NewStoreService(catalog ports.CatalogRepository, basket ports.BasketService, log zerolog.Logger) *StoreServiceImpl {
	return &StoreServiceImpl{
		catalog: catalog,
		basket:  basket,
		log:     log,
	}
}

// Enter resolves code to an approved store, makes it current and binds a
// fresh basket to it.
func (s *StoreServiceImpl) Enter(ctx context.Context, code string) (*domain.Store, error) {
	store, err := s.resolveStore(ctx, strings.TrimSpace(code))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("resolve store: %w", err))
	}
	if store == nil {
		return nil, apperror.ErrStoreNotRecognized()
	}
	if !store.IsApproved() {
		return nil, apperror.ErrStoreNotAvailable(string(store.Status))
	}

	s.mu.Lock()
	s.current = store
	s.mu.Unlock()
	s.basket.Initialize(store.StoreID)

	s.log.Info().Str("store_id", store.StoreID).Msg("shopper entered store")

	c := *store
	return &c, nil
}

// resolveStore tries, in order: an entrance QR token, an exact store id, then
// any id, QR or name fragment match.
func (s *StoreServiceImpl) resolveStore(ctx context.Context, code string) (*domain.Store, error) {
	if code == "" {
		return nil, nil
	}

	if id, ok := qrcode.ExtractStoreID(strings.ToUpper(code)); ok {
		store, err := s.catalog.GetStore(ctx, id)
		if err != nil || store != nil {
			return store, err
		}
	}

	store, err := s.catalog.GetStore(ctx, code)
	if err != nil || store != nil {
		return store, err
	}

	stores, err := s.catalog.ListStores(ctx)
	if err != nil {
		return nil, err
	}
	for i := range stores {
		if stores[i].MatchesCode(code) {
			return &stores[i], nil
		}
	}
	return nil, nil
}

func (s *StoreServiceImpl) Leave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.log.Info().Str("store_id", s.current.StoreID).Msg("shopper left store")
	}
	s.current = nil
}

func (s *StoreServiceImpl) Current() (*domain.Store, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil, false
	}
	c := *s.current
	return &c, true
}

// ScanProduct resolves code against the current store's products by barcode,
// product number or product id, and adds the match to the basket.
func (s *StoreServiceImpl) ScanProduct(ctx context.Context, code string) (*domain.Product, error) {
	store, ok := s.Current()
	if !ok {
		return nil, apperror.ErrNoActiveStore()
	}

	code = strings.TrimSpace(code)
	products, err := s.catalog.ListProducts(ctx, store.StoreID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list products: %w", err))
	}

	for i := range products {
		if products[i].MatchesCode(code) {
			p := products[i]
			s.basket.AddItem(p)
			s.log.Debug().
				Str("store_id", store.StoreID).
				Str("product_id", p.ProductID).
				Msg("product scanned")
			return &p, nil
		}
	}
	return nil, apperror.ErrProductNotInStore()
}
