package service

import (
	"sync"

	"checky/internal/core/domain"

	"github.com/rs/zerolog"
)

// BasketServiceImpl implements ports.BasketService.
// Totals are never stored; they are recomputed from items on every read.
type BasketServiceImpl struct {
	mu      sync.Mutex
	storeID string
	items   []domain.BasketItem
	log     zerolog.Logger
}

func NewBasketService(log zerolog.Logger) *BasketServiceImpl {
	return &BasketServiceImpl{log: log}
}

// Initialize empties the basket and binds it to storeID.
func (s *BasketServiceImpl) Initialize(storeID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeID = storeID
	s.items = nil
}

// AddItem adds one unit of product. A product from a different store replaces
// the basket contents and rebinds it.
func (s *BasketServiceImpl) AddItem(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storeID != product.StoreID {
		if len(s.items) > 0 {
			s.log.Debug().
				Str("from_store", s.storeID).
				Str("to_store", product.StoreID).
				Msg("basket rebound to new store")
		}
		s.storeID = product.StoreID
		s.items = nil
	}

	for i := range s.items {
		if s.items[i].ProductID == product.ProductID {
			s.items[i].Quantity++
			return
		}
	}
	s.items = append(s.items, product.ToBasketItem())
}

// SetQuantity sets a line's quantity; quantity <= 0 removes the line.
// Unknown product ids are ignored.
func (s *BasketServiceImpl) SetQuantity(productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ProductID != productID {
			continue
		}
		if quantity <= 0 {
			s.items = append(s.items[:i], s.items[i+1:]...)
		} else {
			s.items[i].Quantity = quantity
		}
		return
	}
}

func (s *BasketServiceImpl) RemoveItem(productID string) {
	s.SetQuantity(productID, 0)
}

// Clear empties the basket and unbinds it from its store.
func (s *BasketServiceImpl) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeID = ""
	s.items = nil
}

// Deduct removes the quantities recorded in paid. Lines added after paid was
// taken stay in the basket, and the store binding is dropped only when nothing
// is left. A basket rebound to another store in the meantime is untouched.
func (s *BasketServiceImpl) Deduct(paid domain.BasketSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.storeID != paid.StoreID {
		return
	}

	owed := make(map[string]int, len(paid.Items))
	for _, it := range paid.Items {
		owed[it.ProductID] += it.Quantity
	}

	kept := s.items[:0]
	for _, it := range s.items {
		it.Quantity -= owed[it.ProductID]
		if it.Quantity > 0 {
			kept = append(kept, it)
		}
	}
	s.items = kept

	if len(s.items) == 0 {
		s.items = nil
		s.storeID = ""
		return
	}
	s.log.Debug().
		Str("store_id", s.storeID).
		Int("lines_left", len(s.items)).
		Msg("basket kept items scanned during checkout")
}

func (s *BasketServiceImpl) Items() []domain.BasketItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CopyItems(s.items)
}

func (s *BasketServiceImpl) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total, _ := domain.SumItems(s.items)
	return total
}

func (s *BasketServiceImpl) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, count := domain.SumItems(s.items)
	return count
}

func (s *BasketServiceImpl) StoreID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.storeID
}

// Snapshot reads items, totals and store binding under one lock.
func (s *BasketServiceImpl) Snapshot() domain.BasketSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	total, count := domain.SumItems(s.items)
	return domain.BasketSnapshot{
		StoreID:   s.storeID,
		Items:     domain.CopyItems(s.items),
		Total:     total,
		ItemCount: count,
	}
}
