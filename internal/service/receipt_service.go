package service

import (
	"sync"
	"time"

	"checky/internal/core/domain"
	"checky/pkg/apperror"

	"github.com/rs/zerolog"
)

// ReceiptServiceImpl implements ports.ReceiptService. Receipts are append-only.
type ReceiptServiceImpl struct {
	mu       sync.Mutex
	receipts []*domain.Receipt // oldest first
	log      zerolog.Logger
}

func NewReceiptService(log zerolog.Logger) *ReceiptServiceImpl {
	return &ReceiptServiceImpl{log: log}
}

// Create stores a receipt holding its own copy of input.Items.
func (s *ReceiptServiceImpl) Create(input domain.ReceiptInput) *domain.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	r := &domain.Receipt{
		ID:        receiptID(now, nextSeq()),
		StoreID:   input.StoreID,
		StoreName: input.StoreName,
		Total:     input.Total,
		Items:     domain.CopyItems(input.Items),
		ExitQR:    input.ExitQR,
		CreatedAt: now,
	}
	s.receipts = append(s.receipts, r)

	s.log.Info().
		Str("receipt_id", r.ID).
		Str("store_id", r.StoreID).
		Int64("total", r.Total).
		Msg("receipt created")

	return r.Clone()
}

func (s *ReceiptServiceImpl) GetByID(id string) (*domain.Receipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.receipts {
		if r.ID == id {
			return r.Clone(), nil
		}
	}
	return nil, apperror.ErrNotFound("Receipt")
}

// List returns every receipt, most recent first.
func (s *ReceiptServiceImpl) List() []domain.Receipt {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Receipt, 0, len(s.receipts))
	for i := len(s.receipts) - 1; i >= 0; i-- {
		out = append(out, *s.receipts[i].Clone())
	}
	return out
}
