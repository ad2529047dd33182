package service

import (
	"context"
	"fmt"
	"sync"

	"checky/internal/core/domain"
	"checky/internal/core/ports"
	"checky/pkg/apperror"
	"checky/pkg/qrcode"

	"github.com/rs/zerolog"
)

// PurchaseDescription is recorded on every checkout debit.
const PurchaseDescription = "Purchase"

// CheckoutServiceImpl implements ports.CheckoutService.
type CheckoutServiceImpl struct {
	wallet   ports.WalletService
	basket   ports.BasketService
	receipts ports.ReceiptService
	catalog  ports.CatalogRepository
	log      zerolog.Logger

	// mu serialises checkouts so one basket cannot be paid for twice.
	mu sync.Mutex
}

func NewCheckoutService(
	wallet ports.WalletService,
	basket ports.BasketService,
	receipts ports.ReceiptService,
	catalog ports.CatalogRepository,
	log zerolog.Logger,
) *CheckoutServiceImpl {
	return &CheckoutServiceImpl{
		wallet:   wallet,
		basket:   basket,
		receipts: receipts,
		catalog:  catalog,
		log:      log,
	}
}

// Checkout debits the basket total, issues the exit QR and receipt, then
// removes the paid lines from the basket. Once the debit starts it runs to completion even if
// ctx is cancelled, so a settled payment always yields a receipt.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context) (*ports.CheckoutResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := s.basket.Snapshot()
	if len(snap.Items) == 0 {
		return nil, apperror.ErrBasketEmpty()
	}

	res, err := s.wallet.Debit(context.WithoutCancel(ctx), snap.Total, PurchaseDescription)
	if err != nil {
		return nil, err
	}
	if !res.OK {
		s.log.Info().
			Str("tx_id", res.Transaction.ID).
			Int64("total", snap.Total).
			Msg("checkout declined: insufficient funds")
		return nil, apperror.ErrInsufficientFunds()
	}

	storeName := s.storeName(ctx, snap.StoreID)
	receipt := s.receipts.Create(domain.ReceiptInput{
		StoreID:   snap.StoreID,
		StoreName: storeName,
		Total:     snap.Total,
		Items:     snap.Items,
		ExitQR:    qrcode.NewExitQR(res.Transaction.ID),
	})
	s.basket.Deduct(snap)

	s.log.Info().
		Str("receipt_id", receipt.ID).
		Str("tx_id", res.Transaction.ID).
		Str("store_id", snap.StoreID).
		Int64("total", snap.Total).
		Int("items", snap.ItemCount).
		Msg("checkout completed")

	return &ports.CheckoutResult{Receipt: receipt, Transaction: res.Transaction}, nil
}

// storeName is best effort; a receipt without a store name is still valid.
func (s *CheckoutServiceImpl) storeName(ctx context.Context, storeID string) string {
	if storeID == "" {
		return ""
	}
	store, err := s.catalog.GetStore(context.WithoutCancel(ctx), storeID)
	if err != nil {
		s.log.Warn().Err(fmt.Errorf("lookup store %s: %w", storeID, err)).Msg("receipt issued without store name")
		return ""
	}
	if store == nil {
		return ""
	}
	return store.Name
}
