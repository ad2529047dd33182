package service

import (
	"sync"

	"checky/internal/core/ports"
	"checky/pkg/logger"

	"github.com/rs/zerolog"
)

// SessionRegistryImpl implements ports.SessionRegistry. Sessions live for
// the process lifetime; every customer starts with a wallet built from the
// same options.
type SessionRegistryImpl struct {
	catalog ports.CatalogRepository
	wallet  WalletOptions
	log     zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*ports.ShopperSession
}

func NewSessionRegistry(catalog ports.CatalogRepository, wallet WalletOptions, log zerolog.Logger) *SessionRegistryImpl {
	return &SessionRegistryImpl{
		catalog:  catalog,
		wallet:   wallet,
		log:      log,
		sessions: make(map[string]*ports.ShopperSession),
	}
}

// Session returns userID's session, building it on first use.
func (r *SessionRegistryImpl) Session(userID string) *ports.ShopperSession {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sessions[userID]; ok {
		return s
	}

	log := r.log.With().Str("user_id", userID).Logger()
	wallet := NewWalletService(r.wallet, logger.Component(log, "wallet"))
	basket := NewBasketService(logger.Component(log, "basket"))
	receipts := NewReceiptService(logger.Component(log, "receipts"))
	s := &ports.ShopperSession{
		Wallet:   wallet,
		Basket:   basket,
		Stores:   NewStoreService(r.catalog, basket, logger.Component(log, "stores")),
		Checkout: NewCheckoutService(wallet, basket, receipts, r.catalog, logger.Component(log, "checkout")),
		Receipts: receipts,
	}
	r.sessions[userID] = s

	log.Info().Int("sessions", len(r.sessions)).Msg("shopper session opened")
	return s
}
