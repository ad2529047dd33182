package service

import (
	"context"
	"sync"
	"time"

	"checky/internal/core/domain"
	"checky/internal/core/ports"
	"checky/pkg/apperror"
	"checky/pkg/async"

	"github.com/rs/zerolog"
)

// WalletOptions configures the in-memory ledger.
type WalletOptions struct {
	InitialBalance int64
	MinTopUp       int64
	Latency        time.Duration
	SeedHistory    bool
}

// WalletServiceImpl implements ports.WalletService.
// Entries are stored oldest first and reversed on read.
type WalletServiceImpl struct {
	mu       sync.Mutex
	balance  int64
	entries  []domain.WalletTransaction
	minTopUp int64
	latency  time.Duration
	log      zerolog.Logger
}

// NewWalletService creates a wallet holding opts.InitialBalance.
func NewWalletService(opts WalletOptions, log zerolog.Logger) *WalletServiceImpl {
	s := &WalletServiceImpl{
		balance:  opts.InitialBalance,
		minTopUp: opts.MinTopUp,
		latency:  opts.Latency,
		log:      log,
	}
	if opts.SeedHistory {
		s.entries = demoHistory(time.Now())
	}
	return s
}

// demoHistory is display-only history; it does not affect the opening balance.
func demoHistory(now time.Time) []domain.WalletTransaction {
	day := 24 * time.Hour
	return []domain.WalletTransaction{
		{
			ID: "TXN_INIT_001", Type: domain.TransactionTypeCredit, Amount: 50000,
			Description: "Welcome bonus", Timestamp: now.Add(-7 * day),
			Status: domain.TransactionStatusCompleted, Reference: "INIT_BONUS",
		},
		{
			ID: "TXN_SHOP_001", Type: domain.TransactionTypeDebit, Amount: 12750,
			Description: "MegaMart Lekki - Shopping", Timestamp: now.Add(-2 * day),
			Status: domain.TransactionStatusCompleted, Reference: "EXIT_TXN_001",
		},
		{
			ID: "TXN_SHOP_002", Type: domain.TransactionTypeDebit, Amount: 5480,
			Description: "FreshGrocer Victoria - Shopping", Timestamp: now.Add(-1 * day),
			Status: domain.TransactionStatusCompleted, Reference: "EXIT_TXN_002",
		},
	}
}

func (s *WalletServiceImpl) Balance() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.balance
}

// Transactions returns a copy of the ledger, most recent first.
func (s *WalletServiceImpl) Transactions() []domain.WalletTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.WalletTransaction, len(s.entries))
	for i, tx := range s.entries {
		out[len(s.entries)-1-i] = tx
	}
	return out
}

// CreditAsync schedules a credit. A non-positive amount resolves immediately with
// an invalid-amount error and records nothing.
func (s *WalletServiceImpl) CreditAsync(amount int64) *async.Future[*domain.WalletTransaction] {
	if amount <= 0 {
		return async.Resolved[*domain.WalletTransaction](nil, apperror.ErrInvalidAmount())
	}
	return async.Go(s.latency, func() (*domain.WalletTransaction, error) {
		return s.applyCredit(amount), nil
	})
}

// Credit adds amount to the balance once the simulated settlement completes.
func (s *WalletServiceImpl) Credit(ctx context.Context, amount int64) (*domain.WalletTransaction, error) {
	return s.CreditAsync(amount).Await(ctx)
}

// TopUp validates a customer top-up against the configured minimum before crediting.
func (s *WalletServiceImpl) TopUp(ctx context.Context, amount int64) (*domain.WalletTransaction, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}
	if amount < s.minTopUp {
		return nil, apperror.ErrTopupBelowMinimum(s.minTopUp)
	}
	return s.Credit(ctx, amount)
}

// DebitAsync schedules a debit. The balance check runs at settlement time.
func (s *WalletServiceImpl) DebitAsync(amount int64, description string) *async.Future[*ports.DebitResult] {
	if amount <= 0 {
		return async.Resolved[*ports.DebitResult](nil, apperror.ErrInvalidAmount())
	}
	return async.Go(s.latency, func() (*ports.DebitResult, error) {
		return s.applyDebit(amount, description), nil
	})
}

// Debit removes amount from the balance if it is covered. An uncovered debit is
// recorded as failed and reported with OK=false.
func (s *WalletServiceImpl) Debit(ctx context.Context, amount int64, description string) (*ports.DebitResult, error) {
	return s.DebitAsync(amount, description).Await(ctx)
}

func (s *WalletServiceImpl) applyCredit(amount int64) *domain.WalletTransaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	seq := nextSeq()
	tx := domain.WalletTransaction{
		ID:          stampedID("TXN_CREDIT", now, seq),
		Type:        domain.TransactionTypeCredit,
		Amount:      amount,
		Description: domain.TopUpDescription,
		Timestamp:   now,
		Status:      domain.TransactionStatusCompleted,
		Reference:   stampedID("TOP_UP", now, seq),
	}
	s.balance += amount
	s.entries = append(s.entries, tx)

	s.log.Info().
		Str("tx_id", tx.ID).
		Int64("amount", amount).
		Int64("balance", s.balance).
		Msg("wallet credited")

	return &tx
}

func (s *WalletServiceImpl) applyDebit(amount int64, description string) *ports.DebitResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	seq := nextSeq()

	if s.balance < amount {
		tx := domain.WalletTransaction{
			ID:          stampedID("TXN_FAILED", now, seq),
			Type:        domain.TransactionTypeDebit,
			Amount:      amount,
			Description: description + domain.InsufficientFundsSuffix,
			Timestamp:   now,
			Status:      domain.TransactionStatusFailed,
		}
		s.entries = append(s.entries, tx)

		s.log.Warn().
			Str("tx_id", tx.ID).
			Int64("amount", amount).
			Int64("balance", s.balance).
			Msg("debit rejected: insufficient funds")

		return &ports.DebitResult{Transaction: tx, OK: false}
	}

	tx := domain.WalletTransaction{
		ID:          stampedID("TXN_DEBIT", now, seq),
		Type:        domain.TransactionTypeDebit,
		Amount:      amount,
		Description: description,
		Timestamp:   now,
		Status:      domain.TransactionStatusCompleted,
		Reference:   stampedID("PAYMENT", now, seq),
	}
	s.balance -= amount
	s.entries = append(s.entries, tx)

	s.log.Info().
		Str("tx_id", tx.ID).
		Int64("amount", amount).
		Int64("balance", s.balance).
		Msg("wallet debited")

	return &ports.DebitResult{Transaction: tx, OK: true}
}
