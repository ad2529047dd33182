package domain

import "time"

// TransactionType represents the direction of a wallet movement.
type TransactionType string

const (
	TransactionTypeCredit TransactionType = "credit"
	TransactionTypeDebit  TransactionType = "debit"
)

// TransactionStatus represents the lifecycle state of a wallet transaction.
type TransactionStatus string

const (
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusFailed    TransactionStatus = "failed"
)

const (
	// TopUpDescription is recorded on every credit.
	TopUpDescription = "Wallet top-up"
	// InsufficientFundsSuffix is appended to the description of a rejected debit.
	InsufficientFundsSuffix = " (Insufficient funds)"
)

// WalletTransaction is an immutable ledger entry.
type WalletTransaction struct {
	ID          string            `json:"id"`
	Type        TransactionType   `json:"type"`
	Amount      int64             `json:"amount"` // whole naira, always > 0
	Description string            `json:"description"`
	Timestamp   time.Time         `json:"timestamp"`
	Status      TransactionStatus `json:"status"`
	Reference   string            `json:"reference,omitempty"`
}

// IsCompleted returns true if the movement was applied to the balance.
func (t *WalletTransaction) IsCompleted() bool {
	return t.Status == TransactionStatusCompleted
}

// BalanceEffect returns the signed amount this entry applied to the balance.
func (t *WalletTransaction) BalanceEffect() int64 {
	if !t.IsCompleted() {
		return 0
	}
	if t.Type == TransactionTypeDebit {
		return -t.Amount
	}
	return t.Amount
}
