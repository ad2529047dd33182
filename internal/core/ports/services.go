package ports

import (
	"context"
	"time"

	"checky/internal/core/domain"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenKind separates customer sessions from staff sessions.
type TokenKind string

const (
	TokenKindCustomer TokenKind = "customer"
	TokenKindStaff    TokenKind = "staff"
)

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(subject string, kind TokenKind, role string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Subject string
	Kind    TokenKind
	Role    string
}

// RateLimiter counts requests per key in fixed windows.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp
}

// --- Service Ports (Business Logic) ---

// WalletService is the in-memory wallet ledger.
// Credit and Debit block for the simulated settlement latency; if ctx ends
// first they return ctx.Err() while the movement still settles.
type WalletService interface {
	Balance() int64
	Transactions() []domain.WalletTransaction
	Credit(ctx context.Context, amount int64) (*domain.WalletTransaction, error)
	TopUp(ctx context.Context, amount int64) (*domain.WalletTransaction, error)
	Debit(ctx context.Context, amount int64, description string) (*DebitResult, error)
}

// DebitResult reports the outcome of a debit. Insufficient funds is OK=false,
// never an error; the failed entry is still recorded.
type DebitResult struct {
	Transaction domain.WalletTransaction
	OK          bool
}

// BasketService is the shopper's single-store basket.
type BasketService interface {
	Initialize(storeID string)
	AddItem(product domain.Product)
	SetQuantity(productID string, quantity int)
	RemoveItem(productID string)
	Clear()
	Deduct(paid domain.BasketSnapshot)
	Items() []domain.BasketItem
	Total() int64
	ItemCount() int
	StoreID() string
	Snapshot() domain.BasketSnapshot
}

// ReceiptService stores receipts of completed purchases.
type ReceiptService interface {
	Create(input domain.ReceiptInput) *domain.Receipt
	GetByID(id string) (*domain.Receipt, error)
	List() []domain.Receipt
}

// StoreService tracks which store the shopper is in and resolves scans.
type StoreService interface {
	Enter(ctx context.Context, code string) (*domain.Store, error)
	Leave()
	Current() (*domain.Store, bool)
	ScanProduct(ctx context.Context, code string) (*domain.Product, error)
}

// CheckoutService pays for the basket and issues the receipt.
type CheckoutService interface {
	Checkout(ctx context.Context) (*CheckoutResult, error)
}

// CheckoutResult holds the artefacts of a successful checkout.
type CheckoutResult struct {
	Receipt     *domain.Receipt
	Transaction domain.WalletTransaction
}

// ShopperSession is one customer's wallet, basket, store session, checkout
// and receipts. Nothing in it is shared with other customers.
type ShopperSession struct {
	Wallet   WalletService
	Basket   BasketService
	Stores   StoreService
	Checkout CheckoutService
	Receipts ReceiptService
}

// SessionRegistry hands out the shopper session owned by a customer id,
// creating it on first use. It always returns the same session for an id.
type SessionRegistry interface {
	Session(userID string) *ShopperSession
}

// StaffService backs the staff app: login, exit-gate checks and inventory.
type StaffService interface {
	Login(ctx context.Context, email, password string) (*StaffSession, error)
	Profile(ctx context.Context, staffID string) (*domain.StaffUser, error)
	VerifyOrder(ctx context.Context, orderID string) (*OrderVerification, error)
	Inventory(ctx context.Context, query string) ([]domain.Product, error)
}

// StaffSession is returned by a successful staff login.
type StaffSession struct {
	Staff     *domain.StaffUser
	Token     string
	ExpiresAt time.Time
}

// OrderVerification is the gate decision for a scanned order id.
type OrderVerification struct {
	OrderID string
	Status  domain.VerificationStatus
	Order   *domain.StaffOrder // nil when the order is unknown
}

// AuthService defines customer account logic.
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*AuthSession, error)
	Login(ctx context.Context, email, password string) (*AuthSession, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, update domain.ProfileUpdate) (*domain.User, error)
}

// SignupRequest holds input for customer registration.
type SignupRequest struct {
	Name     string
	Email    string
	Phone    string
	Password string
}

// AuthSession is returned by a successful customer login or signup.
type AuthSession struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}
