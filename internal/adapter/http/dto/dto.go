package dto

import (
	"checky/internal/core/domain"
)

// SignupRequest is the request body for customer signup.
type SignupRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Email    string `json:"email" binding:"required,email,max=254"`
	Phone    string `json:"phone" binding:"required,min=5,max=20"`
	Password string `json:"password" binding:"required,min=8,max=128"`
}

// LoginRequest is the request body for customer and staff login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest is the request body for PATCH /auth/me.
// Omitted fields are left untouched.
type UpdateProfileRequest struct {
	Name   *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Phone  *string `json:"phone,omitempty" binding:"omitempty,min=5,max=20"`
	Avatar *string `json:"avatar,omitempty" binding:"omitempty,safe_url"`
}

// SessionResponse is returned by every login and signup.
type SessionResponse struct {
	Token     string            `json:"token"`
	ExpiresAt int64             `json:"expires_at"` // Unix timestamp
	User      *domain.User      `json:"user,omitempty"`
	Staff     *domain.StaffUser `json:"staff,omitempty"`
}

// TopupRequest is the request body for wallet top-up.
type TopupRequest struct {
	Amount int64 `json:"amount" binding:"required,gt=0"`
}

// DebitRequest is the request body for a raw wallet debit.
type DebitRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"max=100"`
}

// WalletBalanceResponse is the response for balance query.
type WalletBalanceResponse struct {
	Balance  int64  `json:"balance"`
	Currency string `json:"currency"`
}

// TransactionListResponse wraps the wallet ledger, newest first.
type TransactionListResponse struct {
	Items []domain.WalletTransaction `json:"items"`
	Total int                        `json:"total"`
}

// EnterStoreRequest is the request body for entering a store.
type EnterStoreRequest struct {
	Code string `json:"code" binding:"required,store_code"`
}

// CurrentStoreResponse reports the store the shopper is in, if any.
type CurrentStoreResponse struct {
	Active bool          `json:"active"`
	Store  *domain.Store `json:"store,omitempty"`
}

// ScanRequest is the request body for scanning a product code.
type ScanRequest struct {
	Code string `json:"code" binding:"required,product_code"`
}

// ProductURI binds the :product_id path parameter.
type ProductURI struct {
	ProductID string `uri:"product_id" binding:"required,safe_id"`
}

// SetQuantityRequest is the request body for PUT /basket/items/:product_id.
// Zero or negative quantities remove the line.
type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// ScanResponse is returned after a product was added to the basket.
type ScanResponse struct {
	Product domain.Product        `json:"product"`
	Basket  domain.BasketSnapshot `json:"basket"`
}

// CheckoutResponse is returned by a successful checkout.
type CheckoutResponse struct {
	Receipt     *domain.Receipt          `json:"receipt"`
	Transaction domain.WalletTransaction `json:"transaction"`
}

// StoreQRResponse carries a generated store entrance code.
type StoreQRResponse struct {
	StoreID string `json:"store_id"`
	Code    string `json:"code"`
}

// DecodeQRRequest is the request body for QR decoding.
type DecodeQRRequest struct {
	Code string `json:"code" binding:"required,max=256"`
}

// DecodeQRResponse reports what a scanned code is and what it carries.
type DecodeQRResponse struct {
	Kind          string `json:"kind"`
	Valid         bool   `json:"valid"`
	StoreID       string `json:"store_id,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// VerificationResponse is the exit-gate decision for an order.
type VerificationResponse struct {
	OrderID string             `json:"order_id"`
	Status  string             `json:"status"`
	Order   *domain.StaffOrder `json:"order,omitempty"`
}

// InventoryResponse wraps an inventory search.
type InventoryResponse struct {
	Items []domain.Product `json:"items"`
	Total int              `json:"total"`
}
