package domain

import (
	"strings"
	"time"
)

// StoreStatus represents the onboarding state of a store.
type StoreStatus string

const (
	StoreStatusPending   StoreStatus = "pending"
	StoreStatusApproved  StoreStatus = "approved"
	StoreStatusSuspended StoreStatus = "suspended"
)

// Store is a retail location shoppers can enter.
type Store struct {
	StoreID    string      `json:"store_id"`
	Name       string      `json:"name"`
	Address    string      `json:"address"`
	Logo       string      `json:"logo,omitempty"`
	AdminEmail string      `json:"admin_email"`
	AdminPhone string      `json:"admin_phone,omitempty"`
	Category   string      `json:"category,omitempty"`
	EntranceQR string      `json:"entrance_qr"`
	Status     StoreStatus `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
	ApprovedAt *time.Time  `json:"approved_at,omitempty"`
}

// IsApproved returns true if shoppers may enter the store.
func (s *Store) IsApproved() bool {
	return s.Status == StoreStatusApproved
}

// MatchesCode reports whether code names this store by id, entrance QR, or a
// fragment of its name. Comparison is case-insensitive.
func (s *Store) MatchesCode(code string) bool {
	code = strings.TrimSpace(code)
	if code == "" {
		return false
	}
	return strings.EqualFold(s.StoreID, code) ||
		strings.EqualFold(s.EntranceQR, code) ||
		strings.Contains(strings.ToLower(s.Name), strings.ToLower(code))
}

// Product is an item on a store's shelf.
type Product struct {
	ProductID     string    `json:"product_id"`
	StoreID       string    `json:"store_id"`
	Name          string    `json:"name"`
	Price         int64     `json:"price"`
	Barcode       string    `json:"barcode,omitempty"`
	ProductNumber string    `json:"product_number"`
	Category      string    `json:"category,omitempty"`
	Stock         *int      `json:"stock,omitempty"`
	Image         string    `json:"image,omitempty"`
	Description   string    `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// MatchesCode reports whether a scanned code identifies this product.
func (p *Product) MatchesCode(code string) bool {
	if code == "" {
		return false
	}
	return (p.Barcode != "" && p.Barcode == code) ||
		p.ProductNumber == code ||
		p.ProductID == code
}

// ToBasketItem returns a single-unit basket line for the product.
func (p *Product) ToBasketItem() BasketItem {
	return BasketItem{
		ProductID: p.ProductID,
		Name:      p.Name,
		Price:     p.Price,
		Quantity:  1,
	}
}
