package domain

import "time"

// Receipt is the immutable record of a completed purchase.
type Receipt struct {
	ID        string       `json:"id"`
	StoreID   string       `json:"store_id,omitempty"`
	StoreName string       `json:"store_name,omitempty"`
	Total     int64        `json:"total"`
	Items     []BasketItem `json:"items"`
	ExitQR    string       `json:"exit_qr"`
	CreatedAt time.Time    `json:"created_at"`
}

// ReceiptInput holds the fields supplied when a receipt is created.
type ReceiptInput struct {
	StoreID   string
	StoreName string
	Total     int64
	Items     []BasketItem
	ExitQR    string
}

// Clone returns a deep copy of the receipt.
func (r *Receipt) Clone() *Receipt {
	c := *r
	c.Items = CopyItems(r.Items)
	return &c
}
