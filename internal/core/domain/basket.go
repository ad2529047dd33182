package domain

// BasketItem is one line of the shopper's basket.
type BasketItem struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// LineTotal returns price times quantity.
func (i BasketItem) LineTotal() int64 {
	return i.Price * int64(i.Quantity)
}

// BasketSnapshot is a consistent read of the basket.
type BasketSnapshot struct {
	StoreID   string       `json:"store_id,omitempty"`
	Items     []BasketItem `json:"items"`
	Total     int64        `json:"total"`
	ItemCount int          `json:"item_count"`
}

// SumItems returns the total and unit count of items.
func SumItems(items []BasketItem) (total int64, count int) {
	for _, it := range items {
		total += it.LineTotal()
		count += it.Quantity
	}
	return total, count
}

// CopyItems returns an independent copy of items.
func CopyItems(items []BasketItem) []BasketItem {
	out := make([]BasketItem, len(items))
	copy(out, items)
	return out
}
