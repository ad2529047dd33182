package service

import (
	"regexp"
	"testing"

	"checky/internal/core/domain"
	"checky/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var receiptIDPattern = regexp.MustCompile(`^RCPT_[0-9A-Z]+_\d+$`)

func TestReceiptService_CreateAndGet(t *testing.T) {
	s := NewReceiptService(zerolog.Nop())

	r := s.Create(domain.ReceiptInput{
		StoreID:   "store_001",
		StoreName: "MegaMart Lekki",
		Total:     2850,
		Items:     []domain.BasketItem{{ProductID: "prod_001", Price: 2500, Quantity: 1}, {ProductID: "prod_004", Price: 350, Quantity: 1}},
		ExitQR:    "EXIT_TXN_001_ABC_CHECKY",
	})

	assert.Regexp(t, receiptIDPattern, r.ID)
	assert.False(t, r.CreatedAt.IsZero())
	assert.Equal(t, "UTC", r.CreatedAt.Location().String())

	got, err := s.GetByID(r.ID)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}

func TestReceiptService_GetByID_NotFound(t *testing.T) {
	s := NewReceiptService(zerolog.Nop())

	_, err := s.GetByID("RCPT_NOPE")
	assert.True(t, apperror.HasCode(err, "NF_001"))
}

func TestReceiptService_DeepCopy(t *testing.T) {
	s := NewReceiptService(zerolog.Nop())
	items := []domain.BasketItem{{ProductID: "P1", Price: 100, Quantity: 1}}

	r := s.Create(domain.ReceiptInput{Total: 100, Items: items})

	// Mutating the caller's slice after creation must not reach the stored receipt.
	items[0].Quantity = 99
	// Neither must mutating a returned copy.
	r.Items[0].Price = 1

	stored, err := s.GetByID(r.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Items[0].Quantity)
	assert.Equal(t, int64(100), stored.Items[0].Price)
}

func TestReceiptService_ListMostRecentFirst(t *testing.T) {
	s := NewReceiptService(zerolog.Nop())

	first := s.Create(domain.ReceiptInput{Total: 1})
	second := s.Create(domain.ReceiptInput{Total: 2})

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
}
