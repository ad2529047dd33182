package service

import (
	"math/rand"
	"testing"

	"checky/internal/core/domain"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id, storeID string, price int64) domain.Product {
	return domain.Product{ProductID: id, StoreID: storeID, Name: id, Price: price}
}

func TestBasketService_AddSameProductTwice(t *testing.T) {
	b := NewBasketService(zerolog.Nop())

	p1 := product("P1", "S1", 100)
	b.AddItem(p1)
	b.AddItem(p1)

	items := b.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "P1", items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, int64(200), b.Total())
	assert.Equal(t, 2, b.ItemCount())
	assert.Equal(t, "S1", b.StoreID(), "adding to an unbound basket binds it")
}

func TestBasketService_AddFromOtherStoreReplaces(t *testing.T) {
	b := NewBasketService(zerolog.Nop())
	b.Initialize("S1")
	b.AddItem(product("P1", "S1", 100))
	b.AddItem(product("P2", "S1", 250))

	b.AddItem(product("Q1", "S2", 700))

	items := b.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Q1", items[0].ProductID)
	assert.Equal(t, 1, b.ItemCount())
	assert.Equal(t, "S2", b.StoreID())
}

func TestBasketService_SetQuantity(t *testing.T) {
	tests := []struct {
		name      string
		quantity  int
		wantLines int
		wantCount int
	}{
		{"raise", 5, 2, 6},
		{"lower", 1, 2, 2},
		{"zero removes", 0, 1, 1},
		{"negative removes", -1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBasketService(zerolog.Nop())
			b.AddItem(product("P1", "S1", 100))
			b.AddItem(product("P1", "S1", 100))
			b.AddItem(product("P2", "S1", 50))

			b.SetQuantity("P1", tt.quantity)

			assert.Len(t, b.Items(), tt.wantLines)
			assert.Equal(t, tt.wantCount, b.ItemCount())
		})
	}
}

func TestBasketService_UnknownIDsAreNoOps(t *testing.T) {
	b := NewBasketService(zerolog.Nop())
	b.AddItem(product("P1", "S1", 100))

	b.SetQuantity("nope", 3)
	b.RemoveItem("nope")

	assert.Equal(t, 1, b.ItemCount())
	assert.Equal(t, int64(100), b.Total())
}

func TestBasketService_RemoveAndClear(t *testing.T) {
	b := NewBasketService(zerolog.Nop())
	b.AddItem(product("P1", "S1", 100))
	b.AddItem(product("P2", "S1", 200))

	b.RemoveItem("P1")
	assert.Equal(t, int64(200), b.Total())

	b.Clear()
	assert.Empty(t, b.Items())
	assert.Empty(t, b.StoreID())
	assert.Zero(t, b.Total())
}

func TestBasketService_InitializeResets(t *testing.T) {
	b := NewBasketService(zerolog.Nop())
	b.AddItem(product("P1", "S1", 100))

	b.Initialize("S1")

	assert.Empty(t, b.Items())
	assert.Equal(t, "S1", b.StoreID())
}

func TestBasketService_ItemsAreCopies(t *testing.T) {
	b := NewBasketService(zerolog.Nop())
	b.AddItem(product("P1", "S1", 100))

	items := b.Items()
	items[0].Quantity = 50

	assert.Equal(t, 1, b.ItemCount())
}

func TestBasketService_TotalsAlwaysMatchItems(t *testing.T) {
	b := NewBasketService(zerolog.Nop())
	rng := rand.New(rand.NewSource(7))
	ids := []string{"P1", "P2", "P3", "P4"}

	for i := 0; i < 500; i++ {
		id := ids[rng.Intn(len(ids))]
		switch rng.Intn(4) {
		case 0, 1:
			b.AddItem(product(id, "S1", int64(rng.Intn(5000)+1)))
		case 2:
			b.SetQuantity(id, rng.Intn(6)-1)
		case 3:
			b.RemoveItem(id)
		}

		snap := b.Snapshot()
		var total int64
		var count int
		for _, it := range snap.Items {
			total += it.Price * int64(it.Quantity)
			count += it.Quantity
			require.GreaterOrEqual(t, it.Quantity, 1)
		}
		require.Equal(t, total, snap.Total)
		require.Equal(t, count, snap.ItemCount)
	}
}

func TestBasketService_Deduct(t *testing.T) {
	t.Run("keeps lines added after the snapshot", func(t *testing.T) {
		b := NewBasketService(zerolog.Nop())
		b.Initialize("S1")
		b.AddItem(product("P1", "S1", 100))
		paid := b.Snapshot()

		b.AddItem(product("P1", "S1", 100))
		b.AddItem(product("P2", "S1", 300))
		b.Deduct(paid)

		items := b.Items()
		require.Len(t, items, 2)
		assert.Equal(t, "P1", items[0].ProductID)
		assert.Equal(t, 1, items[0].Quantity, "only the paid unit is removed")
		assert.Equal(t, "P2", items[1].ProductID)
		assert.Equal(t, int64(400), b.Total())
		assert.Equal(t, "S1", b.StoreID(), "a basket with items stays bound")
	})

	t.Run("fully paid basket unbinds", func(t *testing.T) {
		b := NewBasketService(zerolog.Nop())
		b.Initialize("S1")
		b.AddItem(product("P1", "S1", 100))
		b.AddItem(product("P1", "S1", 100))

		b.Deduct(b.Snapshot())

		assert.Empty(t, b.Items())
		assert.Empty(t, b.StoreID())
	})

	t.Run("lowered quantity drops the line", func(t *testing.T) {
		b := NewBasketService(zerolog.Nop())
		b.Initialize("S1")
		b.AddItem(product("P1", "S1", 100))
		b.SetQuantity("P1", 3)
		paid := b.Snapshot()

		b.SetQuantity("P1", 1)
		b.Deduct(paid)

		assert.Empty(t, b.Items())
	})

	t.Run("rebound basket untouched", func(t *testing.T) {
		b := NewBasketService(zerolog.Nop())
		b.Initialize("S1")
		b.AddItem(product("P1", "S1", 100))
		paid := b.Snapshot()

		b.AddItem(product("Q1", "S2", 700))
		b.Deduct(paid)

		require.Len(t, b.Items(), 1)
		assert.Equal(t, "S2", b.StoreID())
	})
}
