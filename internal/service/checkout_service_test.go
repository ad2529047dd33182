package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"checky/internal/adapter/storage/memory"
	"checky/internal/core/domain"
	"checky/internal/core/ports"
	"checky/internal/core/ports/mocks"
	"checky/pkg/apperror"
	"checky/pkg/qrcode"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func setupCheckoutService(t *testing.T) (
	*CheckoutServiceImpl,
	*mocks.MockWalletService,
	*mocks.MockBasketService,
	*mocks.MockReceiptService,
	*mocks.MockCatalogRepository,
	*gomock.Controller,
) {
	ctrl := gomock.NewController(t)
	wallet := mocks.NewMockWalletService(ctrl)
	basket := mocks.NewMockBasketService(ctrl)
	receipts := mocks.NewMockReceiptService(ctrl)
	catalog := mocks.NewMockCatalogRepository(ctrl)

	svc := NewCheckoutService(wallet, basket, receipts, catalog, zerolog.Nop())
	return svc, wallet, basket, receipts, catalog, ctrl
}

func sampleSnapshot() domain.BasketSnapshot {
	return domain.BasketSnapshot{
		StoreID:   "store_001",
		Items:     []domain.BasketItem{{ProductID: "prod_001", Name: "Fresh Tomatoes (Basket)", Price: 2500, Quantity: 2}},
		Total:     5000,
		ItemCount: 2,
	}
}

func TestCheckoutService_Success(t *testing.T) {
	svc, wallet, basket, receipts, catalog, ctrl := setupCheckoutService(t)
	defer ctrl.Finish()

	snap := sampleSnapshot()
	debitTx := domain.WalletTransaction{ID: "TXN_DEBIT_1700000000000_1", Type: domain.TransactionTypeDebit, Amount: 5000, Status: domain.TransactionStatusCompleted}

	basket.EXPECT().Snapshot().Return(snap)
	wallet.EXPECT().Debit(gomock.Any(), int64(5000), "Purchase").Return(&ports.DebitResult{Transaction: debitTx, OK: true}, nil)
	catalog.EXPECT().GetStore(gomock.Any(), "store_001").Return(&domain.Store{StoreID: "store_001", Name: "MegaMart Lekki"}, nil)
	receipts.EXPECT().Create(gomock.Any()).DoAndReturn(func(in domain.ReceiptInput) *domain.Receipt {
		assert.Equal(t, "store_001", in.StoreID)
		assert.Equal(t, "MegaMart Lekki", in.StoreName)
		assert.Equal(t, int64(5000), in.Total)
		assert.Equal(t, snap.Items, in.Items)
		assert.True(t, strings.HasPrefix(in.ExitQR, "EXIT_TXN_DEBIT_1700000000000_1_"))
		return &domain.Receipt{ID: "RCPT_X_1", ExitQR: in.ExitQR, Total: in.Total}
	})
	basket.EXPECT().Deduct(snap)

	res, err := svc.Checkout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "RCPT_X_1", res.Receipt.ID)
	assert.Equal(t, debitTx, res.Transaction)
}

func TestCheckoutService_EmptyBasket(t *testing.T) {
	svc, _, basket, _, _, ctrl := setupCheckoutService(t)
	defer ctrl.Finish()

	basket.EXPECT().Snapshot().Return(domain.BasketSnapshot{})

	_, err := svc.Checkout(context.Background())
	assert.True(t, apperror.HasCode(err, "BSK_002"))
}

func TestCheckoutService_InsufficientFunds(t *testing.T) {
	svc, wallet, basket, _, _, ctrl := setupCheckoutService(t)
	defer ctrl.Finish()

	basket.EXPECT().Snapshot().Return(sampleSnapshot())
	wallet.EXPECT().Debit(gomock.Any(), int64(5000), "Purchase").
		Return(&ports.DebitResult{Transaction: domain.WalletTransaction{ID: "TXN_FAILED_1_1", Status: domain.TransactionStatusFailed}, OK: false}, nil)
	// No receipt, basket untouched.

	_, err := svc.Checkout(context.Background())
	assert.True(t, apperror.HasCode(err, "WAL_001"))
}

func TestCheckoutService_WalletError(t *testing.T) {
	svc, wallet, basket, _, _, ctrl := setupCheckoutService(t)
	defer ctrl.Finish()

	basket.EXPECT().Snapshot().Return(sampleSnapshot())
	wallet.EXPECT().Debit(gomock.Any(), int64(5000), "Purchase").Return(nil, apperror.ErrInvalidAmount())

	_, err := svc.Checkout(context.Background())
	assert.True(t, apperror.HasCode(err, "WAL_002"))
}

func TestCheckoutService_StoreLookupFailureStillIssuesReceipt(t *testing.T) {
	svc, wallet, basket, receipts, catalog, ctrl := setupCheckoutService(t)
	defer ctrl.Finish()

	basket.EXPECT().Snapshot().Return(sampleSnapshot())
	wallet.EXPECT().Debit(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&ports.DebitResult{Transaction: domain.WalletTransaction{ID: "TXN_DEBIT_1_1"}, OK: true}, nil)
	catalog.EXPECT().GetStore(gomock.Any(), "store_001").Return(nil, errors.New("boom"))
	receipts.EXPECT().Create(gomock.Any()).DoAndReturn(func(in domain.ReceiptInput) *domain.Receipt {
		assert.Empty(t, in.StoreName)
		return &domain.Receipt{ID: "RCPT_Y_1"}
	})
	basket.EXPECT().Deduct(sampleSnapshot())

	res, err := svc.Checkout(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "RCPT_Y_1", res.Receipt.ID)
}

func TestCheckoutService_CancelledContextStillCompletes(t *testing.T) {
	ds := memory.DefaultDataset(time.Now())
	catalog := memory.NewCatalogRepo(ds.Stores, ds.Products)
	wallet := NewWalletService(WalletOptions{InitialBalance: 50000, MinTopUp: 500, Latency: 20 * time.Millisecond}, zerolog.Nop())
	basket := NewBasketService(zerolog.Nop())
	receipts := NewReceiptService(zerolog.Nop())
	stores := NewStoreService(catalog, basket, zerolog.Nop())
	svc := NewCheckoutService(wallet, basket, receipts, catalog, zerolog.Nop())

	_, err := stores.Enter(context.Background(), "store_001")
	require.NoError(t, err)
	_, err = stores.ScanProduct(context.Background(), "1001")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := svc.Checkout(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(47500), wallet.Balance())
	assert.Empty(t, basket.Items())
	assert.Equal(t, "MegaMart Lekki", res.Receipt.StoreName)
	assert.Len(t, receipts.List(), 1)
	assert.False(t, qrcode.ValidateExitQR(res.Receipt.ExitQR), "live exit codes carry the full transaction id")
	assert.True(t, strings.HasSuffix(res.Receipt.ExitQR, "_CHECKY"))
}

func TestCheckoutService_ScanDuringSettlementIsKept(t *testing.T) {
	ds := memory.DefaultDataset(time.Now())
	catalog := memory.NewCatalogRepo(ds.Stores, ds.Products)
	wallet := NewWalletService(WalletOptions{InitialBalance: 50000, MinTopUp: 500, Latency: 200 * time.Millisecond}, zerolog.Nop())
	basket := NewBasketService(zerolog.Nop())
	receipts := NewReceiptService(zerolog.Nop())
	stores := NewStoreService(catalog, basket, zerolog.Nop())
	svc := NewCheckoutService(wallet, basket, receipts, catalog, zerolog.Nop())
	ctx := context.Background()

	_, err := stores.Enter(ctx, "store_001")
	require.NoError(t, err)
	_, err = stores.ScanProduct(ctx, "prod_004")
	require.NoError(t, err)

	scanned := make(chan error, 1)
	go func() {
		time.Sleep(50 * time.Millisecond)
		_, err := stores.ScanProduct(ctx, "prod_003")
		scanned <- err
	}()

	res, err := svc.Checkout(ctx)
	require.NoError(t, err)
	require.NoError(t, <-scanned)

	require.Len(t, res.Receipt.Items, 1)
	assert.Equal(t, "prod_004", res.Receipt.Items[0].ProductID)
	assert.Equal(t, int64(350), res.Receipt.Total)
	assert.Equal(t, int64(50000-350), wallet.Balance())

	left := basket.Items()
	require.Len(t, left, 1, "the late scan was not paid for and must stay in the basket")
	assert.Equal(t, "prod_003", left[0].ProductID)
	assert.Equal(t, "store_001", basket.StoreID())
}
