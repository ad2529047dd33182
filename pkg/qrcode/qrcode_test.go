package qrcode

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateStoreQR(t *testing.T) {
	assert.Equal(t, "CHECKY_STORE_001", GenerateStoreQR("store_001"))
	assert.Equal(t, "CHECKY_STORE_002", GenerateStoreQR("STORE_002"))
}

func TestStoreQR_RoundTrip(t *testing.T) {
	for _, id := range []string{"store_001", "store_002", "store_004"} {
		qr := GenerateStoreQR(id)
		assert.True(t, ValidateStoreQR(qr), qr)

		got, ok := ExtractStoreID(qr)
		assert.True(t, ok)
		assert.Equal(t, id, got)
	}
}

func TestGenerateExitQR_Deterministic(t *testing.T) {
	at := time.UnixMilli(1700000000000)

	a := GenerateExitQR("txn_001", at)
	b := GenerateExitQR("txn_001", at)

	assert.Equal(t, a, b)
	assert.Equal(t, "EXIT_TXN_001_LOYW3V28_CHECKY", a)
	assert.True(t, ValidateExitQR(a))
}

func TestNewExitQR_Shape(t *testing.T) {
	qr := NewExitQR("TXN_DEBIT_1700000000000_3")

	assert.True(t, strings.HasPrefix(qr, "EXIT_TXN_DEBIT_1700000000000_3_"))
	assert.True(t, strings.HasSuffix(qr, "_CHECKY"))

	// Live tokens are recognisable as exit codes but are not the short form.
	assert.False(t, ValidateExitQR(qr))
	_, ok := ExtractTransactionID(qr)
	assert.False(t, ok)
	assert.Equal(t, Decoded{Kind: KindExit}, Decode(qr))
}

func TestValidateStoreQR(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"CHECKY_STORE_001", true},
		{"CHECKY_STORE_01", false},
		{"CHECKY_STORE_0001", false},
		{"checky_store_001", false},
		{"STORE_001", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateStoreQR(tt.code))
		})
	}
}

func TestExtractTransactionID(t *testing.T) {
	tests := []struct {
		code   string
		want   string
		wantOK bool
	}{
		{"EXIT_TXN_001_ABC123_CHECKY", "txn_001", true},
		{"EXIT_TXN_042_Z_CHECKY", "txn_042", true},
		{"EXIT_TXN_01_ABC_CHECKY", "", false},
		{"EXIT_TXN_001_abc_CHECKY", "", false},
		{"EXIT_TXN_001_ABC", "", false},
		{"garbage", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			got, ok := ExtractTransactionID(tt.code)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractStoreID_FailsClosed(t *testing.T) {
	id, ok := ExtractStoreID("CHECKY_STORE_ABC")
	assert.False(t, ok)
	assert.Empty(t, id)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want Decoded
	}{
		{"store", " CHECKY_STORE_002 ", Decoded{Kind: KindStore, Valid: true, StoreID: "store_002"}},
		{"exit", "EXIT_TXN_001_ABC123_CHECKY", Decoded{Kind: KindExit, Valid: true, TransactionID: "txn_001"}},
		{"malformed store", "CHECKY_STORE_X", Decoded{Kind: KindStore}},
		{"malformed exit", "EXIT_TXN_DEBIT_1_2_ABC_CHECKY", Decoded{Kind: KindExit}},
		{"unknown", "hello", Decoded{Kind: KindUnknown}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.code))
		})
	}
}
