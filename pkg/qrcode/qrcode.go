// Package qrcode formats and parses the mock QR tokens printed at store
// entrances and shown to staff on exit. No image encoding happens here.
package qrcode

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	storePrefix = "CHECKY_STORE_"
	exitPrefix  = "EXIT_"
	exitSuffix  = "_CHECKY"
)

var (
	storeQRPattern = regexp.MustCompile(`^CHECKY_STORE_(\d{3})$`)
	exitQRPattern  = regexp.MustCompile(`^EXIT_(TXN_\d{3})_[A-Z0-9]+_CHECKY$`)
)

// GenerateStoreQR returns the entrance token for a store, e.g. store_001 -> CHECKY_STORE_001.
func GenerateStoreQR(storeID string) string {
	return storePrefix + strings.Replace(strings.ToUpper(storeID), "STORE_", "", 1)
}

// GenerateExitQR returns the exit token for a transaction settled at the given instant.
func GenerateExitQR(transactionID string, at time.Time) string {
	stamp := strings.ToUpper(strconv.FormatInt(at.UnixMilli(), 36))
	return exitPrefix + strings.ToUpper(transactionID) + "_" + stamp + exitSuffix
}

// NewExitQR is GenerateExitQR stamped with the current time.
func NewExitQR(transactionID string) string {
	return GenerateExitQR(transactionID, time.Now())
}

// ValidateStoreQR reports whether code is a well-formed entrance token.
func ValidateStoreQR(code string) bool {
	return storeQRPattern.MatchString(code)
}

// ValidateExitQR reports whether code is a well-formed exit token in the short
// demo form EXIT_TXN_<3 digits>_<stamp>_CHECKY used by the staff order table.
// Tokens minted by NewExitQR for live checkouts embed the full transaction id
// and never match, so do not gate a live receipt on this check.
func ValidateExitQR(code string) bool {
	return exitQRPattern.MatchString(code)
}

// ExtractStoreID returns the store id encoded in an entrance token.
func ExtractStoreID(code string) (string, bool) {
	m := storeQRPattern.FindStringSubmatch(code)
	if m == nil {
		return "", false
	}
	return "store_" + m[1], true
}

// ExtractTransactionID returns the lower-cased transaction id encoded in a
// short-form exit token. Like ValidateExitQR it rejects live checkout tokens.
func ExtractTransactionID(code string) (string, bool) {
	m := exitQRPattern.FindStringSubmatch(code)
	if m == nil {
		return "", false
	}
	return strings.ToLower(m[1]), true
}

// Kind classifies a scanned token.
type Kind string

const (
	KindStore   Kind = "store"
	KindExit    Kind = "exit"
	KindUnknown Kind = "unknown"
)

// Decoded is the outcome of Decode.
type Decoded struct {
	Kind          Kind   `json:"kind"`
	Valid         bool   `json:"valid"`
	StoreID       string `json:"store_id,omitempty"`
	TransactionID string `json:"transaction_id,omitempty"`
}

// Decode classifies code and extracts whatever id it carries.
func Decode(code string) Decoded {
	code = strings.TrimSpace(code)
	if id, ok := ExtractStoreID(code); ok {
		return Decoded{Kind: KindStore, Valid: true, StoreID: id}
	}
	if id, ok := ExtractTransactionID(code); ok {
		return Decoded{Kind: KindExit, Valid: true, TransactionID: id}
	}
	switch {
	case strings.HasPrefix(code, storePrefix):
		return Decoded{Kind: KindStore}
	case strings.HasPrefix(code, exitPrefix) && strings.HasSuffix(code, exitSuffix):
		return Decoded{Kind: KindExit}
	}
	return Decoded{Kind: KindUnknown}
}
