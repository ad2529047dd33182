package handler

import (
	"checky/internal/adapter/http/dto"
	"checky/internal/core/ports"
	"checky/pkg/apperror"
	"checky/pkg/response"

	"github.com/gin-gonic/gin"
)

const defaultDebitDescription = "Payment"

// WalletHandler handles wallet endpoints for the calling customer.
type WalletHandler struct {
	sessions ports.SessionRegistry
	currency string
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(sessions ports.SessionRegistry, currency string) *WalletHandler {
	return &WalletHandler{sessions: sessions, currency: currency}
}

// GetBalance handles GET /api/v1/wallet.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	response.OK(c, dto.WalletBalanceResponse{
		Balance:  s.Wallet.Balance(),
		Currency: h.currency,
	})
}

// ListTransactions handles GET /api/v1/wallet/transactions.
func (h *WalletHandler) ListTransactions(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	txs := s.Wallet.Transactions()
	response.OK(c, dto.TransactionListResponse{Items: txs, Total: len(txs)})
}

// TopUp handles POST /api/v1/wallet/topup.
func (h *WalletHandler) TopUp(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	var req dto.TopupRequest
	if !bindJSON(c, &req) {
		return
	}

	tx, err := s.Wallet.TopUp(c.Request.Context(), req.Amount)
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, tx)
}

// Debit handles POST /api/v1/wallet/debit.
func (h *WalletHandler) Debit(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	var req dto.DebitRequest
	if !bindJSON(c, &req) {
		return
	}

	if req.Description == "" {
		req.Description = defaultDebitDescription
	}

	result, err := s.Wallet.Debit(c.Request.Context(), req.Amount, req.Description)
	if err != nil {
		fail(c, err)
		return
	}
	if !result.OK {
		response.Error(c, apperror.ErrInsufficientFunds())
		return
	}
	response.Created(c, result.Transaction)
}
