package handler

import (
	"checky/internal/adapter/http/dto"
	"checky/internal/core/ports"
	"checky/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles checkout and receipts for the calling customer.
type CheckoutHandler struct {
	sessions ports.SessionRegistry
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(sessions ports.SessionRegistry) *CheckoutHandler {
	return &CheckoutHandler{sessions: sessions}
}

// Checkout handles POST /api/v1/checkout.
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	result, err := s.Checkout.Checkout(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	response.Created(c, dto.CheckoutResponse{
		Receipt:     result.Receipt,
		Transaction: result.Transaction,
	})
}

// ListReceipts handles GET /api/v1/receipts.
func (h *CheckoutHandler) ListReceipts(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	response.OK(c, s.Receipts.List())
}

// GetReceipt handles GET /api/v1/receipts/:id. Another customer's receipt is
// not found.
func (h *CheckoutHandler) GetReceipt(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	receipt, err := s.Receipts.GetByID(c.Param("id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, receipt)
}
