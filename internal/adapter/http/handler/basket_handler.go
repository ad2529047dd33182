package handler

import (
	"checky/internal/adapter/http/dto"
	"checky/internal/core/ports"
	"checky/pkg/response"

	"github.com/gin-gonic/gin"
)

// BasketHandler handles the caller's basket.
type BasketHandler struct {
	sessions ports.SessionRegistry
}

// NewBasketHandler creates a new BasketHandler.
func NewBasketHandler(sessions ports.SessionRegistry) *BasketHandler {
	return &BasketHandler{sessions: sessions}
}

// Get handles GET /api/v1/basket.
func (h *BasketHandler) Get(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	response.OK(c, s.Basket.Snapshot())
}

// Clear handles DELETE /api/v1/basket.
func (h *BasketHandler) Clear(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	s.Basket.Clear()
	response.NoContent(c)
}

// Scan handles POST /api/v1/basket/scan.
func (h *BasketHandler) Scan(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	var req dto.ScanRequest
	if !bindJSON(c, &req) {
		return
	}

	product, err := s.Stores.ScanProduct(c.Request.Context(), req.Code)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.ScanResponse{Product: *product, Basket: s.Basket.Snapshot()})
}

// SetQuantity handles PUT /api/v1/basket/items/:product_id.
func (h *BasketHandler) SetQuantity(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	var uri dto.ProductURI
	if !bindURI(c, &uri) {
		return
	}
	var req dto.SetQuantityRequest
	if !bindJSON(c, &req) {
		return
	}

	s.Basket.SetQuantity(uri.ProductID, *req.Quantity)
	response.OK(c, s.Basket.Snapshot())
}

// RemoveItem handles DELETE /api/v1/basket/items/:product_id.
func (h *BasketHandler) RemoveItem(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	var uri dto.ProductURI
	if !bindURI(c, &uri) {
		return
	}

	s.Basket.RemoveItem(uri.ProductID)
	response.OK(c, s.Basket.Snapshot())
}
