package handler

import (
	"fmt"
	"strings"

	"checky/internal/adapter/http/dto"
	"checky/internal/core/ports"
	"checky/pkg/apperror"
	"checky/pkg/qrcode"
	"checky/pkg/response"

	"github.com/gin-gonic/gin"
)

// QRHandler generates and decodes mock QR payloads.
type QRHandler struct {
	catalog ports.CatalogRepository
}

// NewQRHandler creates a new QRHandler.
func NewQRHandler(catalog ports.CatalogRepository) *QRHandler {
	return &QRHandler{catalog: catalog}
}

// StoreQR handles GET /api/v1/qr/stores/:store_id.
func (h *QRHandler) StoreQR(c *gin.Context) {
	storeID := c.Param("store_id")

	stores, err := h.catalog.ListStores(c.Request.Context())
	if err != nil {
		fail(c, apperror.InternalError(fmt.Errorf("list stores: %w", err)))
		return
	}
	for _, s := range stores {
		if strings.EqualFold(s.StoreID, storeID) {
			response.OK(c, dto.StoreQRResponse{StoreID: s.StoreID, Code: qrcode.GenerateStoreQR(s.StoreID)})
			return
		}
	}
	response.Error(c, apperror.ErrNotFound("Store"))
}

// Decode handles POST /api/v1/qr/decode.
func (h *QRHandler) Decode(c *gin.Context) {
	var req dto.DecodeQRRequest
	if !bindJSON(c, &req) {
		return
	}

	d := qrcode.Decode(req.Code)
	response.OK(c, dto.DecodeQRResponse{
		Kind:          string(d.Kind),
		Valid:         d.Valid,
		StoreID:       d.StoreID,
		TransactionID: d.TransactionID,
	})
}
