package handler

import (
	"fmt"

	"checky/internal/adapter/http/dto"
	"checky/internal/core/ports"
	"checky/pkg/apperror"
	"checky/pkg/response"

	"github.com/gin-gonic/gin"
)

// StoreHandler lists stores and handles the caller's store session.
type StoreHandler struct {
	catalog  ports.CatalogRepository
	sessions ports.SessionRegistry
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(catalog ports.CatalogRepository, sessions ports.SessionRegistry) *StoreHandler {
	return &StoreHandler{catalog: catalog, sessions: sessions}
}

// List handles GET /api/v1/stores. It needs no session.
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.catalog.ListStores(c.Request.Context())
	if err != nil {
		fail(c, apperror.InternalError(fmt.Errorf("list stores: %w", err)))
		return
	}
	response.OK(c, stores)
}

// Current handles GET /api/v1/stores/current.
func (h *StoreHandler) Current(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	store, active := s.Stores.Current()
	response.OK(c, dto.CurrentStoreResponse{Active: active, Store: store})
}

// Enter handles POST /api/v1/stores/enter.
func (h *StoreHandler) Enter(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	var req dto.EnterStoreRequest
	if !bindJSON(c, &req) {
		return
	}

	store, err := s.Stores.Enter(c.Request.Context(), req.Code)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, store)
}

// Leave handles POST /api/v1/stores/leave.
func (h *StoreHandler) Leave(c *gin.Context) {
	s, ok := shopperSession(c, h.sessions)
	if !ok {
		return
	}
	s.Stores.Leave()
	response.NoContent(c)
}
