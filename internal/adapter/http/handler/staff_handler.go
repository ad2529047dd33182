package handler

import (
	"checky/internal/adapter/http/dto"
	"checky/internal/adapter/http/middleware"
	"checky/internal/core/ports"
	"checky/pkg/apperror"
	"checky/pkg/response"

	"github.com/gin-gonic/gin"
)

// StaffHandler handles the staff app endpoints.
type StaffHandler struct {
	staff ports.StaffService
}

// NewStaffHandler creates a new StaffHandler.
func NewStaffHandler(staff ports.StaffService) *StaffHandler {
	return &StaffHandler{staff: staff}
}

// Login handles POST /api/v1/staff/login.
func (h *StaffHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	session, err := h.staff.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	response.OK(c, dto.SessionResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt.Unix(),
		Staff:     session.Staff,
	})
}

// Me handles GET /api/v1/staff/me.
func (h *StaffHandler) Me(c *gin.Context) {
	staffID, ok := middleware.Subject(c)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return
	}

	member, err := h.staff.Profile(c.Request.Context(), staffID)
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, member)
}

// VerifyOrder handles GET /api/v1/staff/orders/:order_id/verification.
func (h *StaffHandler) VerifyOrder(c *gin.Context) {
	v, err := h.staff.VerifyOrder(c.Request.Context(), c.Param("order_id"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.VerificationResponse{
		OrderID: v.OrderID,
		Status:  string(v.Status),
		Order:   v.Order,
	})
}

// Inventory handles GET /api/v1/staff/inventory?q=.
func (h *StaffHandler) Inventory(c *gin.Context) {
	products, err := h.staff.Inventory(c.Request.Context(), c.Query("q"))
	if err != nil {
		fail(c, err)
		return
	}
	response.OK(c, dto.InventoryResponse{Items: products, Total: len(products)})
}
