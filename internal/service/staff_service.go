package service

import (
	"context"
	"fmt"
	"strings"

	"checky/internal/core/domain"
	"checky/internal/core/ports"
	"checky/pkg/apperror"

	"github.com/rs/zerolog"
)

// StaffServiceImpl implements ports.StaffService.
type StaffServiceImpl struct {
	staff    ports.StaffRepository
	orders   ports.OrderRepository
	catalog  ports.CatalogRepository
	hashSvc  ports.HashService
	tokenSvc ports.TokenService
	log      zerolog.Logger
}

func NewStaffService(
	staff ports.StaffRepository,
	orders ports.OrderRepository,
	catalog ports.CatalogRepository,
	hashSvc ports.HashService,
	tokenSvc ports.TokenService,
	log zerolog.Logger,
) *StaffServiceImpl {
	return &StaffServiceImpl{
		staff:    staff,
		orders:   orders,
		catalog:  catalog,
		hashSvc:  hashSvc,
		tokenSvc: tokenSvc,
		log:      log,
	}
}

// Login matches email case-insensitively. Seeded demo accounts carry no hash
// and accept any non-empty password.
func (s *StaffServiceImpl) Login(ctx context.Context, email, password string) (*ports.StaffSession, error) {
	if password == "" {
		return nil, apperror.ErrInvalidCredentials()
	}

	member, err := s.staff.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup staff: %w", err))
	}
	if member == nil {
		return nil, apperror.ErrInvalidCredentials()
	}

	if member.PasswordHash != "" {
		match, err := s.hashSvc.Verify(password, member.PasswordHash)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("verify password: %w", err))
		}
		if !match {
			return nil, apperror.ErrInvalidCredentials()
		}
	}

	token, expiresAt, err := s.tokenSvc.Generate(member.ID, ports.TokenKindStaff, string(member.Role))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("generate token: %w", err))
	}

	s.log.Info().Str("staff_id", member.ID).Str("role", string(member.Role)).Msg("staff logged in")

	return &ports.StaffSession{Staff: member, Token: token, ExpiresAt: expiresAt}, nil
}

func (s *StaffServiceImpl) Profile(ctx context.Context, staffID string) (*domain.StaffUser, error) {
	member, err := s.staff.GetByID(ctx, staffID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup staff: %w", err))
	}
	if member == nil {
		return nil, apperror.ErrNotFound("Staff member")
	}
	return member, nil
}

// VerifyOrder looks the order id up exactly and returns the gate decision.
// Unknown ids are a decision (invalid), not an error.
func (s *StaffServiceImpl) VerifyOrder(ctx context.Context, orderID string) (*ports.OrderVerification, error) {
	orderID = strings.TrimSpace(orderID)
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lookup order: %w", err))
	}

	status := domain.VerifyStaffOrder(order)
	s.log.Info().Str("order_id", orderID).Str("result", string(status)).Msg("exit order verified")

	return &ports.OrderVerification{OrderID: orderID, Status: status, Order: order}, nil
}

// Inventory returns every product whose name contains query, ignoring case.
// An empty query returns everything.
func (s *StaffServiceImpl) Inventory(ctx context.Context, query string) ([]domain.Product, error) {
	products, err := s.catalog.ListProducts(ctx, "")
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list products: %w", err))
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products, nil
	}

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) {
			out = append(out, p)
		}
	}
	return out, nil
}
