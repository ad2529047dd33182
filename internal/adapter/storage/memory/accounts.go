package memory

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"checky/internal/core/domain"
)

// --- Staff orders ---

// OrderRepo implements ports.OrderRepository over the static order table.
type OrderRepo struct {
	orders map[string]domain.StaffOrder
}

func NewOrderRepo(orders []domain.StaffOrder) *OrderRepo {
	m := make(map[string]domain.StaffOrder, len(orders))
	for _, o := range orders {
		m[o.ID] = o
	}
	return &OrderRepo{orders: m}
}

// GetByID matches the order id exactly.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*domain.StaffOrder, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, nil
	}
	o.Items = append([]domain.StaffOrderItem(nil), o.Items...)
	return &o, nil
}

// --- Staff accounts ---

// StaffRepo implements ports.StaffRepository.
type StaffRepo struct {
	staff []domain.StaffUser
}

func NewStaffRepo(staff []domain.StaffUser) *StaffRepo {
	return &StaffRepo{staff: append([]domain.StaffUser(nil), staff...)}
}

// GetByEmail matches case-insensitively.
func (r *StaffRepo) GetByEmail(ctx context.Context, email string) (*domain.StaffUser, error) {
	email = strings.TrimSpace(email)
	for _, s := range r.staff {
		if strings.EqualFold(s.Email, email) {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *StaffRepo) GetByID(ctx context.Context, id string) (*domain.StaffUser, error) {
	for _, s := range r.staff {
		if s.ID == id {
			return &s, nil
		}
	}
	return nil, nil
}

// --- Customer accounts ---

// UserRepo implements ports.UserRepository. Signups are kept for the process lifetime.
type UserRepo struct {
	mu    sync.RWMutex
	users []*domain.User
}

func NewUserRepo(users []domain.User) *UserRepo {
	r := &UserRepo{users: make([]*domain.User, 0, len(users))}
	for i := range users {
		u := users[i]
		r.users = append(r.users, &u)
	}
	return r
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == user.Email {
			return fmt.Errorf("email already exists")
		}
		if existing.ID == user.ID {
			return fmt.Errorf("user id already exists")
		}
	}
	u := *user
	r.users = append(r.users, &u)
	return nil
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

// GetByEmail matches the email exactly.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}

func (r *UserRepo) Update(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, u := range r.users {
		if u.ID == user.ID {
			c := *user
			r.users[i] = &c
			return nil
		}
	}
	return fmt.Errorf("user not found")
}
