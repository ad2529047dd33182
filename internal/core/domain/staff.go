package domain

import "time"

// StaffRole determines which staff tools an account can use.
type StaffRole string

const (
	StaffRoleSecurity   StaffRole = "security"
	StaffRoleStockClerk StaffRole = "stock_clerk"
	StaffRoleManager    StaffRole = "manager"
)

// CanVerifyExits returns true for roles working the exit gate.
func (r StaffRole) CanVerifyExits() bool {
	return r == StaffRoleSecurity || r == StaffRoleManager
}

// CanViewInventory returns true for roles working the shelves.
func (r StaffRole) CanViewInventory() bool {
	return r == StaffRoleStockClerk || r == StaffRoleManager
}

// StaffUser is a store employee account.
type StaffUser struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         StaffRole `json:"role"`
	BranchID     string    `json:"branch_id"`
	BranchName   string    `json:"branch_name"`
	PasswordHash string    `json:"-"` // empty for seeded demo accounts
}

// OrderStatus is the exit state of a staff-visible order.
type OrderStatus string

const (
	OrderStatusPaidNotExited OrderStatus = "paid_not_exited"
	OrderStatusUnpaid        OrderStatus = "unpaid"
	OrderStatusExited        OrderStatus = "exited"
)

type StaffOrderItem struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Qty   int    `json:"qty"`
	Price int64  `json:"price"`
}

// StaffOrder is an order staff verify exit codes against.
type StaffOrder struct {
	ID           string           `json:"id"`
	CustomerName string           `json:"customer_name"`
	Total        int64            `json:"total"`
	Status       OrderStatus      `json:"status"`
	CreatedAt    time.Time        `json:"created_at"`
	ExitedAt     *time.Time       `json:"exited_at,omitempty"`
	Items        []StaffOrderItem `json:"items"`
}

// VerificationStatus is the gate decision for a scanned order.
type VerificationStatus string

const (
	VerificationValid       VerificationStatus = "valid"
	VerificationAlreadyUsed VerificationStatus = "already_used"
	VerificationInvalid     VerificationStatus = "invalid"
)

// VerifyStaffOrder decides whether the holder of order may leave.
// A nil order is treated as unknown.
func VerifyStaffOrder(order *StaffOrder) VerificationStatus {
	if order == nil || order.Status == OrderStatusUnpaid {
		return VerificationInvalid
	}
	if order.Status == OrderStatusExited {
		return VerificationAlreadyUsed
	}
	return VerificationValid
}
