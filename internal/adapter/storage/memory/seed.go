package memory

import (
	"fmt"
	"time"

	"checky/internal/core/domain"
	"checky/pkg/productcode"
	"checky/pkg/qrcode"
)

// Dataset is the static reference data the demo runs on.
type Dataset struct {
	Stores   []domain.Store
	Products []domain.Product
	Orders   []domain.StaffOrder
	Staff    []domain.StaffUser
	Users    []domain.User
}

// productSeed is a product before its shelf number is assigned.
type productSeed struct {
	id       string
	storeID  string
	name     string
	price    int64
	barcode  string
	category string
	stock    int
}

var storeSeeds = []domain.Store{
	{
		StoreID:    "store_001",
		Name:       "MegaMart Lekki",
		Address:    "Admiralty Way, Lekki Phase 1, Lagos",
		AdminEmail: "admin@megamart.com",
		AdminPhone: "+234 802 345 6789",
		Category:   "Supermarket",
		Status:     domain.StoreStatusApproved,
	},
	{
		StoreID:    "store_002",
		Name:       "FreshGrocer Victoria",
		Address:    "Adeola Odeku Street, Victoria Island, Lagos",
		AdminEmail: "admin@freshgrocer.ng",
		Category:   "Grocery",
		Status:     domain.StoreStatusApproved,
	},
	{
		StoreID:    "store_003",
		Name:       "QuickMart Ikeja",
		Address:    "Allen Avenue, Ikeja, Lagos",
		AdminEmail: "owner@quickmart.ng",
		Category:   "Convenience",
		Status:     domain.StoreStatusPending,
	},
	{
		StoreID:    "store_004",
		Name:       "CornerShop Yaba",
		Address:    "Herbert Macaulay Way, Yaba, Lagos",
		AdminEmail: "hello@cornershop.ng",
		Category:   "Convenience",
		Status:     domain.StoreStatusSuspended,
	},
}

var productSeeds = []productSeed{
	{"prod_001", "store_001", "Fresh Tomatoes (Basket)", 2500, "6151100010011", "Produce", 40},
	{"prod_002", "store_001", "iPhone 15 (128GB)", 950000, "0194253401254", "Electronics", 5},
	{"prod_003", "store_001", "Pringles Original", 1200, "5053990101573", "Snacks", 120},
	{"prod_004", "store_001", "Coca-Cola 1.5L", 350, "5449000000286", "Beverages", 200},
	{"prod_005", "store_001", "Laundry Detergent (2kg)", 3200, "6151100020027", "Household", 30},
	{"prod_101", "store_002", "Energy Drink (Can)", 700, "9002490100070", "Beverages", 90},
	{"prod_102", "store_002", "Soft Drink Can (Assorted)", 500, "", "Beverages", 150},
	{"prod_103", "store_002", "Sliced Bread (Family Loaf)", 1100, "6151100030033", "Bakery", 25},
}

// DefaultDataset builds the demo dataset with timestamps relative to now.
func DefaultDataset(now time.Time) Dataset {
	now = now.UTC()
	return Dataset{
		Stores:   seedStores(now),
		Products: seedProducts(now),
		Orders:   seedOrders(now),
		Staff:    seedStaff(),
		Users:    seedUsers(now),
	}
}

func seedStores(now time.Time) []domain.Store {
	stores := make([]domain.Store, len(storeSeeds))
	for i, s := range storeSeeds {
		s.EntranceQR = qrcode.GenerateStoreQR(s.StoreID)
		s.CreatedAt = now.AddDate(0, -3, 0)
		if s.IsApproved() {
			approved := now.AddDate(0, -2, 0)
			s.ApprovedAt = &approved
		}
		stores[i] = s
	}
	return stores
}

func seedProducts(now time.Time) []domain.Product {
	numbers := make(map[string][]string)
	products := make([]domain.Product, 0, len(productSeeds))
	for _, p := range productSeeds {
		number, err := productcode.Next(p.storeID, numbers[p.storeID])
		if err != nil {
			panic(fmt.Sprintf("memory: seeding product %s: %v", p.id, err))
		}
		numbers[p.storeID] = append(numbers[p.storeID], number)

		stock := p.stock
		products = append(products, domain.Product{
			ProductID:     p.id,
			StoreID:       p.storeID,
			Name:          p.name,
			Price:         p.price,
			Barcode:       p.barcode,
			ProductNumber: number,
			Category:      p.category,
			Stock:         &stock,
			CreatedAt:     now.AddDate(0, -1, 0),
		})
	}
	return products
}

func seedOrders(now time.Time) []domain.StaffOrder {
	exitedAt := now.Add(-45 * time.Minute)
	return []domain.StaffOrder{
		{
			ID:           "ORDER_VALID_001",
			CustomerName: "Demo User",
			Total:        6250,
			Status:       domain.OrderStatusPaidNotExited,
			CreatedAt:    now.Add(-15 * time.Minute),
			Items: []domain.StaffOrderItem{
				{ID: "itm_1", Name: "Fresh Tomatoes (Basket)", Qty: 1, Price: 2500},
				{ID: "itm_2", Name: "Pringles Original", Qty: 2, Price: 1200},
				{ID: "itm_3", Name: "Coca-Cola 1.5L", Qty: 1, Price: 350},
			},
		},
		{
			ID:           "ORDER_ALREADY_EXITED_001",
			CustomerName: "Return Customer",
			Total:        3200,
			Status:       domain.OrderStatusExited,
			CreatedAt:    now.Add(-60 * time.Minute),
			ExitedAt:     &exitedAt,
			Items: []domain.StaffOrderItem{
				{ID: "itm_4", Name: "Laundry Detergent (2kg)", Qty: 1, Price: 3200},
			},
		},
		{
			ID:           "ORDER_UNPAID_001",
			CustomerName: "Test User",
			Total:        1500,
			Status:       domain.OrderStatusUnpaid,
			CreatedAt:    now.Add(-5 * time.Minute),
			Items: []domain.StaffOrderItem{
				{ID: "itm_5", Name: "Energy Drink (Can)", Qty: 2, Price: 700},
				{ID: "itm_6", Name: "Soft Drink Can (Assorted)", Qty: 1, Price: 500},
			},
		},
	}
}

func seedStaff() []domain.StaffUser {
	const branchID, branchName = "STORE_001", "MegaMart Lekki"
	return []domain.StaffUser{
		{ID: "STAFF_SEC_001", Email: "security@checky.app", Name: "Gate Security", Role: domain.StaffRoleSecurity, BranchID: branchID, BranchName: branchName},
		{ID: "STAFF_STOCK_001", Email: "stock@checky.app", Name: "Stock Clerk", Role: domain.StaffRoleStockClerk, BranchID: branchID, BranchName: branchName},
		{ID: "STAFF_MGR_001", Email: "manager@checky.app", Name: "Store Manager", Role: domain.StaffRoleManager, BranchID: branchID, BranchName: branchName},
	}
}

func seedUsers(now time.Time) []domain.User {
	return []domain.User{
		{
			ID:        "USER_001",
			Email:     "demo@checky.app",
			Name:      "Demo User",
			Phone:     "+234 801 234 5678",
			Role:      domain.UserRoleCustomer,
			CreatedAt: now.AddDate(0, 0, -30),
		},
		{
			ID:        "ADMIN_001",
			Email:     "admin@megamart.com",
			Name:      "MegaMart Admin",
			Phone:     "+234 802 345 6789",
			Role:      domain.UserRoleStoreAdmin,
			CreatedAt: now.AddDate(0, 0, -60),
		},
	}
}
