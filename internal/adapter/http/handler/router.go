package handler

import (
	"checky/internal/adapter/http/middleware"
	"checky/internal/core/domain"
	"checky/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AuthSvc        ports.AuthService
	Sessions       ports.SessionRegistry // per-customer shopping state
	Catalog        ports.CatalogRepository
	StaffSvc       ports.StaffService
	TokenSvc       ports.TokenService
	RateLimiter    ports.RateLimiter // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	Currency       string
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	swagger := r.Group("/swagger")
	{
		swagger.GET("", SwaggerUI)
		swagger.GET("/spec", SwaggerSpec)
	}

	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if a limiter is configured, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimiter == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimiter, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1")
	customerAuth := middleware.CustomerAuth(deps.TokenSvc, deps.Logger)
	staffAuth := middleware.StaffAuth(deps.TokenSvc, deps.Logger)

	// --- Customer accounts ---
	authHandler := NewAuthHandler(deps.AuthSvc)
	auth := v1.Group("/auth")
	{
		auth.POST("/signup", rl("auth_signup"), authHandler.Signup)
		auth.POST("/login", rl("auth_login"), authHandler.Login)
		auth.GET("/me", customerAuth, authHandler.Me)
		auth.PATCH("/me", customerAuth, authHandler.UpdateMe)
	}

	// --- Wallet ---
	walletHandler := NewWalletHandler(deps.Sessions, deps.Currency)
	wallet := v1.Group("/wallet", customerAuth)
	{
		wallet.GET("", walletHandler.GetBalance)
		wallet.GET("/transactions", walletHandler.ListTransactions)
		wallet.POST("/topup", rl("wallet_topup"), walletHandler.TopUp)
		wallet.POST("/debit", walletHandler.Debit)
	}

	// --- Store session ---
	storeHandler := NewStoreHandler(deps.Catalog, deps.Sessions)
	v1.GET("/stores", storeHandler.List)
	stores := v1.Group("/stores", customerAuth)
	{
		stores.GET("/current", storeHandler.Current)
		stores.POST("/enter", storeHandler.Enter)
		stores.POST("/leave", storeHandler.Leave)
	}

	// --- Basket ---
	basketHandler := NewBasketHandler(deps.Sessions)
	basket := v1.Group("/basket", customerAuth)
	{
		basket.GET("", basketHandler.Get)
		basket.DELETE("", basketHandler.Clear)
		basket.POST("/scan", rl("scan"), basketHandler.Scan)
		basket.PUT("/items/:product_id", basketHandler.SetQuantity)
		basket.DELETE("/items/:product_id", basketHandler.RemoveItem)
	}

	// --- Checkout and receipts ---
	checkoutHandler := NewCheckoutHandler(deps.Sessions)
	v1.POST("/checkout", customerAuth, rl("checkout"), checkoutHandler.Checkout)
	receipts := v1.Group("/receipts", customerAuth)
	{
		receipts.GET("", checkoutHandler.ListReceipts)
		receipts.GET("/:id", checkoutHandler.GetReceipt)
	}

	// --- QR codec ---
	qrHandler := NewQRHandler(deps.Catalog)
	qr := v1.Group("/qr")
	{
		qr.GET("/stores/:store_id", qrHandler.StoreQR)
		qr.POST("/decode", qrHandler.Decode)
	}

	// --- Staff app ---
	staffHandler := NewStaffHandler(deps.StaffSvc)
	v1.POST("/staff/login", rl("staff_login"), staffHandler.Login)
	staff := v1.Group("/staff", staffAuth)
	{
		staff.GET("/me", staffHandler.Me)
		staff.GET("/orders/:order_id/verification",
			middleware.RequireStaffRole(domain.StaffRole.CanVerifyExits), staffHandler.VerifyOrder)
		staff.GET("/inventory",
			middleware.RequireStaffRole(domain.StaffRole.CanViewInventory), staffHandler.Inventory)
	}

	return r
}
