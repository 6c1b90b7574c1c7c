package handler

import (
	"margin-ledger-engine/config"
	"margin-ledger-engine/internal/adapter/http/middleware"
	redisStore "margin-ledger-engine/internal/adapter/storage/redis"
	"margin-ledger-engine/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	OrderSvc       ports.OrderService
	LedgerSvc      ports.LedgerService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers []ports.HealthChecker
	AuditSvc       ports.AuditService // nil = audit logging disabled
	Ledger         config.LedgerConfig
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Audit logging (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditLog(deps.AuditSvc))
	}

	// Health check (deep — verifies PostgreSQL + Redis)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	orderHandler := NewOrderHandler(deps.OrderSvc)
	orders := v1.Group("/orders")
	{
		orders.POST("/confirm", rl("orders_confirm"), orderHandler.Confirm)
		orders.POST("/rto", rl("orders_rto"), orderHandler.MarkRTO)
		orders.POST("/margin", rl("orders_margin"), orderHandler.ComputeMargin)
	}

	walletHandler := NewWalletHandler(deps.LedgerSvc, deps.Ledger.HistoryPageSize, deps.Ledger.MaxHistoryPageSize)
	wallets := v1.Group("/wallets")
	{
		wallets.GET("/:storeId/balance", rl("wallets"), walletHandler.GetBalance)
		wallets.GET("/:storeId/transactions", rl("wallets"), walletHandler.ListTransactions)
		wallets.GET("/:storeId/summary", rl("wallets"), walletHandler.GetSummary)
	}

	return r
}
