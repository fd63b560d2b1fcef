package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-partner-ledger/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig, limiter ...gin.HandlerFunc) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1", middleware.Auth(authCfg))
	v1.Use(limiter...)
	{
		// Partner endpoints: a JWT may only reach its own partner
		partners := v1.Group("/partners/:id", middleware.RequirePartnerAccess("id"))
		partners.GET("", handler.GetPartner)
		partners.GET("/ledger/:kind", handler.GetLedger)
		partners.GET("/referrals/summary", handler.GetReferralSummary)
		partners.GET("/withdrawals", handler.ListWithdrawals)
		partners.POST("/withdrawals", handler.CreateWithdrawal)

		// Cycle endpoints (any authenticated caller)
		v1.GET("/cycles/active", handler.GetActiveCycle)
		v1.GET("/cycles/:number", handler.GetCycle)

		// Event ingestion (API key only)
		events := v1.Group("/events", middleware.RequireAPIKey())
		events.POST("/order-paid", handler.IngestOrderPaid)
		events.POST("/partner-joined", handler.IngestPartnerJoined)
		events.POST("/milestone", handler.IngestMilestone)

		// Admin endpoints (API key only)
		admin := v1.Group("/admin", middleware.RequireAPIKey())
		admin.POST("/withdrawals/:id/approve", handler.ApproveWithdrawal)
		admin.POST("/withdrawals/:id/reject", handler.RejectWithdrawal)
		admin.POST("/withdrawals/:id/complete", handler.CompleteWithdrawal)
		admin.POST("/partners/:id/activate", handler.ActivatePartner)
		admin.POST("/partners/:id/suspend", handler.SuspendPartner)
		admin.POST("/partners/:id/expire", handler.ExpirePartner)
		admin.POST("/partners/:id/adjustments", handler.PostAdjustment)
		admin.POST("/partners/:id/accounts/:kind/freeze", handler.FreezeAccount)
		admin.POST("/partners/:id/accounts/:kind/unfreeze", handler.UnfreezeAccount)
		admin.POST("/cycles/settle", handler.SettleCycle)
	}
}
