package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	protected := api.Group("")
	protected.Use(BearerAuthMiddleware(h.cfg, h.logger))
	{
		// Scheduler trigger and manual "sync now"
		protected.POST("/sync/run", h.runSync)
		protected.POST("/sync/run/:tenant_id", h.runTenantSync)

		// Per-tenant read views
		tenants := protected.Group("/tenants/:tenant_id")
		{
			tenants.GET("/incidents", h.listIncidents)
			tenants.GET("/alerts", h.listAlerts)
			tenants.GET("/posting", h.getPostingView)
			tenants.POST("/posting/retry", h.retryPosting)
		}
	}

	// Health-check stays open
	api.GET("/system/health", h.healthCheck)
}
