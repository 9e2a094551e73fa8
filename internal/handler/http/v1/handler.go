package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirenwatch/sirenwatch/internal/config"
	"github.com/sirenwatch/sirenwatch/internal/posting"
	"github.com/sirenwatch/sirenwatch/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	syncService service.SyncService
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(syncService service.SyncService, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		syncService: syncService,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// @Summary Run a sync pass for all tenants
// @Description Scheduler entry point: fans out a synchronization pass over every active tenant. Requires bearer token.
// @Tags Sync
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.SyncReport
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sync/run [post]
func (h *Handler) runSync(c *gin.Context) {
	log := h.logger.WithField("method", "runSync")

	report, err := h.syncService.SyncAll(c.Request.Context())
	if err != nil {
		log.WithError(err).Error("Failed to run sync pass")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// @Summary Run a sync pass for one tenant
// @Description Administrative "sync now" action for a single tenant. Requires bearer token.
// @Tags Sync
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} service.TenantResult
// @Failure 400 {object} map[string]string "Invalid tenant ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /sync/run/{tenant_id} [post]
func (h *Handler) runTenantSync(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}
	log := h.logger.WithField("method", "runTenantSync").WithField("tenant_id", tenantID)

	result, err := h.syncService.SyncTenant(c.Request.Context(), tenantID)
	if err != nil {
		log.WithError(err).Error("Failed to run tenant sync")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// @Summary List consolidated incidents
// @Description Consolidated (grouped) view of the tenant's active incidents. Requires bearer token.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {array} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid tenant ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}
	log := h.logger.WithField("method", "listIncidents").WithField("tenant_id", tenantID)

	incidents, err := h.syncService.ConsolidatedIncidents(c.Request.Context(), tenantID)
	if err != nil {
		log.WithError(err).Error("Failed to list consolidated incidents")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ConsolidatedToResponses(incidents))
}

// @Summary List active weather alerts
// @Description Active weather alerts for the tenant, with resolved lineage. Requires bearer token.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {array} AlertResponse
// @Failure 400 {object} map[string]string "Invalid tenant ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/alerts [get]
func (h *Handler) listAlerts(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}
	log := h.logger.WithField("method", "listAlerts").WithField("tenant_id", tenantID)

	alerts, err := h.syncService.ActiveAlerts(c.Request.Context(), tenantID)
	if err != nil {
		log.WithError(err).Error("Failed to list alerts")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, AlertsToResponses(alerts))
}

// @Summary Get the posting state view
// @Description Pending, posted and failed posting sets for the tenant. Requires bearer token.
// @Tags Posting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} PostingViewResponse
// @Failure 400 {object} map[string]string "Invalid tenant ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/posting [get]
func (h *Handler) getPostingView(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}
	log := h.logger.WithField("method", "getPostingView").WithField("tenant_id", tenantID)

	view, err := h.syncService.PostingView(c.Request.Context(), tenantID)
	if err != nil {
		log.WithError(err).Error("Failed to build posting view")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, ViewToResponse(view))
}

// @Summary Retry a failed posting item
// @Description Resets a failed item and queues it for publishing again. Requires bearer token.
// @Tags Posting
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param tenant_id path string true "Tenant ID"
// @Param retry body RetryRequest true "Retry request"
// @Success 202 "Accepted"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /tenants/{tenant_id}/posting/retry [post]
func (h *Handler) retryPosting(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}
	log := h.logger.WithField("method", "retryPosting").WithField("tenant_id", tenantID)

	var input RetryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recordID, err := uuid.Parse(input.RecordID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record ID"})
		return
	}

	if err := h.syncService.RetryItem(c.Request.Context(), tenantID, posting.ItemKind(input.Kind), recordID); err != nil {
		log.WithError(err).Error("Failed to retry posting item")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retry posting item"})
		return
	}
	c.Status(http.StatusAccepted)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
