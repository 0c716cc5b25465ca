package sync

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"content-platform/core/apperr"
	"content-platform/core/logger"
)

// Handler handles HTTP requests for sync operations.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the sync routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/sync")
	group.Post("/from-r2", h.HandleSyncFromR2)
	group.Post("/rebuild-metadata", h.HandleRebuildMetadata)
	group.Get("/status", h.HandleStatus)
}

// HandleSyncFromR2 rebuilds database rows from the metadata documents in storage.
// @Summary Sync From R2
// @Description Enumerate metadata documents in bucket storage and upsert database rows.
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Sync counts"
// @Failure 409 {object} map[string]interface{} "Sync already in progress"
// @Failure 502 {object} map[string]interface{} "Storage unreachable"
// @Router /sync/from-r2 [post]
func (h *Handler) HandleSyncFromR2(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.SyncFromR2(c.Context())
	if err != nil {
		l.Error("Sync from R2 failed", zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Sync completed",
		"performers": result.Performers,
		"content":    result.Content,
		"skipped":    result.Skipped,
	})
}

// HandleRebuildMetadata regenerates all metadata documents from database rows.
// @Summary Rebuild Metadata
// @Description Regenerate every metadata document in bucket storage from database rows.
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Rebuild counts"
// @Failure 409 {object} map[string]interface{} "Sync already in progress"
// @Failure 502 {object} map[string]interface{} "Database unreachable"
// @Router /sync/rebuild-metadata [post]
func (h *Handler) HandleRebuildMetadata(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	result, err := h.service.RebuildMetadata(c.Context())
	if err != nil {
		l.Error("Metadata rebuild failed", zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"message":    "Metadata rebuild completed",
		"performers": result.Performers,
		"content":    result.Content,
		"skipped":    result.Skipped,
	})
}

// HandleStatus reports counts and drift between the database and storage.
// @Summary Sync Status
// @Description Compare hash sets between the database and bucket storage.
// @Tags sync
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "Status report"
// @Failure 502 {object} map[string]interface{} "Storage unreachable"
// @Router /sync/status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	status, err := h.service.Status(c.Context())
	if err != nil {
		l.Error("Sync status check failed", zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"neon":    status.Neon,
		"r2":      status.R2,
		"synced":  status.Synced,
		"drift":   status.Drift,
	})
}
