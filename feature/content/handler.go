package content

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"content-platform/core/apperr"
	"content-platform/core/logger"
	"content-platform/core/utils"
)

// Handler handles HTTP requests for content.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the content routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/content")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Post("/", h.HandleCreate)
	group.Patch("/:id", h.HandleUpdate)
	group.Post("/:id/view", h.HandleView)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns one page of active content.
// @Summary List Content
// @Description List active content, newest first, optionally filtered by performer.
// @Tags content
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Param performerId query string false "Filter by performer ID"
// @Success 200 {object} map[string]interface{} "Content page"
// @Router /content [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	page := c.QueryInt("page", utils.DefaultPage)
	limit := c.QueryInt("limit", utils.DefaultLimit)

	result, err := h.service.List(c.Context(), page, limit, c.Query("performerId"))
	if err != nil {
		l.Error("Content list failed", zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result.Content,
		"meta":    result.Meta,
	})
}

// HandleGet returns one content item.
// @Summary Get Content
// @Description Get a single content item by id.
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{} "Content item"
// @Failure 404 {object} map[string]interface{} "Content not found"
// @Router /content/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	row, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		l.Warn("Content get failed", zap.String("id", c.Params("id")), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": row})
}

// HandleCreate creates a content item.
// @Summary Create Content
// @Description Create a content item; the hash is derived from title and performer.
// @Tags content
// @Accept json
// @Produce json
// @Param content body CreateInput true "Content fields"
// @Success 201 {object} map[string]interface{} "Created content"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 409 {object} map[string]interface{} "Content already exists"
// @Router /content [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body"))
	}

	row, err := h.service.Create(c.Context(), in)
	if err != nil {
		l.Warn("Content create failed", zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": row})
}

// HandleUpdate applies a partial update to a content item.
// @Summary Update Content
// @Description Update content fields; retitling re-derives the hash.
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param content body UpdateInput true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated content"
// @Failure 404 {object} map[string]interface{} "Content not found"
// @Router /content/{id} [patch]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in UpdateInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body"))
	}

	row, err := h.service.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		l.Warn("Content update failed", zap.String("id", c.Params("id")), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": row})
}

// HandleView records one view of a content item.
// @Summary Count View
// @Description Increment the view counter for a content item.
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{} "Counted"
// @Failure 404 {object} map[string]interface{} "Content not found"
// @Router /content/{id}/view [post]
func (h *Handler) HandleView(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.IncrementViewCount(c.Context(), c.Params("id")); err != nil {
		l.Warn("View count failed", zap.String("id", c.Params("id")), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "View counted"})
}

// HandleDelete removes a content item.
// @Summary Delete Content
// @Description Delete a content item and its storage objects.
// @Tags content
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Content not found"
// @Router /content/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		l.Warn("Content delete failed", zap.String("id", c.Params("id")), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Content deleted"})
}
