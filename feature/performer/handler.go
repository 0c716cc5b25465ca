package performer

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"content-platform/core/apperr"
	"content-platform/core/logger"
	"content-platform/core/utils"
)

// Handler handles HTTP requests for performers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the performer routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/performers")
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Get("/:id/content", h.HandleListContent)
	group.Post("/", h.HandleCreate)
	group.Patch("/:id", h.HandleUpdate)
	group.Delete("/:id", h.HandleDelete)
}

// HandleList returns one page of active performers.
// @Summary List Performers
// @Description List active performers, newest first.
// @Tags performers
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{} "Performers page"
// @Router /performers [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	page := c.QueryInt("page", utils.DefaultPage)
	limit := c.QueryInt("limit", utils.DefaultLimit)

	result, err := h.service.List(c.Context(), page, limit)
	if err != nil {
		l.Error("Performer list failed", zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result.Performers,
		"meta":    result.Meta,
	})
}

// HandleGet returns one performer.
// @Summary Get Performer
// @Description Get a single performer by id.
// @Tags performers
// @Accept json
// @Produce json
// @Param id path string true "Performer ID"
// @Success 200 {object} map[string]interface{} "Performer"
// @Failure 404 {object} map[string]interface{} "Performer not found"
// @Router /performers/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	performer, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		l.Warn("Performer get failed", zap.String("id", c.Params("id")), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": performer})
}

// HandleListContent returns one page of a performer's content.
// @Summary List Performer Content
// @Description List one performer's active content, newest first.
// @Tags performers
// @Accept json
// @Produce json
// @Param id path string true "Performer ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} map[string]interface{} "Content page"
// @Failure 404 {object} map[string]interface{} "Performer not found"
// @Router /performers/{id}/content [get]
func (h *Handler) HandleListContent(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	page := c.QueryInt("page", utils.DefaultPage)
	limit := c.QueryInt("limit", utils.DefaultLimit)

	result, err := h.service.ListContent(c.Context(), c.Params("id"), page, limit)
	if err != nil {
		l.Warn("Performer content list failed", zap.String("id", c.Params("id")), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result.Content,
		"meta":    result.Meta,
	})
}

// HandleCreate creates a performer.
// @Summary Create Performer
// @Description Create a performer; the content hash is derived from the name.
// @Tags performers
// @Accept json
// @Produce json
// @Param performer body CreateInput true "Performer fields"
// @Success 201 {object} map[string]interface{} "Created performer"
// @Failure 400 {object} map[string]interface{} "Validation error"
// @Failure 409 {object} map[string]interface{} "Performer already exists"
// @Router /performers [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body"))
	}

	performer, err := h.service.Create(c.Context(), in)
	if err != nil {
		l.Warn("Performer create failed", zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "data": performer})
}

// HandleUpdate applies a partial update to a performer.
// @Summary Update Performer
// @Description Update performer fields; renaming re-derives the hash.
// @Tags performers
// @Accept json
// @Produce json
// @Param id path string true "Performer ID"
// @Param performer body UpdateInput true "Fields to update"
// @Success 200 {object} map[string]interface{} "Updated performer"
// @Failure 404 {object} map[string]interface{} "Performer not found"
// @Router /performers/{id} [patch]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var in UpdateInput
	if err := c.BodyParser(&in); err != nil {
		return apperr.Respond(c, apperr.Validation("invalid request body"))
	}

	performer, err := h.service.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		l.Warn("Performer update failed", zap.String("id", c.Params("id")), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "data": performer})
}

// HandleDelete removes a performer and its content.
// @Summary Delete Performer
// @Description Delete a performer, its content rows, and their storage objects.
// @Tags performers
// @Accept json
// @Produce json
// @Param id path string true "Performer ID"
// @Success 200 {object} map[string]interface{} "Deleted"
// @Failure 404 {object} map[string]interface{} "Performer not found"
// @Router /performers/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		l.Warn("Performer delete failed", zap.String("id", c.Params("id")), zap.Error(err))
		return apperr.Respond(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Performer deleted"})
}
