package supplier

import (
	"errors"

	"admin-setor/core/logger"
	"admin-setor/core/types"
	"admin-setor/core/validation"
	"admin-setor/feature/supplier/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for suppliers.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the supplier routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/suppliers")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Delete("/:id", h.HandleDelete)
}

// HandleCreate creates a new supplier.
// @Summary Create Supplier
// @Tags suppliers
// @Accept json
// @Produce json
// @Param payload body models.CreateSupplierInput true "Supplier"
// @Success 201 {object} models.Supplier
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /suppliers [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var input models.CreateSupplierInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	sup, err := h.service.Create(c.Context(), input)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Supplier create failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sup)
}

// HandleList lists suppliers.
// @Summary List Suppliers
// @Tags suppliers
// @Produce json
// @Param limit query int false "Page size (1-200)" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.Supplier
// @Router /suppliers [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	page := types.Pagination{
		Limit:  c.QueryInt("limit", types.DefaultLimit),
		Offset: c.QueryInt("offset", 0),
	}

	sups, err := h.service.List(c.Context(), page)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Supplier list failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(sups)
}

// HandleGet returns a supplier by id.
// @Summary Get Supplier
// @Tags suppliers
// @Produce json
// @Param id path int true "Supplier ID"
// @Success 200 {object} models.Supplier
// @Failure 404 {object} map[string]string "Not Found"
// @Router /suppliers/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	sup, err := h.service.Get(c.Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(sup)
}

// HandleDelete removes a supplier by id.
// @Summary Delete Supplier
// @Tags suppliers
// @Param id path int true "Supplier ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /suppliers/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.service.Delete(c.Context(), uint(id)); err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Supplier delete failed", zap.Error(err), zap.Int("id", id))
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// respondError maps service errors to HTTP responses.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrDuplicate):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case validation.IsError(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
