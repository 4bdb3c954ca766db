package department

import (
	"errors"

	"admin-setor/core/logger"
	"admin-setor/core/types"
	"admin-setor/core/validation"
	"admin-setor/feature/department/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for departments.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the department routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/departments")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Delete("/:id", h.HandleDelete)
}

// HandleCreate creates a new department.
// @Summary Create Department
// @Tags departments
// @Accept json
// @Produce json
// @Param payload body models.CreateDepartmentInput true "Department"
// @Success 201 {object} models.Department
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /departments [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var input models.CreateDepartmentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	dept, err := h.service.Create(c.Context(), input)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Department create failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dept)
}

// HandleList lists departments.
// @Summary List Departments
// @Tags departments
// @Produce json
// @Param limit query int false "Page size (1-200)" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.Department
// @Router /departments [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	page := types.Pagination{
		Limit:  c.QueryInt("limit", types.DefaultLimit),
		Offset: c.QueryInt("offset", 0),
	}

	depts, err := h.service.List(c.Context(), page)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Department list failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(depts)
}

// HandleGet returns a department by id.
// @Summary Get Department
// @Tags departments
// @Produce json
// @Param id path int true "Department ID"
// @Success 200 {object} models.Department
// @Failure 404 {object} map[string]string "Not Found"
// @Router /departments/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	dept, err := h.service.Get(c.Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(dept)
}

// HandleDelete removes a department by id.
// @Summary Delete Department
// @Tags departments
// @Param id path int true "Department ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /departments/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.service.Delete(c.Context(), uint(id)); err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Department delete failed", zap.Error(err), zap.Int("id", id))
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
