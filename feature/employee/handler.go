package employee

import (
	"errors"
	"strconv"

	"admin-setor/core/logger"
	"admin-setor/core/types"
	"admin-setor/core/validation"
	"admin-setor/feature/employee/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for employees.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the employee routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/employees")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Delete("/:id", h.HandleDelete)
}

// HandleCreate creates a new employee.
// @Summary Create Employee
// @Tags employees
// @Accept json
// @Produce json
// @Param payload body models.CreateEmployeeInput true "Employee"
// @Success 201 {object} models.Employee
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /employees [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var input models.CreateEmployeeInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	emp, err := h.service.Create(c.Context(), input)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Employee create failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(emp)
}

// HandleList lists employees.
// @Summary List Employees
// @Tags employees
// @Produce json
// @Param department_id query int false "Filter by department"
// @Param active query bool false "Filter by active flag"
// @Param limit query int false "Page size (1-200)" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.Employee
// @Router /employees [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	var filter models.ListFilter
	if v := c.Query("department_id"); v != "" {
		id := c.QueryInt("department_id")
		if id < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid department_id"})
		}
		deptID := uint(id)
		filter.DepartmentID = &deptID
	}
	if v := c.Query("active"); v != "" {
		active, err := strconv.ParseBool(v)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid active"})
		}
		filter.Active = &active
	}

	page := types.Pagination{
		Limit:  c.QueryInt("limit", types.DefaultLimit),
		Offset: c.QueryInt("offset", 0),
	}

	emps, err := h.service.List(c.Context(), filter, page)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Employee list failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(emps)
}

// HandleGet returns an employee by id.
// @Summary Get Employee
// @Tags employees
// @Produce json
// @Param id path int true "Employee ID"
// @Success 200 {object} models.Employee
// @Failure 404 {object} map[string]string "Not Found"
// @Router /employees/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	emp, err := h.service.Get(c.Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(emp)
}

// HandleDelete removes an employee by id.
// @Summary Delete Employee
// @Tags employees
// @Param id path int true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /employees/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.service.Delete(c.Context(), uint(id)); err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Employee delete failed", zap.Error(err), zap.Int("id", id))
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// respondError maps service errors to HTTP responses.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrDepartmentNotFound), errors.Is(err, ErrDuplicateEmail):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case validation.IsError(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
