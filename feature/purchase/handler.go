package purchase

import (
	"errors"

	"admin-setor/core/logger"
	"admin-setor/core/types"
	"admin-setor/core/validation"
	"admin-setor/feature/purchase/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for purchase orders.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the purchase order routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/purchase-orders")
	group.Post("/", h.HandleCreate)
	group.Get("/", h.HandleList)
	group.Get("/:id", h.HandleGet)
	group.Delete("/:id", h.HandleDelete)
}

// HandleCreate creates a new purchase order.
// @Summary Create Purchase Order
// @Tags purchase-orders
// @Accept json
// @Produce json
// @Param payload body models.CreatePurchaseOrderInput true "Purchase order"
// @Success 201 {object} models.PurchaseOrder
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /purchase-orders [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var input models.CreatePurchaseOrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	po, err := h.service.Create(c.Context(), input)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Purchase order create failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(po)
}

// HandleList lists purchase orders.
// @Summary List Purchase Orders
// @Tags purchase-orders
// @Produce json
// @Param status query string false "Filter by status" Enums(DRAFT,APPROVED,SENT,RECEIVED,CANCELLED)
// @Param limit query int false "Page size (1-200)" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.PurchaseOrder
// @Router /purchase-orders [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	filter := models.ListFilter{Status: c.Query("status")}
	page := types.Pagination{
		Limit:  c.QueryInt("limit", types.DefaultLimit),
		Offset: c.QueryInt("offset", 0),
	}

	pos, err := h.service.List(c.Context(), filter, page)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Purchase order list failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(pos)
}

// HandleGet returns a purchase order by id.
// @Summary Get Purchase Order
// @Tags purchase-orders
// @Produce json
// @Param id path int true "Purchase order ID"
// @Success 200 {object} models.PurchaseOrder
// @Failure 404 {object} map[string]string "Not Found"
// @Router /purchase-orders/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	po, err := h.service.Get(c.Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(po)
}

// HandleDelete removes a purchase order by id.
// @Summary Delete Purchase Order
// @Tags purchase-orders
// @Param id path int true "Purchase order ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /purchase-orders/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.service.Delete(c.Context(), uint(id)); err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Purchase order delete failed", zap.Error(err), zap.Int("id", id))
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// respondError maps service errors to HTTP responses.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrSupplierNotFound),
		errors.Is(err, ErrEmployeeNotFound),
		errors.Is(err, ErrDepartmentNotFound),
		errors.Is(err, ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case validation.IsError(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
