package billing

import (
	"errors"
	"fmt"
	"net/url"

	"admin-setor/core/logger"
	"admin-setor/core/types"
	"admin-setor/core/validation"
	"admin-setor/feature/billing/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for invoices and payments.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the invoice and payment routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	invoices := app.Group("/invoices")
	invoices.Post("/", h.HandleCreateInvoice)
	invoices.Get("/", h.HandleListInvoices)
	invoices.Get("/:id", h.HandleGetInvoice)
	invoices.Delete("/:id", h.HandleDeleteInvoice)
	invoices.Post("/:id/attachments", h.HandleUploadAttachment)
	invoices.Get("/:id/attachments", h.HandleListAttachments)
	invoices.Get("/:id/attachments/:object", h.HandleDownloadAttachment)
	invoices.Delete("/:id/attachments/:object", h.HandleDeleteAttachment)

	payments := app.Group("/payments")
	payments.Post("/", h.HandleCreatePayment)
	payments.Get("/", h.HandleListPayments)
	payments.Get("/:id", h.HandleGetPayment)
	payments.Delete("/:id", h.HandleDeletePayment)
}

// HandleCreateInvoice creates a new invoice.
// @Summary Create Invoice
// @Tags invoices
// @Accept json
// @Produce json
// @Param payload body models.CreateInvoiceInput true "Invoice"
// @Success 201 {object} models.Invoice
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /invoices [post]
func (h *Handler) HandleCreateInvoice(c *fiber.Ctx) error {
	var input models.CreateInvoiceInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	inv, err := h.service.CreateInvoice(c.Context(), input)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Invoice create failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(inv)
}

// HandleListInvoices lists invoices.
// @Summary List Invoices
// @Tags invoices
// @Produce json
// @Param status query string false "Filter by status" Enums(OPEN,PAID,CANCELLED,OVERDUE)
// @Param supplier_id query int false "Filter by supplier"
// @Param limit query int false "Page size (1-200)" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.Invoice
// @Router /invoices [get]
func (h *Handler) HandleListInvoices(c *fiber.Ctx) error {
	filter := models.InvoiceListFilter{Status: c.Query("status")}
	if v := c.Query("supplier_id"); v != "" {
		id := c.QueryInt("supplier_id")
		if id < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid supplier_id"})
		}
		supID := uint(id)
		filter.SupplierID = &supID
	}

	page := types.Pagination{
		Limit:  c.QueryInt("limit", types.DefaultLimit),
		Offset: c.QueryInt("offset", 0),
	}

	invs, err := h.service.ListInvoices(c.Context(), filter, page)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Invoice list failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(invs)
}

// HandleGetInvoice returns an invoice by id.
// @Summary Get Invoice
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {object} models.Invoice
// @Failure 404 {object} map[string]string "Not Found"
// @Router /invoices/{id} [get]
func (h *Handler) HandleGetInvoice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	inv, err := h.service.GetInvoice(c.Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(inv)
}

// HandleDeleteInvoice removes an invoice, its payments and its attachments.
// @Summary Delete Invoice
// @Tags invoices
// @Param id path int true "Invoice ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /invoices/{id} [delete]
func (h *Handler) HandleDeleteInvoice(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.service.DeleteInvoice(c.Context(), uint(id)); err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Invoice delete failed", zap.Error(err), zap.Int("id", id))
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleUploadAttachment stores a file for an invoice.
// @Summary Upload Invoice Attachment
// @Tags invoices
// @Accept multipart/form-data
// @Produce json
// @Param id path int true "Invoice ID"
// @Param file formData file true "File to attach"
// @Success 201 {object} models.Attachment
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /invoices/{id}/attachments [post]
func (h *Handler) HandleUploadAttachment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing file field"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "unreadable file"})
	}
	defer file.Close()

	att, err := h.service.UploadAttachment(
		c.Context(),
		uint(id),
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get(fiber.HeaderContentType),
	)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Attachment upload failed", zap.Error(err), zap.Int("invoice_id", id))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(att)
}

// HandleListAttachments lists the files stored for an invoice.
// @Summary List Invoice Attachments
// @Tags invoices
// @Produce json
// @Param id path int true "Invoice ID"
// @Success 200 {array} models.Attachment
// @Failure 404 {object} map[string]string "Not Found"
// @Router /invoices/{id}/attachments [get]
func (h *Handler) HandleListAttachments(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	atts, err := h.service.ListAttachments(c.Context(), uint(id))
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Attachment list failed", zap.Error(err), zap.Int("invoice_id", id))
		return respondError(c, err)
	}
	return c.JSON(atts)
}

// HandleDownloadAttachment streams a stored file back to the caller.
// @Summary Download Invoice Attachment
// @Tags invoices
// @Produce octet-stream
// @Param id path int true "Invoice ID"
// @Param object path string true "Attachment object name"
// @Success 200 {file} binary
// @Failure 404 {object} map[string]string "Not Found"
// @Router /invoices/{id}/attachments/{object} [get]
func (h *Handler) HandleDownloadAttachment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	object, err := objectParam(c)
	if err != nil {
		return respondError(c, err)
	}

	reader, att, err := h.service.OpenAttachment(c.Context(), uint(id), object)
	if err != nil {
		return respondError(c, err)
	}

	if att.ContentType != "" {
		c.Set(fiber.HeaderContentType, att.ContentType)
	} else {
		c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", att.Name))
	return c.SendStream(reader, int(att.Size))
}

// HandleDeleteAttachment removes a stored file.
// @Summary Delete Invoice Attachment
// @Tags invoices
// @Param id path int true "Invoice ID"
// @Param object path string true "Attachment object name"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /invoices/{id}/attachments/{object} [delete]
func (h *Handler) HandleDeleteAttachment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	object, err := objectParam(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.service.DeleteAttachment(c.Context(), uint(id), object); err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Attachment delete failed", zap.Error(err), zap.Int("invoice_id", id))
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCreatePayment records a payment against an invoice.
// @Summary Create Payment
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body models.CreatePaymentInput true "Payment"
// @Success 201 {object} models.Payment
// @Failure 400 {object} map[string]string "Bad Request"
// @Router /payments [post]
func (h *Handler) HandleCreatePayment(c *fiber.Ctx) error {
	var input models.CreatePaymentInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	pay, err := h.service.CreatePayment(c.Context(), input)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Payment create failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(pay)
}

// HandleListPayments lists payments.
// @Summary List Payments
// @Tags payments
// @Produce json
// @Param invoice_id query int false "Filter by invoice"
// @Param limit query int false "Page size (1-200)" default(50)
// @Param offset query int false "Offset" default(0)
// @Success 200 {array} models.Payment
// @Router /payments [get]
func (h *Handler) HandleListPayments(c *fiber.Ctx) error {
	var filter models.PaymentListFilter
	if v := c.Query("invoice_id"); v != "" {
		id := c.QueryInt("invoice_id")
		if id < 1 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid invoice_id"})
		}
		invID := uint(id)
		filter.InvoiceID = &invID
	}

	page := types.Pagination{
		Limit:  c.QueryInt("limit", types.DefaultLimit),
		Offset: c.QueryInt("offset", 0),
	}

	pays, err := h.service.ListPayments(c.Context(), filter, page)
	if err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Error("Payment list failed", zap.Error(err))
		return respondError(c, err)
	}
	return c.JSON(pays)
}

// HandleGetPayment returns a payment by id.
// @Summary Get Payment
// @Tags payments
// @Produce json
// @Param id path int true "Payment ID"
// @Success 200 {object} models.Payment
// @Failure 404 {object} map[string]string "Not Found"
// @Router /payments/{id} [get]
func (h *Handler) HandleGetPayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	pay, err := h.service.GetPayment(c.Context(), uint(id))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(pay)
}

// HandleDeletePayment removes a payment by id.
// @Summary Delete Payment
// @Tags payments
// @Param id path int true "Payment ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string "Not Found"
// @Router /payments/{id} [delete]
func (h *Handler) HandleDeletePayment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid id"})
	}

	if err := h.service.DeletePayment(c.Context(), uint(id)); err != nil {
		l := logger.WithRayID(h.service.logger, c)
		l.Warn("Payment delete failed", zap.Error(err), zap.Int("id", id))
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// objectParam returns the decoded attachment object name. Uploaded filenames
// may contain spaces and other reserved characters, so the URL segment
// arrives percent-encoded and fiber does not unescape params.
func objectParam(c *fiber.Ctx) (string, error) {
	object, err := url.PathUnescape(c.Params("object"))
	if err != nil {
		return "", ErrAttachmentNotFound
	}
	return object, nil
}

// respondError maps service errors to HTTP responses.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ErrInvoiceNotFound),
		errors.Is(err, ErrPaymentNotFound),
		errors.Is(err, ErrAttachmentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrSupplierNotFound),
		errors.Is(err, ErrPurchaseOrderNotFound),
		errors.Is(err, ErrPaymentInvoiceMissing),
		errors.Is(err, ErrDuplicateInvoice),
		errors.Is(err, ErrInvalidStatus):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrStorageDisabled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case validation.IsError(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
