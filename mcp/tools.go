package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"admin-setor/core/utils"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"
)

// listQuery builds the pagination query shared by every listing tool.
func listQuery(req mcplib.CallToolRequest) url.Values {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(intArg(req, "limit", 50)))
	q.Set("offset", strconv.Itoa(intArg(req, "offset", 0)))
	return q
}

func withPagination(opts ...mcplib.ToolOption) []mcplib.ToolOption {
	return append(opts,
		mcplib.WithNumber("limit",
			mcplib.Description("Maximum number of records to return (default 50, max 200)."),
		),
		mcplib.WithNumber("offset",
			mcplib.Description("Number of records to skip (default 0)."),
		),
	)
}

// ─── departments ──────────────────────────────────────────────────────────────

func (s *Server) toolListDepartments() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list_departments",
		withPagination(
			mcplib.WithDescription("List registered departments with their cost centers."),
			mcplib.WithReadOnlyHintAnnotation(true),
		)...,
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListDepartments}
}

func (s *Server) handleListDepartments(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	raw, err := s.api.Get(ctx, "/departments", listQuery(req))
	if err != nil {
		return resultErr(fmt.Errorf("list_departments: %w", err)), nil
	}
	return resultRaw(raw), nil
}

func (s *Server) toolCreateDepartment() mcpsrv.ServerTool {
	tool := mcplib.NewTool("create_department",
		mcplib.WithDescription("Create a new department."),
		mcplib.WithString("name",
			mcplib.Description("Department name (unique)."),
			mcplib.Required(),
		),
		mcplib.WithString("cost_center",
			mcplib.Description("Cost center code (unique)."),
			mcplib.Required(),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleCreateDepartment}
}

func (s *Server) handleCreateDepartment(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	name, _ := stringArg(req, "name")
	costCenter, _ := stringArg(req, "cost_center")
	if name == "" || costCenter == "" {
		return resultErr(errors.New("create_department: name and cost_center are required")), nil
	}

	raw, err := s.api.Post(ctx, "/departments", map[string]any{
		"name":        name,
		"cost_center": costCenter,
	})
	if err != nil {
		return resultErr(fmt.Errorf("create_department: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// ─── employees ────────────────────────────────────────────────────────────────

func (s *Server) toolListEmployees() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list_employees",
		withPagination(
			mcplib.WithDescription("List employees, optionally restricted to one department."),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithNumber("department_id",
				mcplib.Description("Only return employees of this department."),
			),
		)...,
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListEmployees}
}

func (s *Server) handleListEmployees(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	q := listQuery(req)
	if id := intArg(req, "department_id", 0); id > 0 {
		q.Set("department_id", strconv.Itoa(id))
	}

	raw, err := s.api.Get(ctx, "/employees", q)
	if err != nil {
		return resultErr(fmt.Errorf("list_employees: %w", err)), nil
	}
	return resultRaw(raw), nil
}

func (s *Server) toolCreateEmployee() mcpsrv.ServerTool {
	tool := mcplib.NewTool("create_employee",
		mcplib.WithDescription(`Create an employee in a department.

salary_cents is an integer in cents. hired_on accepts YYYY-MM-DD; a full ISO
datetime is truncated to its date part.`),
		mcplib.WithNumber("department_id",
			mcplib.Description("ID of the department the employee belongs to."),
			mcplib.Required(),
		),
		mcplib.WithString("full_name",
			mcplib.Description("Employee full name."),
			mcplib.Required(),
		),
		mcplib.WithString("email",
			mcplib.Description("Work email (unique)."),
			mcplib.Required(),
		),
		mcplib.WithString("role",
			mcplib.Description("Job title."),
			mcplib.Required(),
		),
		mcplib.WithNumber("salary_cents",
			mcplib.Description("Monthly salary in cents."),
			mcplib.Required(),
		),
		mcplib.WithString("hired_on",
			mcplib.Description("Hire date (YYYY-MM-DD)."),
			mcplib.Required(),
		),
		mcplib.WithBoolean("active",
			mcplib.Description("Whether the employee is active (default true)."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleCreateEmployee}
}

func (s *Server) handleCreateEmployee(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	hiredOn, _ := stringArg(req, "hired_on")

	raw, err := s.api.Post(ctx, "/employees", map[string]any{
		"department_id": intArg(req, "department_id", 0),
		"full_name":     argString(req, "full_name"),
		"email":         argString(req, "email"),
		"role":          argString(req, "role"),
		"salary_cents":  intArg(req, "salary_cents", 0),
		"hired_on":      utils.NormalizeDate(hiredOn),
		"active":        boolArg(req, "active", true),
	})
	if err != nil {
		return resultErr(fmt.Errorf("create_employee: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// ─── suppliers ────────────────────────────────────────────────────────────────

func (s *Server) toolListSuppliers() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list_suppliers",
		withPagination(
			mcplib.WithDescription("List registered suppliers."),
			mcplib.WithReadOnlyHintAnnotation(true),
		)...,
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListSuppliers}
}

func (s *Server) handleListSuppliers(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	raw, err := s.api.Get(ctx, "/suppliers", listQuery(req))
	if err != nil {
		return resultErr(fmt.Errorf("list_suppliers: %w", err)), nil
	}
	return resultRaw(raw), nil
}

func (s *Server) toolCreateSupplier() mcpsrv.ServerTool {
	tool := mcplib.NewTool("create_supplier",
		mcplib.WithDescription("Create a supplier. Email and phone are optional."),
		mcplib.WithString("name",
			mcplib.Description("Supplier legal name (unique)."),
			mcplib.Required(),
		),
		mcplib.WithString("tax_id",
			mcplib.Description("Tax identifier, e.g. CNPJ (unique)."),
			mcplib.Required(),
		),
		mcplib.WithString("email",
			mcplib.Description("Contact email."),
		),
		mcplib.WithString("phone",
			mcplib.Description("Contact phone."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleCreateSupplier}
}

func (s *Server) handleCreateSupplier(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	payload := map[string]any{
		"name":   argString(req, "name"),
		"tax_id": argString(req, "tax_id"),
	}
	if v, ok := stringArg(req, "email"); ok && v != "" {
		payload["email"] = v
	}
	if v, ok := stringArg(req, "phone"); ok && v != "" {
		payload["phone"] = v
	}

	raw, err := s.api.Post(ctx, "/suppliers", payload)
	if err != nil {
		return resultErr(fmt.Errorf("create_supplier: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// ─── purchase orders ──────────────────────────────────────────────────────────

func (s *Server) toolListPurchaseOrders() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list_purchase_orders",
		withPagination(
			mcplib.WithDescription("List purchase orders, optionally filtered by status."),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithString("status",
				mcplib.Description("Filter by status."),
				mcplib.Enum("DRAFT", "APPROVED", "SENT", "RECEIVED", "CANCELLED"),
			),
		)...,
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListPurchaseOrders}
}

func (s *Server) handleListPurchaseOrders(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	q := listQuery(req)
	if v, ok := stringArg(req, "status"); ok && v != "" {
		q.Set("status", v)
	}

	raw, err := s.api.Get(ctx, "/purchase-orders", q)
	if err != nil {
		return resultErr(fmt.Errorf("list_purchase_orders: %w", err)), nil
	}
	return resultRaw(raw), nil
}

func (s *Server) toolCreatePurchaseOrder() mcpsrv.ServerTool {
	tool := mcplib.NewTool("create_purchase_order",
		mcplib.WithDescription("Create a purchase order for a supplier, requested by an employee on behalf of a department. Status defaults to DRAFT."),
		mcplib.WithNumber("supplier_id",
			mcplib.Description("ID of the supplier."),
			mcplib.Required(),
		),
		mcplib.WithNumber("requested_by",
			mcplib.Description("ID of the requesting employee."),
			mcplib.Required(),
		),
		mcplib.WithNumber("department_id",
			mcplib.Description("ID of the department the purchase is booked against."),
			mcplib.Required(),
		),
		mcplib.WithNumber("total_cents",
			mcplib.Description("Order total in cents."),
			mcplib.Required(),
		),
		mcplib.WithString("status",
			mcplib.Description("Initial status (default DRAFT)."),
			mcplib.Enum("DRAFT", "APPROVED", "SENT", "RECEIVED", "CANCELLED"),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleCreatePurchaseOrder}
}

func (s *Server) handleCreatePurchaseOrder(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	payload := map[string]any{
		"supplier_id":   intArg(req, "supplier_id", 0),
		"requested_by":  intArg(req, "requested_by", 0),
		"department_id": intArg(req, "department_id", 0),
		"total_cents":   intArg(req, "total_cents", 0),
	}
	if v, ok := stringArg(req, "status"); ok && v != "" {
		payload["status"] = v
	}

	raw, err := s.api.Post(ctx, "/purchase-orders", payload)
	if err != nil {
		return resultErr(fmt.Errorf("create_purchase_order: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// ─── invoices ─────────────────────────────────────────────────────────────────

func (s *Server) toolListInvoices() mcpsrv.ServerTool {
	tool := mcplib.NewTool("list_invoices",
		withPagination(
			mcplib.WithDescription("List invoices, optionally filtered by status."),
			mcplib.WithReadOnlyHintAnnotation(true),
			mcplib.WithString("status",
				mcplib.Description("Filter by status."),
				mcplib.Enum("OPEN", "PAID", "CANCELLED", "OVERDUE"),
			),
		)...,
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleListInvoices}
}

func (s *Server) handleListInvoices(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	q := listQuery(req)
	if v, ok := stringArg(req, "status"); ok && v != "" {
		q.Set("status", v)
	}

	raw, err := s.api.Get(ctx, "/invoices", q)
	if err != nil {
		return resultErr(fmt.Errorf("list_invoices: %w", err)), nil
	}
	return resultRaw(raw), nil
}

func (s *Server) toolCreateInvoice() mcpsrv.ServerTool {
	tool := mcplib.NewTool("create_invoice",
		mcplib.WithDescription("Create an invoice for a supplier. The invoice number must be unique per supplier. po_id optionally links the purchase order being settled."),
		mcplib.WithNumber("supplier_id",
			mcplib.Description("ID of the supplier."),
			mcplib.Required(),
		),
		mcplib.WithString("invoice_no",
			mcplib.Description("Invoice number (unique per supplier)."),
			mcplib.Required(),
		),
		mcplib.WithString("issued_on",
			mcplib.Description("Issue date (YYYY-MM-DD)."),
			mcplib.Required(),
		),
		mcplib.WithString("due_on",
			mcplib.Description("Due date (YYYY-MM-DD)."),
			mcplib.Required(),
		),
		mcplib.WithNumber("amount_cents",
			mcplib.Description("Invoice amount in cents."),
			mcplib.Required(),
		),
		mcplib.WithString("status",
			mcplib.Description("Invoice status."),
			mcplib.Enum("OPEN", "PAID", "CANCELLED", "OVERDUE"),
			mcplib.Required(),
		),
		mcplib.WithNumber("po_id",
			mcplib.Description("ID of the purchase order this invoice settles."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleCreateInvoice}
}

func (s *Server) handleCreateInvoice(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	payload := map[string]any{
		"supplier_id":  intArg(req, "supplier_id", 0),
		"invoice_no":   argString(req, "invoice_no"),
		"issued_on":    argString(req, "issued_on"),
		"due_on":       argString(req, "due_on"),
		"amount_cents": intArg(req, "amount_cents", 0),
		"status":       argString(req, "status"),
	}
	if id := intArg(req, "po_id", 0); id > 0 {
		payload["po_id"] = id
	}

	raw, err := s.api.Post(ctx, "/invoices", payload)
	if err != nil {
		return resultErr(fmt.Errorf("create_invoice: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// ─── payments ─────────────────────────────────────────────────────────────────

func (s *Server) toolCreatePayment() mcpsrv.ServerTool {
	tool := mcplib.NewTool("create_payment",
		mcplib.WithDescription("Register a payment against an invoice. When the paid total covers the invoice amount the invoice flips to PAID."),
		mcplib.WithNumber("invoice_id",
			mcplib.Description("ID of the invoice being paid."),
			mcplib.Required(),
		),
		mcplib.WithString("paid_on",
			mcplib.Description("Payment date (YYYY-MM-DD)."),
			mcplib.Required(),
		),
		mcplib.WithNumber("amount_cents",
			mcplib.Description("Amount paid in cents (must be positive)."),
			mcplib.Required(),
		),
		mcplib.WithString("method",
			mcplib.Description("Payment method."),
			mcplib.Enum("PIX", "TED", "BOLETO", "CREDIT_CARD", "CASH"),
			mcplib.Required(),
		),
		mcplib.WithString("reference",
			mcplib.Description("Free-form payment reference, e.g. a bank receipt id."),
		),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleCreatePayment}
}

func (s *Server) handleCreatePayment(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	payload := map[string]any{
		"invoice_id":   intArg(req, "invoice_id", 0),
		"paid_on":      argString(req, "paid_on"),
		"amount_cents": intArg(req, "amount_cents", 0),
		"method":       argString(req, "method"),
	}
	if v, ok := stringArg(req, "reference"); ok && v != "" {
		payload["reference"] = v
	}

	raw, err := s.api.Post(ctx, "/payments", payload)
	if err != nil {
		return resultErr(fmt.Errorf("create_payment: %w", err)), nil
	}
	return resultRaw(raw), nil
}

// argString returns the string argument or "" when absent; required
// arguments are still enforced by the protocol schema, this just keeps the
// handlers flat.
func argString(req mcplib.CallToolRequest, name string) string {
	v, _ := stringArg(req, name)
	return v
}
