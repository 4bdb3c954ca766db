// Package supplier manages the vendor registry.
//
// Suppliers carry a unique name and tax id plus optional contact details, and
// are referenced by purchase orders and invoices.
package supplier
