// Package billing manages invoices and their payments.
//
// Invoices are unique per supplier and invoice number and may reference a
// purchase order. Recording a payment checks the paid total inside the same
// transaction and flips the invoice to PAID once it is covered.
//
// Invoices can also carry file attachments (receipts, scanned documents),
// stored in an object storage bucket under invoices/<id>/.
package billing
