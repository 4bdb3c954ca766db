// Package purchase manages purchase orders.
//
// A purchase order ties a supplier, a requesting employee and a department
// together with a total in cents and a lifecycle status (DRAFT, APPROVED,
// SENT, RECEIVED, CANCELLED).
package purchase
