// Package types holds shared value types used across feature models.
//
// Currently this is the Date type, a date-only value that keeps the JSON wire
// format ("YYYY-MM-DD") and the database representation (DATE column) in sync
// across the Postgres and SQLite dialects.
package types
