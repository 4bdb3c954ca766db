// Package validation wraps go-playground/validator behind a small helper.
//
// Feature services validate their input payloads with Struct, which collapses
// all field errors into one client-facing message. Validation rules live on
// the input structs as `validate` tags (see feature/*/models).
package validation
