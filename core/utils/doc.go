// Package utils provides common utility functions for the admin-setor application.
// It includes helper functions for date normalization and other shared logic
// that doesn't fit into domain-specific packages.
package utils
