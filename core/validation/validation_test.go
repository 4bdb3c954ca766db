package validation_test

import (
	"testing"

	"admin-setor/core/validation"

	"github.com/stretchr/testify/assert"
)

type samplePayload struct {
	Name   string `validate:"required,min=2"`
	Email  string `validate:"omitempty,email"`
	Status string `validate:"required,oneof=OPEN PAID"`
	Amount int64  `validate:"gte=0"`
}

func TestStruct(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		err := validation.Struct(samplePayload{Name: "RH", Status: "OPEN", Amount: 10})
		assert.NoError(t, err)
	})

	t.Run("Multiple Failures Joined", func(t *testing.T) {
		err := validation.Struct(samplePayload{Name: "x", Email: "nope", Status: "BOGUS", Amount: -1})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name must be at least 2 characters")
		assert.Contains(t, err.Error(), "email must be a valid email address")
		assert.Contains(t, err.Error(), "status must be one of: OPEN PAID")
		assert.Contains(t, err.Error(), "amount must be >= 0")
	})

	t.Run("Missing Required", func(t *testing.T) {
		err := validation.Struct(samplePayload{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")
	})
}
