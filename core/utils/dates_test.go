package utils_test

import (
	"testing"

	"admin-setor/core/utils"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Plain Date", "2023-02-10", "2023-02-10"},
		{"Datetime With Z", "2023-02-10T14:30:00Z", "2023-02-10"},
		{"Datetime With Offset", "2023-02-10T23:30:00-03:00", "2023-02-10"},
		{"Datetime Without Zone", "2023-02-10T14:30:00", "2023-02-10"},
		{"Whitespace", "  2023-02-10  ", "2023-02-10"},
		{"Empty", "", ""},
		{"Garbage Passed Through", "next tuesday", "next tuesday"},
		{"Partial Garbage Passed Through", "2023-13-45", "2023-13-45"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.NormalizeDate(tt.input))
		})
	}
}
