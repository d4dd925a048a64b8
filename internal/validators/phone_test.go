package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"+34 612 345 678",
		"612345678",
		"(91) 123-45-67",
		"+5511987654321",
		"910.000.000",
	}
	for _, p := range valid {
		assert.True(t, IsPhoneValid(p), "teléfono %q", p)
	}

	invalid := []string{
		"",
		"   ",
		"123456",          // muy corto
		"1234567890123456", // muy largo
		"llámame",
		"612-345-678x",
		"61+2345678", // "+" solo al inicio
	}
	for _, p := range invalid {
		assert.False(t, IsPhoneValid(p), "teléfono %q", p)
	}
}
