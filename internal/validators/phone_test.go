package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPhoneValid(t *testing.T) {
	valid := []string{
		"+39 333 123 4567",
		"3331234567",
		"333-123-4567",
		"+393331234567",
		"02 1234567",
	}
	for _, p := range valid {
		assert.True(t, IsPhoneValid(p), "phone %q", p)
	}

	invalid := []string{
		"",
		"abc",
		"12345",                  // too short
		"+39 333 123 4567 89012", // too long
		"333_123_4567",
		"++39 333 123 4567",
		"333 123 4567x",
	}
	for _, p := range invalid {
		assert.False(t, IsPhoneValid(p), "phone %q", p)
	}
}
