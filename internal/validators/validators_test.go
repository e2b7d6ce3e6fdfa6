package validators

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsHHMM(t *testing.T) {
	for _, ok := range []string{"08:00", "11:30", "19:00", "00:00", "23:59"} {
		assert.True(t, IsHHMM(ok), ok)
	}
	for _, bad := range []string{"", "8:00", "24:00", "12:60", "12-00", "12:00:00", "ab:cd"} {
		assert.False(t, IsHHMM(bad), bad)
	}
}

func TestRegister_BindingTag(t *testing.T) {
	require.NoError(t, Register())

	type req struct {
		Time string `binding:"required,hhmm"`
	}

	assert.NoError(t, binding.Validator.ValidateStruct(&req{Time: "09:30"}))
	assert.Error(t, binding.Validator.ValidateStruct(&req{Time: "9h30"}))
}

func TestIsEmailDomainValid_Malformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("no-at-sign"))
	assert.False(t, IsEmailDomainValid("trailing@"))
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ana@example.com", NormalizeEmail("  Ana@Example.COM "))
}
