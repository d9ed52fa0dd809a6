package validation

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsIranianMobile(t *testing.T) {
	for _, ok := range []string{"09121234567", "+989121234567", "9121234567", " 09121234567 "} {
		assert.True(t, IsIranianMobile(ok), ok)
	}
	for _, bad := range []string{"", "0912123456", "091212345678", "08121234567", "+18121234567", "0912-123-4567"} {
		assert.False(t, IsIranianMobile(bad), bad)
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "9121234567", NormalizePhone("09121234567"))
	assert.Equal(t, "9121234567", NormalizePhone("+98 912 123 4567"))
	assert.Equal(t, "12345", NormalizePhone("12-345"))
	assert.Equal(t, "", NormalizePhone(""))
}

func TestSamePhone(t *testing.T) {
	assert.True(t, SamePhone("09121234567", "+989121234567"))
	assert.False(t, SamePhone("09121234567", "09127654321"))
	assert.False(t, SamePhone("", ""))
}

func TestRegisterGinValidators(t *testing.T) {
	require.NoError(t, RegisterGinValidators())
	v := binding.Validator.Engine().(*validator.Validate)

	type req struct {
		Phone string `binding:"required,ir_mobile"`
	}
	assert.NoError(t, binding.Validator.ValidateStruct(req{Phone: "09121234567"}))
	assert.Error(t, binding.Validator.ValidateStruct(req{Phone: "12345"}))
	assert.NoError(t, v.Var("+989121234567", "ir_mobile"))
}
