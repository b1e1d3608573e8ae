package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_NormalizePhone(t *testing.T) {
	assert.Equal(t, "01712345678", NormalizePhone("01712345678"))
	assert.Equal(t, "01712345678", NormalizePhone("017-1234-5678"))
	assert.Equal(t, "01712345678", NormalizePhone("017 1234 5678"))
	assert.Equal(t, "8801712345678", NormalizePhone("+88 01712345678"))
	assert.Equal(t, "", NormalizePhone("abc"))
}

func Test_IsValidBDPhone(t *testing.T) {
	assert.True(t, IsValidBDPhone("01712345678"))

	assert.False(t, IsValidBDPhone("1712345678"))   // 10 digits
	assert.False(t, IsValidBDPhone("017123456789")) // 12 digits
	assert.False(t, IsValidBDPhone("02712345678"))  // wrong prefix
	assert.False(t, IsValidBDPhone(""))
}

func Test_NormalizeThenValidate(t *testing.T) {
	assert.True(t, IsValidBDPhone(NormalizePhone("017-1234-5678")))
}
