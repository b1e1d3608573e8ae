package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_GenerateOrderCode_Format(t *testing.T) {
	at := time.Date(2026, time.February, 13, 10, 30, 0, 0, time.UTC)

	code := GenerateOrderCode(at, 5, "N")
	assert.Equal(t, "13022605N", code)

	code = GenerateOrderCode(at, 5, "R")
	assert.Equal(t, "13022605R", code)
}

func Test_GenerateOrderCode_Padding(t *testing.T) {
	at := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "01032601N", GenerateOrderCode(at, 1, "N"))
}

func Test_GenerateOrderCode_Deterministic(t *testing.T) {
	at := time.Date(2026, time.July, 20, 8, 0, 0, 0, time.UTC)
	assert.Equal(t, GenerateOrderCode(at, 3, "R"), GenerateOrderCode(at, 3, "R"))
}

func Test_GenerateOrderCode_InputsChangeCode(t *testing.T) {
	at := time.Date(2026, time.July, 20, 8, 0, 0, 0, time.UTC)
	base := GenerateOrderCode(at, 3, "R")

	assert.NotEqual(t, base, GenerateOrderCode(at.AddDate(0, 0, 1), 3, "R"))
	assert.NotEqual(t, base, GenerateOrderCode(at, 5, "R"))
	assert.NotEqual(t, base, GenerateOrderCode(at, 3, "N"))
}

func Test_GenerateOrderCode_CustomerTypeMapping(t *testing.T) {
	at := time.Date(2026, time.July, 20, 8, 0, 0, 0, time.UTC)

	// "Repeat" maps to R, anything else falls back to N
	assert.Equal(t, "20072603R", GenerateOrderCode(at, 3, "Repeat"))
	assert.Equal(t, "20072603N", GenerateOrderCode(at, 3, "New"))
	assert.Equal(t, "20072603N", GenerateOrderCode(at, 3, ""))
}
