package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DefaultStoreSettings(t *testing.T) {
	settings := DefaultStoreSettings()

	// checkout must stay usable when no settings row can be read
	assert.True(t, settings.OrdersEnabled)
	assert.Equal(t, 0, settings.RepeatDiscount)
	assert.False(t, settings.FreeDelivery)
}
