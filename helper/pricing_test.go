package helper

import (
	"capsule_store/constants"
	"capsule_store/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CalculateTotal_NewCustomer(t *testing.T) {
	pack, ok := model.FindPack(3)
	assert.True(t, ok)
	assert.Equal(t, 900, pack.Price)

	settings := model.StoreSettings{
		OrdersEnabled:  true,
		RepeatDiscount: 100,
		FreeDelivery:   false,
	}

	fee, discount, total := CalculateTotal(pack, settings, false)
	assert.Equal(t, constants.STANDARD_DELIVERY_FEE, fee)
	assert.Equal(t, 0, discount)
	assert.Equal(t, 960, total)
}

func Test_CalculateTotal_RepeatCustomer(t *testing.T) {
	pack, _ := model.FindPack(3)
	settings := model.StoreSettings{
		OrdersEnabled:  true,
		RepeatDiscount: 100,
		FreeDelivery:   false,
	}

	fee, discount, total := CalculateTotal(pack, settings, true)
	assert.Equal(t, 60, fee)
	assert.Equal(t, 100, discount)
	assert.Equal(t, 860, total)
}

func Test_CalculateTotal_FreeDelivery(t *testing.T) {
	pack, _ := model.FindPack(1)
	settings := model.StoreSettings{FreeDelivery: true}

	fee, discount, total := CalculateTotal(pack, settings, false)
	assert.Equal(t, 0, fee)
	assert.Equal(t, 0, discount)
	assert.Equal(t, pack.Price, total)
}

func Test_CalculateTotal_ClampedAtZero(t *testing.T) {
	pack := model.Pack{Quantity: 1, Price: 50}
	settings := model.StoreSettings{
		RepeatDiscount: 100,
		FreeDelivery:   true,
	}

	_, discount, total := CalculateTotal(pack, settings, true)
	assert.Equal(t, 100, discount)
	assert.Equal(t, 0, total)
}

func Test_CalculateTotal_Deterministic(t *testing.T) {
	pack, _ := model.FindPack(5)
	settings := model.StoreSettings{RepeatDiscount: 50}

	_, _, first := CalculateTotal(pack, settings, true)
	_, _, second := CalculateTotal(pack, settings, true)
	assert.Equal(t, first, second)
}

func Test_RepeatDiscount_NegativeSettingIgnored(t *testing.T) {
	settings := model.StoreSettings{RepeatDiscount: -10}
	assert.Equal(t, 0, RepeatDiscount(settings, true))
}

func Test_RepeatDiscount_NewCustomerGetsNone(t *testing.T) {
	settings := model.StoreSettings{RepeatDiscount: 100}
	assert.Equal(t, 0, RepeatDiscount(settings, false))
}
