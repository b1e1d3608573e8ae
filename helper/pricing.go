package helper

import (
	"capsule_store/constants"
	"capsule_store/model"
)

// DeliveryFee returns the delivery charge under the current settings
func DeliveryFee(settings model.StoreSettings) int {
	if settings.FreeDelivery {
		return 0
	}
	return constants.STANDARD_DELIVERY_FEE
}

// RepeatDiscount returns the flat discount a repeat customer gets
func RepeatDiscount(settings model.StoreSettings, isRepeatCustomer bool) int {
	if !isRepeatCustomer {
		return 0
	}
	if settings.RepeatDiscount < 0 {
		return 0
	}
	return settings.RepeatDiscount
}

// CalculateTotal computes the checkout pricing snapshot. Pure: same inputs
// always yield the same result. The total is clamped at zero so a discount
// can never drive it negative.
func CalculateTotal(pack model.Pack, settings model.StoreSettings, isRepeatCustomer bool) (deliveryFee, discount, total int) {
	deliveryFee = DeliveryFee(settings)
	discount = RepeatDiscount(settings, isRepeatCustomer)

	total = pack.Price + deliveryFee - discount
	if total < 0 {
		total = 0
	}
	return deliveryFee, discount, total
}
