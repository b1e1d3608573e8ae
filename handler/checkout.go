package handler

import (
	"capsule_store/constants"
	"capsule_store/database"
	"capsule_store/helper"
	"capsule_store/model"
	"capsule_store/utils"
	"encoding/base64"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

// CheckStoreSettings is the public settings snapshot the checkout page loads
// first: the store-closed gate plus the pricing inputs for the live total.
func CheckStoreSettings(c *fiber.Ctx) error {
	settings := helper.GetStoreSettings()
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"ordersEnabled":  settings.OrdersEnabled,
		"repeatDiscount": settings.RepeatDiscount,
		"freeDelivery":   settings.FreeDelivery,
		"deliveryFee":    helper.DeliveryFee(settings),
	})
}

// GetCatalog returns the region pack catalog. Checkout always prices against
// the domestic catalog; the international one drives display only.
func GetCatalog(c *fiber.Ctx) error {
	region := c.Query("region", "bd")
	pricing := model.GetPricingStructure(region == "bd")
	return utils.SuccessResponse(c, fiber.StatusOK, pricing)
}

// CheckCustomerPhone answers the repeat-customer lookup fired when the phone
// field loses focus. Lookup failures degrade to new-customer.
func CheckCustomerPhone(c *fiber.Ctx) error {
	phone := c.Locals("checkPhone").(string)

	isRepeat := helper.IsRepeatCustomer(phone)
	discount := 0
	if isRepeat {
		discount = helper.RepeatDiscount(helper.GetStoreSettings(), true)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"isRepeatCustomer": isRepeat,
		"repeatDiscount":   discount,
	})
}

// SubmitOrder accepts a validated checkout form. The repeat flag and the
// pricing snapshot are recomputed here, at the moment of submit, so stored
// totals cannot be forged by the client.
func SubmitOrder(c *fiber.Ctx) error {
	input := c.Locals("submitInput").(model.SubmitOrderInput)

	settings := helper.GetStoreSettings()
	if !settings.OrdersEnabled {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.STORE_CLOSED, errors.New("orders disabled"))
	}

	pack, ok := model.FindPack(input.Quantity)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PACK, errors.New("unknown pack quantity"))
	}

	isRepeat := helper.IsRepeatCustomer(input.Phone)
	customerType := constants.CUSTOMER_TYPE_NEW
	if isRepeat {
		customerType = constants.CUSTOMER_TYPE_REPEAT
	}

	deliveryFee, _, total := helper.CalculateTotal(pack, settings, isRepeat)
	orderCode := helper.GenerateOrderCode(time.Now(), pack.Quantity, customerType)

	var order model.Order
	copier.Copy(&order, &input)
	order.FullName = input.Name
	order.OrderCode = orderCode
	order.Email = utils.StringPtr(input.Email)
	order.SpecialInstructions = utils.StringPtr(input.SpecialInstructions)
	order.Price = pack.Price
	order.DeliveryCharge = deliveryFee
	order.Total = total
	order.PaymentStatus = constants.PAYMENT_STATUS_UNPAID
	order.CustomerType = customerType
	order.Status = constants.ORDER_STATUS_PENDING

	if err := database.DB.Create(&order).Error; err != nil {
		log.Printf("Order insert failed for %s: %v", orderCode, err)
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to save order", err)
	}

	helper.InvalidatePhoneCount(order.Phone)
	PublishNewOrder(order)

	if order.Email != nil {
		utils.SendOrderConfirmationEmail(*order.Email, utils.OrderConfirmationData{
			OrderCode:     order.OrderCode,
			FullName:      order.FullName,
			Quantity:      order.Quantity,
			Total:         order.Total,
			DeliveryFee:   order.DeliveryCharge,
			Discount:      pack.Price + deliveryFee - total,
			PaymentMethod: order.PaymentMethod,
			Address:       order.Address,
		})
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"orderId":       order.ID,
		"orderCode":     order.OrderCode,
		"total":         order.Total,
		"paymentMethod": order.PaymentMethod,
	})
}

// GetOrderByCode backs the public thank-you page. Order codes are display
// codes and can collide; the newest match wins.
func GetOrderByCode(c *fiber.Ctx) error {
	orderCode := c.Params("orderCode")

	var order model.Order
	if err := database.DB.
		Where("order_id = ?", orderCode).
		Order("created_at desc").
		First(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	qrBase64 := ""
	qrBytes, err := utils.GenerateQRCode(order.OrderCode, 400)
	if err != nil {
		log.Printf("Failed to build QR for order %s: %v", order.OrderCode, err)
	} else {
		qrBase64 = "data:image/png;base64," + base64.StdEncoding.EncodeToString(qrBytes)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"orderCode":      order.OrderCode,
		"fullName":       order.FullName,
		"quantity":       order.Quantity,
		"price":          order.Price,
		"deliveryCharge": order.DeliveryCharge,
		"total":          order.Total,
		"paymentMethod":  order.PaymentMethod,
		"status":         order.Status,
		"createdAt":      order.CreatedAt.Format("02/01/2006 15:04"),
		"qrCode":         qrBase64,
	})
}
