package validate

import (
	"capsule_store/constants"
	"capsule_store/model"
	"capsule_store/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// OrderId checks the route param is a well-formed uuid
func OrderId(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(key)
		if _, err := uuid.Parse(id); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("order id must be a uuid"))
		}

		c.Locals("orderId", id)
		return c.Next()
	}
}

// UpdateOrderStatus accepts any target status from the fixed set; edges are
// deliberately unrestricted (a cancelled order can be reopened)
func UpdateOrderStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(key)
		if _, err := uuid.Parse(id); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("order id must be a uuid"))
		}

		var input model.UpdateOrderStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if !isValidValueOf(input.Status, constants.OrderStatuses) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_ORDER_STATUS, errors.New("unknown status"))
		}

		c.Locals("orderId", id)
		c.Locals("targetStatus", input.Status)
		return c.Next()
	}
}

// UpdatePaymentStatus accepts the two-state paid/unpaid toggle
func UpdatePaymentStatus(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(key)
		if _, err := uuid.Parse(id); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("order id must be a uuid"))
		}

		var input model.UpdatePaymentStatusInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if !isValidValueOf(input.PaymentStatus, constants.PaymentStatuses) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PAYMENT_STATUS, errors.New("unknown payment status"))
		}

		c.Locals("orderId", id)
		c.Locals("targetPaymentStatus", input.PaymentStatus)
		return c.Next()
	}
}

// DeleteOrder requires the explicit confirmation flag; deletion is permanent
func DeleteOrder(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params(key)
		if _, err := uuid.Parse(id); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("order id must be a uuid"))
		}

		var input model.DeleteOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if !input.Confirm {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DELETE_NOT_CONFIRMED, errors.New("confirm must be true"))
		}

		c.Locals("orderId", id)
		return c.Next()
	}
}
