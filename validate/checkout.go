package validate

import (
	"capsule_store/constants"
	"capsule_store/model"
	"capsule_store/utils"
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// SubmitOrder parses and validates the checkout form. Validation failures
// surface one message per field and never touch the repository. The phone is
// normalized to digits before the 11-digit 01-prefix check.
func SubmitOrder() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.SubmitOrderInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		input.Name = strings.TrimSpace(input.Name)
		input.Email = strings.TrimSpace(input.Email)
		input.Address = strings.TrimSpace(input.Address)
		input.Phone = utils.NormalizePhone(input.Phone)

		fieldErrors := fiber.Map{}
		if input.Name == "" {
			fieldErrors["name"] = "Please enter your full name"
		}
		if input.Phone == "" {
			fieldErrors["phone"] = "Please enter your phone number"
		} else if !utils.IsValidBDPhone(input.Phone) {
			fieldErrors["phone"] = constants.INVALID_PHONE
		}
		if input.Address == "" {
			fieldErrors["address"] = "Please enter your delivery address"
		}
		if !isValidValueOf(input.PaymentMethod, constants.PaymentMethods) {
			fieldErrors["paymentMethod"] = constants.INVALID_PAYMENT_METHOD
		}
		if _, ok := model.FindPack(input.Quantity); !ok {
			fieldErrors["quantity"] = constants.INVALID_PACK
		}
		if len(fieldErrors) > 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message":     constants.ERROR_INPUT,
				"fieldErrors": fieldErrors,
			})
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		c.Locals("submitInput", input)
		return c.Next()
	}
}

// PhoneCheck validates the repeat-customer lookup request
func PhoneCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.PhoneCheckInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}

		normalized := utils.NormalizePhone(input.Phone)
		if normalized == "" {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.INVALID_PHONE, errors.New("phone has no digits"))
		}

		c.Locals("checkPhone", normalized)
		return c.Next()
	}
}

func isValidValueOf(value string, allowed []string) bool {
	for _, v := range allowed {
		if v == value {
			return true
		}
	}
	return false
}
