package validate

import (
	"capsule_store/constants"
	"capsule_store/model"
	"capsule_store/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// UpdateSettings parses the partial settings patch; every field is optional
// and edited independently
func UpdateSettings() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateSettingsInput
		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		if input.OrdersEnabled == nil && input.RepeatDiscount == nil && input.FreeDelivery == nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, errors.New("no settings fields provided"))
		}

		c.Locals("settingsInput", input)
		return c.Next()
	}
}
