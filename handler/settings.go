package handler

import (
	"capsule_store/constants"
	"capsule_store/helper"
	"capsule_store/model"
	"capsule_store/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

func GetSettings(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.GetStoreSettings())
}

// UpdateSettings merges the provided fields into the settings singleton.
// The admin UI writes optimistically and reloads everything on failure, so
// a write error must surface as an error response.
func UpdateSettings(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("settingsInput").(model.UpdateSettingsInput)

	settings, err := helper.UpdateStoreSettings(input)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update settings", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, settings)
}
