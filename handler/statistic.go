package handler

import (
	"capsule_store/constants"
	"capsule_store/helper"
	"capsule_store/utils"
	"errors"

	"github.com/gofiber/fiber/v2"
)

// GetTodayStats serves the dashboard summary for orders created since local
// midnight. Reads degrade to zeros rather than erroring.
func GetTodayStats(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	return utils.SuccessResponse(c, fiber.StatusOK, helper.GetTodayStats())
}
