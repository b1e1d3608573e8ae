package handler

import (
	"capsule_store/constants"
	"capsule_store/database"
	"capsule_store/helper"
	"capsule_store/model"
	"capsule_store/utils"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetOrders lists orders for the admin dashboard, newest first, with an
// optional status filter and a case-insensitive search over order code,
// name and phone. A failed read logs and returns empty rows so the
// dashboard degrades instead of erroring.
func GetOrders(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	filter := new(model.OrderFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB.Model(&model.Order{})
	if filter.Status != nil && *filter.Status != "" && *filter.Status != "all" {
		db = db.Where("status = ?", *filter.Status)
	}
	if filter.Search != nil && *filter.Search != "" {
		s := "%" + *filter.Search + "%"
		db = db.Where("order_id ILIKE ? OR full_name ILIKE ? OR phone ILIKE ?", s, s, s)
	}

	var total int64
	db.Count(&total)

	db = utils.ApplyPagination(db, filter.Limit, filter.Page)

	var orders []model.Order
	if err := db.Order("created_at desc").Find(&orders).Error; err != nil {
		log.Printf("Order list query failed: %v", err)
		orders = []model.Order{}
		total = 0
	}

	response := &model.ResponseCustom{
		Rows:       orders,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: total,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetOrderById(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	orderId := c.Locals("orderId").(string)

	var order model.Order
	if err := database.DB.First(&order, "id = ?", orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// UpdateOrderStatus moves an order to the target status. Any status can
// move to any other; setting the current status again is a no-op success.
func UpdateOrderStatus(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	orderId := c.Locals("orderId").(string)
	targetStatus := c.Locals("targetStatus").(string)

	var order model.Order
	if err := database.DB.First(&order, "id = ?", orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if err := database.DB.Model(&order).Update("status", targetStatus).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update status", err)
	}

	order.Status = targetStatus
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func UpdatePaymentStatus(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	orderId := c.Locals("orderId").(string)
	targetPaymentStatus := c.Locals("targetPaymentStatus").(string)

	var order model.Order
	if err := database.DB.First(&order, "id = ?", orderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
	}

	if err := database.DB.Model(&order).Update("payment_status", targetPaymentStatus).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update payment status", err)
	}

	order.PaymentStatus = targetPaymentStatus
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

// DeleteOrder removes an order permanently. The validate layer has already
// required the explicit confirmation flag.
func DeleteOrder(c *fiber.Ctx) error {
	_, isAdmin := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	orderId := c.Locals("orderId").(string)

	var order model.Order
	if err := database.DB.First(&order, "id = ?", orderId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.ORDER_NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if err := database.DB.Delete(&order).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete order", err)
	}

	helper.InvalidatePhoneCount(order.Phone)

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": "Order deleted",
	})
}
