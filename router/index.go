package router

import (
	"capsule_store/handler"
	"capsule_store/middleware"
	"capsule_store/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Post("/logout", handler.Logout)
	auth.Get("/me", middleware.Protected(), handler.Me)

	// Public storefront
	checkout := v1.Group("/checkout", logger.New())
	checkout.Get("/settings", handler.CheckStoreSettings)
	checkout.Get("/catalog", handler.GetCatalog)
	checkout.Post("/phone-check", validate.PhoneCheck(), handler.CheckCustomerPhone)
	checkout.Post("/", validate.SubmitOrder(), handler.SubmitOrder)
	checkout.Get("/orders/:orderCode", handler.GetOrderByCode)

	// Admin back-office
	admin := v1.Group("/admin", logger.New())
	admin.Get("/orders", middleware.Protected(), handler.GetOrders)
	admin.Get("/orders/live", middleware.Protected(), websocket.New(handler.OrderFeed))
	admin.Get("/orders/:orderId", middleware.Protected(), validate.OrderId("orderId"), handler.GetOrderById)
	admin.Patch("/orders/:orderId/status", middleware.Protected(), validate.UpdateOrderStatus("orderId"), handler.UpdateOrderStatus)
	admin.Patch("/orders/:orderId/payment", middleware.Protected(), validate.UpdatePaymentStatus("orderId"), handler.UpdatePaymentStatus)
	admin.Delete("/orders/:orderId", middleware.Protected(), validate.DeleteOrder("orderId"), handler.DeleteOrder)

	admin.Get("/settings", middleware.Protected(), handler.GetSettings)
	admin.Patch("/settings", middleware.Protected(), validate.UpdateSettings(), handler.UpdateSettings)

	admin.Get("/statistic/today", middleware.Protected(), handler.GetTodayStats)
}
