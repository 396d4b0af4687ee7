package routes

import (
	"github.com/gin-gonic/gin"

	"wagate/internal/interfaces/http/handlers"
	"wagate/internal/interfaces/http/middleware"
)

// GatewayRouteConfig holds dependencies for the gateway routes.
type GatewayRouteConfig struct {
	CheckoutHandler *handlers.CheckoutHandler
	OrderHandler    *handlers.OrderHandler
	AdminHandler    *handlers.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupGatewayRoutes configures all gateway routes.
func SetupGatewayRoutes(engine *gin.Engine, cfg *GatewayRouteConfig) {
	api := engine.Group("/api")
	{
		api.POST("/checkout/:order_number/pay", cfg.CheckoutHandler.ProcessPayment)

		orders := api.Group("/orders")
		{
			orders.GET("/:order_number/thankyou", cfg.OrderHandler.ThankYou)
			orders.GET("/:order_number/payment-details", cfg.OrderHandler.PaymentDetails)
		}

		admin := api.Group("/admin")
		{
			admin.POST("/login", cfg.AdminHandler.Login)

			adminProtected := admin.Group("")
			adminProtected.Use(cfg.AuthMiddleware.RequireAdmin())
			{
				adminProtected.GET("/settings", cfg.AdminHandler.GetSettings)
				adminProtected.PUT("/settings", cfg.AdminHandler.UpdateSettings)
			}
		}
	}
}
