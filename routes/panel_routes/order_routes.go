package panel_routes

import (
	"github.com/Voltify-Social/voltify-panel-backend/controllers/panel/order_controller"
	"github.com/Voltify-Social/voltify-panel-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.POST("", order_controller.PlaceOrder)
		orders.GET("", order_controller.GetOrders)
	}
}
