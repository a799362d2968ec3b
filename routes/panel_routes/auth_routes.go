package panel_routes

import (
	"github.com/Voltify-Social/voltify-panel-backend/controllers/panel/auth_controller"
	"github.com/Voltify-Social/voltify-panel-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")

	// Public
	auth.POST("/register", auth_controller.Register)
	auth.POST("/login", auth_controller.Login)

	// Protected
	protected := rg.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/me", auth_controller.GetMe)
		protected.PUT("/provider-key", auth_controller.StoreProviderKey)
		protected.DELETE("/provider-key", auth_controller.DeleteProviderKey)
	}
}
