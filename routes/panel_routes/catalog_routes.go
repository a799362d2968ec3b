package panel_routes

import (
	"github.com/Voltify-Social/voltify-panel-backend/controllers/panel/catalog_controller"
	"github.com/Voltify-Social/voltify-panel-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(rg *gin.RouterGroup) {
	cat := rg.Group("/catalog")

	// Public browse surface
	cat.GET("/categories", catalog_controller.GetCategories)
	cat.GET("/services", catalog_controller.GetServices)

	// Refresh requires a session
	protected := cat.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/refresh", catalog_controller.RefreshCatalog)
	}
}
