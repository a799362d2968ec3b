package panel_routes

import (
	"github.com/Voltify-Social/voltify-panel-backend/controllers/panel/draft_controller"
	"github.com/Voltify-Social/voltify-panel-backend/middleware"
	"github.com/gin-gonic/gin"
)

func SetupDraftRoutes(rg *gin.RouterGroup) {
	draft := rg.Group("/draft")
	draft.Use(middleware.AuthMiddleware())
	{
		draft.GET("", draft_controller.GetDraft)
		draft.DELETE("", draft_controller.ClearDraft)
		draft.POST("/category", draft_controller.PickCategory)
		draft.POST("/service", draft_controller.PickService)
		draft.POST("/link", draft_controller.SetLink)
		draft.POST("/quantity", draft_controller.SetQuantity)
		draft.POST("/acknowledge", draft_controller.Acknowledge)
		draft.GET("/notification", draft_controller.GetNotification)
		draft.DELETE("/notification", draft_controller.ClearNotification)
	}
}
