package auth_controller

import (
	"net/http"

	"github.com/Voltify-Social/voltify-panel-backend/config"
	"github.com/Voltify-Social/voltify-panel-backend/middleware"
	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/gin-gonic/gin"
)

// GetMe returns the authenticated customer's account.
func GetMe(c *gin.Context) {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var user models.User
	if err := config.PanelGorm.First(&user, "id = ?", customerID).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Account not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Account fetched", user.ToResponse()))
}
