package auth_controller

import (
	"net/http"
	"strings"

	"github.com/Voltify-Social/voltify-panel-backend/config"
	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/Voltify-Social/voltify-panel-backend/services"
	"github.com/gin-gonic/gin"
)

// Login verifies credentials and returns a session token.
func Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email and password are required"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := config.PanelGorm.Where("email = ?", email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	if !services.GetAuthService().VerifyPassword(user.PasswordHash, req.Password) {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}
	if user.Status != "active" {
		c.JSON(http.StatusForbidden, models.ErrorResponse(c, "Account is not active"))
		return
	}

	token, err := services.GenerateCustomerJWT(user.ID.String(), user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}
	setSessionCookie(c, token)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in", models.AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	}))
}
