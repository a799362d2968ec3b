package auth_controller

import (
	"net/http"
	"strings"

	"github.com/Voltify-Social/voltify-panel-backend/config"
	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/Voltify-Social/voltify-panel-backend/services"
	"github.com/gin-gonic/gin"
)

// Register creates a panel customer account and returns a session token.
func Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Email, name and password are required"))
		return
	}

	auth := services.GetAuthService()
	if !auth.ValidatePassword(req.Password) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Password must be at least 8 characters"))
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.User
	if err := config.PanelGorm.Where("email = ?", email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "An account with this email already exists"))
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	user := models.User{
		Email:        email,
		Name:         strings.TrimSpace(req.Name),
		PasswordHash: hash,
		Status:       "active",
	}
	if err := config.PanelGorm.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create account"))
		return
	}

	token, err := services.GenerateCustomerJWT(user.ID.String(), user.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create session"))
		return
	}
	setSessionCookie(c, token)

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Account created", models.AuthResponse{
		Token: token,
		User:  user.ToResponse(),
	}))
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie("auth_token", token, int(7*24*3600), "/", "", false, true)
}
