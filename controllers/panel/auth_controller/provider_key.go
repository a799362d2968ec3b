package auth_controller

import (
	"net/http"
	"strings"

	"github.com/Voltify-Social/voltify-panel-backend/middleware"
	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/Voltify-Social/voltify-panel-backend/services"
	"github.com/gin-gonic/gin"
)

// StoreProviderKey saves the customer's upstream provider credential. The
// credential is what the order submission sends as its bearer token; until
// one is stored, submissions fail with the sign-in fault.
func StoreProviderKey(c *gin.Context) {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	var req models.ProviderKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Key) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "A provider key is required"))
		return
	}

	if err := services.GetCredentialService().StoreProviderKey(c.Request.Context(), customerID, strings.TrimSpace(req.Key)); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to store provider key"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Provider key stored", nil))
}

// DeleteProviderKey removes the stored provider credential.
func DeleteProviderKey(c *gin.Context) {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}

	if err := services.GetCredentialService().DeleteProviderKey(c.Request.Context(), customerID); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to remove provider key"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Provider key removed", nil))
}
