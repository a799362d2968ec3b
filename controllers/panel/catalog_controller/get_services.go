package catalog_controller

import (
	"net/http"

	"github.com/Voltify-Social/voltify-panel-backend/catalog"
	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/gin-gonic/gin"
)

// GetServices returns the services in one category, sorted ascending by
// provider service id.
func GetServices(c *gin.Context) {
	key := c.Query("category")
	if key == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "The category query parameter is required"))
		return
	}

	records, err := catalog.Records()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Catalog unavailable: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Services fetched", catalog.ServicesInCategory(records, key)))
}
