package catalog_controller

import (
	"net/http"

	"github.com/Voltify-Social/voltify-panel-backend/catalog"
	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/gin-gonic/gin"
)

// GetCategories returns the ordered category index derived from the
// catalog feed. While the feed is in a failed state the whole catalog
// surface is blocked; no partial data is served.
func GetCategories(c *gin.Context) {
	records, err := catalog.Records()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Catalog unavailable: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched", catalog.BuildCategories(records)))
}
