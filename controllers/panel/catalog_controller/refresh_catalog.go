package catalog_controller

import (
	"net/http"

	"github.com/Voltify-Social/voltify-panel-backend/catalog"
	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/gin-gonic/gin"
)

// RefreshCatalog re-runs the feed load. The load is tied to the request
// context: if the caller goes away the result is discarded instead of
// being applied to the snapshot.
func RefreshCatalog(c *gin.Context) {
	if err := catalog.Load(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Catalog refresh failed: "+err.Error()))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Catalog refreshed", nil))
}
