package draft_controller

import (
	"net/http"

	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/gin-gonic/gin"
)

// SetQuantity updates the draft quantity. The value is clamped to a
// non-negative whole number server-side.
func SetQuantity(c *gin.Context) {
	sess, ok := sessionFor(c)
	if !ok {
		return
	}

	var req models.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	sess.SetQuantity(req.Quantity)
	respondDraft(c, sess, "Quantity updated")
}
