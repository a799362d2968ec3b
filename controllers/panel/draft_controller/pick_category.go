package draft_controller

import (
	"net/http"

	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/gin-gonic/gin"
)

// PickCategory sets the draft's category. Service, link, quantity and
// acknowledgement all reset as a consequence.
func PickCategory(c *gin.Context) {
	sess, ok := sessionFor(c)
	if !ok {
		return
	}

	var req models.PickCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	sess.PickCategory(req.Category)
	respondDraft(c, sess, "Category selected")
}
