package draft_controller

import (
	"net/http"

	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/gin-gonic/gin"
)

// PickService sets the draft's service. Only the acknowledgement resets;
// link and quantity survive a service change.
func PickService(c *gin.Context) {
	sess, ok := sessionFor(c)
	if !ok {
		return
	}

	var req models.PickServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	sess.PickService(req.ServiceID)
	respondDraft(c, sess, "Service selected")
}
