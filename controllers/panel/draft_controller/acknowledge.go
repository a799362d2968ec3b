package draft_controller

import (
	"net/http"

	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/gin-gonic/gin"
)

// Acknowledge records whether the customer confirmed reading the service
// description.
func Acknowledge(c *gin.Context) {
	sess, ok := sessionFor(c)
	if !ok {
		return
	}

	var req models.AcknowledgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	sess.SetAcknowledged(req.Acknowledged)
	respondDraft(c, sess, "Acknowledgement updated")
}
