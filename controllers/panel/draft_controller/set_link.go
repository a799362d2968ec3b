package draft_controller

import (
	"net/http"

	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/gin-gonic/gin"
)

// SetLink stores the target link as typed; trimming happens at validation
// and submission time.
func SetLink(c *gin.Context) {
	sess, ok := sessionFor(c)
	if !ok {
		return
	}

	var req models.SetLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	sess.SetLink(req.Link)
	respondDraft(c, sess, "Link updated")
}
