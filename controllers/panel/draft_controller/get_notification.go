package draft_controller

import (
	"net/http"

	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/gin-gonic/gin"
)

// GetNotification returns the session's live notification, if any. The
// slot auto-expires server-side, so polling clients see it disappear.
func GetNotification(c *gin.Context) {
	sess, ok := sessionFor(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notification fetched", sess.Notices().Current()))
}

// ClearNotification drops the live notification ahead of its expiry.
func ClearNotification(c *gin.Context) {
	sess, ok := sessionFor(c)
	if !ok {
		return
	}

	sess.Notices().Clear()
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Notification cleared", nil))
}
