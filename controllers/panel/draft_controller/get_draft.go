package draft_controller

import (
	"github.com/gin-gonic/gin"
)

// GetDraft returns the current draft with its resolved service and price
// quote.
func GetDraft(c *gin.Context) {
	sess, ok := sessionFor(c)
	if !ok {
		return
	}
	respondDraft(c, sess, "Draft fetched")
}
