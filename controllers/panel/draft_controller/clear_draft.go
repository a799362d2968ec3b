package draft_controller

import (
	"github.com/gin-gonic/gin"
)

// ClearDraft discards the draft entirely, back to all-empty defaults.
func ClearDraft(c *gin.Context) {
	sess, ok := sessionFor(c)
	if !ok {
		return
	}

	sess.Reset()
	respondDraft(c, sess, "Draft cleared")
}
