package draft_controller

import (
	"net/http"

	"github.com/Voltify-Social/voltify-panel-backend/catalog"
	"github.com/Voltify-Social/voltify-panel-backend/middleware"
	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/Voltify-Social/voltify-panel-backend/selection"
	"github.com/Voltify-Social/voltify-panel-backend/services"
	"github.com/gin-gonic/gin"
)

// sessionFor resolves the caller's draft session, failing the request when
// the auth context is missing.
func sessionFor(c *gin.Context) (*selection.Session, bool) {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return nil, false
	}
	return selection.ForCustomer(customerID), true
}

// draftView assembles the read model: the draft, its resolved service and
// the price quote. A failed catalog load just means no service resolves.
func draftView(sess *selection.Session) models.DraftView {
	draft := sess.Snapshot()
	records, _ := catalog.Records()
	svc := selection.ActiveService(draft, records)

	return models.DraftView{
		Selection:     draft,
		ActiveService: svc,
		EstimatedCost: services.GetPriceQuoter().Quote(svc, draft.Quantity),
	}
}

func respondDraft(c *gin.Context, sess *selection.Session, message string) {
	c.JSON(http.StatusOK, models.SuccessResponse(c, message, draftView(sess)))
}
