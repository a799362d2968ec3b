package order_controller

import (
	"net/http"

	"github.com/Voltify-Social/voltify-panel-backend/catalog"
	"github.com/Voltify-Social/voltify-panel-backend/config"
	"github.com/Voltify-Social/voltify-panel-backend/middleware"
	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/Voltify-Social/voltify-panel-backend/selection"
	"github.com/Voltify-Social/voltify-panel-backend/services"
	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"
)

// PlaceOrder submits the caller's draft to the provider. The provider
// client owns validation, credential resolution and outcome
// classification; this handler persists history on success and shapes the
// HTTP reply.
func PlaceOrder(c *gin.Context) {
	customerID, ok := middleware.CustomerIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Not authenticated"))
		return
	}
	sess := selection.ForCustomer(customerID)

	// A failed catalog load leaves records nil; the draft then fails
	// validation instead of reaching the network.
	records, _ := catalog.Records()

	result := services.GetProviderClient().PlaceOrder(c.Request.Context(), customerID, sess, records)

	resp := models.PlaceOrderResponse{
		Placed:       result.Placed,
		Notification: sess.Notices().Current(),
		Draft:        sess.Snapshot(),
	}

	if !result.Placed {
		c.JSON(http.StatusUnprocessableEntity, models.ApiResponse{
			Message: result.Message,
			Data:    resp,
			Error:   true,
		})
		return
	}

	order := models.PlacedOrder{
		UserID:            customerID,
		ProviderServiceID: result.Service.ProviderServiceID,
		ServiceName:       result.Service.Name,
		Category:          result.Service.Category,
		Link:              result.Submitted.Link,
		Quantity:          result.Submitted.Quantity,
		Status:            "placed",
		ProviderReply:     datatypes.JSON(result.RawReply),
	}
	if err := config.PanelGorm.WithContext(c.Request.Context()).Create(&order).Error; err != nil {
		// The provider accepted the order; a history write failure must
		// not turn that into a customer-facing error.
		c.JSON(http.StatusCreated, models.SuccessResponse(c, result.Message, resp))
		return
	}
	resp.Order = &order

	c.JSON(http.StatusCreated, models.SuccessResponse(c, result.Message, resp))
}
