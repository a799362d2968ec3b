package selection

import (
	"testing"

	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/stretchr/testify/assert"
)

func validDraft() (models.Selection, *models.ServiceRecord) {
	id := "205"
	sel := models.Selection{
		Category:     "IG Likes",
		ServiceID:    &id,
		Link:         "https://example.com/post/1",
		Quantity:     100,
		Acknowledged: true,
	}
	svc := &models.ServiceRecord{ProviderServiceID: "205", Category: "IG Likes"}
	return sel, svc
}

func TestValidatePassesCompleteDraft(t *testing.T) {
	sel, svc := validDraft()
	assert.Empty(t, Validate(sel, svc))
}

func TestValidateRuleOrder(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	tests := []struct {
		name   string
		mutate func(*models.Selection, *models.ServiceRecord) *models.ServiceRecord
		want   string
	}{
		{
			"no category",
			func(sel *models.Selection, svc *models.ServiceRecord) *models.ServiceRecord {
				sel.Category = ""
				return svc
			},
			"Choose a category first.",
		},
		{
			"no resolvable service",
			func(sel *models.Selection, svc *models.ServiceRecord) *models.ServiceRecord {
				return nil
			},
			"Choose a service first.",
		},
		{
			"blank link",
			func(sel *models.Selection, svc *models.ServiceRecord) *models.ServiceRecord {
				sel.Link = "   "
				return svc
			},
			"Enter the link.",
		},
		{
			"not acknowledged",
			func(sel *models.Selection, svc *models.ServiceRecord) *models.ServiceRecord {
				sel.Acknowledged = false
				return svc
			},
			"You must confirm you read the service description.",
		},
		{
			"zero quantity",
			func(sel *models.Selection, svc *models.ServiceRecord) *models.ServiceRecord {
				sel.Quantity = 0
				return svc
			},
			"Quantity must be greater than 0.",
		},
		{
			"below minimum",
			func(sel *models.Selection, svc *models.ServiceRecord) *models.ServiceRecord {
				svc.MinQuantity = f(500)
				return svc
			},
			"Minimum quantity for this service is 500.",
		},
		{
			"above maximum",
			func(sel *models.Selection, svc *models.ServiceRecord) *models.ServiceRecord {
				svc.MaxQuantity = f(50)
				return svc
			},
			"Maximum quantity for this service is 50.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel, svc := validDraft()
			svc = tt.mutate(&sel, svc)
			assert.Equal(t, tt.want, Validate(sel, svc))
		})
	}
}

func TestValidateFirstFailureWins(t *testing.T) {
	// Both the link rule and the quantity rule are violated; the earlier
	// rule's message must be the one reported.
	sel, svc := validDraft()
	sel.Link = ""
	sel.Quantity = 0

	assert.Equal(t, "Enter the link.", Validate(sel, svc))
}

func TestValidateMinimumBoundary(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	sel, svc := validDraft()
	svc.MinQuantity = f(10)

	sel.Quantity = 5
	assert.Equal(t, "Minimum quantity for this service is 10.", Validate(sel, svc))

	sel.Quantity = 10
	assert.Empty(t, Validate(sel, svc))
}

func TestValidateMissingBoundsDisableRules(t *testing.T) {
	sel, svc := validDraft()
	svc.MinQuantity = nil
	svc.MaxQuantity = nil
	sel.Quantity = 1

	assert.Empty(t, Validate(sel, svc))
}

func TestValidateFractionalBoundMessage(t *testing.T) {
	f := func(v float64) *float64 { return &v }
	sel, svc := validDraft()
	svc.MinQuantity = f(12.5)
	sel.Quantity = 5

	assert.Equal(t, "Minimum quantity for this service is 12.5.", Validate(sel, svc))
}
