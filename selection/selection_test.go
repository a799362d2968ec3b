package selection

import (
	"math"
	"testing"

	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filledDraft() models.Selection {
	id := "205"
	return models.Selection{
		Category:     "IG Likes",
		ServiceID:    &id,
		Link:         "https://example.com/post/1",
		Quantity:     250,
		Acknowledged: true,
	}
}

func TestPickCategoryResetsEverything(t *testing.T) {
	sel := filledDraft()

	PickCategory(&sel, "YT Views")

	assert.Equal(t, "YT Views", sel.Category)
	assert.Nil(t, sel.ServiceID)
	assert.Empty(t, sel.Link)
	assert.Zero(t, sel.Quantity)
	assert.False(t, sel.Acknowledged)
}

func TestPickCategorySameValueStillResets(t *testing.T) {
	sel := filledDraft()

	PickCategory(&sel, "IG Likes")

	assert.Equal(t, "IG Likes", sel.Category)
	assert.Nil(t, sel.ServiceID)
	assert.Zero(t, sel.Quantity)
}

func TestPickServiceResetsOnlyAcknowledgement(t *testing.T) {
	sel := filledDraft()

	PickService(&sel, "206")

	require.NotNil(t, sel.ServiceID)
	assert.Equal(t, "206", *sel.ServiceID)
	assert.False(t, sel.Acknowledged)
	// link and quantity survive a service change
	assert.Equal(t, "https://example.com/post/1", sel.Link)
	assert.Equal(t, int64(250), sel.Quantity)
}

func TestPickServiceEmptyClearsPick(t *testing.T) {
	sel := filledDraft()

	PickService(&sel, "")

	assert.Nil(t, sel.ServiceID)
	assert.False(t, sel.Acknowledged)
}

func TestSetQuantityClamping(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int64
	}{
		{"whole", 250, 250},
		{"truncates toward zero", 7.9, 7},
		{"negative floors at zero", -3, 0},
		{"negative fraction floors at zero", -0.5, 0},
		{"zero", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := models.Selection{Quantity: 99}
			SetQuantity(&sel, tt.in)
			assert.Equal(t, tt.want, sel.Quantity)
		})
	}
}

func TestSetQuantityNonFiniteIsNoOp(t *testing.T) {
	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		sel := models.Selection{Quantity: 42}
		SetQuantity(&sel, in)
		assert.Equal(t, int64(42), sel.Quantity)
	}
}

func TestActiveServiceMatchesAsStrings(t *testing.T) {
	records := []models.ServiceRecord{
		{ProviderServiceID: "7"},
		{ProviderServiceID: "007"},
	}

	id := "007"
	sel := models.Selection{ServiceID: &id}

	svc := ActiveService(sel, records)
	require.NotNil(t, svc)
	assert.Equal(t, "007", svc.ProviderServiceID)
}

func TestActiveServiceNoSelectionOrNoMatch(t *testing.T) {
	records := []models.ServiceRecord{{ProviderServiceID: "7"}}

	assert.Nil(t, ActiveService(models.Selection{}, records))

	id := "8"
	assert.Nil(t, ActiveService(models.Selection{ServiceID: &id}, records))
}
