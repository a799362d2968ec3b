package selection

import (
	"math"

	"github.com/Voltify-Social/voltify-panel-backend/models"
)

// All cascade resets live in these transition functions so the invariants
// hold no matter which caller mutates a draft.

// PickCategory applies a new category. Every dependent field resets:
// service, link, quantity and acknowledgement all go back to their empty
// defaults.
func PickCategory(sel *models.Selection, key string) {
	*sel = models.Selection{Category: key}
}

// PickService applies a new service within the current category. The
// acknowledgement resets; link and quantity are kept. An empty id clears
// the pick.
func PickService(sel *models.Selection, id string) {
	if id == "" {
		sel.ServiceID = nil
	} else {
		sel.ServiceID = &id
	}
	sel.Acknowledged = false
}

func SetLink(sel *models.Selection, text string) {
	sel.Link = text
}

// SetQuantity clamps to a non-negative whole number: non-finite input is a
// no-op, anything else truncates toward zero and floors at 0.
func SetQuantity(sel *models.Selection, raw float64) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) {
		return
	}
	q := int64(math.Trunc(raw))
	if q < 0 {
		q = 0
	}
	sel.Quantity = q
}

func SetAcknowledged(sel *models.Selection, v bool) {
	sel.Acknowledged = v
}

// ActiveService resolves the selected service against the feed, comparing
// provider ids as strings. Nil when nothing is selected or nothing matches.
func ActiveService(sel models.Selection, records []models.ServiceRecord) *models.ServiceRecord {
	if sel.ServiceID == nil {
		return nil
	}
	for i := range records {
		if records[i].ProviderServiceID == *sel.ServiceID {
			return &records[i]
		}
	}
	return nil
}
