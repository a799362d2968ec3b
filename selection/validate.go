package selection

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/Voltify-Social/voltify-panel-backend/models"
)

// Validate runs the submission gate over a draft. Rules are ordered and
// short-circuit: the returned message belongs to the first violated rule,
// and an empty string means the draft may be submitted.
func Validate(sel models.Selection, svc *models.ServiceRecord) string {
	if sel.Category == "" {
		return "Choose a category first."
	}
	if svc == nil {
		return "Choose a service first."
	}
	if strings.TrimSpace(sel.Link) == "" {
		return "Enter the link."
	}
	if !sel.Acknowledged {
		return "You must confirm you read the service description."
	}
	if sel.Quantity < 0 {
		return "Quantity must be a whole number of 0 or more."
	}
	if sel.Quantity == 0 {
		return "Quantity must be greater than 0."
	}
	if min, ok := finiteBound(svc.MinQuantity); ok && float64(sel.Quantity) < min {
		return fmt.Sprintf("Minimum quantity for this service is %s.", formatBound(min))
	}
	if max, ok := finiteBound(svc.MaxQuantity); ok && float64(sel.Quantity) > max {
		return fmt.Sprintf("Maximum quantity for this service is %s.", formatBound(max))
	}
	return ""
}

// finiteBound reports whether a service declares a usable quantity bound.
func finiteBound(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
