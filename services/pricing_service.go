package services

import (
	"github.com/Voltify-Social/voltify-panel-backend/models"
)

// PriceUnknown is what the shipped quoter always reports: the panel does
// not compute customer-facing prices yet.
const PriceUnknown = "unknown"

// PriceQuoter estimates the customer-facing cost of a draft. The hook is
// pluggable; the default implementation is deliberately indeterminate.
type PriceQuoter interface {
	Quote(svc *models.ServiceRecord, quantity int64) string
}

type indeterminateQuoter struct{}

func (indeterminateQuoter) Quote(svc *models.ServiceRecord, quantity int64) string {
	return PriceUnknown
}

var quoter PriceQuoter = indeterminateQuoter{}

func GetPriceQuoter() PriceQuoter {
	return quoter
}

// SetPriceQuoter swaps the pricing hook.
func SetPriceQuoter(q PriceQuoter) {
	if q != nil {
		quoter = q
	}
}
