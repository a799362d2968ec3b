package services

import (
	"testing"

	"github.com/Voltify-Social/voltify-panel-backend/models"
	"github.com/stretchr/testify/assert"
)

func TestDefaultQuoterIsIndeterminate(t *testing.T) {
	q := GetPriceQuoter()

	assert.Equal(t, PriceUnknown, q.Quote(nil, 0))
	assert.Equal(t, PriceUnknown, q.Quote(&models.ServiceRecord{ProviderServiceID: "205", ProviderRatePer1000: 1.2}, 1000))
}

type flatQuoter struct{}

func (flatQuoter) Quote(svc *models.ServiceRecord, quantity int64) string { return "$1.00" }

func TestPriceQuoterIsPluggable(t *testing.T) {
	orig := GetPriceQuoter()
	t.Cleanup(func() { SetPriceQuoter(orig) })

	SetPriceQuoter(flatQuoter{})
	assert.Equal(t, "$1.00", GetPriceQuoter().Quote(nil, 1))

	// nil swap is ignored
	SetPriceQuoter(nil)
	assert.Equal(t, "$1.00", GetPriceQuoter().Quote(nil, 1))
}
