package generator

import (
	"math/rand"
	"testing"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/stretchr/testify/assert"
)

// filledTable строит n одинаковых строк с видом транспорта, допустимым для c
func filledTable(n int, c models.Carrier, r models.RiskType) Table {
	modal := DefaultModal
	if rule, ok := modalRuleFor(c); ok {
		modal = rule.Modal.Values[0]
	}
	t := make(Table, n)
	for i := range t {
		t[i] = models.Incident{Carrier: c, RiskType: r, Modal: modal, Region: models.RegionNorth}
	}
	return t
}

func TestFilledTable_UsesAllowedModal(t *testing.T) {
	for _, c := range models.Carriers {
		for _, inc := range filledTable(2, c, models.RiskTheft) {
			assert.True(t, ModalAllowed(inc.Carrier, inc.Modal), "carrier %s", c)
		}
	}
}

func TestRuleTablesAreValidDistributions(t *testing.T) {
	for _, r := range ModalRules {
		assert.NoError(t, r.Modal.Validate(), "modal rule %s", r.Carrier)
	}
	for _, r := range RouteRules {
		assert.NoError(t, r.Routes.Validate(), "route rule %s", r.Region)
	}
}

func TestReassignCarrier_AppliesModalAndSkew(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	table := filledTable(100, models.CarrierMercurio, models.RiskAccident)
	idx := make([]int, 50)
	for i := range idx {
		idx[i] = i * 2
	}

	ReassignCarrier(rng, table, idx, models.CarrierBrado)

	theft := 0
	for i, inc := range table {
		if i%2 == 1 {
			// Непереназначенные строки не меняются
			assert.Equal(t, models.CarrierMercurio, inc.Carrier)
			assert.Equal(t, models.RiskAccident, inc.RiskType)
			continue
		}
		assert.Equal(t, models.CarrierBrado, inc.Carrier)
		assert.True(t, ModalAllowed(models.CarrierBrado, inc.Modal))
		if inc.RiskType == models.RiskTheft {
			theft++
		}
	}
	assert.Equal(t, 31, theft)
}

func TestReassignCarrier_WithoutSkewRule(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	table := filledTable(10, models.CarrierJSL, models.RiskStrike)

	ReassignCarrier(rng, table, []int{0, 1, 2}, models.CarrierRumo)

	for _, inc := range table[:3] {
		assert.Equal(t, models.CarrierRumo, inc.Carrier)
		assert.Equal(t, models.ModalRail, inc.Modal)
		assert.Equal(t, models.RiskStrike, inc.RiskType)
	}
}

func TestModalAllowed(t *testing.T) {
	assert.True(t, ModalAllowed(models.CarrierRumo, models.ModalRail))
	assert.False(t, ModalAllowed(models.CarrierRumo, models.ModalRoad))
	assert.True(t, ModalAllowed(models.CarrierLATAMCargo, models.ModalAir))
	assert.True(t, ModalAllowed(models.CarrierBrado, models.ModalRoad))
	assert.False(t, ModalAllowed(models.CarrierBrado, models.ModalAir))
	assert.True(t, ModalAllowed(models.CarrierMercurio, models.ModalRoad))
	assert.False(t, ModalAllowed(models.CarrierTegma, models.ModalRail))
}

func TestResolveModal_BradoMix(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	rail := 0
	for i := 0; i < 5000; i++ {
		if ResolveModal(rng, models.CarrierBrado) == models.ModalRail {
			rail++
		}
	}
	assert.InDelta(t, 0.8, float64(rail)/5000, 0.03)
}

func TestRouteFor(t *testing.T) {
	rng := rand.New(rand.NewSource(4))

	for i := 0; i < 100; i++ {
		assert.Contains(t, []string{"BR-116 (PR-SC)", "Outra Sul"}, RouteFor(rng, models.RegionSouth))
	}
	assert.Equal(t, "Outra Norte", RouteFor(rng, models.RegionNorth))
	assert.Equal(t, "Outra Centro-Oeste", RouteFor(rng, models.RegionMidwest))
}
