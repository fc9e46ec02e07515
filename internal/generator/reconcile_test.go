package generator

import (
	"errors"
	"testing"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconcileCount_SamplesDownDeterministically(t *testing.T) {
	table := filledTable(12, models.CarrierRumo, models.RiskTheft)
	for i := range table {
		table[i].Cost = int64(i + 1)
	}
	table[11].Event = models.EventCyberattack

	first, err := newTestGenerator(t, func(p *Params) { p.NumIncidents = 10; p.Seed = 1 }).reconcileCount(table)
	require.NoError(t, err)
	second, err := newTestGenerator(t, func(p *Params) { p.NumIncidents = 10; p.Seed = 2 }).reconcileCount(table)
	require.NoError(t, err)

	assert.Len(t, first, 10)
	// Выборка зависит только от SampleSeed
	assert.Equal(t, first, second)
	// Строка события не отбрасывается
	assert.Len(t, first.Indices(pinned), 1)
}

func TestReconcileCount_SynthesizesShortfall(t *testing.T) {
	g := newTestGenerator(t, func(p *Params) { p.NumIncidents = 50 })
	table := filledTable(5, models.CarrierRumo, models.RiskTheft)

	out, err := g.reconcileCount(table)

	require.NoError(t, err)
	require.Len(t, out, 50)
	assert.Equal(t, table, out[:5])
	for _, inc := range out[5:] {
		assert.True(t, ModalAllowed(inc.Carrier, inc.Modal))
		assert.GreaterOrEqual(t, inc.Cost, int64(0))
	}
}

func TestReconcileCount_Exact(t *testing.T) {
	g := newTestGenerator(t, func(p *Params) { p.NumIncidents = 5 })
	table := filledTable(5, models.CarrierRumo, models.RiskTheft)

	out, err := g.reconcileCount(table)

	require.NoError(t, err)
	assert.Equal(t, table, out)
}

func TestReconcileCarriers_OrderAndOverflow(t *testing.T) {
	g := newTestGenerator(t, func(p *Params) {
		p.CarrierTargets = []CarrierTarget{
			{Carrier: models.CarrierBrado, Count: 3, Overflow: models.CarrierJSL},
			{Carrier: models.CarrierJSL, Count: 2, Overflow: models.CarrierMercurio},
		}
	})
	table := append(filledTable(5, models.CarrierBrado, models.RiskTheft), filledTable(1, models.CarrierJSL, models.RiskStrike)...)
	table = append(table, filledTable(4, models.CarrierRumo, models.RiskAccident)...)

	out, err := g.reconcileCarriers(table)

	require.NoError(t, err)
	// Brado отдаёт 2 строки JSL, затем JSL отдаёт 1 строку Mercúrio
	assert.Equal(t, 3, out.CountCarrier(models.CarrierBrado))
	assert.Equal(t, 2, out.CountCarrier(models.CarrierJSL))
	assert.Equal(t, 1, out.CountCarrier(models.CarrierMercurio))
	assert.Equal(t, 4, out.CountCarrier(models.CarrierRumo))
	for _, inc := range out {
		assert.True(t, ModalAllowed(inc.Carrier, inc.Modal))
	}
}

func TestReconcileCarriers_RelabelsDonors(t *testing.T) {
	g := newTestGenerator(t, func(p *Params) {
		p.CarrierTargets = []CarrierTarget{
			{Carrier: models.CarrierTegma, Count: 6, Overflow: models.CarrierMercurio},
		}
	})
	table := filledTable(10, models.CarrierRumo, models.RiskAccident)

	out, err := g.reconcileCarriers(table)

	require.NoError(t, err)
	assert.Equal(t, 6, out.CountCarrier(models.CarrierTegma))
	operational := 0
	for _, idx := range out.CarrierIndices(models.CarrierTegma) {
		assert.Equal(t, models.ModalRoad, out[idx].Modal)
		if out[idx].RiskType == models.RiskOperational {
			operational++
		}
	}
	// 48% от 6 строк с отбрасыванием дробной части
	assert.Equal(t, 2, operational)
}

func TestReconcileCarriers_SkipsEventRows(t *testing.T) {
	g := newTestGenerator(t, func(p *Params) {
		p.CarrierTargets = []CarrierTarget{
			{Carrier: models.CarrierTegma, Count: 1, Overflow: models.CarrierMercurio},
		}
	})
	table := filledTable(3, models.CarrierTegma, models.RiskOperational)
	table[1].Event = models.EventCyberattack

	out, err := g.reconcileCarriers(table)

	require.NoError(t, err)
	assert.Equal(t, models.CarrierTegma, out[1].Carrier)
	assert.Equal(t, 1, out.CountCarrier(models.CarrierTegma))
}

func TestReconcileCarriers_Infeasible(t *testing.T) {
	g := newTestGenerator(t, func(p *Params) {
		p.CarrierTargets = []CarrierTarget{
			{Carrier: models.CarrierBrado, Count: 20, Overflow: models.CarrierJSL},
		}
	})
	table := filledTable(10, models.CarrierRumo, models.RiskAccident)

	out, err := g.reconcileCarriers(table)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInfeasibleReconciliation))
	assert.Nil(t, out)
	// Частичное переназначение не применяется к входной таблице
	assert.Equal(t, 0, table.CountCarrier(models.CarrierBrado))
}
