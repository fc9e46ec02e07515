package generator

import (
	"testing"
	"time"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floodCandidate(cost int64) models.Incident {
	return models.Incident{
		Date:        time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Carrier:     models.CarrierJSL,
		RiskType:    models.RiskWeather,
		Criticality: models.CriticalityLow,
		Modal:       models.ModalRoad,
		Region:      models.RegionSoutheast,
		Cost:        cost,
	}
}

func otherIncident(cost int64) models.Incident {
	return models.Incident{
		Date:        time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC),
		Carrier:     models.CarrierRumo,
		RiskType:    models.RiskWeather,
		Criticality: models.CriticalityLow,
		Modal:       models.ModalRail,
		Region:      models.RegionSoutheast,
		Cost:        cost,
	}
}

func TestInjectFlood_ChosenRowsCarryBlock(t *testing.T) {
	g := newTestGenerator(t, nil)
	var table Table
	for i := 0; i < 10; i++ {
		table = append(table, floodCandidate(1_000_000))
	}
	for i := 0; i < 90; i++ {
		table = append(table, otherIncident(1_000_000))
	}

	out, err := g.injectFlood(table)

	require.NoError(t, err)
	require.Len(t, out, len(table))
	flood := 0
	for _, inc := range out {
		if inc.Event == models.EventFlood {
			flood++
			assert.Equal(t, int64(18_200_000/5), inc.Cost)
			assert.Equal(t, models.CriticalityHigh, inc.Criticality)
			continue
		}
		// Остальные строки сжаты на 1 - 18,2/100
		assert.InDelta(t, 818_000, float64(inc.Cost), 1)
		assert.Equal(t, models.CriticalityLow, inc.Criticality)
	}
	assert.Equal(t, 5, flood)
	// Входная таблица не изменяется
	assert.Equal(t, int64(1_000_000), table[0].Cost)
}

func TestInjectFlood_FewerMatchesThanMaxRows(t *testing.T) {
	g := newTestGenerator(t, nil)
	table := Table{floodCandidate(30_000_000), floodCandidate(30_000_000), otherIncident(40_000_000)}

	out, err := g.injectFlood(table)

	require.NoError(t, err)
	assert.Equal(t, int64(9_100_000), out[0].Cost)
	assert.Equal(t, int64(9_100_000), out[1].Cost)
	assert.Equal(t, models.EventFlood, out[0].Event)
	assert.Equal(t, models.EventFlood, out[1].Event)
	assert.Equal(t, models.EventNone, out[2].Event)
}

func TestInjectFlood_EmergencyShrink(t *testing.T) {
	g := newTestGenerator(t, nil)
	table := Table{floodCandidate(1_000), otherIncident(1_000), otherIncident(1_000)}

	out, err := g.injectFlood(table)

	require.NoError(t, err)
	assert.Equal(t, int64(18_200_000), out[0].Cost)
	assert.InDelta(t, 100, float64(out[1].Cost), 1)
	assert.InDelta(t, 100, float64(out[2].Cost), 1)
	for _, inc := range out {
		assert.GreaterOrEqual(t, inc.Cost, int64(0))
	}
}

func TestInjectFlood_NoMatches(t *testing.T) {
	g := newTestGenerator(t, nil)
	table := Table{otherIncident(1_000), otherIncident(2_000)}

	out, err := g.injectFlood(table)

	require.NoError(t, err)
	assert.Equal(t, table, out)
}

func TestInjectCyberattack(t *testing.T) {
	g := newTestGenerator(t, nil)
	table := Table{otherIncident(1_000)}

	out, err := g.injectCyberattack(table)

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Len(t, table, 1)

	cyber := out[1]
	assert.Equal(t, models.EventCyberattack, cyber.Event)
	assert.Equal(t, models.CarrierTegma, cyber.Carrier)
	assert.Equal(t, models.RiskOperational, cyber.RiskType)
	assert.Equal(t, models.CriticalityHigh, cyber.Criticality)
	assert.Equal(t, models.ModalRoad, cyber.Modal)
	assert.Equal(t, models.RegionSoutheast, cyber.Region)
	assert.Equal(t, time.Date(2025, time.April, 15, 0, 0, 0, 0, time.UTC), cyber.Date)
	assert.GreaterOrEqual(t, cyber.Cost, int64(500_000))
	assert.Less(t, cyber.Cost, int64(2_000_000))
}
