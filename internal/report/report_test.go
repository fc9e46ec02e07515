package report

import (
	"testing"
	"time"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixture() []models.Incident {
	return []models.Incident{
		{Date: day(2025, 1, 10), Carrier: models.CarrierBrado, RiskType: models.RiskTheft, Criticality: models.CriticalityHigh,
			Modal: models.ModalRail, Region: models.RegionSoutheast, Cost: 1000, CriticalRoute: "BR-040 (RJ-MG)"},
		{Date: day(2025, 1, 20), Carrier: models.CarrierBrado, RiskType: models.RiskTheft, Criticality: models.CriticalityLow,
			Modal: models.ModalRoad, Region: models.RegionSoutheast, Cost: 3000, CriticalRoute: "BR-040 (RJ-MG)"},
		{Date: day(2025, 2, 5), Carrier: models.CarrierBrado, RiskType: models.RiskWeather, Criticality: models.CriticalityMedium,
			Modal: models.ModalRail, Region: models.RegionSouth, Cost: 2000, CriticalRoute: "BR-116 (PR-SC)"},
		{Date: day(2025, 3, 1), Carrier: models.CarrierJSL, RiskType: models.RiskWeather, Criticality: models.CriticalityHigh,
			Modal: models.ModalRoad, Region: models.RegionNorth, Cost: 4000, CriticalRoute: "Outra Norte"},
	}
}

func TestFilter_Match(t *testing.T) {
	from, to := day(2025, 1, 15), day(2025, 2, 28)
	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{name: "empty filter matches all", filter: Filter{}, want: 4},
		{name: "date range", filter: Filter{From: &from, To: &to}, want: 2},
		{name: "single bound ignored", filter: Filter{From: &from}, want: 4},
		{name: "carrier", filter: Filter{Carriers: []models.Carrier{models.CarrierJSL}}, want: 1},
		{name: "combined", filter: Filter{
			Carriers: []models.Carrier{models.CarrierBrado},
			Regions:  []models.Region{models.RegionSoutheast},
		}, want: 2},
		{name: "no match", filter: Filter{Modals: []models.Modal{models.ModalAir}}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, tt.filter.Apply(fixture()), tt.want)
		})
	}
}

func TestFilter_CacheKey(t *testing.T) {
	a := Filter{Carriers: []models.Carrier{models.CarrierJSL, models.CarrierBrado}}
	b := Filter{Carriers: []models.Carrier{models.CarrierBrado, models.CarrierJSL}}
	c := Filter{Carriers: []models.Carrier{models.CarrierBrado}}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
	// Порядок исходного среза не меняется
	assert.Equal(t, models.CarrierJSL, a.Carriers[0])
}

func TestSummarize(t *testing.T) {
	s := Summarize(fixture())

	assert.Equal(t, 4, s.TotalIncidents)
	assert.Equal(t, int64(10000), s.TotalCost)
	assert.InDelta(t, 0.01, s.TotalCostMillions, 1e-9)
	assert.Equal(t, 2, s.HighCriticality)
	assert.InDelta(t, 50.0, s.HighCriticalityPct, 1e-9)

	assert.Equal(t, "BR-040 (RJ-MG)", s.TopRoute)
	assert.Equal(t, 2, s.TopRouteCount)
	assert.InDelta(t, 50.0, s.TopRoutePct, 1e-9)
	require.Len(t, s.TopRoutes, 3)

	require.NotEmpty(t, s.ByCarrier)
	assert.Equal(t, models.CarrierBrado, s.ByCarrier[0].Carrier)
	assert.Equal(t, 3, s.ByCarrier[0].Incidents)

	require.Len(t, s.CostByRisk, 2)
	assert.Equal(t, models.RiskWeather, s.CostByRisk[0].RiskType)
	assert.InDelta(t, 60.0, s.CostByRisk[0].SharePct, 1e-9)

	assert.Equal(t, []MonthRiskCount{
		{Month: "2025-01", RiskType: models.RiskTheft, Incidents: 2},
		{Month: "2025-02", RiskType: models.RiskWeather, Incidents: 1},
		{Month: "2025-03", RiskType: models.RiskWeather, Incidents: 1},
	}, s.MonthlyByRisk)

	require.Len(t, s.CarrierPerformance, 3)
	brado := s.CarrierPerformance[0]
	assert.Equal(t, models.CarrierBrado, brado.Carrier)
	assert.Equal(t, 3, brado.Incidents)
	assert.InDelta(t, 2000.0, brado.AverageCost, 1e-9)
	assert.Equal(t, "Roubo (67%)", brado.PredominantRisk)

	tegma := s.CarrierPerformance[2]
	assert.Equal(t, 0, tegma.Incidents)
	assert.Equal(t, NotAvailable, tegma.PredominantRisk)
}

func TestSummarize_EmptyRange(t *testing.T) {
	// Диапазон без инцидентов: метрики по умолчанию, без деления на ноль
	from, to := day(2024, 1, 1), day(2024, 1, 31)
	s := Summarize(Filter{From: &from, To: &to}.Apply(fixture()))

	assert.Equal(t, 0, s.TotalIncidents)
	assert.Equal(t, int64(0), s.TotalCost)
	assert.Zero(t, s.HighCriticalityPct)
	assert.Equal(t, NotAvailable, s.TopRoute)
	assert.Zero(t, s.TopRouteCount)
	assert.Zero(t, s.TopRoutePct)
	assert.Empty(t, s.ByRegion)
	for _, perf := range s.CarrierPerformance {
		assert.Zero(t, perf.AverageCost)
		assert.Equal(t, NotAvailable, perf.PredominantRisk)
	}
}
