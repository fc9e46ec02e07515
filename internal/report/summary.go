package report

import (
	"fmt"
	"sort"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
)

// NotAvailable - значение текстовых метрик для пустой выборки
const NotAvailable = "N/A"

// TopRoutesLimit - сколько маршрутов показывает панель
const TopRoutesLimit = 5

// FeaturedCarriers - перевозчики таблицы эффективности (TOP 3)
var FeaturedCarriers = []models.Carrier{models.CarrierBrado, models.CarrierJSL, models.CarrierTegma}

type MonthRiskCount struct {
	Month     string          `json:"month"`
	RiskType  models.RiskType `json:"risk_type"`
	Incidents int             `json:"incidents"`
}

type CostShare struct {
	RiskType     models.RiskType `json:"risk_type"`
	Cost         int64           `json:"cost"`
	CostMillions float64         `json:"cost_millions"`
	SharePct     float64         `json:"share_pct"`
}

type CarrierCount struct {
	Carrier   models.Carrier `json:"carrier"`
	Incidents int            `json:"incidents"`
}

type RegionShare struct {
	Region    models.Region `json:"region"`
	Incidents int           `json:"incidents"`
	Percent   float64       `json:"percent"`
}

type RouteCount struct {
	Route     string `json:"route"`
	Incidents int    `json:"incidents"`
}

// CarrierPerformance - строка таблицы эффективности перевозчика
type CarrierPerformance struct {
	Carrier         models.Carrier `json:"carrier"`
	Incidents       int            `json:"incidents"`
	TotalCost       int64          `json:"total_cost"`
	AverageCost     float64        `json:"average_cost"`
	PredominantRisk string         `json:"predominant_risk"`
}

// Summary - показатели панели по отфильтрованной выборке
type Summary struct {
	TotalIncidents     int                  `json:"total_incidents"`
	TotalCost          int64                `json:"total_cost"`
	TotalCostMillions  float64              `json:"total_cost_millions"`
	HighCriticality    int                  `json:"high_criticality"`
	HighCriticalityPct float64              `json:"high_criticality_pct"`
	TopRoute           string               `json:"top_route"`
	TopRouteCount      int                  `json:"top_route_count"`
	TopRoutePct        float64              `json:"top_route_pct"`
	MonthlyByRisk      []MonthRiskCount     `json:"monthly_by_risk"`
	CostByRisk         []CostShare          `json:"cost_by_risk"`
	ByCarrier          []CarrierCount       `json:"by_carrier"`
	ByRegion           []RegionShare        `json:"by_region"`
	TopRoutes          []RouteCount         `json:"top_routes"`
	CarrierPerformance []CarrierPerformance `json:"carrier_performance"`
}

// percent возвращает 0 для пустого знаменателя
func percent(part, whole int) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}

func millions(v int64) float64 {
	return float64(v) / 1_000_000
}

// Summarize считает показатели по уже отфильтрованным инцидентам.
// Для пустой выборки возвращаются нули и NotAvailable, без деления на ноль.
func Summarize(incidents []models.Incident) Summary {
	s := Summary{
		TotalIncidents:     len(incidents),
		TopRoute:           NotAvailable,
		MonthlyByRisk:      []MonthRiskCount{},
		CostByRisk:         []CostShare{},
		ByCarrier:          []CarrierCount{},
		ByRegion:           []RegionShare{},
		TopRoutes:          []RouteCount{},
		CarrierPerformance: make([]CarrierPerformance, 0, len(FeaturedCarriers)),
	}

	monthly := map[MonthRiskCount]int{}
	costByRisk := map[models.RiskType]int64{}
	byCarrier := map[models.Carrier]int{}
	byRegion := map[models.Region]int{}
	byRoute := map[string]int{}

	for _, inc := range incidents {
		s.TotalCost += inc.Cost
		if inc.Criticality == models.CriticalityHigh {
			s.HighCriticality++
		}
		monthly[MonthRiskCount{Month: inc.Date.Format("2006-01"), RiskType: inc.RiskType}]++
		costByRisk[inc.RiskType] += inc.Cost
		byCarrier[inc.Carrier]++
		byRegion[inc.Region]++
		byRoute[inc.CriticalRoute]++
	}

	s.TotalCostMillions = millions(s.TotalCost)
	s.HighCriticalityPct = percent(s.HighCriticality, s.TotalIncidents)

	for key, n := range monthly {
		key.Incidents = n
		s.MonthlyByRisk = append(s.MonthlyByRisk, key)
	}
	sort.Slice(s.MonthlyByRisk, func(i, j int) bool {
		a, b := s.MonthlyByRisk[i], s.MonthlyByRisk[j]
		if a.Month != b.Month {
			return a.Month < b.Month
		}
		return a.RiskType < b.RiskType
	})

	for _, risk := range models.RiskTypes {
		cost, ok := costByRisk[risk]
		if !ok {
			continue
		}
		share := 0.0
		if s.TotalCost > 0 {
			share = float64(cost) / float64(s.TotalCost) * 100
		}
		s.CostByRisk = append(s.CostByRisk, CostShare{
			RiskType:     risk,
			Cost:         cost,
			CostMillions: millions(cost),
			SharePct:     share,
		})
	}

	for carrier, n := range byCarrier {
		s.ByCarrier = append(s.ByCarrier, CarrierCount{Carrier: carrier, Incidents: n})
	}
	sort.Slice(s.ByCarrier, func(i, j int) bool {
		if s.ByCarrier[i].Incidents != s.ByCarrier[j].Incidents {
			return s.ByCarrier[i].Incidents > s.ByCarrier[j].Incidents
		}
		return s.ByCarrier[i].Carrier < s.ByCarrier[j].Carrier
	})

	for _, region := range models.Regions {
		n, ok := byRegion[region]
		if !ok {
			continue
		}
		s.ByRegion = append(s.ByRegion, RegionShare{Region: region, Incidents: n, Percent: percent(n, s.TotalIncidents)})
	}

	routes := rankRoutes(byRoute)
	if len(routes) > 0 {
		s.TopRoute = routes[0].Route
		s.TopRouteCount = routes[0].Incidents
		s.TopRoutePct = percent(s.TopRouteCount, s.TotalIncidents)
	}
	if len(routes) > TopRoutesLimit {
		routes = routes[:TopRoutesLimit]
	}
	s.TopRoutes = routes

	for _, carrier := range FeaturedCarriers {
		s.CarrierPerformance = append(s.CarrierPerformance, carrierPerformance(incidents, carrier))
	}
	return s
}

// rankRoutes сортирует маршруты по убыванию числа инцидентов, при равенстве - по имени
func rankRoutes(byRoute map[string]int) []RouteCount {
	routes := make([]RouteCount, 0, len(byRoute))
	for route, n := range byRoute {
		routes = append(routes, RouteCount{Route: route, Incidents: n})
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Incidents != routes[j].Incidents {
			return routes[i].Incidents > routes[j].Incidents
		}
		return routes[i].Route < routes[j].Route
	})
	return routes
}

func carrierPerformance(incidents []models.Incident, carrier models.Carrier) CarrierPerformance {
	perf := CarrierPerformance{Carrier: carrier, PredominantRisk: NotAvailable}
	risks := map[models.RiskType]int{}
	for _, inc := range incidents {
		if inc.Carrier != carrier {
			continue
		}
		perf.Incidents++
		perf.TotalCost += inc.Cost
		risks[inc.RiskType]++
	}
	if perf.Incidents == 0 {
		return perf
	}
	perf.AverageCost = float64(perf.TotalCost) / float64(perf.Incidents)

	var top models.RiskType
	topCount := -1
	for _, risk := range models.RiskTypes {
		if risks[risk] > topCount {
			top, topCount = risk, risks[risk]
		}
	}
	perf.PredominantRisk = fmt.Sprintf("%s (%.0f%%)", top, percent(topCount, perf.Incidents))
	return perf
}
