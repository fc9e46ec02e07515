package generator

import (
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
)

// Summary - контрольные показатели сгенерированного набора
type Summary struct {
	Rows           int                        `json:"rows"`
	TotalCost      int64                      `json:"total_cost"`
	CarrierCounts  map[models.Carrier]int     `json:"carrier_counts"`
	SkewShares     map[models.Carrier]float64 `json:"skew_shares"`
	SoutheastShare float64                    `json:"southeast_share"`
	FloodRows      int                        `json:"flood_rows"`
	FloodCost      int64                      `json:"flood_cost"`
	Cyberattack    *models.Incident           `json:"cyberattack,omitempty"`
}

// Summarize считает контрольные показатели. Доли для пустых групп равны нулю.
func Summarize(t Table) Summary {
	s := Summary{
		Rows:          len(t),
		TotalCost:     t.TotalCost(),
		CarrierCounts: make(map[models.Carrier]int, len(models.Carriers)),
		SkewShares:    make(map[models.Carrier]float64, len(RiskSkewRules)),
	}

	southeast := 0
	for i, inc := range t {
		s.CarrierCounts[inc.Carrier]++
		if inc.Region == models.RegionSoutheast {
			southeast++
		}
		switch inc.Event {
		case models.EventFlood:
			s.FloodRows++
			s.FloodCost += inc.Cost
		case models.EventCyberattack:
			row := t[i]
			s.Cyberattack = &row
		}
	}
	if len(t) > 0 {
		s.SoutheastShare = float64(southeast) / float64(len(t))
	}

	for _, rule := range RiskSkewRules {
		total := s.CarrierCounts[rule.Carrier]
		if total == 0 {
			s.SkewShares[rule.Carrier] = 0
			continue
		}
		hits := len(t.Indices(func(inc models.Incident) bool {
			return inc.Carrier == rule.Carrier && inc.RiskType == rule.RiskType
		}))
		s.SkewShares[rule.Carrier] = float64(hits) / float64(total)
	}
	return s
}
