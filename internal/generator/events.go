package generator

import (
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/sirupsen/logrus"
)

// injectFlood распределяет стоимость наводнения между несколькими строками
// {месяц, регион, тип риска}. Остальные строки сжимаются, чтобы освободить
// место под блок; итоговую сумму восстанавливает следующий rescale.
func (g *Generator) injectFlood(t Table) (Table, error) {
	fp := g.params.Flood
	out := t.Clone()

	matches := out.Indices(func(inc models.Incident) bool {
		return inc.Date.Month() == fp.Month && inc.Region == fp.Region && inc.RiskType == fp.RiskType
	})
	log := g.logger.WithFields(logrus.Fields{
		"stage":   "flood",
		"matches": len(matches),
	})
	if len(matches) == 0 {
		log.Warn("No incidents match the flood event, skipping injection")
		return out, nil
	}

	chosen := choose(g.rng, matches, min(len(matches), fp.MaxRows))

	total := out.TotalCost()
	factor := fp.EmergencyShrink
	if total > fp.Cost {
		factor = 1 - float64(fp.Cost)/float64(total)
	} else {
		log.WithField("total_cost", total).Warn("Total cost does not exceed flood cost, applying emergency shrink")
	}
	for i := range out {
		out[i].Cost = int64(float64(out[i].Cost) * factor)
	}

	perRow := fp.Cost / int64(len(chosen))
	for _, i := range chosen {
		out[i].Cost = perRow
		out[i].Criticality = models.CriticalityHigh
		out[i].Event = models.EventFlood
	}
	log.WithFields(logrus.Fields{
		"rows":         len(chosen),
		"cost_per_row": perRow,
		"shrink":       factor,
	}).Debug("Flood event injected")
	return out, nil
}

// injectCyberattack добавляет единственную запись о кибератаке
func (g *Generator) injectCyberattack(t Table) (Table, error) {
	cp := g.params.Cyberattack
	out := make(Table, len(t), len(t)+1)
	copy(out, t)

	cost := cp.CostMin + g.rng.Int63n(cp.CostMax-cp.CostMin)
	out = append(out, models.Incident{
		Date:        cp.Date,
		Carrier:     cp.Carrier,
		RiskType:    cp.RiskType,
		Criticality: cp.Criticality,
		Modal:       cp.Modal,
		Region:      cp.Region,
		Cost:        cost,
		Event:       models.EventCyberattack,
	})
	g.logger.WithField("cost", cost).Debug("Cyberattack event injected")
	return out, nil
}
