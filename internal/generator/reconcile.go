package generator

import (
	"fmt"
	"math/rand"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/sirupsen/logrus"
)

// reconcileCount приводит число строк к NumIncidents: лишние строки
// отбрасываются детерминированной выборкой, недостающие синтезируются.
// Выборка равномерна только среди строк без события; строки событий сохраняются всегда.
// Сумма стоимости после этой стадии не совпадает с целью.
func (g *Generator) reconcileCount(t Table) (Table, error) {
	target := g.params.NumIncidents
	log := g.logger.WithFields(logrus.Fields{"stage": "reconcile_count", "rows": len(t), "target": target})

	switch {
	case len(t) > target:
		keep := t.Indices(pinned)
		free := t.Indices(func(inc models.Incident) bool { return !pinned(inc) })
		need := target - len(keep)
		if need < 0 {
			return nil, fmt.Errorf("%w: %d event rows exceed %d incidents", ErrInfeasibleReconciliation, len(keep), target)
		}
		sampler := rand.New(rand.NewSource(g.params.SampleSeed))
		keep = append(keep, choose(sampler, free, need)...)
		log.WithField("dropped", len(t)-target).Debug("Sampled incidents down to target")
		return t.pick(keep), nil

	case len(t) < target:
		missing := target - len(t)
		extra, err := g.synthesizeRows(missing)
		if err != nil {
			return nil, err
		}
		scale := g.meanCost() * g.params.Cost.ShortfallScaleFactor
		for i := range extra {
			extra[i].Cost = int64(g.rng.ExpFloat64() * scale)
		}
		out := make(Table, 0, target)
		out = append(out, t...)
		out = append(out, extra...)
		log.WithField("added", missing).Debug("Synthesized missing incidents")
		return out, nil
	}
	return t.Clone(), nil
}

// reconcileCarriers добивается точного числа инцидентов для каждого
// перевозчика из CarrierTargets, в заданном порядке. Переназначение
// в более позднем шаге может изменить счётчик, уже выставленный ранее.
func (g *Generator) reconcileCarriers(t Table) (Table, error) {
	out := t.Clone()
	for _, target := range g.params.CarrierTargets {
		current := out.CarrierIndices(target.Carrier)
		diff := target.Count - len(current)
		log := g.logger.WithFields(logrus.Fields{
			"stage":   "reconcile_carriers",
			"carrier": target.Carrier,
			"current": len(current),
			"target":  target.Count,
		})

		switch {
		case diff > 0:
			donors := out.Indices(func(inc models.Incident) bool {
				return inc.Carrier != target.Carrier && !pinned(inc)
			})
			if len(donors) < diff {
				return nil, fmt.Errorf("%w: %s needs %d rows, only %d donors available",
					ErrInfeasibleReconciliation, target.Carrier, diff, len(donors))
			}
			ReassignCarrier(g.rng, out, choose(g.rng, donors, diff), target.Carrier)
			log.WithField("added", diff).Debug("Relabeled donor incidents")

		case diff < 0:
			removable := out.Indices(func(inc models.Incident) bool {
				return inc.Carrier == target.Carrier && !pinned(inc)
			})
			if len(removable) < -diff {
				return nil, fmt.Errorf("%w: %s must release %d rows, only %d are movable",
					ErrInfeasibleReconciliation, target.Carrier, -diff, len(removable))
			}
			ReassignCarrier(g.rng, out, choose(g.rng, removable, -diff), target.Overflow)
			log.WithFields(logrus.Fields{"moved": -diff, "overflow": target.Overflow}).Debug("Moved surplus incidents")
		}
	}
	return out, nil
}
