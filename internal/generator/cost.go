package generator

import (
	"fmt"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
)

// meanCost - средняя стоимость инцидента, при которой сумма равна цели
func (g *Generator) meanCost() float64 {
	return float64(g.params.TotalCostTarget) / float64(g.params.NumIncidents)
}

// synthesizeCosts задаёт стоимость с тяжёлым хвостом, усиливает критичные
// инциденты и масштабирует сумму к цели
func (g *Generator) synthesizeCosts(t Table) (Table, error) {
	out := t.Clone()
	cp := g.params.Cost
	scale := g.meanCost() * cp.ScaleFactor

	costs := make([]float64, len(out))
	for i, inc := range out {
		c := g.rng.ExpFloat64()*scale + cp.BaseCost
		switch inc.Criticality {
		case models.CriticalityHigh:
			c *= uniform(g.rng, cp.HighMultiplier)
		case models.CriticalityMedium:
			c *= uniform(g.rng, cp.MediumMultiplier)
		}
		costs[i] = c
	}

	scaled, err := rescaleValues(costs, g.params.TotalCostTarget)
	if err != nil {
		return nil, err
	}
	for i := range out {
		out[i].Cost = scaled[i]
	}
	return out, nil
}

// rescaleValues умножает значения на target/sum и отбрасывает дробную часть.
// Погрешность суммы после усечения меньше len(values).
func rescaleValues(values []float64, target int64) ([]int64, error) {
	var sum float64
	for _, v := range values {
		sum += v
	}
	if sum <= 0 {
		return nil, fmt.Errorf("%w: sum %v cannot be scaled to %d", ErrDegenerateCost, sum, target)
	}
	factor := float64(target) / sum
	out := make([]int64, len(values))
	for i, v := range values {
		out[i] = int64(v * factor)
	}
	return out, nil
}

// Rescale масштабирует стоимость всех строк к суммарной цели
func Rescale(t Table, target int64) (Table, error) {
	values := make([]float64, len(t))
	for i, inc := range t {
		values[i] = float64(inc.Cost)
	}
	scaled, err := rescaleValues(values, target)
	if err != nil {
		return nil, err
	}
	out := t.Clone()
	for i := range out {
		out[i].Cost = scaled[i]
	}
	return out, nil
}

func (g *Generator) rescale(t Table) (Table, error) {
	return Rescale(t, g.params.TotalCostTarget)
}
