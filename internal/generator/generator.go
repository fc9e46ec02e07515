package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/sirupsen/logrus"
)

// stage - один проход конвейера
type stage struct {
	name string
	run  func(Table) (Table, error)
}

// Generator строит синтетический набор инцидентов последовательными
// корректирующими проходами. Экземпляр рассчитан на один запуск Run.
type Generator struct {
	params Params
	seed   int64
	rng    *rand.Rand
	logger *logrus.Logger
}

// New проверяет параметры и создаёт генератор.
// Нулевой Seed заменяется текущим временем.
func New(params Params, logger *logrus.Logger) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	seed := params.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		params: params,
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}, nil
}

// Seed возвращает фактически использованное зерно
func (g *Generator) Seed() int64 {
	return g.seed
}

func (g *Generator) stages() []stage {
	return []stage{
		{"synthesize", g.synthesize},
		{"resolve_modals", g.resolveModals},
		{"risk_skew", g.injectRiskSkew},
		{"costs", g.synthesizeCosts},
		{"flood", g.injectFlood},
		{"rescale_after_flood", g.rescale},
		{"cyberattack", g.injectCyberattack},
		{"reconcile_count", g.reconcileCount},
		{"rescale_after_count", g.rescale},
		{"routes", g.assignRoutes},
		{"reconcile_carriers", g.reconcileCarriers},
		{"final_rescale", g.rescale},
		{"sort", g.sortByDate},
	}
}

// Run выполняет все стадии по порядку. Ошибка любой стадии прерывает
// генерацию, частичный результат не возвращается.
func (g *Generator) Run() (Table, error) {
	log := g.logger.WithFields(logrus.Fields{
		"component": "generator",
		"seed":      g.seed,
	})
	log.Info("Starting synthetic incident generation")

	var t Table
	for _, s := range g.stages() {
		next, err := s.run(t)
		if err != nil {
			log.WithError(err).WithField("stage", s.name).Error("Generation stage failed")
			return nil, fmt.Errorf("generator: stage %s: %w", s.name, err)
		}
		t = next
		log.WithFields(logrus.Fields{
			"stage":      s.name,
			"rows":       len(t),
			"total_cost": t.TotalCost(),
		}).Debug("Stage completed")
	}

	log.WithFields(logrus.Fields{
		"rows":       len(t),
		"total_cost": t.TotalCost(),
	}).Info("Synthetic incidents generated")
	return t, nil
}

// sampleRows сэмплирует n строк по весам; вид транспорта и типы риска
// ещё не согласованы с перевозчиком
func (g *Generator) sampleRows(n int) Table {
	p := g.params
	carriers := Categorical[models.Carrier]{models.Carriers, p.CarrierWeights}.Sample(g.rng, n)
	risks := Categorical[models.RiskType]{models.RiskTypes, p.RiskWeights}.Sample(g.rng, n)
	crits := Categorical[models.Criticality]{models.Criticalities, p.CriticalityWeights}.Sample(g.rng, n)
	modals := Categorical[models.Modal]{models.Modals, p.ModalWeights}.Sample(g.rng, n)
	regions := Categorical[models.Region]{models.Regions, p.RegionWeights}.Sample(g.rng, n)

	rows := make(Table, n)
	for i := range rows {
		rows[i] = models.Incident{
			Date:        drawDate(g.rng, p.StartDate, p.EndDate),
			Carrier:     carriers[i],
			RiskType:    risks[i],
			Criticality: crits[i],
			Modal:       modals[i],
			Region:      regions[i],
		}
	}
	return rows
}

func (g *Generator) synthesize(_ Table) (Table, error) {
	return g.sampleRows(g.params.NumIncidents), nil
}

// synthesizeRows - дополнительные строки, прошедшие те же правила,
// что и основная выборка
func (g *Generator) synthesizeRows(n int) (Table, error) {
	rows, err := g.resolveModals(g.sampleRows(n))
	if err != nil {
		return nil, err
	}
	return g.injectRiskSkew(rows)
}

// resolveModals перезаписывает вид транспорта по ModalRules
func (g *Generator) resolveModals(t Table) (Table, error) {
	out := t.Clone()
	for i := range out {
		out[i].Modal = ResolveModal(g.rng, out[i].Carrier)
	}
	return out, nil
}

// injectRiskSkew применяет RiskSkewRules ко всем строкам каждого перевозчика
func (g *Generator) injectRiskSkew(t Table) (Table, error) {
	out := t.Clone()
	for _, rule := range RiskSkewRules {
		skewRows(g.rng, out, out.CarrierIndices(rule.Carrier), rule)
	}
	return out, nil
}

// assignRoutes выводит критический маршрут из региона
func (g *Generator) assignRoutes(t Table) (Table, error) {
	out := t.Clone()
	for i := range out {
		out[i].CriticalRoute = RouteFor(g.rng, out[i].Region)
	}
	return out, nil
}

func (g *Generator) sortByDate(t Table) (Table, error) {
	out := t.Clone()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out, nil
}
