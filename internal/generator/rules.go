package generator

import (
	"fmt"
	"math/rand"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
)

// ModalRule задаёт распределение вида транспорта для перевозчика
type ModalRule struct {
	Carrier models.Carrier
	Modal   Categorical[models.Modal]
}

// RiskSkewRule - доля строк перевозчика, получающих преобладающий тип риска
type RiskSkewRule struct {
	Carrier  models.Carrier
	Fraction float64
	RiskType models.RiskType
}

// RouteRule - распределение критических маршрутов для региона
type RouteRule struct {
	Region models.Region
	Routes Categorical[string]
}

func fixedModal(m models.Modal) Categorical[models.Modal] {
	return Categorical[models.Modal]{Values: []models.Modal{m}, Weights: []float64{1}}
}

var (
	// ModalRules проверяются по порядку; перевозчики без правила получают DefaultModal
	ModalRules = []ModalRule{
		{Carrier: models.CarrierRumo, Modal: fixedModal(models.ModalRail)},
		{Carrier: models.CarrierLATAMCargo, Modal: fixedModal(models.ModalAir)},
		{Carrier: models.CarrierBrado, Modal: Categorical[models.Modal]{
			Values:  []models.Modal{models.ModalRail, models.ModalRoad},
			Weights: []float64{0.8, 0.2},
		}},
	}
	DefaultModal = models.ModalRoad

	RiskSkewRules = []RiskSkewRule{
		{Carrier: models.CarrierBrado, Fraction: 0.62, RiskType: models.RiskTheft},
		{Carrier: models.CarrierJSL, Fraction: 0.57, RiskType: models.RiskWeather},
		{Carrier: models.CarrierTegma, Fraction: 0.48, RiskType: models.RiskOperational},
	}

	RouteRules = []RouteRule{
		{Region: models.RegionSoutheast, Routes: Categorical[string]{
			Values:  []string{"BR-040 (RJ-MG)", "Porto de Santos (SP)", "Aeroporto de Guarulhos (GRU)", "Outra Sudeste"},
			Weights: []float64{0.3, 0.3, 0.2, 0.2},
		}},
		{Region: models.RegionSouth, Routes: Categorical[string]{
			Values:  []string{"BR-116 (PR-SC)", "Outra Sul"},
			Weights: []float64{0.4, 0.6},
		}},
	}
)

func modalRuleFor(c models.Carrier) (ModalRule, bool) {
	for _, r := range ModalRules {
		if r.Carrier == c {
			return r, true
		}
	}
	return ModalRule{}, false
}

func riskSkewRuleFor(c models.Carrier) (RiskSkewRule, bool) {
	for _, r := range RiskSkewRules {
		if r.Carrier == c {
			return r, true
		}
	}
	return RiskSkewRule{}, false
}

// ResolveModal возвращает вид транспорта, согласованный с перевозчиком
func ResolveModal(rng *rand.Rand, c models.Carrier) models.Modal {
	if rule, ok := modalRuleFor(c); ok {
		return rule.Modal.Draw(rng)
	}
	return DefaultModal
}

// ModalAllowed сообщает, допустим ли вид транспорта для перевозчика
func ModalAllowed(c models.Carrier, m models.Modal) bool {
	rule, ok := modalRuleFor(c)
	if !ok {
		return m == DefaultModal
	}
	for i, v := range rule.Modal.Values {
		if v == m && rule.Modal.Weights[i] > 0 {
			return true
		}
	}
	return false
}

// RouteFor возвращает критический маршрут для региона
func RouteFor(rng *rand.Rand, r models.Region) string {
	for _, rule := range RouteRules {
		if rule.Region == r {
			return rule.Routes.Draw(rng)
		}
	}
	return fmt.Sprintf("Outra %s", r)
}

// skewRows назначает rule.RiskType доле rule.Fraction строк idx
func skewRows(rng *rand.Rand, t Table, idx []int, rule RiskSkewRule) {
	n := int(float64(len(idx)) * rule.Fraction)
	for _, i := range choose(rng, idx, n) {
		t[i].RiskType = rule.RiskType
	}
}

// ReassignCarrier переводит строки idx таблицы t на перевозчика c и заново
// выводит зависимые поля: вид транспорта по ModalRules и, если для c есть
// правило RiskSkewRules, преобладающий тип риска на переназначенной части.
// Это единственный способ сменить перевозчика у строки. Таблица изменяется на месте.
func ReassignCarrier(rng *rand.Rand, t Table, idx []int, c models.Carrier) {
	for _, i := range idx {
		t[i].Carrier = c
		t[i].Modal = ResolveModal(rng, c)
	}
	if rule, ok := riskSkewRuleFor(c); ok {
		skewRows(rng, t, idx, rule)
	}
}
