package generator

import (
	"fmt"
	"os"
	"time"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"gopkg.in/yaml.v3"
)

// Range - замкнутый интервал для равномерных множителей
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// CostParams - параметры синтеза стоимости
type CostParams struct {
	BaseCost             float64 `yaml:"base_cost"`
	ScaleFactor          float64 `yaml:"scale_factor"`
	ShortfallScaleFactor float64 `yaml:"shortfall_scale_factor"`
	HighMultiplier       Range   `yaml:"high_multiplier"`
	MediumMultiplier     Range   `yaml:"medium_multiplier"`
}

// FloodParams - наводнение в марте (Минас-Жерайс)
type FloodParams struct {
	Cost            int64           `yaml:"cost"`
	MaxRows         int             `yaml:"max_rows"`
	Month           time.Month      `yaml:"month"`
	Region          models.Region   `yaml:"region"`
	RiskType        models.RiskType `yaml:"risk_type"`
	EmergencyShrink float64         `yaml:"emergency_shrink"`
}

// CyberattackParams - кибератака на Tegma в апреле
type CyberattackParams struct {
	Date        time.Time          `yaml:"date"`
	Carrier     models.Carrier     `yaml:"carrier"`
	RiskType    models.RiskType    `yaml:"risk_type"`
	Criticality models.Criticality `yaml:"criticality"`
	Modal       models.Modal       `yaml:"modal"`
	Region      models.Region      `yaml:"region"`
	CostMin     int64              `yaml:"cost_min"`
	CostMax     int64              `yaml:"cost_max"`
}

// CarrierTarget - точное число инцидентов для перевозчика.
// Излишек переносится на Overflow.
type CarrierTarget struct {
	Carrier  models.Carrier `yaml:"carrier"`
	Count    int            `yaml:"count"`
	Overflow models.Carrier `yaml:"overflow"`
}

// Params - полный набор параметров генерации.
// Веса выровнены по словарям models.Carriers, models.RiskTypes и т.д.
type Params struct {
	StartDate       time.Time `yaml:"start_date"`
	EndDate         time.Time `yaml:"end_date"`
	NumIncidents    int       `yaml:"num_incidents"`
	TotalCostTarget int64     `yaml:"total_cost_target"`
	Seed            int64     `yaml:"seed"`
	SampleSeed      int64     `yaml:"sample_seed"`

	CarrierWeights     []float64 `yaml:"carrier_weights"`
	RiskWeights        []float64 `yaml:"risk_weights"`
	CriticalityWeights []float64 `yaml:"criticality_weights"`
	ModalWeights       []float64 `yaml:"modal_weights"`
	RegionWeights      []float64 `yaml:"region_weights"`

	Cost           CostParams        `yaml:"cost"`
	Flood          FloodParams       `yaml:"flood"`
	Cyberattack    CyberattackParams `yaml:"cyberattack"`
	CarrierTargets []CarrierTarget   `yaml:"carrier_targets"`
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DefaultParams возвращает параметры отчёта за первое полугодие 2025
func DefaultParams() Params {
	return Params{
		StartDate:       date(2025, time.January, 1),
		EndDate:         date(2025, time.June, 5),
		NumIncidents:    1240,
		TotalCostTarget: 89_700_000,
		SampleSeed:      42,

		CarrierWeights:     []float64{0.20, 0.15, 0.18, 0.22, 0.13, 0.12},
		RiskWeights:        []float64{0.25, 0.30, 0.15, 0.05, 0.25},
		CriticalityWeights: []float64{0.40, 0.35, 0.25},
		ModalWeights:       []float64{0.70, 0.20, 0.10},
		RegionWeights:      []float64{0.58, 0.15, 0.12, 0.10, 0.05},

		Cost: CostParams{
			BaseCost:             10_000,
			ScaleFactor:          0.8,
			ShortfallScaleFactor: 0.5,
			HighMultiplier:       Range{Min: 1.5, Max: 3.0},
			MediumMultiplier:     Range{Min: 1.1, Max: 1.8},
		},
		Flood: FloodParams{
			Cost:            18_200_000,
			MaxRows:         5,
			Month:           time.March,
			Region:          models.RegionSoutheast,
			RiskType:        models.RiskWeather,
			EmergencyShrink: 0.1,
		},
		Cyberattack: CyberattackParams{
			Date:        date(2025, time.April, 15),
			Carrier:     models.CarrierTegma,
			RiskType:    models.RiskOperational,
			Criticality: models.CriticalityHigh,
			Modal:       models.ModalRoad,
			Region:      models.RegionSoutheast,
			CostMin:     500_000,
			CostMax:     2_000_000,
		},
		CarrierTargets: []CarrierTarget{
			{Carrier: models.CarrierBrado, Count: 142, Overflow: models.CarrierJSL},
			{Carrier: models.CarrierJSL, Count: 128, Overflow: models.CarrierMercurio},
			{Carrier: models.CarrierTegma, Count: 119, Overflow: models.CarrierMercurio},
		},
	}
}

// LoadParams читает YAML-файл поверх значений по умолчанию.
// Поля, отсутствующие в файле, остаются по умолчанию.
func LoadParams(path string) (Params, error) {
	params := DefaultParams()
	raw, err := os.ReadFile(path)
	if err != nil {
		return params, fmt.Errorf("failed to read generator params: %w", err)
	}
	if err := yaml.Unmarshal(raw, &params); err != nil {
		return params, fmt.Errorf("failed to parse generator params: %w", err)
	}
	return params, nil
}

// Validate проверяет согласованность параметров до запуска конвейера
func (p Params) Validate() error {
	if p.NumIncidents <= 0 {
		return fmt.Errorf("%w: num_incidents must be positive", ErrInvalidParams)
	}
	if p.TotalCostTarget <= 0 {
		return fmt.Errorf("%w: total_cost_target must be positive", ErrInvalidParams)
	}
	if p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("%w: end_date is before start_date", ErrInvalidParams)
	}
	if p.Cyberattack.CostMax <= p.Cyberattack.CostMin {
		return fmt.Errorf("%w: cyberattack cost range is empty", ErrInvalidParams)
	}
	if p.Flood.MaxRows <= 0 {
		return fmt.Errorf("%w: flood max_rows must be positive", ErrInvalidParams)
	}
	if p.Flood.Month < time.January || p.Flood.Month > time.December {
		return fmt.Errorf("%w: flood month %d is out of range", ErrInvalidParams, p.Flood.Month)
	}
	if !models.IsValidRegion(string(p.Flood.Region)) || !models.IsValidRiskType(string(p.Flood.RiskType)) {
		return fmt.Errorf("%w: unknown flood region %q or risk type %q", ErrInvalidParams, p.Flood.Region, p.Flood.RiskType)
	}
	if err := p.Cyberattack.validate(); err != nil {
		return err
	}
	for _, r := range []Range{p.Cost.HighMultiplier, p.Cost.MediumMultiplier} {
		if r.Min <= 0 || r.Max < r.Min {
			return fmt.Errorf("%w: invalid multiplier range [%v, %v]", ErrInvalidParams, r.Min, r.Max)
		}
	}
	for _, t := range p.CarrierTargets {
		if !models.IsValidCarrier(string(t.Carrier)) || !models.IsValidCarrier(string(t.Overflow)) {
			return fmt.Errorf("%w: unknown carrier in target %q -> %q", ErrInvalidParams, t.Carrier, t.Overflow)
		}
		if t.Carrier == t.Overflow {
			return fmt.Errorf("%w: carrier %q overflows into itself", ErrInvalidParams, t.Carrier)
		}
		if t.Count < 0 {
			return fmt.Errorf("%w: negative target for %q", ErrInvalidParams, t.Carrier)
		}
	}

	checks := []struct {
		name string
		err  error
	}{
		{"carrier_weights", Categorical[models.Carrier]{models.Carriers, p.CarrierWeights}.Validate()},
		{"risk_weights", Categorical[models.RiskType]{models.RiskTypes, p.RiskWeights}.Validate()},
		{"criticality_weights", Categorical[models.Criticality]{models.Criticalities, p.CriticalityWeights}.Validate()},
		{"modal_weights", Categorical[models.Modal]{models.Modals, p.ModalWeights}.Validate()},
		{"region_weights", Categorical[models.Region]{models.Regions, p.RegionWeights}.Validate()},
	}
	for _, c := range checks {
		if c.err != nil {
			return fmt.Errorf("%s: %w", c.name, c.err)
		}
	}
	return nil
}

func (c CyberattackParams) validate() error {
	fields := []struct {
		name  string
		value string
		valid func(string) bool
	}{
		{"carrier", string(c.Carrier), models.IsValidCarrier},
		{"risk_type", string(c.RiskType), models.IsValidRiskType},
		{"criticality", string(c.Criticality), models.IsValidCriticality},
		{"modal", string(c.Modal), models.IsValidModal},
		{"region", string(c.Region), models.IsValidRegion},
	}
	for _, f := range fields {
		if !f.valid(f.value) {
			return fmt.Errorf("%w: unknown cyberattack %s %q", ErrInvalidParams, f.name, f.value)
		}
	}
	if !ModalAllowed(c.Carrier, c.Modal) {
		return fmt.Errorf("%w: cyberattack modal %q is not allowed for %q", ErrInvalidParams, c.Modal, c.Carrier)
	}
	return nil
}
