package models

import (
	"time"
)

// Carrier - транспортная компания
type Carrier string

// RiskType - тип риска
type RiskType string

// Criticality - уровень критичности
type Criticality string

// Modal - вид транспорта
type Modal string

// Region - регион Бразилии
type Region string

// EventTag помечает строки, внедрённые как исторические события
type EventTag string

const (
	CarrierJSL        Carrier = "JSL"
	CarrierRumo       Carrier = "Rumo"
	CarrierTegma      Carrier = "Tegma"
	CarrierBrado      Carrier = "Brado"
	CarrierMercurio   Carrier = "Mercúrio"
	CarrierLATAMCargo Carrier = "LATAM Cargo"
)

const (
	RiskWeather     RiskType = "Climático"
	RiskTheft       RiskType = "Roubo"
	RiskAccident    RiskType = "Acidente"
	RiskStrike      RiskType = "Greve"
	RiskOperational RiskType = "Operacional"
)

const (
	CriticalityLow    Criticality = "Baixo"
	CriticalityMedium Criticality = "Médio"
	CriticalityHigh   Criticality = "Alto"
)

const (
	ModalRoad Modal = "Rodoviário"
	ModalRail Modal = "Ferroviário"
	ModalAir  Modal = "Aéreo"
)

const (
	RegionSoutheast Region = "Sudeste"
	RegionSouth     Region = "Sul"
	RegionNortheast Region = "Nordeste"
	RegionMidwest   Region = "Centro-Oeste"
	RegionNorth     Region = "Norte"
)

const (
	EventNone        EventTag = ""
	EventFlood       EventTag = "flood"
	EventCyberattack EventTag = "cyberattack"
)

// Словари значений. Отчёт сопоставляет категории по точным строкам,
// поэтому менять их нельзя.
var (
	Carriers      = []Carrier{CarrierJSL, CarrierRumo, CarrierTegma, CarrierBrado, CarrierMercurio, CarrierLATAMCargo}
	RiskTypes     = []RiskType{RiskWeather, RiskTheft, RiskAccident, RiskStrike, RiskOperational}
	Criticalities = []Criticality{CriticalityLow, CriticalityMedium, CriticalityHigh}
	Modals        = []Modal{ModalRoad, ModalRail, ModalAir}
	Regions       = []Region{RegionSoutheast, RegionSouth, RegionNortheast, RegionMidwest, RegionNorth}
)

// Incident - одна запись о логистическом инциденте
type Incident struct {
	Date          time.Time   `json:"date"`
	Carrier       Carrier     `json:"carrier"`
	RiskType      RiskType    `json:"risk_type"`
	Criticality   Criticality `json:"criticality"`
	Modal         Modal       `json:"modal"`
	Region        Region      `json:"region"`
	Cost          int64       `json:"cost"`
	CriticalRoute string      `json:"critical_route"`
	Event         EventTag    `json:"event,omitempty"`
}

// IsValidCarrier проверяет, входит ли значение в словарь перевозчиков
func IsValidCarrier(v string) bool {
	for _, c := range Carriers {
		if string(c) == v {
			return true
		}
	}
	return false
}

// IsValidRiskType проверяет, входит ли значение в словарь типов риска
func IsValidRiskType(v string) bool {
	for _, r := range RiskTypes {
		if string(r) == v {
			return true
		}
	}
	return false
}

// IsValidCriticality проверяет уровень критичности
func IsValidCriticality(v string) bool {
	for _, c := range Criticalities {
		if string(c) == v {
			return true
		}
	}
	return false
}

// IsValidModal проверяет вид транспорта
func IsValidModal(v string) bool {
	for _, m := range Modals {
		if string(m) == v {
			return true
		}
	}
	return false
}

// IsValidRegion проверяет регион
func IsValidRegion(v string) bool {
	for _, r := range Regions {
		if string(r) == v {
			return true
		}
	}
	return false
}
