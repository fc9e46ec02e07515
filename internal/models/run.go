package models

import (
	"time"

	"github.com/google/uuid"
)

// GenerationRun описывает один запуск генератора набора данных
type GenerationRun struct {
	ID            uuid.UUID       `json:"id"`
	Seed          int64           `json:"seed"`
	RowCount      int             `json:"row_count"`
	TotalCost     int64           `json:"total_cost"`
	CarrierCounts map[Carrier]int `json:"carrier_counts"`
	OutputPath    string          `json:"output_path,omitempty"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// Tally заполняет итоговые показатели запуска по набору инцидентов
func (r *GenerationRun) Tally(incidents []Incident) {
	r.RowCount = len(incidents)
	r.TotalCost = 0
	r.CarrierCounts = make(map[Carrier]int, len(Carriers))
	for _, inc := range incidents {
		r.TotalCost += inc.Cost
		r.CarrierCounts[inc.Carrier]++
	}
}
