package v1

import (
	"time"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/google/uuid"
)

// FilterQuery - параметры фильтра панели в строке запроса.
// Списки принимаются повторением ключа или через запятую.
type FilterQuery struct {
	From      string   `form:"from" validate:"omitempty,datetime=2006-01-02"`
	To        string   `form:"to" validate:"omitempty,datetime=2006-01-02"`
	Carriers  []string `form:"carriers" validate:"omitempty,dive,carrier"`
	RiskTypes []string `form:"risk_types" validate:"omitempty,dive,risk_type"`
	Modals    []string `form:"modals" validate:"omitempty,dive,modal"`
	Regions   []string `form:"regions" validate:"omitempty,dive,region"`
}

// ListIncidentsQuery - фильтр и пагинация списка инцидентов
type ListIncidentsQuery struct {
	FilterQuery
	Page     int `form:"page" validate:"omitempty,min=1,max=100000"`
	PageSize int `form:"pageSize" validate:"omitempty,min=1,max=100"`
}

// GenerateRequest DTO для запуска генерации
type GenerateRequest struct {
	Seed *int64 `json:"seed,omitempty"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	Date          string             `json:"date"`
	Carrier       models.Carrier     `json:"carrier"`
	RiskType      models.RiskType    `json:"risk_type"`
	Criticality   models.Criticality `json:"criticality"`
	Modal         models.Modal       `json:"modal"`
	Region        models.Region      `json:"region"`
	Cost          int64              `json:"cost"`
	CriticalRoute string             `json:"critical_route"`
}

// ListIncidentsResponse DTO для страницы инцидентов
type ListIncidentsResponse struct {
	Items    []IncidentResponse `json:"items"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
	Total    int                `json:"total"`
}

// GenerationRunResponse DTO для ответа о запуске генерации
type GenerationRunResponse struct {
	ID            uuid.UUID              `json:"id"`
	Seed          int64                  `json:"seed"`
	RowCount      int                    `json:"row_count"`
	TotalCost     int64                  `json:"total_cost"`
	CarrierCounts map[models.Carrier]int `json:"carrier_counts"`
	OutputPath    string                 `json:"output_path,omitempty"`
	GeneratedAt   time.Time              `json:"generated_at"`
}
