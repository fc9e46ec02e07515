package v1

import (
	"fmt"
	"strings"
	"time"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/dataset"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/report"
)

// splitValues раскрывает значения, перечисленные через запятую
func splitValues(in []string) []string {
	var out []string
	for _, v := range in {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func convert[T ~string](in []string) []T {
	if len(in) == 0 {
		return nil
	}
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = T(v)
	}
	return out
}

// normalize раскрывает списки до валидации, чтобы dive проверял каждое значение
func (q *FilterQuery) normalize() {
	q.Carriers = splitValues(q.Carriers)
	q.RiskTypes = splitValues(q.RiskTypes)
	q.Modals = splitValues(q.Modals)
	q.Regions = splitValues(q.Regions)
}

// QueryToFilter преобразует проверенный запрос в фильтр панели
func QueryToFilter(q FilterQuery) (report.Filter, error) {
	f := report.Filter{
		Carriers:  convert[models.Carrier](q.Carriers),
		RiskTypes: convert[models.RiskType](q.RiskTypes),
		Modals:    convert[models.Modal](q.Modals),
		Regions:   convert[models.Region](q.Regions),
	}
	if q.From != "" {
		from, err := time.Parse(dataset.DateLayout, q.From)
		if err != nil {
			return f, fmt.Errorf("invalid from date: %w", err)
		}
		f.From = &from
	}
	if q.To != "" {
		to, err := time.Parse(dataset.DateLayout, q.To)
		if err != nil {
			return f, fmt.Errorf("invalid to date: %w", err)
		}
		f.To = &to
	}
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return f, fmt.Errorf("date range is reversed: %s > %s", q.From, q.To)
	}
	return f, nil
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model models.Incident) IncidentResponse {
	return IncidentResponse{
		Date:          model.Date.Format(dataset.DateLayout),
		Carrier:       model.Carrier,
		RiskType:      model.RiskType,
		Criticality:   model.Criticality,
		Modal:         model.Modal,
		Region:        model.Region,
		Cost:          model.Cost,
		CriticalRoute: model.CriticalRoute,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// ModelToRunResponse преобразует запуск генерации в DTO
func ModelToRunResponse(run *models.GenerationRun) GenerationRunResponse {
	return GenerationRunResponse{
		ID:            run.ID,
		Seed:          run.Seed,
		RowCount:      run.RowCount,
		TotalCost:     run.TotalCost,
		CarrierCounts: run.CarrierCounts,
		OutputPath:    run.OutputPath,
		GeneratedAt:   run.GeneratedAt,
	}
}
