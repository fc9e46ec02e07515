package service

import (
	"context"
	"errors"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/report"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// ErrDatasetNotFound - набор данных ещё не сгенерирован
var ErrDatasetNotFound = errors.New("dataset not found")

// ErrGenerationInProgress - другая генерация уже выполняется
var ErrGenerationInProgress = errors.New("generation already in progress")

// IncidentRepository определяет контракт хранилища набора инцидентов.
// Набор заменяется целиком, частичных обновлений нет.
type IncidentRepository interface {
	ReplaceDataset(ctx context.Context, run *models.GenerationRun, incidents []models.Incident) error
	ListIncidents(ctx context.Context, filter report.Filter) ([]models.Incident, error)
	LatestRun(ctx context.Context) (*models.GenerationRun, error)
}

// SummaryCache кэширует показатели панели по ключу фильтра.
// Промах возвращает (nil, nil).
type SummaryCache interface {
	GetSummary(ctx context.Context, key string) (*report.Summary, error)
	SetSummary(ctx context.Context, key string, summary report.Summary) error
	Invalidate(ctx context.Context) error
}

// GenerateOptions - параметры одного запуска генерации
type GenerateOptions struct {
	// Seed переопределяет зерно из конфигурации, если не nil
	Seed *int64
}

// DatasetService определяет контракт генерации и сохранения набора данных
type DatasetService interface {
	Generate(ctx context.Context, opts GenerateOptions) (*models.GenerationRun, error)
	LatestRun(ctx context.Context) (*models.GenerationRun, error)
}

// ReportService определяет контракт запросов панели
type ReportService interface {
	Summary(ctx context.Context, filter report.Filter) (*report.Summary, error)
	ListIncidents(ctx context.Context, filter report.Filter, page, pageSize int) ([]models.Incident, int, error)
}
