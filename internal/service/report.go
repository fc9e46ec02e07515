package service

import (
	"context"
	"fmt"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/report"
	"github.com/sirupsen/logrus"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

type reportService struct {
	repo   IncidentRepository
	cache  SummaryCache
	logger *logrus.Logger
}

// NewReportService создаёт сервис запросов панели. cache может быть nil.
func NewReportService(repo IncidentRepository, cache SummaryCache, logger *logrus.Logger) ReportService {
	return &reportService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Summary возвращает показатели панели для фильтра, сначала проверяя кэш
func (s *reportService) Summary(ctx context.Context, filter report.Filter) (*report.Summary, error) {
	key := filter.CacheKey()
	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "Summary",
		"cache_key": key,
	})

	if s.cache != nil {
		cached, err := s.cache.GetSummary(ctx, key)
		if err != nil {
			log.WithError(err).Warn("Failed to get summary from cache")
		} else if cached != nil {
			log.Debug("Summary served from cache")
			return cached, nil
		}
	}

	incidents, err := s.repo.ListIncidents(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, fmt.Errorf("service: could not load incidents: %w", err)
	}
	summary := report.Summarize(incidents)

	if s.cache != nil {
		if err := s.cache.SetSummary(ctx, key, summary); err != nil {
			log.WithError(err).Warn("Failed to set summary in cache")
		}
	}

	log.WithField("incidents", summary.TotalIncidents).Info("Summary computed")
	return &summary, nil
}

// ListIncidents возвращает страницу отфильтрованных инцидентов и их общее число
func (s *reportService) ListIncidents(ctx context.Context, filter report.Filter, page, pageSize int) ([]models.Incident, int, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > maxPageSize {
		pageSize = defaultPageSize
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "report",
		"method":    "ListIncidents",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing incidents")

	incidents, err := s.repo.ListIncidents(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list incidents from repository")
		return nil, 0, fmt.Errorf("service: could not list incidents: %w", err)
	}

	total := len(incidents)
	// Сравнение с числом страниц до умножения исключает переполнение
	if page-1 >= (total+pageSize-1)/pageSize {
		return []models.Incident{}, total, nil
	}
	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	log.WithField("count", end-start).Info("Incidents listed successfully")
	return incidents[start:end], total, nil
}
