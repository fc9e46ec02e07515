package service

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/config"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/dataset"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/generator"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/metrics"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/webhook"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type datasetService struct {
	repo      IncidentRepository
	cache     SummaryCache
	publisher webhook.WebhookPublisher
	metrics   *metrics.Metrics
	logger    *logrus.Logger
	cfg       *config.Config

	// mu не даёт двум генерациям перезаписывать набор одновременно
	mu sync.Mutex
}

// NewDatasetService создаёт сервис генерации. cache, publisher и m могут быть nil.
func NewDatasetService(
	repo IncidentRepository,
	cache SummaryCache,
	publisher webhook.WebhookPublisher,
	m *metrics.Metrics,
	logger *logrus.Logger,
	cfg *config.Config,
) DatasetService {
	return &datasetService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		metrics:   m,
		logger:    logger,
		cfg:       cfg,
	}
}

// Generate запускает генератор, сохраняет набор и оповещает подписчиков.
// Если генерация уже идёт, возвращает ErrGenerationInProgress.
func (s *datasetService) Generate(ctx context.Context, opts GenerateOptions) (run *models.GenerationRun, err error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "dataset",
		"method":  "Generate",
	})

	if !s.mu.TryLock() {
		log.Warn("Generation requested while another run is in progress")
		return nil, ErrGenerationInProgress
	}
	defer s.mu.Unlock()

	started := time.Now()
	if s.metrics != nil {
		defer func() {
			if run != nil {
				s.metrics.ObserveGeneration(started, run.RowCount, run.TotalCost, nil)
				return
			}
			s.metrics.ObserveGeneration(started, 0, 0, err)
		}()
	}

	params, err := s.cfg.GeneratorParams()
	if err != nil {
		log.WithError(err).Error("Invalid generator configuration")
		return nil, fmt.Errorf("service: could not load generator params: %w", err)
	}
	if opts.Seed != nil {
		params.Seed = *opts.Seed
	}

	gen, err := generator.New(params, s.logger)
	if err != nil {
		log.WithError(err).Error("Failed to create generator")
		return nil, fmt.Errorf("service: could not create generator: %w", err)
	}
	table, err := gen.Run()
	if err != nil {
		log.WithError(err).Error("Generation failed")
		return nil, fmt.Errorf("service: generation failed: %w", err)
	}
	incidents := []models.Incident(table)

	checks := generator.Summarize(table)
	log.WithFields(logrus.Fields{
		"rows":            checks.Rows,
		"total_cost":      checks.TotalCost,
		"carrier_counts":  checks.CarrierCounts,
		"skew_shares":     checks.SkewShares,
		"southeast_share": checks.SoutheastShare,
		"flood_rows":      checks.FloodRows,
		"flood_cost":      checks.FloodCost,
	}).Info("Dataset verification")

	result := &models.GenerationRun{
		ID:          uuid.New(),
		Seed:        gen.Seed(),
		OutputPath:  s.cfg.OutputCSV,
		GeneratedAt: time.Now().UTC(),
	}
	result.Tally(incidents)
	log = log.WithField("run_id", result.ID)

	if err := s.repo.ReplaceDataset(ctx, result, incidents); err != nil {
		log.WithError(err).Error("Failed to persist dataset")
		return nil, fmt.Errorf("service: could not persist dataset: %w", err)
	}

	if s.cfg.OutputXLSX != "" {
		if err := writeXLSXFile(s.cfg.OutputXLSX, incidents); err != nil {
			log.WithError(err).Error("Failed to export XLSX")
			return nil, fmt.Errorf("service: could not export xlsx: %w", err)
		}
	}

	// Сбой кэша или очереди не отменяет сохранённый набор
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate summary cache")
		}
	}
	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, webhook.NewDatasetGeneratedEvent(result)); err != nil {
			log.WithError(err).Warn("Failed to publish dataset event")
		}
	}

	log.WithFields(logrus.Fields{
		"seed":       result.Seed,
		"rows":       result.RowCount,
		"total_cost": result.TotalCost,
		"duration":   time.Since(started).String(),
	}).Info("Dataset generated successfully")
	return result, nil
}

// LatestRun возвращает сведения о текущем наборе
func (s *datasetService) LatestRun(ctx context.Context) (*models.GenerationRun, error) {
	run, err := s.repo.LatestRun(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: could not get latest run: %w", err)
	}
	return run, nil
}

func writeXLSXFile(path string, incidents []models.Incident) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dataset.WriteXLSX(f, incidents); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
