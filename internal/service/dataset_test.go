package service_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/config"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/generator"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/metrics"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/service"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/service/mocks"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/webhook"
	webhook_mocks "github.com/Eliseu75766/dashboard-riscos-logisticos/internal/webhook/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

type datasetDeps struct {
	repo      *mocks.MockIncidentRepository
	cache     *mocks.MockSummaryCache
	publisher *webhook_mocks.MockWebhookPublisher
	metrics   *metrics.Metrics
	cfg       *config.Config
}

// newTestDatasetService — вспомогательная функция для создания сервиса с моками
func newTestDatasetService(t *testing.T) (service.DatasetService, datasetDeps) {
	ctrl := gomock.NewController(t)
	deps := datasetDeps{
		repo:      mocks.NewMockIncidentRepository(ctrl),
		cache:     mocks.NewMockSummaryCache(ctrl),
		publisher: webhook_mocks.NewMockWebhookPublisher(ctrl),
		metrics:   metrics.New(),
		cfg: &config.Config{
			OutputCSV:     "riscos.csv",
			GeneratorSeed: 3,
		},
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	svc := service.NewDatasetService(deps.repo, deps.cache, deps.publisher, deps.metrics, logger, deps.cfg)
	return svc, deps
}

func TestGenerate_Success(t *testing.T) {
	// Подготовка
	svc, deps := newTestDatasetService(t)
	ctx := context.Background()

	var stored []models.Incident
	// Ожидания
	deps.repo.EXPECT().
		ReplaceDataset(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, run *models.GenerationRun, incidents []models.Incident) error {
			stored = incidents
			return nil
		}).
		Times(1)
	deps.cache.EXPECT().Invalidate(ctx).Return(nil).Times(1)
	deps.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, event webhook.WebhookEvent) error {
			assert.Equal(t, webhook.EventDatasetGenerated, event.Type)
			assert.Equal(t, 1240, event.RowCount)
			return nil
		}).
		Times(1)

	// Действие
	run, err := svc.Generate(ctx, service.GenerateOptions{})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(3), run.Seed)
	assert.Equal(t, 1240, run.RowCount)
	assert.Equal(t, "riscos.csv", run.OutputPath)
	assert.Equal(t, 142, run.CarrierCounts[models.CarrierBrado])
	assert.Len(t, stored, 1240)
	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.GenerationRuns.WithLabelValues("success")))
	assert.Equal(t, 1240.0, testutil.ToFloat64(deps.metrics.DatasetRows))
}

func TestGenerate_SeedOverride(t *testing.T) {
	svc, deps := newTestDatasetService(t)
	ctx := context.Background()
	seed := int64(99)

	deps.repo.EXPECT().ReplaceDataset(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.cache.EXPECT().Invalidate(ctx).Return(nil).Times(1)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	run, err := svc.Generate(ctx, service.GenerateOptions{Seed: &seed})
	require.NoError(t, err)
	assert.Equal(t, seed, run.Seed)
}

func TestGenerate_RepositoryError(t *testing.T) {
	svc, deps := newTestDatasetService(t)
	ctx := context.Background()
	repoErr := errors.New("disk full")

	deps.repo.EXPECT().ReplaceDataset(ctx, gomock.Any(), gomock.Any()).Return(repoErr).Times(1)
	deps.cache.EXPECT().Invalidate(gomock.Any()).Times(0)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	run, err := svc.Generate(ctx, service.GenerateOptions{})
	require.Error(t, err)
	assert.Nil(t, run)
	assert.ErrorIs(t, err, repoErr)
	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.GenerationRuns.WithLabelValues("error")))
}

func TestGenerate_CacheAndPublisherFailuresAreNotFatal(t *testing.T) {
	svc, deps := newTestDatasetService(t)
	ctx := context.Background()

	deps.repo.EXPECT().ReplaceDataset(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.cache.EXPECT().Invalidate(ctx).Return(errors.New("redis down")).Times(1)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(errors.New("redis down")).Times(1)

	run, err := svc.Generate(ctx, service.GenerateOptions{})
	require.NoError(t, err)
	assert.NotNil(t, run)
}

func TestGenerate_InfeasibleTarget(t *testing.T) {
	svc, deps := newTestDatasetService(t)
	params := filepath.Join(t.TempDir(), "params.yaml")
	require.NoError(t, os.WriteFile(params, []byte(
		"carrier_targets:\n  - carrier: Brado\n    count: 5000\n    overflow: JSL\n"), 0o600))
	deps.cfg.GeneratorParamsFile = params

	deps.repo.EXPECT().ReplaceDataset(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := svc.Generate(context.Background(), service.GenerateOptions{})
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrInfeasibleReconciliation)
	assert.Equal(t, 1.0, testutil.ToFloat64(deps.metrics.GenerationRuns.WithLabelValues("error")))
}

func TestGenerate_WritesXLSX(t *testing.T) {
	svc, deps := newTestDatasetService(t)
	ctx := context.Background()
	deps.cfg.OutputXLSX = filepath.Join(t.TempDir(), "riscos.xlsx")

	deps.repo.EXPECT().ReplaceDataset(ctx, gomock.Any(), gomock.Any()).Return(nil).Times(1)
	deps.cache.EXPECT().Invalidate(ctx).Return(nil).Times(1)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	_, err := svc.Generate(ctx, service.GenerateOptions{})
	require.NoError(t, err)

	f, err := excelize.OpenFile(deps.cfg.OutputXLSX)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Incidentes")
	require.NoError(t, err)
	assert.Len(t, rows, 1241)
}

func TestGenerate_InProgress(t *testing.T) {
	svc, deps := newTestDatasetService(t)
	ctx := context.Background()

	release := make(chan struct{})
	entered := make(chan struct{})
	deps.repo.EXPECT().
		ReplaceDataset(ctx, gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, *models.GenerationRun, []models.Incident) error {
			close(entered)
			<-release
			return nil
		}).
		Times(1)
	deps.cache.EXPECT().Invalidate(ctx).Return(nil).Times(1)
	deps.publisher.EXPECT().Publish(ctx, gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := svc.Generate(ctx, service.GenerateOptions{})
		assert.NoError(t, err)
	}()

	<-entered
	_, err := svc.Generate(ctx, service.GenerateOptions{})
	assert.ErrorIs(t, err, service.ErrGenerationInProgress)

	close(release)
	wg.Wait()
}

func TestLatestRun_NotFound(t *testing.T) {
	svc, deps := newTestDatasetService(t)
	ctx := context.Background()

	deps.repo.EXPECT().LatestRun(ctx).Return(nil, service.ErrDatasetNotFound).Times(1)

	_, err := svc.LatestRun(ctx)
	assert.ErrorIs(t, err, service.ErrDatasetNotFound)
}
