package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/config"
	v1 "github.com/Eliseu75766/dashboard-riscos-logisticos/internal/handler/http/v1"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/metrics"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/repository"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/service"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/webhook"
	redisclient "github.com/Eliseu75766/dashboard-riscos-logisticos/pkg/redis"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the report API and regenerate the dataset on schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			return serve(cfg, log)
		},
	}
}

func serve(cfg *config.Config, log *logrus.Logger) error {
	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStorage()

	var (
		cache     service.SummaryCache
		publisher webhook.WebhookPublisher
	)
	if cfg.RedisAddr != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			return err
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		cache = repository.NewRedisSummaryCache(redisClient, cfg.SummaryCacheTTL)
		publisher = webhook.NewRedisWebhookPublisher(redisClient)

		// Инициализация и запуск воркера вебхуков
		webhook.NewWebhookWorker(redisClient, log, cfg).Start(ctx)
	} else {
		log.Warn("REDIS_ADDR is not set, summary cache and webhooks are disabled")
	}

	m := metrics.New()
	datasetService := service.NewDatasetService(repo, cache, publisher, m, log, cfg)
	reportService := service.NewReportService(repo, cache, log)

	if err := ensureDataset(ctx, datasetService, log); err != nil {
		return err
	}

	scheduler, err := startScheduler(ctx, cfg, datasetService, log)
	if err != nil {
		return err
	}

	router := newRouter(m, v1.NewHandler(datasetService, reportService, log, cfg))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		log.Info("Received shutdown signal, shutting down server...")
	case err := <-serverErr:
		log.WithError(err).Error("HTTP server failed")
		cancel()
		return err
	}

	if scheduler != nil {
		<-scheduler.Stop().Done()
	}
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server gracefully stopped")
	return nil
}

// newRouter собирает gin-роутер: метрики, Swagger UI и API v1
func newRouter(m *metrics.Metrics, handler *v1.Handler) *gin.Engine {
	router := gin.Default()
	router.Use(m.GinMiddleware())
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	handler.RegisterRoutes(router.Group("/api/v1"))
	return router
}

// ensureDataset генерирует набор при первом запуске, если его ещё нет
func ensureDataset(ctx context.Context, datasetService service.DatasetService, log *logrus.Logger) error {
	run, err := datasetService.LatestRun(ctx)
	if err == nil {
		log.WithFields(logrus.Fields{"run_id": run.ID, "rows": run.RowCount}).Info("Serving existing dataset")
		return nil
	}
	if !errors.Is(err, service.ErrDatasetNotFound) {
		return err
	}

	log.Info("No dataset found, generating initial dataset")
	if _, err := datasetService.Generate(ctx, service.GenerateOptions{}); err != nil {
		return fmt.Errorf("initial generation failed: %w", err)
	}
	return nil
}

// startScheduler запускает перегенерацию по REGENERATE_SCHEDULE; пустое расписание отключает её
func startScheduler(ctx context.Context, cfg *config.Config, datasetService service.DatasetService, log *logrus.Logger) (*cron.Cron, error) {
	if cfg.RegenerateSchedule == "" {
		return nil, nil
	}

	cronLogger := cron.PrintfLogger(log.WithField("component", "scheduler"))
	scheduler := cron.New(cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)))

	_, err := scheduler.AddFunc(cfg.RegenerateSchedule, func() {
		if _, err := datasetService.Generate(ctx, service.GenerateOptions{}); err != nil {
			log.WithError(err).Error("Scheduled generation failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid REGENERATE_SCHEDULE %q: %w", cfg.RegenerateSchedule, err)
	}

	scheduler.Start()
	log.WithField("schedule", cfg.RegenerateSchedule).Info("Dataset regeneration scheduled")
	return scheduler, nil
}
