package repository

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/dataset"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/report"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/service"
)

// CSVIncidentRepository хранит набор в CSV-файле, который читает панель.
// Служебная метка события в файл не попадает.
type CSVIncidentRepository struct {
	path string

	mu      sync.RWMutex
	lastRun *models.GenerationRun
}

func NewCSVIncidentRepository(path string) *CSVIncidentRepository {
	return &CSVIncidentRepository{path: path}
}

// Path возвращает путь к файлу набора
func (r *CSVIncidentRepository) Path() string {
	return r.path
}

// ReplaceDataset перезаписывает файл атомарно через временный файл в том же каталоге
func (r *CSVIncidentRepository) ReplaceDataset(_ context.Context, run *models.GenerationRun, incidents []models.Incident) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".incidents-*.csv")
	if err != nil {
		return fmt.Errorf("failed to create temp dataset file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := dataset.WriteCSV(tmp, incidents); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write dataset: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp dataset file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("failed to move dataset into place: %w", err)
	}

	saved := *run
	saved.OutputPath = r.path
	r.lastRun = &saved
	return nil
}

// ListIncidents читает файл и применяет фильтр
func (r *CSVIncidentRepository) ListIncidents(_ context.Context, filter report.Filter) ([]models.Incident, error) {
	incidents, err := r.load()
	if err != nil {
		return nil, err
	}
	return filter.Apply(incidents), nil
}

// LatestRun возвращает последний запуск. Для файла, созданного другим
// процессом, показатели считаются по содержимому, а ID остаётся нулевым.
func (r *CSVIncidentRepository) LatestRun(_ context.Context) (*models.GenerationRun, error) {
	r.mu.RLock()
	if r.lastRun != nil {
		run := *r.lastRun
		r.mu.RUnlock()
		return &run, nil
	}
	r.mu.RUnlock()

	info, err := os.Stat(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, service.ErrDatasetNotFound
		}
		return nil, fmt.Errorf("failed to stat dataset: %w", err)
	}
	incidents, err := r.load()
	if err != nil {
		return nil, err
	}
	run := &models.GenerationRun{OutputPath: r.path, GeneratedAt: info.ModTime().UTC()}
	run.Tally(incidents)
	return run, nil
}

func (r *CSVIncidentRepository) load() ([]models.Incident, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, err := os.Open(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, service.ErrDatasetNotFound
		}
		return nil, fmt.Errorf("failed to open dataset: %w", err)
	}
	defer f.Close()

	incidents, err := dataset.ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", r.path, err)
	}
	return incidents, nil
}
