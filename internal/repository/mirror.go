package repository

import (
	"context"
	"fmt"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/report"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/service"
)

// MirroredRepository читает из основного хранилища. Набор сначала
// записывается в зеркала, затем в основное хранилище: сбой зеркала
// оставляет основное хранилище с прежним набором.
type MirroredRepository struct {
	primary service.IncidentRepository
	mirrors []service.IncidentRepository
}

func NewMirroredRepository(primary service.IncidentRepository, mirrors ...service.IncidentRepository) service.IncidentRepository {
	return &MirroredRepository{primary: primary, mirrors: mirrors}
}

func (r *MirroredRepository) ReplaceDataset(ctx context.Context, run *models.GenerationRun, incidents []models.Incident) error {
	for i, m := range r.mirrors {
		if err := m.ReplaceDataset(ctx, run, incidents); err != nil {
			return fmt.Errorf("mirror %d: %w", i, err)
		}
	}
	if err := r.primary.ReplaceDataset(ctx, run, incidents); err != nil {
		return err
	}
	return nil
}

func (r *MirroredRepository) ListIncidents(ctx context.Context, filter report.Filter) ([]models.Incident, error) {
	return r.primary.ListIncidents(ctx, filter)
}

func (r *MirroredRepository) LatestRun(ctx context.Context) (*models.GenerationRun, error) {
	return r.primary.LatestRun(ctx)
}
