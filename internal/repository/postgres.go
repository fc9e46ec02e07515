package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/report"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var incidentColumns = []string{
	"run_id",
	"position",
	"incident_date",
	"carrier",
	"risk_type",
	"criticality",
	"modal",
	"region",
	"cost",
	"critical_route",
	"event",
}

type PostgresIncidentRepository struct {
	db *pgxpool.Pool
}

func NewPostgresIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &PostgresIncidentRepository{db: db}
}

// ReplaceDataset сохраняет запуск и заменяет набор инцидентов в одной транзакции
func (r *PostgresIncidentRepository) ReplaceDataset(ctx context.Context, run *models.GenerationRun, incidents []models.Incident) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	query := `
		INSERT INTO generation_runs (id, seed, row_count, total_cost, carrier_counts, output_path, generated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	if _, err := tx.Exec(ctx, query,
		run.ID,
		run.Seed,
		run.RowCount,
		run.TotalCost,
		run.CarrierCounts,
		run.OutputPath,
		run.GeneratedAt,
	); err != nil {
		return fmt.Errorf("failed to insert generation run: %w", err)
	}

	// Предыдущие наборы удаляются каскадно вместе с запусками
	if _, err := tx.Exec(ctx, `DELETE FROM generation_runs WHERE id <> $1;`, run.ID); err != nil {
		return fmt.Errorf("failed to delete previous dataset: %w", err)
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"incidents"},
		incidentColumns,
		pgx.CopyFromSlice(len(incidents), func(i int) ([]any, error) {
			inc := incidents[i]
			return []any{
				run.ID,
				i,
				inc.Date,
				string(inc.Carrier),
				string(inc.RiskType),
				string(inc.Criticality),
				string(inc.Modal),
				string(inc.Region),
				inc.Cost,
				inc.CriticalRoute,
				string(inc.Event),
			}, nil
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to copy incidents: %w", err)
	}
	if int(copied) != len(incidents) {
		return fmt.Errorf("copied %d incidents, expected %d", copied, len(incidents))
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit dataset: %w", err)
	}
	return nil
}

// ListIncidents возвращает инциденты последнего набора, прошедшие фильтр, по дате
func (r *PostgresIncidentRepository) ListIncidents(ctx context.Context, filter report.Filter) ([]models.Incident, error) {
	where, args := filterClause(filter)
	query := `
		SELECT
			incident_date,
			carrier,
			risk_type,
			criticality,
			modal,
			region,
			cost,
			critical_route,
			event
		FROM incidents` + where + `
		ORDER BY incident_date, position;
	`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]models.Incident, 0)
	for rows.Next() {
		var inc models.Incident
		var carrier, risk, criticality, modal, region, event string
		err := rows.Scan(
			&inc.Date,
			&carrier,
			&risk,
			&criticality,
			&modal,
			&region,
			&inc.Cost,
			&inc.CriticalRoute,
			&event,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		inc.Carrier = models.Carrier(carrier)
		inc.RiskType = models.RiskType(risk)
		inc.Criticality = models.Criticality(criticality)
		inc.Modal = models.Modal(modal)
		inc.Region = models.Region(region)
		inc.Event = models.EventTag(event)
		incidents = append(incidents, inc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// LatestRun возвращает последний сохранённый запуск генерации
func (r *PostgresIncidentRepository) LatestRun(ctx context.Context) (*models.GenerationRun, error) {
	run := &models.GenerationRun{}
	query := `
		SELECT id, seed, row_count, total_cost, carrier_counts, output_path, generated_at
		FROM generation_runs
		ORDER BY generated_at DESC
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query).Scan(
		&run.ID,
		&run.Seed,
		&run.RowCount,
		&run.TotalCost,
		&run.CarrierCounts,
		&run.OutputPath,
		&run.GeneratedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, service.ErrDatasetNotFound
		}
		return nil, fmt.Errorf("failed to get latest generation run: %w", err)
	}
	return run, nil
}

// filterClause строит WHERE по фильтру панели. Пустые списки не ограничивают выборку.
func filterClause(f report.Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	add := func(cond string, v any) {
		args = append(args, v)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.From != nil && f.To != nil {
		add("incident_date >= $%d", *f.From)
		add("incident_date <= $%d", *f.To)
	}
	if len(f.Carriers) > 0 {
		add("carrier = ANY($%d)", toStrings(f.Carriers))
	}
	if len(f.RiskTypes) > 0 {
		add("risk_type = ANY($%d)", toStrings(f.RiskTypes))
	}
	if len(f.Modals) > 0 {
		add("modal = ANY($%d)", toStrings(f.Modals))
	}
	if len(f.Regions) > 0 {
		add("region = ANY($%d)", toStrings(f.Regions))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "\n\t\tWHERE " + strings.Join(conds, " AND "), args
}

func toStrings[T ~string](in []T) []string {
	out := make([]string, len(in))
	for i, v := range in {
		out[i] = string(v)
	}
	return out
}
