package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/internal/utils"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

// Operation names reported in *models.StoreError.
const (
	opList   = "list"
	opGet    = "get"
	opInsert = "insert"
	opDelete = "delete"
)

// planRepository is the database/sql implementation of [PlanRepository].
// Queries are built with squirrel using the placeholder format of the
// underlying driver, so the same code serves PostgreSQL and SQLite.
type planRepository struct {
	*DB
	ids IDGenerator
	now func() time.Time
}

// NewPlanRepository constructs a [PlanRepository] over db. IDs are UUIDv7
// and timestamps are UTC wall-clock time truncated to microseconds.
func NewPlanRepository(db *DB) PlanRepository {
	return &planRepository{
		DB:  db,
		ids: utils.NewUUIDGenerator(),
		now: func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}
}

// List implements [PlanRepository].
func (p *planRepository) List(ctx context.Context, search string) ([]models.PlanRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPlansQuery(p.builder, search)
	if err != nil {
		return nil, models.NewStoreError(opList, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "planRepository.List").
			Str("classification", p.errorClassificator.Classify(err).String()).
			Msg("failed to execute query for listing plans")
		return nil, models.NewStoreError(opList, fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	plans := make([]models.PlanRecord, 0, 32)
	for rows.Next() {
		plan, scanErr := scanPlan(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "planRepository.List").Msg("failed to scan plan row")
			return nil, models.NewStoreError(opList, scanErr)
		}
		plans = append(plans, plan)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "planRepository.List").Msg("error occurred during rows iteration")
		return nil, models.NewStoreError(opList, fmt.Errorf("%w: %w", ErrScanningRows, err))
	}

	return plans, nil
}

// Get implements [PlanRepository].
func (p *planRepository) Get(ctx context.Context, id string) (models.PlanRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPlanQuery(p.builder, id)
	if err != nil {
		return models.PlanRecord{}, models.NewStoreError(opGet, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	plan, err := scanPlan(p.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.PlanRecord{}, models.NewStoreError(opGet, fmt.Errorf("%w: id %q", models.ErrPlanNotFound, id))
	}
	if err != nil {
		log.Err(err).
			Str("func", "planRepository.Get").
			Str("plan_id", id).
			Str("classification", p.errorClassificator.Classify(err).String()).
			Msg("failed to get plan")
		return models.PlanRecord{}, models.NewStoreError(opGet, err)
	}

	return plan, nil
}

// Insert implements [PlanRepository].
func (p *planRepository) Insert(ctx context.Context, plan models.PlanRecord) (models.PlanRecord, error) {
	log := logger.FromContext(ctx)

	content, err := json.Marshal(plan.Content)
	if err != nil {
		return models.PlanRecord{}, models.NewStoreError(opInsert, fmt.Errorf("%w: %w", ErrEncodingContent, err))
	}

	createdAt := p.now()
	plan.ID = p.ids.Generate()
	plan.CreatedAt = &createdAt

	query, args, err := buildInsertPlanQuery(p.builder, []any{
		plan.ID,
		plan.StudentName,
		plan.ClassName,
		plan.Subject,
		plan.Period,
		plan.Frequency,
		plan.TeacherRegent,
		plan.CollaborationTeam,
		plan.ExecutionPeriod,
		string(content),
		createdAt,
	})
	if err != nil {
		return models.PlanRecord{}, models.NewStoreError(opInsert, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "planRepository.Insert").
			Str("plan_id", plan.ID).
			Str("classification", p.errorClassificator.Classify(err).String()).
			Msg("failed to insert plan")
		if isUniqueViolation(err) {
			return models.PlanRecord{}, models.NewStoreError(opInsert, fmt.Errorf("%w: %w", ErrPlanAlreadyExists, err))
		}
		return models.PlanRecord{}, models.NewStoreError(opInsert, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	if affected, err := result.RowsAffected(); err == nil && affected == 0 {
		return models.PlanRecord{}, models.NewStoreError(opInsert, ErrPlanNotSaved)
	}

	log.Debug().Str("func", "planRepository.Insert").Str("plan_id", plan.ID).Msg("plan saved")
	return plan, nil
}

// DeleteByID implements [PlanRepository].
func (p *planRepository) DeleteByID(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeletePlanQuery(p.builder, id)
	if err != nil {
		return models.NewStoreError(opDelete, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err))
	}

	result, err := p.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "planRepository.DeleteByID").
			Str("plan_id", id).
			Str("classification", p.errorClassificator.Classify(err).String()).
			Msg("failed to delete plan")
		return models.NewStoreError(opDelete, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return models.NewStoreError(opDelete, fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}
	if affected == 0 {
		return models.NewStoreError(opDelete, fmt.Errorf("%w: id %q", models.ErrPlanNotFound, id))
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPlan(row rowScanner) (models.PlanRecord, error) {
	var (
		plan      models.PlanRecord
		content   string
		createdAt time.Time
	)

	err := row.Scan(
		&plan.ID,
		&plan.StudentName,
		&plan.ClassName,
		&plan.Subject,
		&plan.Period,
		&plan.Frequency,
		&plan.TeacherRegent,
		&plan.CollaborationTeam,
		&plan.ExecutionPeriod,
		&content,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.PlanRecord{}, err
	}
	if err != nil {
		return models.PlanRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	if err = json.Unmarshal([]byte(content), &plan.Content); err != nil {
		return models.PlanRecord{}, fmt.Errorf("%w: %w", ErrEncodingContent, err)
	}

	createdAt = createdAt.UTC()
	plan.CreatedAt = &createdAt
	return plan, nil
}
