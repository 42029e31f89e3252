package service

import (
	"context"

	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/internal/store"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

type planService struct {
	repo store.PlanRepository

	logger *logger.Logger
}

func NewPlanService(repo store.PlanRepository, logger *logger.Logger) PlanService {
	return &planService{repo: repo, logger: logger}
}

func (s *planService) List(ctx context.Context, search string) ([]models.PlanRecord, error) {
	plans, err := s.repo.List(ctx, search)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "planService.List").Msg("error listing plans")
		return nil, err
	}
	return plans, nil
}

func (s *planService) Get(ctx context.Context, id string) (models.PlanRecord, error) {
	return s.repo.Get(ctx, id)
}

func (s *planService) Insert(ctx context.Context, plan models.PlanRecord) (models.PlanRecord, error) {
	log := logger.FromContext(ctx)

	saved, err := s.repo.Insert(ctx, plan)
	if err != nil {
		log.Err(err).Str("func", "planService.Insert").Msg("error saving plan")
		return models.PlanRecord{}, err
	}

	log.Info().Str("func", "planService.Insert").Str("plan_id", saved.ID).Msg("plan saved")
	return saved, nil
}

func (s *planService) DeleteByID(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		log.Err(err).Str("func", "planService.DeleteByID").Str("plan_id", id).Msg("error deleting plan")
		return err
	}

	log.Info().Str("func", "planService.DeleteByID").Str("plan_id", id).Msg("plan deleted")
	return nil
}
