package service

import (
	"context"

	"github.com/divinoviana/planoespecialindividualizado/internal/adapter"
	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

type clientPlanService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientPlanService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) PlanService {
	return &clientPlanService{adapter: serverAdapter, logger: logger}
}

func (s *clientPlanService) List(ctx context.Context, search string) ([]models.PlanRecord, error) {
	plans, err := s.adapter.ListPlans(ctx, search)
	if err != nil {
		s.logger.Err(err).Str("func", "clientPlanService.List").Msg("error listing plans on server")
		return nil, mapPlanAdapterError("list", err)
	}
	return plans, nil
}

func (s *clientPlanService) Get(ctx context.Context, id string) (models.PlanRecord, error) {
	plan, err := s.adapter.GetPlan(ctx, id)
	if err != nil {
		s.logger.Err(err).Str("func", "clientPlanService.Get").Str("plan_id", id).Msg("error getting plan from server")
		return models.PlanRecord{}, mapPlanAdapterError("get", err)
	}
	return plan, nil
}

func (s *clientPlanService) Insert(ctx context.Context, plan models.PlanRecord) (models.PlanRecord, error) {
	plan.ID = ""
	plan.CreatedAt = nil

	saved, err := s.adapter.CreatePlan(ctx, plan)
	if err != nil {
		s.logger.Err(err).Str("func", "clientPlanService.Insert").Msg("error saving plan on server")
		return models.PlanRecord{}, mapPlanAdapterError("insert", err)
	}
	return saved, nil
}

func (s *clientPlanService) DeleteByID(ctx context.Context, id string) error {
	if err := s.adapter.DeletePlan(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "clientPlanService.DeleteByID").Str("plan_id", id).Msg("error deleting plan on server")
		return mapPlanAdapterError("delete", err)
	}
	return nil
}
