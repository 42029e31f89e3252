package service

import (
	"github.com/divinoviana/planoespecialindividualizado/internal/generation"
	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/internal/store"
	"github.com/divinoviana/planoespecialindividualizado/internal/validators"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

// Services is the set of use cases served by the HTTP handler. In local
// client mode the same set backs the workflow controller directly.
type Services struct {
	PlanService       PlanService
	GenerationService GenerationService
	AppInfoService    AppInfoService
}

// NewServices wires the validated plan and generation services.
func NewServices(storages *store.Storages, generator generation.Generator, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	planService := NewPlanService(storages.PlanRepository, logger)
	generationService := NewGenerationService(generator, logger)
	validator := validators.NewPlanValidator()

	return &Services{
		PlanService:       NewPlanValidationService(validator).Wrap(planService),
		GenerationService: NewGenerationValidationService(validator).Wrap(generationService),
		AppInfoService:    NewAppInfoService(buildInfo, logger),
	}
}
