package service

import (
	"github.com/divinoviana/planoespecialindividualizado/internal/adapter"
	"github.com/divinoviana/planoespecialindividualizado/internal/generation"
	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/internal/store"
	"github.com/divinoviana/planoespecialindividualizado/internal/validators"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

// ClientServices is what the terminal client needs to run the plan workflow.
type ClientServices struct {
	PlanService       PlanService
	GenerationService GenerationService
}

// NewClientServices builds services that reach the plan server through
// serverAdapter. Draft validation still runs locally so that an incomplete
// form never leaves the machine.
func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		PlanService:       NewClientPlanService(serverAdapter, logger),
		GenerationService: NewGenerationValidationService(validators.NewPlanValidator()).Wrap(NewClientGenerationService(serverAdapter, logger)),
	}
}

// NewLocalClientServices builds services over a local database and a direct
// generation client.
func NewLocalClientServices(storages *store.Storages, generator generation.Generator, logger *logger.Logger) *ClientServices {
	services := NewServices(storages, generator, models.NewAppBuildInfo("", "", ""), logger)
	return &ClientServices{
		PlanService:       services.PlanService,
		GenerationService: services.GenerationService,
	}
}
