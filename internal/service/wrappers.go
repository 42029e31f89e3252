package service

// PlanServiceWrapper decorates a PlanService with additional behavior.
type PlanServiceWrapper interface {
	Wrap(PlanService) PlanService
}

// GenerationServiceWrapper decorates a GenerationService with additional behavior.
type GenerationServiceWrapper interface {
	Wrap(GenerationService) GenerationService
}
