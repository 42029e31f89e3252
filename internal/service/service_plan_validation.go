package service

import (
	"context"

	"github.com/divinoviana/planoespecialindividualizado/internal/validators"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

// PlanValidationService rejects malformed plan requests before they reach
// the repository.
type PlanValidationService struct {
	inner     PlanService
	validator validators.Validator
}

func NewPlanValidationService(validator validators.Validator) PlanServiceWrapper {
	return &PlanValidationService{validator: validator}
}

func (v *PlanValidationService) Wrap(inner PlanService) PlanService {
	v.inner = inner
	return v
}

func (v *PlanValidationService) List(ctx context.Context, search string) ([]models.PlanRecord, error) {
	return v.inner.List(ctx, search)
}

func (v *PlanValidationService) Get(ctx context.Context, id string) (models.PlanRecord, error) {
	if err := v.validator.Validate(ctx, validators.PlanID(id)); err != nil {
		return models.PlanRecord{}, err
	}
	return v.inner.Get(ctx, id)
}

// Insert requires every metadata field and at least one non-blank content section.
func (v *PlanValidationService) Insert(ctx context.Context, plan models.PlanRecord) (models.PlanRecord, error) {
	if err := v.validator.Validate(ctx, plan, validators.FieldMetadata, validators.FieldContent); err != nil {
		return models.PlanRecord{}, err
	}
	return v.inner.Insert(ctx, plan)
}

func (v *PlanValidationService) DeleteByID(ctx context.Context, id string) error {
	if err := v.validator.Validate(ctx, validators.PlanID(id)); err != nil {
		return err
	}
	return v.inner.DeleteByID(ctx, id)
}
