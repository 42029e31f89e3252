package service

import (
	"context"

	"github.com/divinoviana/planoespecialindividualizado/internal/validators"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

// GenerationValidationService checks the draft before any generation request is sent.
type GenerationValidationService struct {
	inner     GenerationService
	validator validators.Validator
}

func NewGenerationValidationService(validator validators.Validator) GenerationServiceWrapper {
	return &GenerationValidationService{validator: validator}
}

func (v *GenerationValidationService) Wrap(inner GenerationService) GenerationService {
	v.inner = inner
	return v
}

func (v *GenerationValidationService) Generate(ctx context.Context, draft models.DraftInput) (models.ContentFields, error) {
	if err := v.validator.Validate(ctx, draft); err != nil {
		return models.ContentFields{}, err
	}
	return v.inner.Generate(ctx, draft)
}
