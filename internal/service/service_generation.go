package service

import (
	"context"
	"time"

	"github.com/divinoviana/planoespecialindividualizado/internal/generation"
	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

type generationService struct {
	generator generation.Generator

	logger *logger.Logger
}

func NewGenerationService(generator generation.Generator, logger *logger.Logger) GenerationService {
	return &generationService{generator: generator, logger: logger}
}

func (s *generationService) Generate(ctx context.Context, draft models.DraftInput) (models.ContentFields, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	content, err := s.generator.Generate(ctx, draft)
	if err != nil {
		log.Err(err).
			Str("func", "generationService.Generate").
			Dur("duration", time.Since(start)).
			Msg("plan generation failed")
		return models.ContentFields{}, err
	}

	log.Info().
		Str("func", "generationService.Generate").
		Bool("with_attachment", draft.Attachment != nil).
		Dur("duration", time.Since(start)).
		Msg("plan generated")
	return content, nil
}
