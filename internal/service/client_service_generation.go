package service

import (
	"context"

	"github.com/divinoviana/planoespecialindividualizado/internal/adapter"
	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

type clientGenerationService struct {
	adapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientGenerationService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) GenerationService {
	return &clientGenerationService{adapter: serverAdapter, logger: logger}
}

func (s *clientGenerationService) Generate(ctx context.Context, draft models.DraftInput) (models.ContentFields, error) {
	content, err := s.adapter.Generate(ctx, draft)
	if err != nil {
		s.logger.Err(err).Str("func", "clientGenerationService.Generate").Msg("error generating plan on server")
		return models.ContentFields{}, mapGenerationAdapterError(err)
	}
	return content, nil
}
