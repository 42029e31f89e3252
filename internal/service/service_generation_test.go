package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/internal/mock"
	"github.com/divinoviana/planoespecialindividualizado/internal/store"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

func newTestGenerationSvc(t *testing.T) (GenerationService, *mock.MockGenerator) {
	t.Helper()
	ctrl := gomock.NewController(t)
	generator := mock.NewMockGenerator(ctrl)

	svc := NewServices(&store.Storages{PlanRepository: mock.NewMockPlanRepository(ctrl)}, generator, models.NewAppBuildInfo("", "", ""), logger.Nop())
	return svc.GenerationService, generator
}

func TestGenerationService_Generate_Success(t *testing.T) {
	svc, generator := newTestGenerationSvc(t)
	ctx := context.Background()
	draft := models.DraftInput{PlanMetadata: completeMetadata()}
	want := models.ContentFields{Barriers: "atenção"}

	generator.EXPECT().Generate(ctx, draft).Return(want, nil)

	got, err := svc.Generate(ctx, draft)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGenerationService_Generate_InvalidDraftNeverCallsGenerator(t *testing.T) {
	// the mock has no expectations: any Generate call fails the test
	svc, _ := newTestGenerationSvc(t)
	draft := models.DraftInput{PlanMetadata: completeMetadata()}
	draft.Subject = ""

	_, err := svc.Generate(context.Background(), draft)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, []string{"subject"}, validationErr.Fields)
}

func TestGenerationService_Generate_PropagatesGenerationError(t *testing.T) {
	svc, generator := newTestGenerationSvc(t)
	ctx := context.Background()
	draft := models.DraftInput{PlanMetadata: completeMetadata()}

	generator.EXPECT().Generate(ctx, draft).
		Return(models.ContentFields{}, models.NewGenerationError(models.ReasonInvalidFormat, nil))

	_, err := svc.Generate(ctx, draft)

	var genErr *models.GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, models.ReasonInvalidFormat, genErr.Reason)
}
