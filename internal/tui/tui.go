package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

type TUI struct {
	flow      Workflow
	confirmer *Confirmer
	exportDir string
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// New returns a TUI driving flow. confirmer must be the one flow was built
// with, so its prompts reach this program.
func New(flow Workflow, confirmer *Confirmer, exportDir string, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		flow:      flow,
		confirmer: confirmer,
		exportDir: exportDir,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run blocks until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	program := tea.NewProgram(
		newAppModel(ctx, t.flow, t.exportDir, t.buildInfo),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	t.confirmer.attach(program.Send)
	defer t.confirmer.attach(nil)

	t.logger.Info().Msg("starting terminal UI")
	if _, err := program.Run(); err != nil {
		t.logger.Err(err).Str("func", "*TUI.Run").Msg("terminal UI stopped with error")
		return err
	}
	return nil
}
