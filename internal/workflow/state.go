package workflow

import "github.com/divinoviana/planoespecialindividualizado/models"

// State is the screen the workflow is on.
type State int

const (
	// Listing shows the saved plans.
	Listing State = iota
	// Editing shows the draft form before generation.
	Editing
	// Previewing holds generated content that is not saved yet.
	Previewing
	// Viewing shows one saved plan, read-only.
	Viewing
)

func (s State) String() string {
	switch s {
	case Listing:
		return "listing"
	case Editing:
		return "editing"
	case Previewing:
		return "previewing"
	case Viewing:
		return "viewing"
	default:
		return "unknown"
	}
}

// Action identifies what a confirmation prompt is guarding.
type Action int

const (
	// ActionDiscardPreview drops generated, unsaved content.
	ActionDiscardPreview Action = iota + 1
	// ActionDiscardDraft leaves the form with input that was never generated.
	ActionDiscardDraft
	// ActionDelete removes a saved plan permanently.
	ActionDelete
	// ActionQuit closes the application with unsaved work.
	ActionQuit
)

// Prompt is a confirmation request handed to the [Confirmer].
type Prompt struct {
	Action  Action
	Title   string
	Message string
}

func discardPreviewPrompt() Prompt {
	return Prompt{
		Action:  ActionDiscardPreview,
		Title:   "Descartar conteúdo gerado",
		Message: "O PEI gerado ainda não foi salvo e será perdido. Deseja voltar à edição?",
	}
}

func discardDraftPrompt() Prompt {
	return Prompt{
		Action:  ActionDiscardDraft,
		Title:   "Descartar rascunho",
		Message: "Os dados preenchidos serão perdidos. Deseja sair do formulário?",
	}
}

func quitPrompt(state State) Prompt {
	message := "Os dados preenchidos no formulário serão perdidos. Deseja sair mesmo assim?"
	if state == Previewing {
		message = "O PEI gerado ainda não foi salvo e será perdido. Deseja sair mesmo assim?"
	}
	return Prompt{
		Action:  ActionQuit,
		Title:   "Sair sem salvar",
		Message: message,
	}
}

func deletePrompt(plan models.PlanRecord) Prompt {
	return Prompt{
		Action:  ActionDelete,
		Title:   "Excluir PEI",
		Message: "Excluir definitivamente o PEI de " + plan.StudentName + " (" + plan.ClassName + ")?",
	}
}

// Snapshot is a copy of the controller state for rendering.
type Snapshot struct {
	State   State
	Loading bool

	// Plans is the last fetched list, newest first.
	Plans []models.PlanRecord
	// Search is the filter the list was fetched with.
	Search string

	// Draft is the form input. It survives failed generations and a return
	// from Previewing to Editing.
	Draft models.DraftInput
	// Preview is set only in Previewing.
	Preview *models.ContentFields
	// Current is set only in Viewing.
	Current *models.PlanRecord

	// Err is the last failure, cleared by the next successful operation or
	// by DismissError.
	Err error
}
