package tui

import "github.com/divinoviana/planoespecialindividualizado/internal/workflow"

type op int

const (
	opStart op = iota
	opRefresh
	opSearch
	opSubmit
	opCancelEdit
	opBackToEdit
	opSave
	opDelete
	opBack
)

// opDoneMsg reports the end of a workflow operation run as a command.
type opDoneMsg struct {
	op  op
	err error
}

// confirmRequestMsg is sent by [Confirmer] from the goroutine running the
// workflow operation. reply is buffered.
type confirmRequestMsg struct {
	prompt workflow.Prompt
	reply  chan<- bool
}

// quitCheckedMsg carries the answer of [Workflow.ConfirmQuit].
type quitCheckedMsg struct {
	ok  bool
	err error
}

type exportDoneMsg struct {
	paths []string
	err   error
}

type clearStatusMsg struct{}
