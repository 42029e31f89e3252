package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/divinoviana/planoespecialindividualizado/internal/workflow"
)

// Confirmer implements [workflow.Confirmer] with a y/n overlay. Confirm
// blocks the calling workflow operation until the user answers. Before the
// program runs, and after it exits, every prompt is answered "no".
type Confirmer struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

func NewConfirmer() *Confirmer {
	return &Confirmer{}
}

func (c *Confirmer) attach(send func(tea.Msg)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.send = send
}

func (c *Confirmer) Confirm(ctx context.Context, prompt workflow.Prompt) bool {
	c.mu.Lock()
	send := c.send
	c.mu.Unlock()

	if send == nil {
		return false
	}

	reply := make(chan bool, 1)
	send(confirmRequestMsg{prompt: prompt, reply: reply})

	select {
	case ok := <-reply:
		return ok
	case <-ctx.Done():
		return false
	}
}

type confirmModel struct {
	prompt workflow.Prompt
}

func (m confirmModel) View() string {
	content := titleStyle.Render(m.prompt.Title) + "\n\n"
	content += m.prompt.Message + "\n\n"
	content += helpStyle.Render("s/y sim    n/esc não")
	return overlayBoxStyle.Render(content)
}
