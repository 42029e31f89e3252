package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/divinoviana/planoespecialindividualizado/internal/render"
	"github.com/divinoviana/planoespecialindividualizado/internal/workflow"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

const statusTTL = 4 * time.Second

// appModel renders the workflow and turns keys into workflow operations:
//  1. keeps the last workflow snapshot
//  2. handles global keys (ctrl+c asks before dropping unsaved work, build info)
//  3. answers confirmation prompts and dismisses error notices
//  4. delegates other keys to the screen of the current state
type appModel struct {
	ctx       context.Context
	flow      Workflow
	exportDir string
	buildInfo models.AppBuildInfo

	snap    workflow.Snapshot
	pending bool
	idx     int

	searching   bool
	searchInput textinput.Model
	form        formModel
	doc         viewport.Model
	docKey      string
	spinner     spinner.Model

	confirm       *confirmRequestMsg
	status        string
	showBuildInfo bool
	width         int
	height        int
}

func newAppModel(ctx context.Context, flow Workflow, exportDir string, buildInfo models.AppBuildInfo) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	search := textinput.New()
	search.Placeholder = "nome do estudante ou turma"
	search.Width = 40

	return appModel{
		ctx:         ctx,
		flow:        flow,
		exportDir:   exportDir,
		buildInfo:   buildInfo,
		snap:        flow.Snapshot(),
		pending:     true,
		searchInput: search,
		form:        newFormModel(),
		doc:         viewport.New(80, 20),
		spinner:     s,
	}
}

// Init fetches the plan list. The model starts pending.
func (m appModel) Init() tea.Cmd {
	ctx, flow := m.ctx, m.flow
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		return opDoneMsg{op: opStart, err: flow.Start(ctx)}
	})
}

// run starts a workflow operation as a command.
func (m appModel) run(o op, fn func(context.Context) error) (appModel, tea.Cmd) {
	m.pending = true
	ctx := m.ctx
	return m, func() tea.Msg {
		return opDoneMsg{op: o, err: fn(ctx)}
	}
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.doc.Width = max(msg.Width-4, 20)
		m.doc.Height = max(msg.Height-8, 5)
		return m, nil
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.pending {
			m.snap = m.flow.Snapshot()
		}
		return m, cmd
	case confirmRequestMsg:
		m.confirm = &msg
		return m, nil
	case opDoneMsg:
		return m.afterOp(msg)
	case quitCheckedMsg:
		m.pending = false
		m = m.sync()
		if msg.ok {
			return m, tea.Quit
		}
		if msg.err != nil {
			return m.withStatus("Operação indisponível agora")
		}
		return m, nil
	case exportDoneMsg:
		if msg.err != nil {
			return m.withStatus("Falha ao exportar: " + msg.err.Error())
		}
		return m.withStatus("Exportado: " + strings.Join(msg.paths, ", "))
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.snap.State == workflow.Editing && !m.pending {
		var cmd tea.Cmd
		m.form, cmd = m.form.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m appModel) withStatus(status string) (appModel, tea.Cmd) {
	m.status = status
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

// sync refreshes the snapshot and the document screen content.
func (m appModel) sync() appModel {
	m.snap = m.flow.Snapshot()

	if m.idx >= len(m.snap.Plans) {
		m.idx = len(m.snap.Plans) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}

	var plan *models.PlanRecord
	docKey := ""
	switch {
	case m.snap.State == workflow.Previewing && m.snap.Preview != nil:
		p := m.snap.Draft.NewRecord(*m.snap.Preview)
		plan, docKey = &p, "preview"
	case m.snap.State == workflow.Viewing && m.snap.Current != nil:
		plan, docKey = m.snap.Current, "plan:"+m.snap.Current.ID
	}
	if docKey != m.docKey {
		m.docKey = docKey
		if plan != nil {
			m.doc.SetContent(planText(*plan))
			m.doc.GotoTop()
		}
	}
	return m
}

func (m appModel) afterOp(msg opDoneMsg) (tea.Model, tea.Cmd) {
	m.pending = false
	prev := m.snap.State
	m = m.sync()

	// rejected before running; these are not kept as the workflow error
	if errors.Is(msg.err, workflow.ErrBusy) || errors.Is(msg.err, workflow.ErrInvalidTransition) {
		return m.withStatus("Operação indisponível agora")
	}
	// the transition happened; only the list may be stale
	if msg.err != nil && !errors.Is(msg.err, workflow.ErrRefreshFailed) {
		return m, nil
	}

	switch {
	case msg.op == opSearch:
		m.idx = 0
	case msg.op == opBackToEdit && m.snap.State == workflow.Editing:
		m.form.setDraft(m.snap.Draft)
		cmd := m.form.applyFocus()
		return m, cmd
	case msg.op == opCancelEdit && m.snap.State == workflow.Listing:
		m.form = newFormModel()
	case msg.op == opSave && prev == workflow.Previewing:
		m.form = newFormModel()
		m.idx = 0
		return m.withStatus("PEI salvo")
	case msg.op == opDelete && m.snap.State == workflow.Listing:
		return m.withStatus("PEI excluído")
	}
	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, keys.forceQuit) {
		return m.quit()
	}

	if m.confirm != nil {
		switch {
		case key.Matches(msg, keys.yes):
			m.confirm.reply <- true
			m.confirm = nil
		case key.Matches(msg, keys.no):
			m.confirm.reply <- false
			m.confirm = nil
		}
		return m, nil
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc) || key.Matches(msg, keys.version) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.snap.Err != nil && !m.pending {
		if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
			m.flow.DismissError()
			m.snap = m.flow.Snapshot()
		}
		return m, nil
	}

	if m.pending {
		return m, nil
	}

	switch m.snap.State {
	case workflow.Editing:
		return m.updateForm(msg)
	case workflow.Previewing:
		return m.updatePreview(msg)
	case workflow.Viewing:
		return m.updateView(msg)
	default:
		return m.updateList(msg)
	}
}

func (m appModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch {
		case key.Matches(msg, keys.enter):
			m.searching = false
			m.searchInput.Blur()
			query := strings.TrimSpace(m.searchInput.Value())
			return m.run(opSearch, func(ctx context.Context) error { return m.flow.Search(ctx, query) })
		case key.Matches(msg, keys.esc):
			m.searching = false
			m.searchInput.Blur()
			m.searchInput.SetValue(m.snap.Search)
			return m, nil
		}
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.snap.Plans)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.enter):
		if len(m.snap.Plans) == 0 {
			return m.withStatus("Nenhum PEI salvo")
		}
		// a failure is kept as the workflow error and shown by sync
		_ = m.flow.Select(m.snap.Plans[m.idx].ID)
		return m.sync(), nil
	case key.Matches(msg, keys.newItem):
		if err := m.flow.NewPlan(); err != nil {
			return m.withStatus("Operação indisponível agora")
		}
		m.form = newFormModel()
		m = m.sync()
		cmd := m.form.applyFocus()
		return m, cmd
	case key.Matches(msg, keys.refresh):
		return m.run(opRefresh, m.flow.Refresh)
	case key.Matches(msg, keys.search):
		m.searching = true
		cmd := m.searchInput.Focus()
		return m, cmd
	case key.Matches(msg, keys.version):
		m.showBuildInfo = true
	}
	return m, nil
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		_ = m.flow.UpdateDraft(m.form.peekDraft())
		return m.run(opCancelEdit, m.flow.CancelEdit)
	case key.Matches(msg, keys.submit):
		draft, err := m.form.draft()
		if err != nil {
			return m.withStatus(humanizeError(err))
		}
		if err = draft.Validate(); err != nil {
			return m.withStatus(humanizeError(err))
		}
		return m.run(opSubmit, func(ctx context.Context) error { return m.flow.Submit(ctx, draft) })
	case key.Matches(msg, keys.tab):
		cmd := m.form.next()
		return m, cmd
	case key.Matches(msg, keys.backtab):
		cmd := m.form.prev()
		return m, cmd
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m appModel) updatePreview(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.save):
		return m.run(opSave, m.flow.Save)
	case key.Matches(msg, keys.edit), key.Matches(msg, keys.esc):
		return m.run(opBackToEdit, m.flow.BackToEdit)
	case key.Matches(msg, keys.copy):
		if m.snap.Preview == nil {
			return m, nil
		}
		return m.copy(m.snap.Draft.NewRecord(*m.snap.Preview))
	}

	var cmd tea.Cmd
	m.doc, cmd = m.doc.Update(msg)
	return m, cmd
}

func (m appModel) updateView(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.snap.Current == nil {
		return m, nil
	}
	plan := *m.snap.Current

	switch {
	case key.Matches(msg, keys.esc), key.Matches(msg, keys.quit):
		return m.run(opBack, m.flow.Back)
	case key.Matches(msg, keys.delete):
		return m.run(opDelete, m.flow.Delete)
	case key.Matches(msg, keys.export):
		return m, cmdExport(m.exportDir, plan)
	case key.Matches(msg, keys.copy):
		return m.copy(plan)
	}

	var cmd tea.Cmd
	m.doc, cmd = m.doc.Update(msg)
	return m, cmd
}

// quit closes the program. A second ctrl+c on an open prompt, or one pressed
// while an operation runs, closes at once.
func (m appModel) quit() (appModel, tea.Cmd) {
	if m.confirm != nil {
		m.confirm.reply <- false
		m.confirm = nil
		return m, tea.Quit
	}
	if m.pending {
		return m, tea.Quit
	}
	if m.snap.State == workflow.Editing {
		_ = m.flow.UpdateDraft(m.form.peekDraft())
	}

	m.pending = true
	ctx, flow := m.ctx, m.flow
	return m, func() tea.Msg {
		ok, err := flow.ConfirmQuit(ctx)
		return quitCheckedMsg{ok: ok, err: err}
	}
}

func (m appModel) copy(plan models.PlanRecord) (appModel, tea.Cmd) {
	if err := copyPlan(plan); err != nil {
		return m.withStatus("Falha ao copiar: " + err.Error())
	}
	return m.withStatus("Copiado para a área de transferência")
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return renderBuildInfoWindow(m.buildInfo)
	}

	var page string
	switch m.snap.State {
	case workflow.Editing:
		page = m.viewForm()
	case workflow.Previewing:
		page = m.viewDocument("PRÉ-VISUALIZAÇÃO (não salvo)", "s: salvar  e/esc: voltar à edição  c: copiar  ↑/↓: rolar")
	case workflow.Viewing:
		page = m.viewDocument("PEI SALVO", "esc: voltar  d: excluir  p: exportar (md, html, xlsx)  c: copiar  ↑/↓: rolar")
	default:
		page = m.viewList()
	}

	var overlay string
	switch {
	case m.confirm != nil:
		overlay = confirmModel{prompt: m.confirm.prompt}.View()
	case m.snap.Err != nil && !m.pending:
		overlay = errorOverlayModel{message: humanizeError(m.snap.Err)}.View()
	}
	if overlay == "" {
		return page
	}
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, overlay)
	}
	return page + "\n\n" + overlay
}

func (m appModel) statusLine() string {
	var parts []string
	if m.pending {
		parts = append(parts, m.spinner.View()+" Carregando...")
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return strings.Join(parts, "  ")
}

func (m appModel) viewList() string {
	var b strings.Builder

	if m.searching {
		b.WriteString("Buscar: " + m.searchInput.View() + "\n\n")
	} else if m.snap.Search != "" {
		b.WriteString(helpStyle.Render(fmt.Sprintf("Filtro: %q", m.snap.Search)) + "\n\n")
	}

	if len(m.snap.Plans) == 0 {
		b.WriteString("Nenhum PEI salvo\n")
	}
	for i, p := range m.snap.Plans {
		created := "-"
		if p.CreatedAt != nil {
			created = render.FormatDate(*p.CreatedAt)
		}
		line := fmt.Sprintf("%-32s %-8s %-20s %s",
			fitText(valueOrDash(p.StudentName), 32),
			fitText(valueOrDash(p.ClassName), 8),
			fitText(valueOrDash(p.Subject), 20),
			created,
		)
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if s := m.statusLine(); s != "" {
		b.WriteString("\n" + s)
	}

	return renderPage("PLANOS DE ENSINO INDIVIDUALIZADOS", b.String(),
		"n: novo  enter: abrir  /: buscar  r: recarregar  v: versão  q: sair")
}

func (m appModel) viewForm() string {
	data := m.form.View()
	if s := m.statusLine(); s != "" {
		data += "\n\n" + s
	}
	return renderPage("NOVO PEI", data, "tab/shift+tab: campos  ctrl+s: gerar  esc: cancelar")
}

func (m appModel) viewDocument(title, hotKeys string) string {
	data := m.doc.View()
	if s := m.statusLine(); s != "" {
		data += "\n\n" + s
	}
	return renderPage(title, data, hotKeys)
}
