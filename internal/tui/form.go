package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/divinoviana/planoespecialindividualizado/models"
)

type metadataField struct {
	name  string
	label string
	value func(*models.PlanMetadata) *string
}

// metadataFields lists the form inputs in display order. name matches the
// field names reported by [models.ValidationError].
var metadataFields = []metadataField{
	{"student_name", "Estudante", func(m *models.PlanMetadata) *string { return &m.StudentName }},
	{"class_name", "Turma", func(m *models.PlanMetadata) *string { return &m.ClassName }},
	{"subject", "Matéria", func(m *models.PlanMetadata) *string { return &m.Subject }},
	{"period", "Período", func(m *models.PlanMetadata) *string { return &m.Period }},
	{"frequency", "Periodicidade", func(m *models.PlanMetadata) *string { return &m.Frequency }},
	{"teacher_regent", "Professor Regente", func(m *models.PlanMetadata) *string { return &m.TeacherRegent }},
	{"collaboration_team", "Equipe de Colaboração", func(m *models.PlanMetadata) *string { return &m.CollaborationTeam }},
	{"execution_period", "Período de Execução", func(m *models.PlanMetadata) *string { return &m.ExecutionPeriod }},
}

const (
	extraContextLabel = "Contexto adicional"
	attachmentLabel   = "Laudo (PDF)"
)

func fieldLabels(names []string) []string {
	labels := make([]string, 0, len(names))
	for _, name := range names {
		label := name
		if strings.HasPrefix(name, "attachment") {
			label = attachmentLabel
		}
		for _, f := range metadataFields {
			if f.name == name {
				label = f.label
				break
			}
		}
		if len(labels) > 0 && labels[len(labels)-1] == label {
			continue
		}
		labels = append(labels, label)
	}
	return labels
}

// formModel is the draft form: one input per metadata field, a textarea for
// extra context and a path input for the PDF report.
//
// Focus order: metadata inputs, extra context, attachment path.
type formModel struct {
	inputs     []textinput.Model
	extra      textarea.Model
	attachment textinput.Model
	focus      int

	// loaded caches the attachment read from loadedPath.
	loaded     *models.Attachment
	loadedPath string
}

func newFormModel() formModel {
	inputs := make([]textinput.Model, len(metadataFields))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 50
		inputs[i].CharLimit = 200
	}

	extra := textarea.New()
	extra.Placeholder = "Observações sobre o estudante (opcional)"
	extra.SetWidth(60)
	extra.SetHeight(4)
	extra.ShowLineNumbers = false

	attachment := textinput.New()
	attachment.Placeholder = "/caminho/para/laudo.pdf (opcional)"
	attachment.Width = 50

	m := formModel{inputs: inputs, extra: extra, attachment: attachment}
	m.applyFocus()
	return m
}

func (m formModel) fieldCount() int { return len(m.inputs) + 2 }

func (m formModel) extraIndex() int { return len(m.inputs) }

func (m formModel) attachmentIndex() int { return len(m.inputs) + 1 }

func (m *formModel) applyFocus() tea.Cmd {
	var cmd tea.Cmd
	for i := range m.inputs {
		if i == m.focus {
			cmd = m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	if m.focus == m.extraIndex() {
		cmd = m.extra.Focus()
	} else {
		m.extra.Blur()
	}
	if m.focus == m.attachmentIndex() {
		cmd = m.attachment.Focus()
	} else {
		m.attachment.Blur()
	}
	return cmd
}

func (m *formModel) next() tea.Cmd {
	m.focus = (m.focus + 1) % m.fieldCount()
	return m.applyFocus()
}

func (m *formModel) prev() tea.Cmd {
	m.focus = (m.focus - 1 + m.fieldCount()) % m.fieldCount()
	return m.applyFocus()
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.focus < len(m.inputs):
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	case m.focus == m.extraIndex():
		m.extra, cmd = m.extra.Update(msg)
	default:
		m.attachment, cmd = m.attachment.Update(msg)
	}
	return m, cmd
}

func (m formModel) metadata() models.PlanMetadata {
	var meta models.PlanMetadata
	for i, f := range metadataFields {
		*f.value(&meta) = strings.TrimSpace(m.inputs[i].Value())
	}
	return meta
}

// draft builds the input for generation, reading the PDF report when its
// path changed since the last call.
func (m *formModel) draft() (models.DraftInput, error) {
	d := models.DraftInput{
		PlanMetadata: m.metadata(),
		ExtraContext: strings.TrimSpace(m.extra.Value()),
	}

	path := strings.TrimSpace(m.attachment.Value())
	switch {
	case path == "":
		m.loaded, m.loadedPath = nil, ""
	case path == m.loadedPath && m.loaded != nil:
		d.Attachment = m.loaded
	default:
		att, err := models.LoadPDFAttachment(path)
		if err != nil {
			return models.DraftInput{}, err
		}
		m.loaded, m.loadedPath = att, path
		d.Attachment = att
	}
	return d, nil
}

// peekDraft is draft without touching the file system. An unread path is
// reported as a named attachment without data.
func (m formModel) peekDraft() models.DraftInput {
	d := models.DraftInput{
		PlanMetadata: m.metadata(),
		ExtraContext: strings.TrimSpace(m.extra.Value()),
	}
	path := strings.TrimSpace(m.attachment.Value())
	switch {
	case path == "":
	case path == m.loadedPath && m.loaded != nil:
		d.Attachment = m.loaded
	default:
		d.Attachment = &models.Attachment{Name: path}
	}
	return d
}

// setDraft fills the form from a draft kept by the workflow.
func (m *formModel) setDraft(d models.DraftInput) {
	meta := d.PlanMetadata
	for i, f := range metadataFields {
		m.inputs[i].SetValue(*f.value(&meta))
	}
	m.extra.SetValue(d.ExtraContext)

	m.loaded, m.loadedPath = nil, ""
	m.attachment.SetValue("")
	if d.Attachment != nil && d.Attachment.Data != "" {
		m.loaded, m.loadedPath = d.Attachment, d.Attachment.Name
		m.attachment.SetValue(d.Attachment.Name)
	}
}

func (m formModel) View() string {
	var b strings.Builder
	for i, f := range metadataFields {
		b.WriteString(labelStyle.Render(f.label+":"))
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(extraContextLabel + ":\n")
	b.WriteString(m.extra.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(attachmentLabel + ":"))
	b.WriteString(m.attachment.View())
	return b.String()
}
