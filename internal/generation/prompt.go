package generation

import (
	"strings"
	"text/template"

	"github.com/divinoviana/planoespecialindividualizado/models"
)

const defaultExtraContext = "Nenhum contexto adicional fornecido."

const attachmentInstruction = "Analise cuidadosamente o LAUDO MÉDICO/PEDAGÓGICO em anexo (PDF) para extrair informações clínicas, diagnósticos e necessidades específicas do estudante."

var promptTemplate = template.Must(template.New("prompt").Parse(
	`Você é um especialista em Educação Especial e Inclusiva no Brasil, com profundo conhecimento da BNCC (Base Nacional Comum Curricular) e do DCT (Documento Curricular do Território do Tocantins).

INSTRUÇÃO PRINCIPAL:
{{- if .Attachment}}
{{.Attachment}}
{{- end}}
Use os dados abaixo{{if .Attachment}} e o contexto do laudo{{end}} para gerar um Plano de Ensino Individualizado (PEI) completo.

DADOS DO ESTUDANTE:
Nome: {{.Draft.StudentName}}
Turma: {{.Draft.ClassName}}
Componente Curricular: {{.Draft.Subject}}
Período: {{.Draft.Period}}
Periodicidade: {{.Draft.Frequency}}
Professor Regente: {{.Draft.TeacherRegent}}
Equipe de Colaboração: {{.Draft.CollaborationTeam}}
Período de Execução: {{.Draft.ExecutionPeriod}}
Contexto Adicional: {{.ExtraContext}}

O PEI deve ser pedagógico, empático e focado na superação de barreiras, respeitando as leis de inclusão brasileiras.
Responda somente com um objeto JSON contendo as chaves: {{.Keys}}.
`))

// BuildPrompt renders the instruction sent to the model for draft.
func BuildPrompt(draft models.DraftInput) (string, error) {
	extra := strings.TrimSpace(draft.ExtraContext)
	if extra == "" {
		extra = defaultExtraContext
	}

	var attachment string
	if draft.Attachment != nil {
		attachment = attachmentInstruction
	}

	var sb strings.Builder
	err := promptTemplate.Execute(&sb, struct {
		Draft        models.DraftInput
		ExtraContext string
		Attachment   string
		Keys         string
	}{
		Draft:        draft,
		ExtraContext: extra,
		Attachment:   attachment,
		Keys:         strings.Join(models.ContentFieldKeys, ", "),
	})
	if err != nil {
		return "", err
	}
	return sb.String(), nil
}
