// Package render turns a saved plan into a printable document and encodes
// it as Markdown, plain text, a print-ready HTML page or an XLSX workbook.
//
// Everything here is pure: the same plan always renders to the same bytes.
package render

import (
	"strings"
	"time"

	"github.com/divinoviana/planoespecialindividualizado/models"
)

// DocumentTitle heads every printed plan.
const DocumentTitle = "Plano de Ensino Individualizado (PEI)"

// CreatedAtLabel precedes the creation date.
const CreatedAtLabel = "Criado em"

var sectionTitles = map[string]string{
	models.KeyClinicalHistory:        "1⁰ - Histórico Clínico e Familiar",
	models.KeySpecificCondition:      "2⁰ - Descrição da Condição Específica",
	models.KeySkillsAffinities:       "3⁰ - Conhecimentos, Habilidades e Afinidades",
	models.KeyBarriers:               "4⁰ - Principais Barreiras",
	models.KeyClassSkills:            "5⁰ - Habilidades da Turma (BNCC/DCT)",
	models.KeyAdaptedSkills:          "6⁰ - Adaptação e Flexibilização para o Estudante",
	models.KeyKnowledgeObject:        "7⁰ - Objeto do Conhecimento (BNCC/DCT)",
	models.KeyAdaptedKnowledgeObject: "8⁰ - Adaptação do Objeto do Conhecimento",
	models.KeyObjectives:             "9⁰ - Objetivos do PEI",
	models.KeyMethodologies:          "10⁰ - Metodologias (Recursos e Estratégias)",
	models.KeyEvaluation:             "11⁰ - Avaliação e Retomada",
}

var signatureLines = []string{
	"Assinatura Professor(a)",
	"Assinatura Responsável / Coordenação",
}

// Field is a labelled value of the document header or info block.
type Field struct {
	Label string
	Value string
}

// Section is one of the eleven numbered plan sections.
type Section struct {
	Key   string
	Title string
	Body  string
}

// Document is the printable layout of a plan.
type Document struct {
	Title string
	// CreatedAt is already formatted, empty for unsaved plans.
	CreatedAt  string
	Header     []Field
	Info       []Field
	Sections   []Section
	Signatures []string
}

// NewDocument lays out plan for printing.
func NewDocument(plan models.PlanRecord) Document {
	doc := Document{
		Title: DocumentTitle,
		Header: []Field{
			{Label: "Estudante", Value: plan.StudentName},
			{Label: "Turma", Value: plan.ClassName},
			{Label: "Matéria", Value: plan.Subject},
			{Label: "Período", Value: plan.Period},
		},
		Info: []Field{
			{Label: "Professor Regente", Value: plan.TeacherRegent},
			{Label: "Periodicidade", Value: plan.Frequency},
			{Label: "Equipe de Colaboração", Value: plan.CollaborationTeam},
			{Label: "Período de Execução", Value: plan.ExecutionPeriod},
		},
		Signatures: append([]string(nil), signatureLines...),
	}

	if plan.CreatedAt != nil {
		doc.CreatedAt = FormatDate(*plan.CreatedAt)
	}

	for _, f := range plan.Content.Fields() {
		doc.Sections = append(doc.Sections, Section{
			Key:   f.Key,
			Title: SectionTitle(f.Key),
			Body:  strings.TrimSpace(f.Value),
		})
	}

	return doc
}

// SectionTitle returns the numbered printable title of a content key, or the
// key itself when it is unknown.
func SectionTitle(key string) string {
	if title, ok := sectionTitles[key]; ok {
		return title
	}
	return key
}

// FormatDate renders t as dd/mm/yyyy in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format("02/01/2006")
}
