package models

import "fmt"

// JSON keys of the eleven generated plan sections, in display order.
const (
	KeyClinicalHistory        = "historicoClinico"
	KeySpecificCondition      = "condicaoEspecifica"
	KeySkillsAffinities       = "habilidadesAfinidades"
	KeyBarriers               = "barreiras"
	KeyClassSkills            = "habilidadesBNCC"
	KeyAdaptedSkills          = "habilidadesAdaptadas"
	KeyKnowledgeObject        = "objetoConhecimentoBNCC"
	KeyAdaptedKnowledgeObject = "objetoConhecimentoAdaptado"
	KeyObjectives             = "objetivosPEI"
	KeyMethodologies          = "metodologias"
	KeyEvaluation             = "avaliacao"
)

// ContentFieldKeys lists every required content key. Order is display-only.
var ContentFieldKeys = []string{
	KeyClinicalHistory,
	KeySpecificCondition,
	KeySkillsAffinities,
	KeyBarriers,
	KeyClassSkills,
	KeyAdaptedSkills,
	KeyKnowledgeObject,
	KeyAdaptedKnowledgeObject,
	KeyObjectives,
	KeyMethodologies,
	KeyEvaluation,
}

// ContentFields is the generated body of an individualized education plan (PEI).
// Each field is free-form prose describing one pedagogical dimension.
type ContentFields struct {
	// ClinicalHistory is the clinical and family history of the student.
	ClinicalHistory string `json:"historicoClinico"`

	// SpecificCondition describes the student's specific condition.
	SpecificCondition string `json:"condicaoEspecifica"`

	// SkillsAffinities lists knowledge, skills and affinities.
	SkillsAffinities string `json:"habilidadesAfinidades"`

	// Barriers lists the main learning barriers.
	Barriers string `json:"barreiras"`

	// ClassSkills are the class-level curricular skills (BNCC/DCT).
	ClassSkills string `json:"habilidadesBNCC"`

	// AdaptedSkills are the class skills adapted for the student.
	AdaptedSkills string `json:"habilidadesAdaptadas"`

	// KnowledgeObject is the curricular knowledge object (BNCC/DCT).
	KnowledgeObject string `json:"objetoConhecimentoBNCC"`

	// AdaptedKnowledgeObject is the knowledge object adapted for the student.
	AdaptedKnowledgeObject string `json:"objetoConhecimentoAdaptado"`

	// Objectives are the plan objectives.
	Objectives string `json:"objetivosPEI"`

	// Methodologies are the resources and strategies.
	Methodologies string `json:"metodologias"`

	// Evaluation describes assessment and follow-up.
	Evaluation string `json:"avaliacao"`
}

// ContentField is a single (key, value) pair of [ContentFields].
type ContentField struct {
	Key   string
	Value string
}

// Fields returns the content as ordered key/value pairs following [ContentFieldKeys].
func (c ContentFields) Fields() []ContentField {
	return []ContentField{
		{KeyClinicalHistory, c.ClinicalHistory},
		{KeySpecificCondition, c.SpecificCondition},
		{KeySkillsAffinities, c.SkillsAffinities},
		{KeyBarriers, c.Barriers},
		{KeyClassSkills, c.ClassSkills},
		{KeyAdaptedSkills, c.AdaptedSkills},
		{KeyKnowledgeObject, c.KnowledgeObject},
		{KeyAdaptedKnowledgeObject, c.AdaptedKnowledgeObject},
		{KeyObjectives, c.Objectives},
		{KeyMethodologies, c.Methodologies},
		{KeyEvaluation, c.Evaluation},
	}
}

// Map returns the content keyed by JSON field name.
func (c ContentFields) Map() map[string]string {
	out := make(map[string]string, len(ContentFieldKeys))
	for _, f := range c.Fields() {
		out[f.Key] = f.Value
	}
	return out
}

// ContentFieldsFromMap builds ContentFields from a decoded JSON object.
// Every key of [ContentFieldKeys] must be present and hold a string;
// the offending keys are reported in the returned error.
func ContentFieldsFromMap(m map[string]any) (ContentFields, error) {
	var missing []string
	get := func(key string) string {
		v, ok := m[key]
		if !ok || v == nil {
			missing = append(missing, key)
			return ""
		}
		s, ok := v.(string)
		if !ok {
			missing = append(missing, key)
			return ""
		}
		return s
	}

	c := ContentFields{
		ClinicalHistory:        get(KeyClinicalHistory),
		SpecificCondition:      get(KeySpecificCondition),
		SkillsAffinities:       get(KeySkillsAffinities),
		Barriers:               get(KeyBarriers),
		ClassSkills:            get(KeyClassSkills),
		AdaptedSkills:          get(KeyAdaptedSkills),
		KnowledgeObject:        get(KeyKnowledgeObject),
		AdaptedKnowledgeObject: get(KeyAdaptedKnowledgeObject),
		Objectives:             get(KeyObjectives),
		Methodologies:          get(KeyMethodologies),
		Evaluation:             get(KeyEvaluation),
	}
	if len(missing) > 0 {
		return ContentFields{}, fmt.Errorf("%w: %v", ErrMissingContentKeys, missing)
	}
	return c, nil
}
