package generation

import "github.com/divinoviana/planoespecialindividualizado/models"

// FieldTypeString is the only field type used by plan content.
const FieldTypeString = "string"

// FieldSpec describes one field of a structured response.
type FieldSpec struct {
	Type     string `json:"type"`
	Required bool   `json:"required"`
}

// Schema is a provider-neutral description of the JSON object the service
// must return: field name to field spec. Field order comes from Keys.
type Schema struct {
	Keys   []string
	Fields map[string]FieldSpec
}

// PlanSchema returns the schema of [models.ContentFields]: eleven required strings.
func PlanSchema() Schema {
	s := Schema{
		Keys:   append([]string(nil), models.ContentFieldKeys...),
		Fields: make(map[string]FieldSpec, len(models.ContentFieldKeys)),
	}
	for _, k := range s.Keys {
		s.Fields[k] = FieldSpec{Type: FieldTypeString, Required: true}
	}
	return s
}

// Required returns the required field names in schema order.
func (s Schema) Required() []string {
	out := make([]string, 0, len(s.Keys))
	for _, k := range s.Keys {
		if s.Fields[k].Required {
			out = append(out, k)
		}
	}
	return out
}

// geminiSchema renders the schema in the OpenAPI subset accepted by
// generationConfig.responseSchema.
func (s Schema) geminiSchema() map[string]any {
	props := make(map[string]any, len(s.Keys))
	for _, k := range s.Keys {
		props[k] = map[string]any{"type": geminiType(s.Fields[k].Type)}
	}
	return map[string]any{
		"type":             "OBJECT",
		"properties":       props,
		"required":         s.Required(),
		"propertyOrdering": s.Keys,
	}
}

func geminiType(t string) string {
	switch t {
	case "integer":
		return "INTEGER"
	case "number":
		return "NUMBER"
	case "boolean":
		return "BOOLEAN"
	default:
		return "STRING"
	}
}
