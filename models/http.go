package models

// PlanListResponse is returned by the plan list endpoint.
type PlanListResponse struct {
	// Plans are ordered newest first.
	Plans []PlanRecord `json:"plans"`

	// Length is len(Plans).
	Length int `json:"length"`
}

// GenerateResponse carries freshly generated, unsaved plan content.
type GenerateResponse struct {
	Content ContentFields `json:"content"`
}

// ErrorResponse is the JSON body of a failed API call.
type ErrorResponse struct {
	// Kind is one of "validation", "generation", "store", "not_found" or "internal".
	Kind string `json:"kind"`

	// Error is a human-readable message.
	Error string `json:"error"`

	// Fields lists offending input fields for validation failures.
	Fields []string `json:"fields,omitempty"`
}

// BuildInfoResponse is returned by the version endpoint.
type BuildInfoResponse struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}
