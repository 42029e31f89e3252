package generation

import (
	"encoding/json"
	"strings"

	"github.com/divinoviana/planoespecialindividualizado/models"
)

const fence = "```"

// StripCodeFence unwraps a payload enclosed in a markdown code block
// ("```json ... ```" or "``` ... ```"). Text without a fence is returned trimmed.
func StripCodeFence(raw string) string {
	cleaned := strings.TrimSpace(raw)

	// a bare JSON document may itself contain backticks inside string values
	if strings.HasPrefix(cleaned, "{") || strings.HasPrefix(cleaned, "[") {
		return cleaned
	}

	start := strings.Index(cleaned, fence)
	if start == -1 {
		return cleaned
	}

	body := cleaned[start+len(fence):]
	// info string: ```json, ```JSON, ```javascript ...
	if nl := strings.IndexByte(body, '\n'); nl != -1 {
		info := strings.TrimSpace(body[:nl])
		if info != "" && !strings.ContainsAny(info, "{[") {
			body = body[nl+1:]
		}
	} else if strings.HasPrefix(strings.ToLower(body), "json") {
		body = body[len("json"):]
	}

	if end := strings.LastIndex(body, fence); end != -1 {
		body = body[:end]
	}

	return strings.TrimSpace(strings.Trim(strings.TrimSpace(body), "`"))
}

// ParseContent decodes model output into [models.ContentFields]. The text is
// fence-stripped first; anything that is not a JSON object with all eleven
// string keys is a *models.GenerationError with reason "invalid format".
func ParseContent(text string) (models.ContentFields, error) {
	payload := StripCodeFence(text)
	if payload == "" {
		return models.ContentFields{}, models.NewGenerationError(models.ReasonInvalidFormat, ErrEmptyResponse)
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return models.ContentFields{}, models.NewGenerationError(models.ReasonInvalidFormat, err)
	}

	content, err := models.ContentFieldsFromMap(raw)
	if err != nil {
		return models.ContentFields{}, models.NewGenerationError(models.ReasonInvalidFormat, err)
	}
	return content, nil
}
