package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/divinoviana/planoespecialindividualizado/internal/config"
	"github.com/divinoviana/planoespecialindividualizado/internal/logger"
	"github.com/divinoviana/planoespecialindividualizado/internal/utils"
	"github.com/divinoviana/planoespecialindividualizado/models"
)

const responseMimeJSON = "application/json"

type geminiPart struct {
	Text       string            `json:"text,omitempty"`
	InlineData *geminiInlineData `json:"inlineData,omitempty"`
}

type geminiInlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents         []geminiContent `json:"contents"`
	GenerationConfig map[string]any  `json:"generationConfig"`
}

type geminiResponse struct {
	Candidates []struct {
		Content      geminiContent `json:"content"`
		FinishReason string        `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
	UsageMetadata struct {
		PromptTokenCount     int `json:"promptTokenCount"`
		CandidatesTokenCount int `json:"candidatesTokenCount"`
		TotalTokenCount      int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

type geminiErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GeminiClient is a [Generator] backed by the Gemini generateContent REST API.
type GeminiClient struct {
	client *utils.HTTPClient
	model  string
	schema Schema
}

// NewGeminiClient builds a client from explicit configuration. An empty
// API key is a *models.ConfigError; nothing is read from the environment here.
func NewGeminiClient(cfg config.Generation, log *logger.Logger) (*GeminiClient, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &models.ConfigError{Field: "generation.api_key"}
	}
	if strings.TrimSpace(cfg.Model) == "" {
		return nil, &models.ConfigError{Field: "generation.model"}
	}
	baseURL, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, &models.ConfigError{Field: "generation.base_url", Err: err}
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(strings.TrimRight(baseURL.String(), "/")).
		SetHeader("x-goog-api-key", cfg.APIKey).
		SetHeader("Content-Type", responseMimeJSON)
	if cfg.Timeout > 0 {
		client.SetTimeout(cfg.Timeout)
	}

	log.Info().Str("model", cfg.Model).Str("base_url", client.BaseURL).Msg("generation client configured")

	return &GeminiClient{
		client: client,
		model:  cfg.Model,
		schema: PlanSchema(),
	}, nil
}

// Generate implements [Generator].
func (g *GeminiClient) Generate(ctx context.Context, draft models.DraftInput) (models.ContentFields, error) {
	log := logger.FromContext(ctx)

	prompt, err := BuildPrompt(draft)
	if err != nil {
		return models.ContentFields{}, models.NewGenerationError(reasonPrompt, err)
	}

	parts := []geminiPart{{Text: prompt}}
	if draft.Attachment != nil {
		parts = append(parts, geminiPart{InlineData: &geminiInlineData{
			MimeType: draft.Attachment.MimeType,
			Data:     draft.Attachment.Data,
		}})
	}

	body := geminiRequest{
		Contents: []geminiContent{{Role: "user", Parts: parts}},
		GenerationConfig: map[string]any{
			"responseMimeType": responseMimeJSON,
			"responseSchema":   g.schema.geminiSchema(),
		},
	}

	var out geminiResponse
	resp, err := g.client.R().
		SetContext(ctx).
		SetBody(body).
		SetResult(&out).
		Post(fmt.Sprintf("/models/%s:generateContent", url.PathEscape(g.model)))
	if err != nil {
		log.Err(err).Str("func", "GeminiClient.Generate").Msg("generation request failed")
		return models.ContentFields{}, models.NewGenerationError(reasonRequest, err)
	}
	if err = mapGeminiError(resp.StatusCode(), resp.Body()); err != nil {
		log.Err(err).Str("func", "GeminiClient.Generate").Int("status", resp.StatusCode()).Msg("generation service returned an error")
		return models.ContentFields{}, err
	}

	if out.PromptFeedback != nil && out.PromptFeedback.BlockReason != "" {
		return models.ContentFields{}, models.NewGenerationError(reasonService,
			fmt.Errorf("%w: %s", ErrBlocked, out.PromptFeedback.BlockReason))
	}

	text := out.text()
	log.Debug().
		Str("func", "GeminiClient.Generate").
		Int("prompt_tokens", out.UsageMetadata.PromptTokenCount).
		Int("output_tokens", out.UsageMetadata.CandidatesTokenCount).
		Bool("attachment", draft.Attachment != nil).
		Msg("generation finished")

	return ParseContent(text)
}

// text concatenates the text parts of the first candidate.
func (r geminiResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String()
}

func mapGeminiError(status int, body []byte) error {
	if status >= http.StatusOK && status < http.StatusMultipleChoices {
		return nil
	}

	msg := strings.TrimSpace(string(body))
	var apiErr geminiErrorResponse
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		msg = apiErr.Error.Message
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden,
		status == http.StatusBadRequest && strings.Contains(strings.ToLower(msg), "api key"):
		return models.NewGenerationError(reasonAuth, fmt.Errorf("%w: %s", ErrUnauthorized, msg))
	default:
		return models.NewGenerationError(reasonService, fmt.Errorf("%w: http %d: %s", ErrServiceFailure, status, msg))
	}
}
