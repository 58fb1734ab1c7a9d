package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/amishk599/vaplan/internal/model"
)

var stringList = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

// learningPlanSchema describes AnalysisResult for OpenAI structured outputs.
// Not strict: optional fields may be omitted, so the parser still validates.
var learningPlanSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"jobTitle":    map[string]any{"type": "string"},
		"salaryRange": map[string]any{"type": "string"},
		"skillGap": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"hasAlready":  stringList,
				"needToLearn": stringList,
				"highImpact":  stringList,
			},
			"required": []string{"needToLearn", "highImpact"},
		},
		"learningPlan": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"week1": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"day":           map[string]any{"type": "integer"},
							"focus":         map[string]any{"type": "string"},
							"lesson":        map[string]any{"type": "string"},
							"videoSearch":   map[string]any{"type": "string"},
							"practice":      map[string]any{"type": "string"},
							"deliverable":   map[string]any{"type": "string"},
							"estimatedTime": map[string]any{"type": "string"},
						},
						"required": []string{"day", "focus", "videoSearch", "practice", "deliverable"},
					},
				},
				"week2": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"day":           map[string]any{"type": "integer"},
							"focus":         map[string]any{"type": "string"},
							"lesson":        map[string]any{"type": "string"},
							"steps":         stringList,
							"task":          map[string]any{"type": "string"},
							"deliverable":   map[string]any{"type": "string"},
							"estimatedTime": map[string]any{"type": "string"},
						},
						"required": []string{"day", "focus"},
					},
				},
			},
			"required": []string{"week1", "week2"},
		},
		"portfolioPieces": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"title":       map[string]any{"type": "string"},
					"description": map[string]any{"type": "string"},
				},
			},
		},
		"aiAdvantage":     map[string]any{"type": "string"},
		"aiUseCases":      stringList,
		"applicationTips": stringList,
	},
	"required": []string{"jobTitle", "salaryRange", "skillGap", "learningPlan", "aiAdvantage"},
}

// OpenAIProvider calls the OpenAI /v1/chat/completions endpoint with structured outputs.
type OpenAIProvider struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// NewOpenAIProvider creates a provider targeting the OpenAI API.
func NewOpenAIProvider(baseURL, apiKey, model string, maxTokens int, httpClient *http.Client) *OpenAIProvider {
	return &OpenAIProvider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: httpClient,
	}
}

// chatRequest mirrors the OpenAI /v1/chat/completions request body.
type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type       string         `json:"type"`
	JSONSchema jsonSchemaSpec `json:"json_schema"`
}

type jsonSchemaSpec struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
}

// chatResponse mirrors the relevant fields of the OpenAI response.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// Complete sends prompt to OpenAI and returns the first choice's content.
func (p *OpenAIProvider) Complete(ctx context.Context, prompt Prompt) (string, error) {
	reqBody := chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: prompt.System},
			{Role: "user", Content: prompt.User},
		},
		MaxTokens: p.maxTokens,
		ResponseFormat: responseFormat{
			Type: "json_schema",
			JSONSchema: jsonSchemaSpec{
				Name:   "learning_plan",
				Schema: learningPlanSchema,
			},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal llm request: %w", err)
	}

	url := p.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create llm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: llm request: %w", model.ErrNetworkFailure, err)
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: read llm response: %w", model.ErrNetworkFailure, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %w", model.ErrNetworkFailure, &model.HTTPError{
			StatusCode: resp.StatusCode,
			Body:       truncate(string(respBytes), maxErrorBody),
		})
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBytes, &chatResp); err != nil {
		return "", fmt.Errorf("%w: parse llm response: %w", model.ErrEmptyResponse, err)
	}

	if chatResp.Error != nil {
		return "", fmt.Errorf("%w: llm error (%s): %s", model.ErrEmptyResponse, chatResp.Error.Type, chatResp.Error.Message)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("%w: llm returned no choices", model.ErrEmptyResponse)
	}

	content := chatResp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("%w: llm returned blank content", model.ErrEmptyResponse)
	}
	return content, nil
}
