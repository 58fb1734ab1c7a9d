package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/amishk599/vaplan/internal/model"
)

const (
	anthropicVersion = "2023-06-01"
	maxErrorBody     = 512
)

// AnthropicProvider calls the Anthropic /v1/messages endpoint.
type AnthropicProvider struct {
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

// NewAnthropicProvider creates a provider targeting the Anthropic Messages API.
func NewAnthropicProvider(baseURL, apiKey, model string, maxTokens int, httpClient *http.Client) *AnthropicProvider {
	return &AnthropicProvider{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		maxTokens:  maxTokens,
		httpClient: httpClient,
	}
}

// messagesRequest mirrors the /v1/messages request body.
type messagesRequest struct {
	Model     string           `json:"model"`
	MaxTokens int              `json:"max_tokens"`
	System    string           `json:"system,omitempty"`
	Messages  []messageContent `json:"messages"`
}

type messageContent struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse mirrors the relevant fields of the /v1/messages response.
type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends one request and returns content[0].text. No retries.
func (p *AnthropicProvider) Complete(ctx context.Context, prompt Prompt) (string, error) {
	reqBody := messagesRequest{
		Model:     p.model,
		MaxTokens: p.maxTokens,
		System:    prompt.System,
		Messages: []messageContent{
			{Role: "user", Content: prompt.User},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal llm request: %w", err)
	}

	url := p.baseURL + "/v1/messages"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create llm request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

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

	var msgResp messagesResponse
	if err := json.Unmarshal(respBytes, &msgResp); err != nil {
		return "", fmt.Errorf("%w: parse llm response: %w", model.ErrEmptyResponse, err)
	}

	if msgResp.Error != nil {
		return "", fmt.Errorf("%w: llm error (%s): %s", model.ErrEmptyResponse, msgResp.Error.Type, msgResp.Error.Message)
	}

	if len(msgResp.Content) == 0 {
		return "", fmt.Errorf("%w: llm returned no content", model.ErrEmptyResponse)
	}

	text := msgResp.Content[0].Text
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: llm returned blank text", model.ErrEmptyResponse)
	}
	return text, nil
}

// truncate cuts s to at most n bytes on a rune boundary.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "..."
}
