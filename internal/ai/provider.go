package ai

import "context"

// LLMProvider sends a prompt to a text-generation endpoint and returns the
// raw text of the first generated message. Implementations wrap transport
// failures in model.ErrNetworkFailure and content-free replies in
// model.ErrEmptyResponse.
type LLMProvider interface {
	Complete(ctx context.Context, prompt Prompt) (string, error)
}
