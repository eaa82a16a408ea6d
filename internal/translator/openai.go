package translator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// OpenAIProvider translates via chat completions. Calls go through a
// circuit breaker so a struggling upstream fails fast instead of
// stacking timeouts.
type OpenAIProvider struct {
	client  *openai.Client
	model   string
	breaker *gobreaker.CircuitBreaker
}

// NewOpenAIProvider creates a translation provider
func NewOpenAIProvider(apiKey string) *OpenAIProvider {
	return &OpenAIProvider{
		client: openai.NewClient(apiKey),
		model:  openai.GPT4oMini,
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "openai-translate",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
		}),
	}
}

// Translate returns the target-language rendering of text
func (p *OpenAIProvider) Translate(ctx context.Context, text, targetLang string) (string, error) {
	if text == "" {
		return "", fmt.Errorf("text is required")
	}
	if targetLang == "" {
		return "", fmt.Errorf("target language is required")
	}

	result, err := p.breaker.Execute(func() (interface{}, error) {
		resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleUser,
					Content: fmt.Sprintf(
						"Translate the word or short phrase %q into the language with ISO code %q. Respond with only the translation, nothing else.",
						text, targetLang,
					),
				},
			},
			MaxTokens:   50,
			Temperature: 0.3,
		})
		if err != nil {
			return nil, err
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no translation returned")
		}
		return resp.Choices[0].Message.Content, nil
	})
	if err != nil {
		return "", fmt.Errorf("translate %q to %s: %w", text, targetLang, err)
	}

	return strings.ToLower(strings.TrimSpace(result.(string))), nil
}
