package generation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

const DefaultModel = "gpt-4o-mini"

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string // empty means the public OpenAI endpoint
	Timeout time.Duration
}

// OpenAIGenerator implements Generator with chat completions.
type OpenAIGenerator struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

func NewOpenAIGenerator(cfg OpenAIConfig) *OpenAIGenerator {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	return &OpenAIGenerator{
		client:  openai.NewClientWithConfig(clientConfig),
		model:   model,
		timeout: cfg.Timeout,
	}
}

func (g *OpenAIGenerator) Expand(ctx context.Context, word, level string) (*Card, error) {
	content, err := g.complete(ctx, tutorRole, expandPrompt(word, level), 0.7, true)
	if err != nil {
		return nil, err
	}

	var card Card
	if err := json.Unmarshal([]byte(content), &card); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	card.Translation = strings.TrimSpace(card.Translation)
	if card.Translation == "" || card.Examples == nil {
		return nil, fmt.Errorf("%w: missing translation or examples", ErrUnexpectedResponse)
	}
	if card.Text == "" {
		card.Text = word
	}
	if len(card.Examples) > MaxExamples {
		card.Examples = card.Examples[:MaxExamples]
	}

	return &card, nil
}

func (g *OpenAIGenerator) Examples(ctx context.Context, text, level string, regenerate bool) ([]string, error) {
	temperature := float32(0.8)
	if regenerate {
		temperature = 0.9
	}

	content, err := g.complete(ctx, examplesRole, examplesPrompt(text, level, regenerate), temperature, true)
	if err != nil {
		return nil, err
	}

	var payload struct {
		Examples []string `json:"examples"`
	}
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnexpectedResponse, err)
	}
	if payload.Examples == nil {
		return nil, fmt.Errorf("%w: missing examples", ErrUnexpectedResponse)
	}
	if len(payload.Examples) > MaxExamples {
		payload.Examples = payload.Examples[:MaxExamples]
	}
	return payload.Examples, nil
}

func (g *OpenAIGenerator) Translate(ctx context.Context, text string) (string, error) {
	return g.complete(ctx, translatorRole, translatePrompt(text), 0.3, false)
}

func (g *OpenAIGenerator) TranslateSentence(ctx context.Context, text string) (string, error) {
	return g.complete(ctx, translatorRole, translateSentencePrompt(text), 0.3, false)
}

// complete runs a single chat completion bounded by the generator timeout and
// returns the trimmed content of the first choice.
func (g *OpenAIGenerator) complete(ctx context.Context, system, prompt string, temperature float32, jsonObject bool) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	req := openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: system},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: temperature,
	}
	if jsonObject {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	resp, err := g.client.CreateChatCompletion(ctx, req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %v", ErrTimedOut, err)
		}
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) {
			return "", errors.New(apiErr.Message)
		}
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices", ErrUnexpectedResponse)
	}
	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: empty content", ErrUnexpectedResponse)
	}
	return content, nil
}
