package openai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"

	domai "github.com/mylance/mylance-api/internal/domain/ai"
	"github.com/mylance/mylance-api/internal/domain/brand"
	"github.com/mylance/mylance-api/internal/domain/profiles"
	"github.com/mylance/mylance-api/internal/infra/ai/prompt"
)

const (
	strategyMaxTokens = 1024
	promptsMaxTokens  = 4096
)

type Client struct {
	*openai.Client
	Model string
}

func NewClient(apiKey, model string) *Client {
	return &Client{Client: openai.NewClient(apiKey), Model: model}
}

func (c *Client) model() string {
	if c.Model != "" {
		return c.Model
	}
	return openai.GPT4
}

func (c *Client) GenerateStrategy(ctx context.Context, a *brand.Analysis, global string) (string, error) {
	return c.complete(ctx, "", prompt.Strategy(a, global), strategyMaxTokens)
}

func (c *Client) RefineStrategy(ctx context.Context, current, feedback string) (string, error) {
	return c.complete(ctx, "", prompt.Refine(current, feedback), strategyMaxTokens)
}

func (c *Client) GeneratePrompts(ctx context.Context, strategy string, count int) ([]profiles.Prompt, error) {
	req := openai.ChatCompletionRequest{
		Model:       c.model(),
		Temperature: 0.7,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: prompt.PromptsSystem()},
			{Role: openai.ChatMessageRoleUser, Content: prompt.PromptsUser(strategy, count)},
		},
	}
	setMaxTokens(&req, promptsMaxTokens)

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return nil, wrapErr(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return nil, domai.ErrEmptyCompletion
	}

	var out struct {
		Prompts []profiles.Prompt `json:"prompts"`
	}
	if err := json.Unmarshal([]byte(resp.Choices[0].Message.Content), &out); err != nil {
		return nil, fmt.Errorf("decoding prompts completion: %w", err)
	}
	return out.Prompts, nil
}

func (c *Client) complete(ctx context.Context, system, user string, maxTokens int) (string, error) {
	var msgs []openai.ChatCompletionMessage
	if system != "" {
		msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleSystem, Content: system})
	}
	msgs = append(msgs, openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: user})

	req := openai.ChatCompletionRequest{
		Model:       c.model(),
		Temperature: 0.7,
		Messages:    msgs,
	}
	setMaxTokens(&req, maxTokens)

	resp, err := c.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", wrapErr(err)
	}
	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", domai.ErrEmptyCompletion
	}
	return resp.Choices[0].Message.Content, nil
}

// For reasoning models (o1/o3/o4/gpt-5*) use MaxCompletionTokens instead of MaxTokens
func setMaxTokens(req *openai.ChatCompletionRequest, n int) {
	m := req.Model
	if strings.HasPrefix(m, "o1") || strings.HasPrefix(m, "o3") || strings.HasPrefix(m, "o4") || strings.HasPrefix(m, "gpt-5") {
		req.MaxCompletionTokens = n
		req.Temperature = 0
	} else {
		req.MaxTokens = n
	}
}

func wrapErr(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.HTTPStatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("%w: %v", domai.ErrQuotaExceeded, err)
	}
	return fmt.Errorf("failed to create chat completion: %w", err)
}
