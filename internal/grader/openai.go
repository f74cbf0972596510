package grader

import (
	"context"
	"errors"
	"fmt"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIBackend grades through any OpenAI-compatible chat endpoint.
type OpenAIBackend struct {
	api   *openai.Client
	model string
}

func NewOpenAI(baseURL, apiKey, model string) *OpenAIBackend {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &OpenAIBackend{api: openai.NewClientWithConfig(config), model: model}
}

func (o *OpenAIBackend) Name() string { return "openai" }

func (o *OpenAIBackend) Complete(ctx context.Context, prompt string) (Response, error) {
	resp, err := o.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
		Temperature: 0.2,
	})
	if err != nil {
		return Response{}, fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return Response{}, errors.New("empty completion response")
	}

	msg := resp.Choices[0].Message
	out := Response{Structured: msg.Content, Text: msg.Content}
	if len(msg.ToolCalls) > 0 {
		out.FunctionArgs = []byte(msg.ToolCalls[0].Function.Arguments)
	}
	return out, nil
}
