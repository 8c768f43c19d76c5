package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClient struct {
	client anthropic.Client
	model  string
}

func NewAnthropic(apiKey, model string) *AnthropicClient {
	return &AnthropicClient{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

func (c *AnthropicClient) Generate(ctx context.Context, messages []Message) (Response, error) {
	// Anthropic takes the system prompt out of band.
	var system []anthropic.TextBlockParam
	var msgs []anthropic.MessageParam
	for _, m := range messages {
		switch m.Role {
		case "system":
			system = append(system, anthropic.TextBlockParam{Text: m.Content})
		case "assistant":
			msgs = append(msgs, anthropic.NewAssistantMessage(anthropic.NewTextBlock(m.Content)))
		default:
			msgs = append(msgs, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Content)))
		}
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(c.model),
		MaxTokens:   maxResponseTokens,
		Temperature: anthropic.Float(temperature),
		System:      system,
		Messages:    msgs,
	})
	if err != nil {
		return Response{}, fmt.Errorf("failed to create message: %w", err)
	}

	var content string
	for _, block := range resp.Content {
		if block.Type == "text" {
			content += block.Text
		}
	}

	out := Response{Content: content, Model: c.model}
	out.PromptTokens = int(resp.Usage.InputTokens)
	out.CompletionTokens = int(resp.Usage.OutputTokens)
	out.TotalTokens = out.PromptTokens + out.CompletionTokens
	return out, nil
}
