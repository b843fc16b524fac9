package anthropic

import (
	"context"
	"fmt"

	sdk "github.com/anthropics/anthropic-sdk-go"
)

// Completer answers a free-text prompt with a free-text response.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type client struct {
	api   sdk.Client
	model string
}

// NewCompleter builds a Completer over the Anthropic Messages API. The API key
// is read from ANTHROPIC_API_KEY by the SDK.
func NewCompleter(model string) Completer {
	return &client{api: sdk.NewClient(), model: model}
}

func (c *client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.api.Messages.New(ctx, sdk.MessageNewParams{
		Model:     sdk.Model(c.model),
		MaxTokens: 1024,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: %w", err)
	}

	var text string
	for _, block := range resp.Content {
		if block.Type == "text" {
			text += block.Text
		}
	}
	return text, nil
}
