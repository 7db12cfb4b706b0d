package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// maxFallbackInput caps the text sent to the fallback model to respect its
// context limits.
const maxFallbackInput = 10000

// OpenAI is the secondary summarization strategy, a prompt-based request
// against a general-purpose chat model.
type OpenAI struct {
	apiKey string
	model  string

	once   sync.Once
	client *openai.Client
}

// NewOpenAI creates the fallback strategy. An empty apiKey yields a
// strategy that always hands off.
func NewOpenAI(apiKey, model string) *OpenAI {
	if model == "" {
		model = openai.GPT3Dot5Turbo
	}
	return &OpenAI{apiKey: apiKey, model: model}
}

func (o *OpenAI) Name() string { return "gpt" }

func (o *OpenAI) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	if o.apiKey == "" {
		return "", errors.New("OPENAI_API_KEY not configured")
	}

	o.once.Do(func() {
		o.client = openai.NewClient(o.apiKey)
	})

	if len(text) > maxFallbackInput {
		text = text[:maxFallbackInput] + "..."
	}

	prompt := fmt.Sprintf(
		"Please summarize the following text in a concise and informative way. "+
			"Aim for a summary that's between %d and %d tokens long.\n\n"+
			"Text to summarize: %s\n\nSummary:",
		minLength, maxLength, text)

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a highly skilled summarization assistant."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens:   maxLength,
		Temperature: 0.5,
	})
	if err != nil {
		return "", fmt.Errorf("gpt summarization error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("gpt returned no choices")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
