package summarize

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	cohere "github.com/cohere-ai/cohere-go/v2"
	cohereclient "github.com/cohere-ai/cohere-go/v2/client"
)

const coherePreamble = "You are a highly skilled summarization assistant. " +
	"Reply with the summary only, no preamble or commentary."

// Cohere is the primary summarization strategy, backed by the Cohere chat
// API. The client is built lazily on first use.
type Cohere struct {
	apiKey string
	model  string

	once   sync.Once
	client *cohereclient.Client
}

// NewCohere creates the Cohere strategy. An empty apiKey yields a strategy
// that always hands off to the next one.
func NewCohere(apiKey, model string) *Cohere {
	if model == "" {
		model = "command-r-08-2024"
	}
	return &Cohere{apiKey: apiKey, model: model}
}

func (c *Cohere) Name() string { return "cohere" }

func (c *Cohere) Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error) {
	if c.apiKey == "" {
		return "", errors.New("COHERE_API_KEY not configured")
	}

	c.once.Do(func() {
		// Force HTTP/1.1 to avoid HTTP/2 protocol errors against the
		// Cohere edge.
		httpClient := &http.Client{
			Timeout: 60 * time.Second,
			Transport: &http.Transport{
				TLSNextProto:      make(map[string]func(authority string, c *tls.Conn) http.RoundTripper),
				ForceAttemptHTTP2: false,
			},
		}
		c.client = cohereclient.NewClient(
			cohereclient.WithToken(c.apiKey),
			cohereclient.WithHTTPClient(httpClient),
		)
	})

	prompt := fmt.Sprintf(
		"Summarize the following text in a concise and informative way. "+
			"Aim for a summary between %d and %d tokens long.\n\nText to summarize: %s",
		minLength, maxLength, text)

	maxTokens := maxLength
	temperature := 0.3
	resp, err := c.client.Chat(ctx, &cohere.ChatRequest{
		Message:     prompt,
		Model:       &c.model,
		Preamble:    strPtr(coherePreamble),
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
	})
	if err != nil {
		return "", fmt.Errorf("cohere chat error: %w", err)
	}
	if resp == nil || strings.TrimSpace(resp.Text) == "" {
		return "", errors.New("cohere chat returned empty response")
	}
	return strings.TrimSpace(resp.Text), nil
}

func strPtr(s string) *string { return &s }
