// Package translate converts text between languages using the public
// Google Translate endpoint, chunking long text to respect its length cap.
package translate

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"
)

// ErrTranslationFailed reports that no chunk could be translated.
var ErrTranslationFailed = errors.New("translation failed")

const (
	defaultEndpoint = "https://translate.googleapis.com/translate_a/single"

	// ChunkSize is the upstream per-request length cap, in bytes.
	ChunkSize = 4000

	// AutoDetect asks the upstream service to infer the source language.
	AutoDetect = "auto"
)

// Client talks to the translation endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a translation client with production settings.
func NewClient() *Client {
	return &Client{
		endpoint:   defaultEndpoint,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

// NewClientWithEndpoint creates a client against an alternate endpoint.
func NewClientWithEndpoint(endpoint string, httpClient *http.Client) *Client {
	return &Client{endpoint: endpoint, httpClient: httpClient}
}

// Translate converts text into targetLang. Long text is split into chunks
// translated independently and joined with single spaces; chunks that fail
// are skipped, and ErrTranslationFailed is returned only when no chunk
// succeeds. srcLang may be AutoDetect.
func (c *Client) Translate(text, targetLang, srcLang string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrTranslationFailed
	}
	if srcLang == "" {
		srcLang = AutoDetect
	}

	chunks := ChunkText(text, ChunkSize)
	translated := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		out, _, err := c.translateChunk(chunk, targetLang, srcLang)
		if err != nil {
			log.Printf("Translation chunk %d/%d failed: %v", i+1, len(chunks), err)
			continue
		}
		if out != "" {
			translated = append(translated, out)
		}
	}

	if len(translated) == 0 {
		return "", ErrTranslationFailed
	}
	return strings.Join(translated, " "), nil
}

// Detect infers the language of text by translating a short probe and
// reading the detection metadata from the response. It defaults to English
// when detection fails.
func (c *Client) Detect(text string) string {
	probe := text
	if len(probe) > 100 {
		probe = trimToRuneBoundary(probe, 100)
	}
	_, detected, err := c.translateChunk(probe, "en", AutoDetect)
	if err != nil || detected == "" {
		log.Printf("Language detection failed, defaulting to en: %v", err)
		return "en"
	}
	return detected
}

// translateChunk performs one request and returns the translated text plus
// the detected source language.
func (c *Client) translateChunk(chunk, targetLang, srcLang string) (string, string, error) {
	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", srcLang)
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", chunk)

	resp, err := c.httpClient.Get(c.endpoint + "?" + params.Encode())
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", "", fmt.Errorf("translate endpoint returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", "", err
	}
	return parseResponse(body)
}

// parseResponse decodes the endpoint's nested-array payload:
// [[["translated","original",...],...],null,"detectedLang",...]
func parseResponse(body []byte) (string, string, error) {
	var raw []interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return "", "", fmt.Errorf("unexpected translate response: %w", err)
	}
	if len(raw) == 0 {
		return "", "", errors.New("empty translate response")
	}

	var sb strings.Builder
	if segments, ok := raw[0].([]interface{}); ok {
		for _, seg := range segments {
			parts, ok := seg.([]interface{})
			if !ok || len(parts) == 0 {
				continue
			}
			if s, ok := parts[0].(string); ok {
				sb.WriteString(s)
			}
		}
	}

	detected := ""
	if len(raw) > 2 {
		if s, ok := raw[2].(string); ok {
			detected = s
		}
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", detected, errors.New("translate response carried no text")
	}
	return text, detected, nil
}

// ChunkText splits text into pieces no longer than size bytes, cutting on
// rune boundaries.
func ChunkText(text string, size int) []string {
	if len(text) <= size {
		return []string{text}
	}
	var chunks []string
	for len(text) > size {
		cut := trimToRuneBoundary(text, size)
		chunks = append(chunks, cut)
		text = text[len(cut):]
	}
	if text != "" {
		chunks = append(chunks, text)
	}
	return chunks
}

func trimToRuneBoundary(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	for limit > 0 && !utf8.RuneStart(s[limit]) {
		limit--
	}
	return s[:limit]
}
