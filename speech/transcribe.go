// Package speech converts between text and audio: Whisper transcription of
// uploads and two-stage text-to-speech synthesis, plus the retention sweep
// that bounds the audio directory.
package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// ErrTranscriptionFailed reports that the speech-to-text service could not
// produce a transcript. There is no local fallback.
var ErrTranscriptionFailed = errors.New("transcription failed")

// Transcriber converts an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// WhisperTranscriber transcribes audio via the OpenAI Whisper API. The
// client is built lazily on first use.
type WhisperTranscriber struct {
	apiKey string

	once   sync.Once
	client *openai.Client
}

// NewWhisperTranscriber creates a transcriber; an empty apiKey makes every
// call fail with ErrTranscriptionFailed.
func NewWhisperTranscriber(apiKey string) *WhisperTranscriber {
	return &WhisperTranscriber{apiKey: apiKey}
}

// Transcribe converts the audio file at audioPath to text. The caller owns
// the file and must delete it after use on both paths.
func (w *WhisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if w.apiKey == "" {
		return "", fmt.Errorf("%w: OPENAI_API_KEY not configured", ErrTranscriptionFailed)
	}

	w.once.Do(func() {
		w.client = openai.NewClient(w.apiKey)
	})

	resp, err := w.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		FilePath: audioPath,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}

	text := strings.TrimSpace(resp.Text)
	if text == "" {
		return "", fmt.Errorf("%w: empty transcript", ErrTranscriptionFailed)
	}
	return text, nil
}
