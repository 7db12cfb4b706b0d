package speech

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/Dhanvanth23/Smart-Summarizer/config"
)

// ErrSynthesisFailed reports that both synthesis stages failed. The caller
// treats this as non-fatal and simply omits the audio artifact.
var ErrSynthesisFailed = errors.New("speech synthesis failed")

const fallbackTTSEndpoint = "https://translate.google.com/translate_tts"

// fallbackLocales remaps language codes to the fallback engine's locale
// conventions.
var fallbackLocales = map[string]string{
	"zh": "zh-CN",
	"no": "nb-NO",
}

// Synthesizer generates mp3 audio for summaries, trying the OpenAI TTS
// service first and the public translate TTS endpoint as fallback.
type Synthesizer struct {
	apiKey     string
	voices     config.VoiceTable
	audioDir   string
	keepLatest int
	maxAge     time.Duration

	fallbackEndpoint string
	httpClient       *http.Client

	once   sync.Once
	client *openai.Client
}

// NewSynthesizer creates a Synthesizer writing into audioDir with the given
// voice table and retention policy.
func NewSynthesizer(apiKey string, voices config.VoiceTable, audioDir string) *Synthesizer {
	return &Synthesizer{
		apiKey:           apiKey,
		voices:           voices,
		audioDir:         audioDir,
		keepLatest:       config.AudioKeepLatest,
		maxAge:           config.AudioMaxAge,
		fallbackEndpoint: fallbackTTSEndpoint,
		httpClient:       &http.Client{Timeout: 30 * time.Second},
	}
}

// SetFallbackEndpoint overrides the fallback TTS endpoint, for tests.
func (s *Synthesizer) SetFallbackEndpoint(endpoint string, client *http.Client) {
	s.fallbackEndpoint = endpoint
	if client != nil {
		s.httpClient = client
	}
}

// Synthesize turns text into an mp3 artifact and returns its bare filename.
// The retention sweep runs before each attempt so the directory stays
// bounded even under synthesis failures.
func (s *Synthesizer) Synthesize(ctx context.Context, text, language string) (string, error) {
	CleanupAudioFiles(s.audioDir, s.keepLatest, s.maxAge)

	if name, err := s.synthesizePrimary(ctx, text, language); err == nil {
		return name, nil
	} else {
		log.Printf("Primary TTS failed, trying fallback: %v", err)
	}

	name, err := s.synthesizeFallback(ctx, text, language)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	return name, nil
}

func (s *Synthesizer) synthesizePrimary(ctx context.Context, text, language string) (string, error) {
	if s.apiKey == "" {
		return "", errors.New("OPENAI_API_KEY not configured")
	}

	s.once.Do(func() {
		s.client = openai.NewClient(s.apiKey)
	})

	voice := s.voices.Voice(language)
	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.TTSModel1,
		Input: text,
		Voice: openai.SpeechVoice(voice),
	})
	if err != nil {
		return "", fmt.Errorf("openai tts error: %w", err)
	}
	defer resp.Close()

	return s.writeArtifact(resp)
}

// synthesizeFallback uses the public translate TTS endpoint, remapping a
// few language codes to its locale tags and retrying once with English if
// the language is rejected outright.
func (s *Synthesizer) synthesizeFallback(ctx context.Context, text, language string) (string, error) {
	lang := language
	if mapped, ok := fallbackLocales[language]; ok {
		lang = mapped
	}

	body, err := s.fetchFallbackAudio(ctx, text, lang)
	if err != nil && lang != "en" {
		log.Printf("Fallback TTS rejected language %q, retrying with en: %v", lang, err)
		body, err = s.fetchFallbackAudio(ctx, text, "en")
	}
	if err != nil {
		return "", err
	}
	defer body.Close()

	return s.writeArtifact(body)
}

func (s *Synthesizer) fetchFallbackAudio(ctx context.Context, text, lang string) (io.ReadCloser, error) {
	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", lang)
	params.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.fallbackEndpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fallback tts returned %d for language %q", resp.StatusCode, lang)
	}
	return resp.Body, nil
}

// writeArtifact streams audio into a uniquely named mp3 and returns the
// bare filename; tokens carry no semantic meaning.
func (s *Synthesizer) writeArtifact(audio io.Reader) (string, error) {
	filename := fmt.Sprintf("summary_%s.mp3", uuid.New().String())
	path := filepath.Join(s.audioDir, filename)

	out, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer out.Close()

	if _, err := io.Copy(out, audio); err != nil {
		os.Remove(path)
		return "", err
	}
	return filename, nil
}
