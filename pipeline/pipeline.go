// Package pipeline sequences the summarization flow: input handling
// (normalize / extract / transcribe), the summarization engine, and speech
// synthesis, assembling the response payload and timing it end to end.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"path/filepath"
	"time"

	"github.com/Dhanvanth23/Smart-Summarizer/config"
	"github.com/Dhanvanth23/Smart-Summarizer/events"
	"github.com/Dhanvanth23/Smart-Summarizer/storage"
	"github.com/Dhanvanth23/Smart-Summarizer/summarize"
	"github.com/Dhanvanth23/Smart-Summarizer/textproc"
	"github.com/Dhanvanth23/Smart-Summarizer/translate"
	"github.com/Dhanvanth23/Smart-Summarizer/types"
)

// User-facing error strings. These are part of the HTTP contract.
const (
	errInvalidInputType = "Invalid input type. Please select URL, Text, or Audio."
	errURLRequired      = "URL is required."
	errTextRequired     = "Text input is required."
	errTextTooShort     = "Text is too short or invalid for summarization."
	errNoAudioUploaded  = "No audio file uploaded."
	errFetchFailed      = "Failed to fetch content from URL."
	errTranscribeFailed = "Failed to transcribe audio."
	errTranslateFailed  = "Failed to translate text to English."
	errSummaryFailed    = "Failed to generate summary."
)

// displayLimit caps the echoed original text.
const displayLimit = 1000

// ContentExtractor isolates article text from a URL.
type ContentExtractor interface {
	FetchArticleText(url string) (string, error)
}

// Transcriber converts an audio file into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// Summarizer runs the summarization engine. *summarize.Engine satisfies it.
type Summarizer interface {
	Summarize(ctx context.Context, text, targetLang, srcLang string, maxLength, minLength int) (*summarize.Result, error)
}

// Synthesizer turns text into an audio artifact.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) (string, error)
}

// Pipeline wires the adapters together. Archive and producer are optional.
type Pipeline struct {
	extractor   ContentExtractor
	transcriber Transcriber
	engine      Summarizer
	synthesizer Synthesizer

	audioDir string
	archive  *storage.AudioArchive
	producer *events.Producer
}

// New creates a Pipeline over the given adapters.
func New(extractor ContentExtractor, transcriber Transcriber, engine Summarizer, synthesizer Synthesizer, audioDir string) *Pipeline {
	return &Pipeline{
		extractor:   extractor,
		transcriber: transcriber,
		engine:      engine,
		synthesizer: synthesizer,
		audioDir:    audioDir,
	}
}

// WithArchive attaches an S3 archive for generated audio.
func (p *Pipeline) WithArchive(archive *storage.AudioArchive) *Pipeline {
	p.archive = archive
	return p
}

// WithProducer attaches a Kafka producer for completed-summary events.
func (p *Pipeline) WithProducer(producer *events.Producer) *Pipeline {
	p.producer = producer
	return p
}

// Run executes one summarization request and always returns a result:
// fatal failures populate Error, and synthesis failures merely leave
// AudioFile empty.
func (p *Pipeline) Run(ctx context.Context, req types.SummarizeRequest) (result types.SummaryResult) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Unexpected panic in pipeline: %v", r)
			result = types.SummaryResult{Error: fmt.Sprintf("An error occurred: %v", r)}
		}
		result.ProcessingTime = math.Round(time.Since(start).Seconds()*100) / 100
	}()

	language := config.NormalizeLanguage(req.TargetLanguage)
	result.Language = config.LanguageName(language)

	text, original, errMsg := p.resolveInput(ctx, req)
	if errMsg != "" {
		result.Error = errMsg
		return result
	}
	result.OriginalText = textproc.TruncateForDisplay(original, displayLimit)
	if req.InputKind == types.InputAudio {
		result.Transcript = original
	}

	summary, err := p.engine.Summarize(ctx, text, language, req.SourceLanguage, req.MaxLength, req.MinLength)
	if err != nil {
		log.Printf("Summarization failed: %v", err)
		if errors.Is(err, translate.ErrTranslationFailed) {
			result.Error = errTranslateFailed
		} else {
			result.Error = errSummaryFailed
		}
		return result
	}
	result.Summary = summary.Summary
	result.EnglishSummary = summary.EnglishSummary
	result.Engine = summary.Engine

	// Synthesis failure is non-fatal: the request still succeeds without audio.
	audioFile, err := p.synthesizer.Synthesize(ctx, summary.Summary, language)
	if err != nil {
		log.Printf("Speech synthesis failed, returning summary without audio: %v", err)
	} else {
		result.AudioFile = audioFile
		p.archiveAudio(ctx, audioFile)
	}

	p.publishEvent(req, result, time.Since(start))
	return result
}

// SummarizeArticle fetches and summarizes a single article URL without
// echoing the original text; used by the news endpoints.
func (p *Pipeline) SummarizeArticle(ctx context.Context, url, language string, maxLength int) (*summarize.Result, error) {
	text, err := p.extractor.FetchArticleText(url)
	if err != nil {
		return nil, err
	}
	return p.engine.Summarize(ctx, text, config.NormalizeLanguage(language), "", maxLength, config.DefaultMinSummaryLength)
}

// resolveInput produces the text to summarize, the original text to echo,
// and a user-facing error string when the input is unusable.
func (p *Pipeline) resolveInput(ctx context.Context, req types.SummarizeRequest) (text, original, errMsg string) {
	switch req.InputKind {
	case types.InputURL:
		if req.Payload == "" {
			return "", "", errURLRequired
		}
		article, err := p.extractor.FetchArticleText(req.Payload)
		if err != nil {
			log.Printf("Content extraction failed for %s: %v", req.Payload, err)
			return "", "", errFetchFailed
		}
		return article, article, ""

	case types.InputText:
		if req.Payload == "" {
			return "", "", errTextRequired
		}
		normalized, err := textproc.NormalizeInput(req.Payload)
		if err != nil {
			return "", "", errTextTooShort
		}
		return normalized, req.Payload, ""

	case types.InputAudio:
		if req.AudioPath == "" {
			return "", "", errNoAudioUploaded
		}
		transcript, err := p.transcriber.Transcribe(ctx, req.AudioPath)
		if err != nil {
			log.Printf("Transcription failed: %v", err)
			return "", "", errTranscribeFailed
		}
		return transcript, transcript, ""

	default:
		return "", "", errInvalidInputType
	}
}

func (p *Pipeline) archiveAudio(ctx context.Context, filename string) {
	if p.archive == nil {
		return
	}
	localPath := filepath.Join(p.audioDir, filename)
	if err := p.archive.Put(ctx, localPath, filename); err != nil {
		log.Printf("Audio archive upload failed for %s: %v", filename, err)
	}
}

func (p *Pipeline) publishEvent(req types.SummarizeRequest, result types.SummaryResult, elapsed time.Duration) {
	p.producer.PublishSummaryCompleted(events.SummaryEvent{
		InputKind:      string(req.InputKind),
		Language:       result.Language,
		Engine:         result.Engine,
		SummaryLength:  len(result.Summary),
		AudioFile:      result.AudioFile,
		ProcessingTime: math.Round(elapsed.Seconds()*100) / 100,
		CompletedAt:    time.Now().UTC(),
	})
}
