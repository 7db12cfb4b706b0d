// Package summarize turns extracted text into a summary, trying an ordered
// list of model strategies and degrading to extractive truncation, with an
// English round-trip for non-English requests.
package summarize

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Dhanvanth23/Smart-Summarizer/textproc"
	"github.com/Dhanvanth23/Smart-Summarizer/translate"
)

// ShortTextThreshold is the length below which summarization is skipped and
// the input is passed through unchanged (modulo translation). Summarizing
// already-short text risks truncation artifacts.
const ShortTextThreshold = 100

// Strategy is one summarization backend. Implementations return an error
// (or empty output) to hand off to the next strategy in line.
type Strategy interface {
	// Name identifies the backend in responses and logs.
	Name() string

	// Summarize produces a summary of English text within the given
	// length bounds.
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// Translator converts text between languages. *translate.Client satisfies it.
type Translator interface {
	Translate(text, targetLang, srcLang string) (string, error)
}

// Result is the outcome of a summarization run.
type Result struct {
	// Summary is in the requested target language.
	Summary string
	// EnglishSummary is the English reference the target summary was
	// translated from; for English requests the two are identical.
	EnglishSummary string
	// Engine names the strategy that produced the summary.
	Engine string
}

// Engine sequences translation and the summarization strategies.
type Engine struct {
	strategies []Strategy
	translator Translator
}

// NewEngine creates an Engine trying strategies in order.
func NewEngine(translator Translator, strategies ...Strategy) *Engine {
	return &Engine{strategies: strategies, translator: translator}
}

// Summarize runs the full algorithm: short-text pass-through, optional
// translation to English, the strategy chain, the extractive tail, and
// translation back to the target language. Once a valid English summary
// exists, a failed target translation degrades to English instead of
// failing the request.
func (e *Engine) Summarize(ctx context.Context, text, targetLang, srcLang string, maxLength, minLength int) (*Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty text provided for summarization")
	}

	if minLength >= maxLength {
		minLength = max(10, maxLength/2)
	}

	if len(text) < ShortTextThreshold {
		log.Printf("Text too short for summarization (%d chars), passing through", len(text))
		return e.passThrough(text, targetLang), nil
	}

	english := text
	if targetLang != "en" || explicitNonEnglish(srcLang) {
		translated, err := e.translator.Translate(text, "en", normalizeSource(srcLang))
		if err != nil {
			return nil, fmt.Errorf("translating input to English: %w", err)
		}
		english = translated
	}

	summary, engine := e.runStrategies(ctx, english, maxLength, minLength)
	if summary == "" {
		log.Printf("All summarizers failed, building extractive summary")
		summary, engine = textproc.ExtractiveSummary(english, maxLength), "extractive"
	}

	if targetLang == "en" {
		return &Result{Summary: summary, EnglishSummary: summary, Engine: engine}, nil
	}

	translated, err := e.translator.Translate(summary, targetLang, "en")
	if err != nil {
		// A valid English summary exists; never surface a translation
		// failure past this point.
		log.Printf("Translation to %s failed, returning English summary: %v", targetLang, err)
		return &Result{Summary: summary, EnglishSummary: summary, Engine: engine}, nil
	}
	return &Result{Summary: translated, EnglishSummary: summary, Engine: engine}, nil
}

func (e *Engine) passThrough(text, targetLang string) *Result {
	if targetLang == "en" {
		return &Result{Summary: text, EnglishSummary: text, Engine: "passthrough"}
	}
	translated, err := e.translator.Translate(text, targetLang, translate.AutoDetect)
	if err != nil || translated == "" {
		translated = text
	}
	return &Result{Summary: translated, EnglishSummary: text, Engine: "passthrough"}
}

func (e *Engine) runStrategies(ctx context.Context, english string, maxLength, minLength int) (string, string) {
	for _, s := range e.strategies {
		summary, err := s.Summarize(ctx, english, maxLength, minLength)
		if err != nil {
			log.Printf("Summarizer %s failed: %v", s.Name(), err)
			continue
		}
		if summary = strings.TrimSpace(summary); summary != "" {
			log.Printf("✓ Summarized with %s", s.Name())
			return summary, s.Name()
		}
	}
	return "", ""
}

func explicitNonEnglish(srcLang string) bool {
	return srcLang != "" && srcLang != translate.AutoDetect && srcLang != "en"
}

func normalizeSource(srcLang string) string {
	if srcLang == "" {
		return translate.AutoDetect
	}
	return srcLang
}
