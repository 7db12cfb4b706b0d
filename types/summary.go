package types

// InputKind identifies how the content to summarize is supplied.
type InputKind string

const (
	InputURL   InputKind = "url"
	InputText  InputKind = "text"
	InputAudio InputKind = "audio"
)

// SummarizeRequest is a single stateless summarization job. Payload carries
// the URL or raw text; AudioPath points at a staged upload for audio input.
type SummarizeRequest struct {
	InputKind      InputKind
	Payload        string
	AudioPath      string
	TargetLanguage string
	SourceLanguage string
	MaxLength      int
	MinLength      int
}

// SummaryResult is the outcome of one pipeline run. On failure Error is set
// and Summary is empty; synthesis failures leave AudioFile empty without
// failing the request. Empty Summary, Error and AudioFile are omitted from
// the JSON payload; clients test them for absence.
type SummaryResult struct {
	Summary        string  `json:"summary,omitempty"`
	OriginalText   string  `json:"original_text"`
	EnglishSummary string  `json:"english_summary"`
	Error          string  `json:"error,omitempty"`
	AudioFile      string  `json:"audio_file,omitempty"`
	ProcessingTime float64 `json:"processing_time"`
	Language       string  `json:"language"`
	Engine         string  `json:"engine"`

	// Transcript is the full untruncated transcript for audio input,
	// for endpoints that return it verbatim. Not part of the summarize
	// payload.
	Transcript string `json:"-"`
}

// Transcription is the outcome of transcribing then summarizing an upload.
type Transcription struct {
	Transcription string `json:"transcription"`
	Summary       string `json:"summary"`
	AudioFile     string `json:"audio_file"`
	Language      string `json:"language"`
}
