package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/Dhanvanth23/Smart-Summarizer/config"
	"github.com/Dhanvanth23/Smart-Summarizer/pipeline"
	"github.com/Dhanvanth23/Smart-Summarizer/speech"
	"github.com/Dhanvanth23/Smart-Summarizer/translate"
	"github.com/Dhanvanth23/Smart-Summarizer/types"

	"github.com/gin-gonic/gin"
)

// SummaryController serves the summarization endpoints and the form page.
type SummaryController struct {
	pipe     *pipeline.Pipeline
	detector *translate.Client
	audioDir string
}

// NewSummaryController wires the pipeline and language detector.
func NewSummaryController(pipe *pipeline.Pipeline, detector *translate.Client, audioDir string) *SummaryController {
	return &SummaryController{pipe: pipe, detector: detector, audioDir: audioDir}
}

// RegisterSummaryRoutes registers summarization-related routes.
func RegisterSummaryRoutes(r *gin.Engine, sc *SummaryController) {
	r.GET("/", sc.handleIndex)
	r.POST("/summarize", sc.handleSummarize)
	r.POST("/summarize_news", sc.handleSummarizeNews)
	r.POST("/process_audio", sc.handleProcessAudio)
	r.POST("/detect_language", sc.handleDetectLanguage)
}

func (sc *SummaryController) handleIndex(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"languages":  config.SupportedLanguages,
		"categories": config.NewsCategories,
	})
}

// handleSummarize accepts the main form submission. XHR callers get the
// result as JSON; plain form posts get the page re-rendered with it.
func (sc *SummaryController) handleSummarize(c *gin.Context) {
	req := types.SummarizeRequest{
		InputKind:      types.InputKind(c.PostForm("input_type")),
		TargetLanguage: c.DefaultPostForm("language", config.DefaultLanguage),
		SourceLanguage: c.PostForm("source_language"),
		MaxLength:      postFormInt(c, "max_length", config.DefaultMaxSummaryLength),
		MinLength:      postFormInt(c, "min_length", config.DefaultMinSummaryLength),
	}

	switch req.InputKind {
	case types.InputURL:
		req.Payload = c.PostForm("url")
	case types.InputText:
		req.Payload = c.PostForm("text")
	case types.InputAudio:
		path, cleanup, ok := sc.stageUpload(c)
		if ok {
			defer cleanup()
			req.AudioPath = path
		}
	}

	result := sc.pipe.Run(c.Request.Context(), req)
	if isXHR(c) {
		c.JSON(http.StatusOK, result)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"result":     result,
		"languages":  config.SupportedLanguages,
		"categories": config.NewsCategories,
	})
}

// handleSummarizeNews fetches and summarizes a single article URL.
func (sc *SummaryController) handleSummarizeNews(c *gin.Context) {
	result := sc.pipe.Run(c.Request.Context(), types.SummarizeRequest{
		InputKind:      types.InputURL,
		Payload:        c.PostForm("url"),
		TargetLanguage: c.DefaultPostForm("language", config.DefaultLanguage),
		MaxLength:      postFormInt(c, "max_length", config.DefaultMaxSummaryLength),
	})
	if result.Error != "" {
		c.JSON(http.StatusOK, gin.H{"error": result.Error})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary":    result.Summary,
		"audio_file": result.AudioFile,
		"language":   result.Language,
		"engine":     result.Engine,
	})
}

// handleProcessAudio transcribes an upload and summarizes the transcript.
func (sc *SummaryController) handleProcessAudio(c *gin.Context) {
	req := types.SummarizeRequest{
		InputKind:      types.InputAudio,
		TargetLanguage: c.DefaultPostForm("language", config.DefaultLanguage),
		MaxLength:      postFormInt(c, "max_length", config.DefaultMaxSummaryLength),
	}
	path, cleanup, ok := sc.stageUpload(c)
	if ok {
		defer cleanup()
		req.AudioPath = path
	}

	result := sc.pipe.Run(c.Request.Context(), req)
	if result.Error != "" {
		c.JSON(http.StatusOK, gin.H{"error": result.Error})
		return
	}
	c.JSON(http.StatusOK, types.Transcription{
		Transcription: result.Transcript,
		Summary:       result.Summary,
		AudioFile:     result.AudioFile,
		Language:      result.Language,
	})
}

// handleDetectLanguage runs best-effort language detection over a snippet.
func (sc *SummaryController) handleDetectLanguage(c *gin.Context) {
	text := c.PostForm("text")
	if text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Text input is required."})
		return
	}

	code := sc.detector.Detect(text)
	name, ok := config.SupportedLanguages[code]
	if !ok {
		name = "Unknown"
	}
	c.JSON(http.StatusOK, gin.H{
		"detected_language": code,
		"language_name":     name,
	})
}

// stageUpload copies the multipart audio upload into the audio directory.
// The returned cleanup removes the staged file.
func (sc *SummaryController) stageUpload(c *gin.Context) (string, func(), bool) {
	header, err := c.FormFile("audio_file")
	if err != nil {
		return "", nil, false
	}
	src, err := header.Open()
	if err != nil {
		log.Printf("Failed to open uploaded audio: %v", err)
		return "", nil, false
	}
	defer src.Close()

	path, cleanup, err := speech.StageUpload(src, sc.audioDir)
	if err != nil {
		log.Printf("Failed to stage uploaded audio: %v", err)
		return "", nil, false
	}
	return path, cleanup, true
}

func postFormInt(c *gin.Context, key string, def int) int {
	v := c.PostForm(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}

func isXHR(c *gin.Context) bool {
	return c.GetHeader("X-Requested-With") == "XMLHttpRequest"
}
