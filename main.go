package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/Dhanvanth23/Smart-Summarizer/api"
	"github.com/Dhanvanth23/Smart-Summarizer/config"
	"github.com/Dhanvanth23/Smart-Summarizer/events"
	"github.com/Dhanvanth23/Smart-Summarizer/extractor"
	"github.com/Dhanvanth23/Smart-Summarizer/news"
	"github.com/Dhanvanth23/Smart-Summarizer/pipeline"
	"github.com/Dhanvanth23/Smart-Summarizer/speech"
	"github.com/Dhanvanth23/Smart-Summarizer/storage"
	"github.com/Dhanvanth23/Smart-Summarizer/summarize"
	"github.com/Dhanvanth23/Smart-Summarizer/translate"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := config.Load()
	if err := os.MkdirAll(cfg.AudioDir, 0o755); err != nil {
		log.Fatalf("Failed to create audio directory %s: %v", cfg.AudioDir, err)
	}

	translator := translate.NewClient()
	engine := summarize.NewEngine(translator,
		summarize.NewCohere(cfg.CohereAPIKey, ""),
		summarize.NewOpenAI(cfg.OpenAIAPIKey, ""),
	)
	synthesizer := speech.NewSynthesizer(cfg.OpenAIAPIKey, config.BuildVoiceTable(config.SupportedLanguages), cfg.AudioDir)
	transcriber := speech.NewWhisperTranscriber(cfg.OpenAIAPIKey)

	pipe := pipeline.New(extractor.New(), transcriber, engine, synthesizer, cfg.AudioDir)

	if archive, err := storage.NewAudioArchive(context.Background(), storage.ArchiveConfig{
		Bucket: cfg.S3Bucket,
		Region: cfg.S3Region,
		Prefix: cfg.S3Prefix,
	}); err != nil {
		log.Printf("Warning: failed to init S3 client: %v (audio archiving disabled)", err)
	} else if archive != nil {
		log.Printf("✓ Archiving audio to s3://%s/%s", cfg.S3Bucket, cfg.S3Prefix)
		pipe.WithArchive(archive)
	}

	if producer, err := events.NewProducer(cfg.KafkaBrokers, cfg.KafkaTopic); err != nil {
		log.Printf("Warning: failed to connect to Kafka: %v (events disabled)", err)
	} else if producer != nil {
		log.Printf("✓ Publishing summary events to %s", cfg.KafkaTopic)
		defer producer.Close()
		pipe.WithProducer(producer)
	}

	cache := news.NewCache(cfg.RedisAddr, cfg.RedisPass)
	if cache != nil {
		log.Printf("✓ Caching news responses in Redis at %s", cfg.RedisAddr)
		defer cache.Close()
	}
	headlines := news.NewService(cfg.RapidAPIKey, cfg.NewsAPIKey, cache, cfg.NewsRSSFeed)

	enricher := func(ctx context.Context, url string) (string, error) {
		res, err := pipe.SummarizeArticle(ctx, url, config.DefaultLanguage, 100)
		if err != nil {
			return "", err
		}
		return res.Summary, nil
	}

	r := api.NewRouter(api.RouterConfig{
		TemplatesGlob: "templates/*",
		StaticDir:     "static/img",
		AudioDir:      cfg.AudioDir,
	},
		api.NewSummaryController(pipe, translator, cfg.AudioDir),
		api.NewNewsController(headlines, enricher),
	)

	addr := ":" + cfg.Port
	log.Printf("Starting API server on %s", addr)
	log.Println("API endpoints available:")
	log.Println("  GET  /")
	log.Println("  GET  /health")
	log.Println("  POST /summarize")
	log.Println("  GET  /get_news")
	log.Println("  POST /summarize_news")
	log.Println("  POST /process_audio")
	log.Println("  POST /detect_language")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
