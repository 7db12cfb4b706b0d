// Package news fetches headlines from third-party APIs with bounded
// retries, falling back across a backup API, an optional RSS feed, and a
// synthetic placeholder so callers never receive zero articles.
package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Dhanvanth23/Smart-Summarizer/config"
	"github.com/Dhanvanth23/Smart-Summarizer/types"
)

const (
	defaultPrimaryBase = "https://google-news13.p.rapidapi.com"
	primaryHost        = "google-news13.p.rapidapi.com"
	defaultBackupURL   = "https://newsapi.org/v2/top-headlines"

	// descriptionLimit trims raw upstream descriptions for display.
	descriptionLimit = 200
)

// primaryLanguageMap remaps codes the primary API spells differently.
var primaryLanguageMap = map[string]string{"zh": "zh-CN", "pt": "pt-BR"}

// Service fetches and paginates news headlines.
type Service struct {
	httpClient *http.Client

	rapidAPIKey string
	newsAPIKey  string
	primaryBase string
	backupURL   string

	maxRetries int
	retryDelay time.Duration

	cache   *Cache
	rssFeed string
}

// NewService creates a Service with production endpoints. cache and rssFeed
// are optional; pass nil and "" to disable them.
func NewService(rapidAPIKey, newsAPIKey string, cache *Cache, rssFeed string) *Service {
	return &Service{
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		rapidAPIKey: rapidAPIKey,
		newsAPIKey:  newsAPIKey,
		primaryBase: defaultPrimaryBase,
		backupURL:   defaultBackupURL,
		maxRetries:  config.MaxAPIRetries,
		retryDelay:  config.APIRetryDelay,
		cache:       cache,
		rssFeed:     rssFeed,
	}
}

// SetEndpoints overrides the upstream API endpoints and retry delay, for tests.
func (s *Service) SetEndpoints(primaryBase, backupURL string, client *http.Client, retryDelay time.Duration) {
	s.primaryBase = primaryBase
	s.backupURL = backupURL
	if client != nil {
		s.httpClient = client
	}
	s.retryDelay = retryDelay
}

// Fetch returns up to count headlines for the language and category. It
// never returns an empty list: when every source is exhausted it returns a
// single placeholder article.
func (s *Service) Fetch(ctx context.Context, language, category string, count int) []types.NewsArticle {
	if s.cache != nil {
		if articles, ok := s.cache.Get(ctx, language, category, count); ok {
			log.Printf("✓ News served from cache (%s/%s)", language, category)
			return articles
		}
	}

	articles, err := s.fetchPrimary(ctx, language, category, count)
	if err != nil {
		log.Printf("Primary news API failed: %v", err)
		articles, err = s.fetchBackup(ctx, language, category, count)
	}
	if err != nil && s.rssFeed != "" {
		log.Printf("Backup news API failed: %v", err)
		articles, err = FetchRSSHeadlines(s.rssFeed, count)
	}
	if err != nil || len(articles) == 0 {
		log.Printf("All news sources exhausted, returning placeholder")
		return []types.NewsArticle{placeholderArticle()}
	}

	if s.cache != nil {
		s.cache.Set(ctx, language, category, count, articles)
	}
	return articles
}

// Paginate slices articles into the requested page. Page size is count/2;
// when the start index overruns the list the page clamps back to 1.
func Paginate(articles []types.NewsArticle, count, page int) types.NewsPage {
	pageSize := count / 2
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= len(articles) {
		page = 1
		start = 0
	}
	end := start + pageSize
	if end > len(articles) {
		end = len(articles)
	}

	return types.NewsPage{
		Articles: articles[start:end],
		Total:    len(articles),
		Page:     page,
		HasMore:  end < len(articles),
	}
}

// fetchPrimary calls the RapidAPI headlines service. Rate limits retry with
// linearly increasing backoff; any other client error abandons the primary
// immediately.
func (s *Service) fetchPrimary(ctx context.Context, language, category string, count int) ([]types.NewsArticle, error) {
	lang := language
	if mapped, ok := primaryLanguageMap[language]; ok {
		lang = mapped
	}

	endpoint := fmt.Sprintf("%s/%s?%s", s.primaryBase, url.PathEscape(category), url.Values{
		"lr":  {lang + "-US"},
		"num": {fmt.Sprint(count)},
	}.Encode())

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("x-rapidapi-key", s.rapidAPIKey)
		req.Header.Set("x-rapidapi-host", primaryHost)

		articles, status, err := s.doFetch(req, parsePrimary, count)
		switch {
		case err == nil && len(articles) > 0:
			log.Printf("✓ %d articles from primary news API", len(articles))
			return articles, nil
		case status == http.StatusTooManyRequests:
			log.Printf("Rate limited by primary news API (attempt %d/%d)", attempt, s.maxRetries)
			time.Sleep(time.Duration(attempt) * s.retryDelay)
		case status >= 400 && status < 500:
			return nil, fmt.Errorf("primary news API client error %d", status)
		default:
			log.Printf("Primary news API attempt %d/%d failed: status=%d err=%v", attempt, s.maxRetries, status, err)
			time.Sleep(s.retryDelay / 2)
		}
	}
	return nil, fmt.Errorf("primary news API retries exhausted")
}

// fetchBackup calls the NewsAPI top-headlines endpoint with the same retry
// policy as the primary.
func (s *Service) fetchBackup(ctx context.Context, language, category string, count int) ([]types.NewsArticle, error) {
	endpoint := s.backupURL + "?" + url.Values{
		"apiKey":   {s.newsAPIKey},
		"language": {shortLang(language)},
		"country":  {"us"},
		"category": {category},
		"pageSize": {fmt.Sprint(count)},
	}.Encode()

	for attempt := 1; attempt <= s.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}

		articles, status, err := s.doFetch(req, parseBackup, count)
		switch {
		case err == nil && len(articles) > 0:
			log.Printf("✓ %d articles from backup news API", len(articles))
			return articles, nil
		case status == http.StatusTooManyRequests:
			log.Printf("Rate limited by backup news API (attempt %d/%d)", attempt, s.maxRetries)
			time.Sleep(time.Duration(attempt) * s.retryDelay)
		case status >= 400 && status < 500:
			return nil, fmt.Errorf("backup news API client error %d", status)
		default:
			log.Printf("Backup news API attempt %d/%d failed: status=%d err=%v", attempt, s.maxRetries, status, err)
			time.Sleep(s.retryDelay / 2)
		}
	}
	return nil, fmt.Errorf("backup news API retries exhausted")
}

type articleParser func(body []byte, count int) ([]types.NewsArticle, error)

func (s *Service) doFetch(req *http.Request, parse articleParser, count int) ([]types.NewsArticle, int, error) {
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, fmt.Errorf("status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, err
	}

	articles, err := parse(body, count)
	return articles, resp.StatusCode, err
}

// parsePrimary normalizes the RapidAPI response shape.
func parsePrimary(body []byte, count int) ([]types.NewsArticle, error) {
	var payload struct {
		Items []struct {
			Title   string `json:"title"`
			Snippet string `json:"snippet"`
			Link    string `json:"link"`
			Source  struct {
				Title string `json:"title"`
			} `json:"source"`
			Image   string `json:"image"`
			PubDate string `json:"pubDate"`
		} `json:"items"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("primary news API JSON parse error: %w", err)
	}

	articles := make([]types.NewsArticle, 0, len(payload.Items))
	for _, item := range payload.Items {
		if len(articles) == count {
			break
		}
		articles = append(articles, types.NewsArticle{
			Title:       orDefault(item.Title, "No title"),
			Description: trimDescription(item.Snippet),
			URL:         orDefault(item.Link, "#"),
			Source:      orDefault(item.Source.Title, "Unknown"),
			Image:       orDefault(item.Image, types.PlaceholderImage),
			PublishedAt: orDefault(item.PubDate, time.Now().Format("2006-01-02 15:04:05")),
		})
	}
	return articles, nil
}

// parseBackup normalizes the NewsAPI response shape.
func parseBackup(body []byte, count int) ([]types.NewsArticle, error) {
	var payload struct {
		Articles []struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			URL         string `json:"url"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
			URLToImage  string `json:"urlToImage"`
			PublishedAt string `json:"publishedAt"`
		} `json:"articles"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("backup news API JSON parse error: %w", err)
	}

	articles := make([]types.NewsArticle, 0, len(payload.Articles))
	for _, item := range payload.Articles {
		if len(articles) == count {
			break
		}
		articles = append(articles, types.NewsArticle{
			Title:       orDefault(item.Title, "No title"),
			Description: trimDescription(item.Description),
			URL:         orDefault(item.URL, "#"),
			Source:      orDefault(item.Source.Name, "Unknown"),
			Image:       orDefault(item.URLToImage, types.PlaceholderImage),
			PublishedAt: orDefault(item.PublishedAt, time.Now().Format("2006-01-02 15:04:05")),
		})
	}
	return articles, nil
}

func placeholderArticle() types.NewsArticle {
	return types.NewsArticle{
		Title:       "Unable to fetch news at this time",
		Description: "Our news services are currently unavailable. Please try again later.",
		URL:         "#",
		Source:      "System",
		Image:       types.PlaceholderImage,
		PublishedAt: time.Now().Format("2006-01-02 15:04:05"),
	}
}

func trimDescription(desc string) string {
	if desc == "" {
		return "No description available"
	}
	if len(desc) > descriptionLimit {
		return desc[:descriptionLimit] + "..."
	}
	return desc
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

func shortLang(language string) string {
	if len(language) > 2 {
		return language[:2]
	}
	return language
}
