// Package extractor fetches web pages and isolates the main article text
// from boilerplate.
package extractor

import (
	"errors"
	"fmt"
	"io"
	"log"
	"math/rand"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

var (
	// ErrInvalidURL reports a URL with a bad scheme or missing host.
	ErrInvalidURL = errors.New("invalid URL")

	// ErrExtractionFailed reports that every strategy and retry exhausted.
	ErrExtractionFailed = errors.New("extraction failed")
)

// userAgents is rotated across attempts to reduce blocking.
var userAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Safari/605.1.15",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:90.0) Gecko/20100101 Firefox/90.0",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/92.0.4515.107 Safari/537.36",
	"Mozilla/5.0 (iPhone; CPU iPhone OS 14_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0 Mobile/15E148 Safari/604.1",
}

// contentHints mark class names likely to wrap the main article body.
var contentHints = []string{"content", "article", "post", "entry", "story", "text", "body"}

const (
	fetchTimeout = 15 * time.Second

	// minPlausibleLength marks extractions below this as likely partial or
	// blocked fetches worth retrying.
	minPlausibleLength = 500
)

var whitespaceRE = regexp.MustCompile(`\s+`)

// Extractor fetches and extracts article text from URLs.
type Extractor struct {
	client     *http.Client
	maxRetries int
	retryDelay time.Duration
}

// New creates an Extractor with production fetch settings.
func New() *Extractor {
	return &Extractor{
		client:     &http.Client{Timeout: fetchTimeout},
		maxRetries: 3,
		retryDelay: 2 * time.Second,
	}
}

// NewWithClient creates an Extractor with a custom client and retry policy.
func NewWithClient(client *http.Client, maxRetries int, retryDelay time.Duration) *Extractor {
	return &Extractor{client: client, maxRetries: maxRetries, retryDelay: retryDelay}
}

// ValidateURL checks that raw is an absolute http(s) URL with a host.
func ValidateURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidURL
	}
	return nil
}

// FetchArticleText retrieves the page at rawURL and extracts its main text.
// It retries blocked or implausibly short fetches with increasing backoff
// before giving up with ErrExtractionFailed.
func (e *Extractor) FetchArticleText(rawURL string) (string, error) {
	if err := ValidateURL(rawURL); err != nil {
		return "", err
	}

	pageURL, _ := url.Parse(rawURL)

	for attempt := 1; attempt <= e.maxRetries; attempt++ {
		log.Printf("Fetching article from %s (attempt %d/%d)", rawURL, attempt, e.maxRetries)

		body, status, err := e.fetch(rawURL)
		if err != nil {
			log.Printf("Fetch error for %s: %v", rawURL, err)
			e.backoff(attempt)
			continue
		}

		if status == http.StatusForbidden || status == http.StatusTooManyRequests {
			log.Printf("Access denied (status %d) for %s, rotating user agent", status, rawURL)
			e.backoff(attempt)
			continue
		}
		if status == http.StatusNotFound {
			return "", fmt.Errorf("%w: page not found", ErrExtractionFailed)
		}
		if status != http.StatusOK {
			e.backoff(attempt)
			continue
		}

		content := extractContent(body, pageURL)
		if content == "" {
			log.Printf("No content could be extracted from %s, retrying", rawURL)
			e.backoff(attempt)
			continue
		}

		if len(content) < minPlausibleLength && attempt < e.maxRetries {
			log.Printf("Extracted content too short (%d chars), retrying", len(content))
			e.backoff(attempt)
			continue
		}

		return content, nil
	}

	return "", fmt.Errorf("%w: retries exhausted for %s", ErrExtractionFailed, rawURL)
}

func (e *Extractor) fetch(rawURL string) (string, int, error) {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return "", 0, err
	}
	req.Header.Set("User-Agent", userAgents[rand.Intn(len(userAgents))])
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Referer", "https://www.google.com/")

	resp, err := e.client.Do(req)
	if err != nil {
		return "", 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", resp.StatusCode, err
	}
	return string(body), resp.StatusCode, nil
}

func (e *Extractor) backoff(attempt int) {
	time.Sleep(time.Duration(attempt) * e.retryDelay)
}

// extractContent tries the extraction strategies in order: readability,
// the <article> element, the largest content-hint class block, a main
// container, and finally the document body.
func extractContent(html string, pageURL *url.URL) string {
	if article, err := readability.FromReader(strings.NewReader(html), pageURL); err == nil {
		if text := collapseWhitespace(article.TextContent); len(text) >= minPlausibleLength {
			log.Printf("✓ Content extracted via readability (%d chars)", len(text))
			return text
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return ""
	}

	doc.Find("script, style, nav, footer, header, aside, iframe, noscript").Remove()

	if text := collapseWhitespace(doc.Find("article").First().Text()); text != "" {
		log.Printf("✓ Content extracted from article tag")
		return text
	}

	if text := largestHintedBlock(doc); text != "" {
		return text
	}

	for _, sel := range []string{"main", "#content", "#main"} {
		if text := collapseWhitespace(doc.Find(sel).First().Text()); text != "" {
			log.Printf("✓ Content extracted from %s container", sel)
			return text
		}
	}

	if text := collapseWhitespace(doc.Find("body").Text()); text != "" {
		log.Printf("✓ Content extracted from body tag")
		return text
	}

	return ""
}

// largestHintedBlock returns the longest text among elements whose class
// attribute contains a content-hint keyword.
func largestHintedBlock(doc *goquery.Document) string {
	for _, hint := range contentHints {
		var best string
		doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
			class := strings.ToLower(s.AttrOr("class", ""))
			if !strings.Contains(class, hint) {
				return
			}
			if text := collapseWhitespace(s.Text()); len(text) > len(best) {
				best = text
			}
		})
		if best != "" {
			log.Printf("✓ Content extracted from class containing %q", hint)
			return best
		}
	}
	return ""
}

func collapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRE.ReplaceAllString(text, " "))
}
