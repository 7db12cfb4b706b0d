package news

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dhanvanth23/Smart-Summarizer/types"
)

func primaryPayload(n int) string {
	var items []string
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(
			`{"title":"Primary %d","snippet":"snippet","link":"https://example.com/%d","source":{"title":"Example"},"pubDate":"2026-08-29"}`, i, i))
	}
	return `{"items":[` + strings.Join(items, ",") + `]}`
}

func backupPayload(n int) string {
	var items []string
	for i := 0; i < n; i++ {
		items = append(items, fmt.Sprintf(
			`{"title":"Backup %d","description":"desc","url":"https://example.com/b/%d","source":{"name":"Backup"},"publishedAt":"2026-08-29"}`, i, i))
	}
	return `{"status":"ok","articles":[` + strings.Join(items, ",") + `]}`
}

func newTestService(primary, backup *httptest.Server) *Service {
	s := NewService("rapid-key", "news-key", nil, "")
	s.SetEndpoints(primary.URL, backup.URL, primary.Client(), 0)
	return s
}

func TestFetchPrimarySuccess(t *testing.T) {
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("x-rapidapi-key"); got != "rapid-key" {
			t.Errorf("missing rapidapi key header, got %q", got)
		}
		fmt.Fprint(w, primaryPayload(4))
	}))
	defer primary.Close()
	backup := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("backup must not be called when primary succeeds")
	}))
	defer backup.Close()

	articles := newTestService(primary, backup).Fetch(context.Background(), "en", "general", 4)
	if len(articles) != 4 {
		t.Fatalf("got %d articles; want 4", len(articles))
	}
	if articles[0].Title != "Primary 0" || articles[0].Source != "Example" {
		t.Fatalf("unexpected first article: %+v", articles[0])
	}
}

func TestFetchRetriesRateLimitThenFallsThrough(t *testing.T) {
	var primaryCalls int
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		primaryCalls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer primary.Close()
	backup := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, backupPayload(2))
	}))
	defer backup.Close()

	articles := newTestService(primary, backup).Fetch(context.Background(), "en", "general", 2)
	if primaryCalls != 3 {
		t.Fatalf("primary calls = %d; want 3 (retry cap)", primaryCalls)
	}
	if len(articles) != 2 || articles[0].Title != "Backup 0" {
		t.Fatalf("backup articles not used: %+v", articles)
	}
}

func TestFetchClientErrorAbandonsPrimaryImmediately(t *testing.T) {
	var primaryCalls int
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		primaryCalls++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer primary.Close()
	backup := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, backupPayload(1))
	}))
	defer backup.Close()

	newTestService(primary, backup).Fetch(context.Background(), "en", "general", 1)
	if primaryCalls != 1 {
		t.Fatalf("4xx must abandon primary immediately, got %d calls", primaryCalls)
	}
}

func TestFetchBothAPIsFailReturnsPlaceholder(t *testing.T) {
	fail := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	primary := httptest.NewServer(fail)
	defer primary.Close()
	backup := httptest.NewServer(fail)
	defer backup.Close()

	articles := newTestService(primary, backup).Fetch(context.Background(), "en", "general", 10)
	if len(articles) != 1 {
		t.Fatalf("got %d articles; want exactly one placeholder", len(articles))
	}
	if articles[0].Source != "System" || articles[0].Image != types.PlaceholderImage {
		t.Fatalf("unexpected placeholder: %+v", articles[0])
	}
}

func TestFetchPrimaryLanguageRemap(t *testing.T) {
	var gotLR string
	primary := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLR = r.URL.Query().Get("lr")
		fmt.Fprint(w, primaryPayload(1))
	}))
	defer primary.Close()
	backup := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer backup.Close()

	newTestService(primary, backup).Fetch(context.Background(), "zh", "general", 1)
	if gotLR != "zh-CN-US" {
		t.Fatalf("lr = %q; want zh-CN-US", gotLR)
	}
}

func TestPaginate(t *testing.T) {
	articles := make([]types.NewsArticle, 20)
	for i := range articles {
		articles[i].Title = fmt.Sprintf("article %d", i)
	}

	t.Run("first page", func(t *testing.T) {
		page := Paginate(articles, 20, 1)
		if len(page.Articles) != 10 || page.Page != 1 || !page.HasMore {
			t.Fatalf("page = %+v", page)
		}
		if page.Articles[0].Title != "article 0" {
			t.Fatalf("first article = %q", page.Articles[0].Title)
		}
	})

	t.Run("second page exhausts list", func(t *testing.T) {
		page := Paginate(articles, 20, 2)
		if len(page.Articles) != 10 || page.HasMore {
			t.Fatalf("page = %+v", page)
		}
		if page.Articles[0].Title != "article 10" {
			t.Fatalf("first article = %q", page.Articles[0].Title)
		}
	})

	t.Run("overrun clamps to page one", func(t *testing.T) {
		// count=20, page=3: start 20 >= 20 articles, so reset.
		page := Paginate(articles, 20, 3)
		if page.Page != 1 {
			t.Fatalf("page = %d; want clamp to 1", page.Page)
		}
		if len(page.Articles) != 10 || page.Articles[0].Title != "article 0" {
			t.Fatalf("clamped slice wrong: %+v", page.Articles[0])
		}
	})

	t.Run("single placeholder", func(t *testing.T) {
		page := Paginate([]types.NewsArticle{placeholderArticle()}, 20, 1)
		if len(page.Articles) != 1 || page.HasMore {
			t.Fatalf("page = %+v", page)
		}
	})
}

func TestTrimDescription(t *testing.T) {
	if got := trimDescription(""); got != "No description available" {
		t.Fatalf("empty description: %q", got)
	}
	long := strings.Repeat("d", 300)
	got := trimDescription(long)
	if len(got) != 203 || !strings.HasSuffix(got, "...") {
		t.Fatalf("trimmed length = %d", len(got))
	}
}

func TestEnrich(t *testing.T) {
	articles := []types.NewsArticle{
		{Title: "ok", URL: "https://example.com/a", Description: "desc a"},
		{Title: "fails", URL: "https://example.com/b", Description: strings.Repeat("b", 250)},
		{Title: "no url", URL: "#", Description: "desc c"},
	}

	Enrich(context.Background(), articles, func(_ context.Context, url string) (string, error) {
		if strings.HasSuffix(url, "/a") {
			return "a summary", nil
		}
		return "", errors.New("extraction failed")
	})

	if articles[0].Summary != "a summary" {
		t.Fatalf("enriched summary = %q", articles[0].Summary)
	}
	if !strings.HasSuffix(articles[1].Summary, "...") || len(articles[1].Summary) != 203 {
		t.Fatalf("failed enrichment should trim description, got %d chars", len(articles[1].Summary))
	}
	if articles[2].Summary != "desc c" {
		t.Fatalf("url-less article summary = %q", articles[2].Summary)
	}
}
