package news

import (
	"context"
	"log"

	"github.com/Dhanvanth23/Smart-Summarizer/types"
)

// ArticleSummarizer produces a short summary for an article URL.
type ArticleSummarizer func(ctx context.Context, url string) (string, error)

// Enrich attaches a summary to each article by summarizing its linked page.
// Articles whose extraction or summarization fails keep their trimmed
// description as the summary instead.
func Enrich(ctx context.Context, articles []types.NewsArticle, summarize ArticleSummarizer) {
	for i := range articles {
		article := &articles[i]
		if article.URL == "" || article.URL == "#" {
			article.Summary = article.Description
			continue
		}
		summary, err := summarize(ctx, article.URL)
		if err != nil || summary == "" {
			log.Printf("Enrichment failed for %s, using description: %v", article.URL, err)
			article.Summary = trimDescription(article.Description)
			continue
		}
		article.Summary = summary
	}
}
