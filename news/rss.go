package news

import (
	"fmt"
	"log"

	"github.com/mmcdole/gofeed"

	"github.com/Dhanvanth23/Smart-Summarizer/types"
)

// FeedPresets maps friendly names to RSS feed URLs for the tertiary
// headline source.
var FeedPresets = map[string]string{
	"cna": "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml",
	"st":  "https://www.straitstimes.com/news/singapore/rss.xml",
	"hn":  "https://hnrss.org/newest",
	"tr":  "https://www.technologyreview.com/feed/",
}

// ResolveFeedURL resolves a preset name to its URL, passing through direct
// URLs unchanged.
func ResolveFeedURL(feedInput string) string {
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}

// FetchRSSHeadlines retrieves up to maxCount headlines from an RSS/Atom
// feed, normalized to the news article shape.
func FetchRSSHeadlines(feedInput string, maxCount int) ([]types.NewsArticle, error) {
	feedURL := ResolveFeedURL(feedInput)

	parser := gofeed.NewParser()
	feed, err := parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := min(len(feed.Items), maxCount)
	articles := make([]types.NewsArticle, 0, count)
	for i := 0; i < count; i++ {
		item := feed.Items[i]

		published := ""
		if item.PublishedParsed != nil {
			published = item.PublishedParsed.Format("2006-01-02 15:04:05")
		} else if item.UpdatedParsed != nil {
			published = item.UpdatedParsed.Format("2006-01-02 15:04:05")
		}

		image := types.PlaceholderImage
		if item.Image != nil && item.Image.URL != "" {
			image = item.Image.URL
		}

		description := item.Description
		if description == "" {
			description = item.Content
		}

		articles = append(articles, types.NewsArticle{
			Title:       orDefault(item.Title, "No title"),
			Description: trimDescription(description),
			URL:         orDefault(item.Link, "#"),
			Source:      orDefault(feed.Title, "RSS"),
			Image:       image,
			PublishedAt: published,
		})
	}

	log.Printf("✓ %d headlines from RSS feed %s", len(articles), feedURL)
	return articles, nil
}
