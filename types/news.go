package types

// PlaceholderImage is served when an upstream article carries no image.
const PlaceholderImage = "/static/img/news-placeholder.jpg"

// NewsArticle is a single headline normalized across upstream news APIs.
type NewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	Image       string `json:"image"`
	PublishedAt string `json:"published_at"`
	Summary     string `json:"summary,omitempty"`
}

// NewsPage is the paginated response for the news feed endpoint.
type NewsPage struct {
	Articles []NewsArticle `json:"articles"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	HasMore  bool          `json:"hasMore"`
}
