package api

import (
	"net/http"
	"strconv"

	"github.com/Dhanvanth23/Smart-Summarizer/config"
	"github.com/Dhanvanth23/Smart-Summarizer/news"

	"github.com/gin-gonic/gin"
)

const defaultNewsCount = 10

// NewsController serves the headlines feed.
type NewsController struct {
	service  *news.Service
	enricher news.ArticleSummarizer
}

// NewNewsController wires the feed service and an optional per-article
// summarizer used when callers ask for enriched headlines.
func NewNewsController(service *news.Service, enricher news.ArticleSummarizer) *NewsController {
	return &NewsController{service: service, enricher: enricher}
}

// RegisterNewsRoutes registers news-related routes.
func RegisterNewsRoutes(r *gin.Engine, nc *NewsController) {
	r.GET("/get_news", nc.handleGetNews)
}

// handleGetNews returns one page of headlines.
// Query params: language, category, count, page, summarize (bool, optional)
func (nc *NewsController) handleGetNews(c *gin.Context) {
	language := config.NormalizeLanguage(c.DefaultQuery("language", config.DefaultLanguage))
	category := c.DefaultQuery("category", "general")
	if _, ok := config.NewsCategories[category]; !ok {
		category = "general"
	}
	count := queryInt(c, "count", defaultNewsCount)
	page := queryInt(c, "page", 1)

	articles := nc.service.Fetch(c.Request.Context(), language, category, count)
	pageResult := news.Paginate(articles, count, page)

	if nc.enricher != nil && c.Query("summarize") == "true" {
		news.Enrich(c.Request.Context(), pageResult.Articles, nc.enricher)
	}

	c.JSON(http.StatusOK, pageResult)
}

func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
