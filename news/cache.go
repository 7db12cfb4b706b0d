package news

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Dhanvanth23/Smart-Summarizer/types"
)

// cacheTTL bounds how long an upstream headline response is reused.
const cacheTTL = 5 * time.Minute

// Cache is a Redis-backed cache of upstream headline responses. All
// operations are best effort: a cache failure is logged and treated as a
// miss.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache connects to Redis at addr. Returns nil (cache disabled) when
// addr is empty.
func NewCache(addr, password string) *Cache {
	if addr == "" {
		return nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})
	return &Cache{client: client, ttl: cacheTTL}
}

func cacheKey(language, category string, count int) string {
	return fmt.Sprintf("news:%s:%s:%d", language, category, count)
}

// Get returns the cached article list for the query, if present.
func (c *Cache) Get(ctx context.Context, language, category string, count int) ([]types.NewsArticle, bool) {
	payload, err := c.client.Get(ctx, cacheKey(language, category, count)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("News cache get failed: %v", err)
		}
		return nil, false
	}

	var articles []types.NewsArticle
	if err := json.Unmarshal(payload, &articles); err != nil {
		log.Printf("News cache payload corrupt, ignoring: %v", err)
		return nil, false
	}
	return articles, len(articles) > 0
}

// Set stores an article list for the query.
func (c *Cache) Set(ctx context.Context, language, category string, count int, articles []types.NewsArticle) {
	payload, err := json.Marshal(articles)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(language, category, count), payload, c.ttl).Err(); err != nil {
		log.Printf("News cache set failed: %v", err)
	}
}

// Close releases the Redis connection.
func (c *Cache) Close() error {
	if c == nil {
		return nil
	}
	return c.client.Close()
}
