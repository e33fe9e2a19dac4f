package clients

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"github.com/spacesedan/brandpulse/config"
	"github.com/spacesedan/brandpulse/internal/models"
)

type RSSClient struct {
	Parser  *gofeed.Parser
	FeedURL string
}

func NewRSSClient(cfg config.RSSConfig, timeout time.Duration) *RSSClient {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = USER_AGENT
	return &RSSClient{Parser: parser, FeedURL: cfg.FeedURL}
}

// SearchURL fills the feed template with the escaped query. Templates
// without a %s verb are used as they are.
func (c *RSSClient) SearchURL(query string) string {
	if !strings.Contains(c.FeedURL, "%s") {
		return c.FeedURL
	}
	return fmt.Sprintf(c.FeedURL, url.QueryEscape(query))
}

func (c *RSSClient) Search(ctx context.Context, query string, limit int) ([]models.FeedItem, error) {
	feedURL := c.SearchURL(query)
	feed, err := c.Parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("[RSSClient] failed to fetch feed: %w", err)
	}

	count := min(len(feed.Items), limit)
	items := make([]models.FeedItem, 0, count)
	for _, item := range feed.Items[:count] {
		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		description := item.Description
		if description == "" {
			description = item.Content
		}

		source := feed.Title
		if item.Author != nil && item.Author.Name != "" {
			source = item.Author.Name
		}

		items = append(items, models.FeedItem{
			Title:       StripHTML(item.Title),
			Description: StripHTML(description),
			URL:         item.Link,
			PublishedAt: publishedAt,
			Source:      source,
		})
	}

	slog.Info("[RSSClient] Fetched feed items", slog.String("query", query), slog.Int("count", len(items)))
	return items, nil
}
