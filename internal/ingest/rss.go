package ingest

import (
	"context"
	"time"

	"github.com/spacesedan/brandpulse/internal/models"
	"github.com/spacesedan/brandpulse/internal/table"
)

var RSSColumns = []string{"title", "description", "url", "published_at", "source"}

type FeedSearcher interface {
	Search(ctx context.Context, query string, limit int) ([]models.FeedItem, error)
}

type RSSSource struct {
	Client   FeedSearcher
	MaxItems int
}

func (s *RSSSource) Name() string { return "rss" }

func (s *RSSSource) Fetch(ctx context.Context, brand string) (*table.Table, error) {
	items, err := s.Client.Search(ctx, brand, s.MaxItems)
	if err != nil {
		return nil, err
	}

	tbl := table.New(RSSColumns...)
	for _, item := range items {
		published := ""
		if !item.PublishedAt.IsZero() {
			published = item.PublishedAt.UTC().Format(time.RFC3339)
		}
		tbl.Append(item.Title, item.Description, item.URL, published, item.Source)
	}
	return tbl, nil
}
