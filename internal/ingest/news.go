package ingest

import (
	"context"

	"github.com/spacesedan/brandpulse/internal/models"
	"github.com/spacesedan/brandpulse/internal/table"
)

var NewsColumns = []string{"title", "description", "content", "url", "published_at", "source"}

type ArticleSearcher interface {
	Everything(ctx context.Context, query, language string, pageSize int) (*models.NewsAPIEverythingResponse, error)
}

type NewsSource struct {
	Client      ArticleSearcher
	Language    string
	MaxArticles int
}

func (s *NewsSource) Name() string { return "news" }

func (s *NewsSource) Fetch(ctx context.Context, brand string) (*table.Table, error) {
	resp, err := s.Client.Everything(ctx, brand, s.Language, s.MaxArticles)
	if err != nil {
		return nil, err
	}

	tbl := table.New(NewsColumns...)
	for _, a := range resp.Articles {
		tbl.Append(a.Title, a.Description, a.Content, a.URL, a.PublishedAt, a.Source.Name)
	}
	return tbl, nil
}
