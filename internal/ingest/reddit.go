package ingest

import (
	"context"
	"strconv"
	"time"

	"github.com/spacesedan/brandpulse/internal/models"
	"github.com/spacesedan/brandpulse/internal/sentiment"
	"github.com/spacesedan/brandpulse/internal/table"
)

var RedditColumns = []string{"title", "selftext", "url", "created_utc", "score", "num_comments", "subreddit"}

type PostSearcher interface {
	Search(ctx context.Context, subreddit, query string, limit int) ([]models.RedditPost, error)
}

type RedditSource struct {
	Client    PostSearcher
	Subreddit string
	MaxPosts  int
}

func (s *RedditSource) Name() string { return "reddit_posts" }

// Fetch searches Reddit for the brand. Selftext is markdown and is flattened
// to plain text before it is stored.
func (s *RedditSource) Fetch(ctx context.Context, brand string) (*table.Table, error) {
	posts, err := s.Client.Search(ctx, s.Subreddit, brand, s.MaxPosts)
	if err != nil {
		return nil, err
	}

	tbl := table.New(RedditColumns...)
	for _, p := range posts {
		tbl.Append(
			p.PostTitle,
			sentiment.ConvertMarkdownToText(p.PostContent),
			p.URL,
			p.CreatedAt.UTC().Format(time.RFC3339),
			strconv.Itoa(p.Upvotes),
			strconv.Itoa(p.NumComments),
			p.Subreddit,
		)
	}
	return tbl, nil
}
