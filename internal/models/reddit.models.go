package models

import "time"

type RedditPost struct {
	Subreddit   string    `json:"subreddit"`
	PostTitle   string    `json:"post_title"`
	PostContent string    `json:"post_content"`
	URL         string    `json:"url"`
	Upvotes     int       `json:"upvotes"`
	NumComments int       `json:"num_comments"`
	CreatedAt   time.Time `json:"created_at"`
}

type RedditAPIResponse struct {
	Data RedditAPIData `json:"data"`
}

type RedditAPIData struct {
	Children []RedditAPIChild `json:"children"`
}

type RedditAPIChild struct {
	Data RedditAPIChildData `json:"data"`
}

type RedditAPIChildData struct {
	Subreddit   string  `json:"subreddit"`
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	URL         string  `json:"url"`
	Score       int     `json:"score"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
}

func (d RedditAPIChildData) ToPost() RedditPost {
	return RedditPost{
		Subreddit:   d.Subreddit,
		PostTitle:   d.Title,
		PostContent: d.Selftext,
		URL:         d.URL,
		Upvotes:     d.Score,
		NumComments: d.NumComments,
		CreatedAt:   time.Unix(int64(d.CreatedUTC), 0).UTC(),
	}
}
