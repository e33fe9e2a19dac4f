package models

import "time"

type FeedItem struct {
	Title       string
	Description string
	URL         string
	PublishedAt time.Time
	Source      string
}
