package models

import "github.com/spacesedan/brandpulse/internal/table"

type SentimentLabel string

const (
	Positive SentimentLabel = "Positive"
	Negative SentimentLabel = "Negative"
	Neutral  SentimentLabel = "Neutral"
)

// SentimentLabels is the fixed reporting order.
var SentimentLabels = []SentimentLabel{Positive, Negative, Neutral}

// Record is one fetched item after normalization and scoring.
type Record struct {
	Title    string
	Body     string
	FullText string
	Compound float64
	Label    SentimentLabel
}

// Dataset is a table read from one source file. Records[i] holds the
// enrichment for Table.Rows[i].
type Dataset struct {
	Name    string
	Table   *table.Table
	Records []Record
}

func (d *Dataset) Len() int {
	if d == nil || d.Table == nil {
		return 0
	}
	return len(d.Table.Rows)
}

// SentimentSummary counts records per label. Every label is always present.
type SentimentSummary map[SentimentLabel]int

func (s SentimentSummary) Total() int {
	total := 0
	for _, n := range s {
		total += n
	}
	return total
}
