package sentiment

import (
	"github.com/spacesedan/brandpulse/internal/models"
	"github.com/spacesedan/brandpulse/internal/table"
)

const TITLE_COLUMN = "title"

// ContentColumns lists the body columns in precedence order. News sources
// carry description and content, Reddit carries selftext.
var ContentColumns = []string{"description", "content", "selftext"}

// ContentColumn picks the first column of ContentColumns present in header.
func ContentColumn(t *table.Table) (string, bool) {
	for _, name := range ContentColumns {
		if t.HasColumn(name) {
			return name, true
		}
	}
	return "", false
}

// FullText joins title and body with a single space. Missing parts are
// empty strings, so the result is never absent.
func FullText(title, body string) string {
	return title + " " + body
}

// NormalizeRow builds the classification unit for one table row. An empty
// contentColumn means the dataset has no body column.
func NormalizeRow(t *table.Table, row int, contentColumn string) models.Record {
	title := t.Value(row, TITLE_COLUMN)
	body := ""
	if contentColumn != "" {
		body = t.Value(row, contentColumn)
	}
	return models.Record{
		Title:    title,
		Body:     body,
		FullText: FullText(title, body),
	}
}
