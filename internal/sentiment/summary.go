package sentiment

import (
	"fmt"
	"io"

	"github.com/spacesedan/brandpulse/internal/models"
)

// Tally counts labels. Labels that never occur are reported as zero.
func Tally(records []models.Record) models.SentimentSummary {
	summary := make(models.SentimentSummary, len(models.SentimentLabels))
	for _, label := range models.SentimentLabels {
		summary[label] = 0
	}
	for _, r := range records {
		summary[r.Label]++
	}
	return summary
}

// PrintSummary writes the operator tally for one dataset.
func PrintSummary(w io.Writer, name string, summary models.SentimentSummary) {
	fmt.Fprintf(w, "\nSentiment Analysis Results for %s:\n", name)
	for _, label := range models.SentimentLabels {
		fmt.Fprintf(w, "%-9s %d\n", label, summary[label])
	}
}
