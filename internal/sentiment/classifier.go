package sentiment

import "github.com/spacesedan/brandpulse/internal/models"

const (
	POSITIVE_THRESHOLD = 0.05
	NEGATIVE_THRESHOLD = -0.05
)

// Classify maps a compound score to a label. Both thresholds are inclusive.
func Classify(compound float64) models.SentimentLabel {
	switch {
	case compound >= POSITIVE_THRESHOLD:
		return models.Positive
	case compound <= NEGATIVE_THRESHOLD:
		return models.Negative
	default:
		return models.Neutral
	}
}

// AnalyzeText scores and labels a single piece of text.
func AnalyzeText(text string) (float64, models.SentimentLabel) {
	score := Score(text)
	return score, Classify(score)
}
