package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

// The analyzer holds the VADER lexicon, emoji table, booster and negation
// word lists. It is built once and only read afterwards.
var analyzer = govader.NewSentimentIntensityAnalyzer()

// Score returns the VADER compound polarity of text in [-1, 1]. Text with no
// tokens scores exactly 0.
func Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return analyzer.PolarityScores(text).Compound
}
