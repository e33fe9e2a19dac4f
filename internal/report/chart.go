package report

import (
	"bytes"
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/spacesedan/brandpulse/internal/models"
)

const (
	CHART_TITLE = "Brand Sentiment Analysis"
	CHART_SIZE  = 800

	TITLE_BAND      = 60
	TITLE_FONT_SIZE = 18
)

var LabelColors = map[models.SentimentLabel]drawing.Color{
	models.Positive: drawing.ColorFromHex("008000"),
	models.Negative: drawing.ColorFromHex("FF0000"),
	models.Neutral:  drawing.ColorFromHex("D3D3D3"),
}

// ChartValues returns one wedge per label with a non-zero count, labelled
// with its share of the total.
func ChartValues(summary models.SentimentSummary) []chart.Value {
	total := summary.Total()
	if total == 0 {
		return nil
	}

	values := make([]chart.Value, 0, len(models.SentimentLabels))
	for _, label := range models.SentimentLabels {
		count := summary[label]
		if count == 0 {
			continue
		}
		pct := float64(count) / float64(total) * 100
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s %.1f%%", label, pct),
			Value: float64(count),
			Style: chart.Style{
				FillColor:   LabelColors[label],
				StrokeColor: drawing.ColorWhite,
				StrokeWidth: 2,
			},
		})
	}
	return values
}

// RenderPie draws the summary as a PNG pie chart with the title in a band
// above the circle.
func RenderPie(summary models.SentimentSummary) (*bytes.Buffer, error) {
	values := ChartValues(summary)
	if len(values) == 0 {
		return nil, fmt.Errorf("no labels to chart")
	}

	pie := chart.PieChart{
		Width:  CHART_SIZE,
		Height: CHART_SIZE,
		Background: chart.Style{
			Padding: chart.Box{Top: TITLE_BAND, Left: 5, Right: 5, Bottom: 5},
		},
		Values:   wedges(values),
		Elements: []chart.Renderable{drawTitle},
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("failed to render chart: %w", err)
	}
	return &buf, nil
}

// wedges splits a lone value into two identical halves. go-chart draws a
// single value as an unfilled path that ignores the value's style.
func wedges(values []chart.Value) []chart.Value {
	if len(values) != 1 {
		return values
	}
	whole := values[0]
	whole.Style.StrokeColor = whole.Style.FillColor
	half := whole
	half.Label = ""
	whole.Value /= 2
	half.Value = whole.Value
	return []chart.Value{whole, half}
}

func drawTitle(r chart.Renderer, _ chart.Box, defaults chart.Style) {
	style := chart.Style{
		Font:                defaults.Font,
		FontSize:            TITLE_FONT_SIZE,
		FontColor:           drawing.ColorFromHex("333333"),
		TextHorizontalAlign: chart.TextHorizontalAlignCenter,
		TextVerticalAlign:   chart.TextVerticalAlignMiddle,
	}
	chart.Draw.TextWithin(r, CHART_TITLE, chart.Box{Top: 0, Left: 0, Right: CHART_SIZE, Bottom: TITLE_BAND}, style)
}
