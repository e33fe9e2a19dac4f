package processing

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spacesedan/brandpulse/internal/models"
	"github.com/spacesedan/brandpulse/internal/report"
	"github.com/spacesedan/brandpulse/internal/sentiment"
	"github.com/spacesedan/brandpulse/internal/table"
)

const (
	FULL_TEXT_COLUMN = "full_text"
	SENTIMENT_COLUMN = "sentiment"
)

var ErrEmptyDataset = errors.New("dataset has no records")

// AnalysisResult is the outcome for one dataset. Err is nil on success;
// otherwise no output file exists for the dataset.
type AnalysisResult struct {
	Input     string
	Dataset   *models.Dataset
	Summary   models.SentimentSummary
	TablePath string
	ChartPath string
	Err       error
}

func (r AnalysisResult) OK() bool {
	return r.Err == nil
}

type Analyzer struct {
	OutputDir string
	Out       io.Writer
}

func NewAnalyzer(outputDir string, out io.Writer) *Analyzer {
	if out == nil {
		out = io.Discard
	}
	return &Analyzer{OutputDir: outputDir, Out: out}
}

// Analyze classifies every row of inputPath and writes the enriched table
// and the pie chart to the output directory. It never returns an error;
// failures are carried in the result and logged.
func (a *Analyzer) Analyze(inputPath string) AnalysisResult {
	result := AnalysisResult{Input: inputPath}
	slog.Info("[Analyzer] Starting sentiment analysis", slog.String("input", inputPath))

	tbl, err := table.ReadFile(inputPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Error("[Analyzer] File not found", slog.String("input", inputPath))
		} else {
			slog.Error("[Analyzer] Error reading file", slog.String("input", inputPath), slog.String("error", err.Error()))
		}
		return result.fail(err)
	}

	baseName := BaseName(inputPath)
	dataset, err := Enrich(baseName, tbl)
	if err != nil {
		slog.Error("[Analyzer] Failed to enrich dataset", slog.String("input", inputPath), slog.String("error", err.Error()))
		return result.fail(err)
	}
	if dataset.Len() == 0 {
		slog.Warn("[Analyzer] Nothing to analyze", slog.String("input", inputPath))
		return result.fail(ErrEmptyDataset)
	}

	summary := sentiment.Tally(dataset.Records)

	chart, err := report.RenderPie(summary)
	if err != nil {
		slog.Error("[Analyzer] Error rendering chart", slog.String("error", err.Error()))
		return result.fail(err)
	}
	workbook, err := table.EncodeXLSX(dataset.Table)
	if err != nil {
		slog.Error("[Analyzer] Error encoding results", slog.String("error", err.Error()))
		return result.fail(err)
	}

	chartPath := report.ChartPath(a.OutputDir, baseName)
	tablePath := report.TablePath(a.OutputDir, baseName)
	if err := report.WriteAll(
		report.Artifact{Path: chartPath, Data: chart.Bytes()},
		report.Artifact{Path: tablePath, Data: workbook.Bytes()},
	); err != nil {
		slog.Error("[Analyzer] Error saving results", slog.String("error", err.Error()))
		return result.fail(err)
	}

	slog.Info("[Analyzer] Sentiment analysis complete",
		slog.String("input", inputPath),
		slog.Int("records", dataset.Len()),
		slog.String("output_dir", a.OutputDir))

	sentiment.PrintSummary(a.Out, baseName, summary)
	fmt.Fprintf(a.Out, "Results saved to %s\n", a.OutputDir)

	result.Dataset = dataset
	result.Summary = summary
	result.ChartPath = chartPath
	result.TablePath = tablePath
	return result
}

func (r AnalysisResult) fail(err error) AnalysisResult {
	r.Err = err
	return r
}

// Enrich normalizes, scores and labels every row of a copy of tbl and adds
// the full_text and sentiment columns to it. Existing columns with those
// names are overwritten.
func Enrich(name string, tbl *table.Table) (*models.Dataset, error) {
	enriched := tbl.Clone()

	contentColumn, ok := sentiment.ContentColumn(enriched)
	if !ok {
		slog.Warn("[Analyzer] No content column found in the data", slog.String("dataset", name))
	}

	records := make([]models.Record, enriched.Len())
	fullTexts := make([]string, enriched.Len())
	labels := make([]string, enriched.Len())

	for i := range enriched.Rows {
		record := sentiment.NormalizeRow(enriched, i, contentColumn)
		record.Compound, record.Label = sentiment.AnalyzeText(record.FullText)
		records[i] = record
		fullTexts[i] = record.FullText
		labels[i] = string(record.Label)
	}

	if err := enriched.SetColumn(FULL_TEXT_COLUMN, fullTexts); err != nil {
		return nil, err
	}
	if err := enriched.SetColumn(SENTIMENT_COLUMN, labels); err != nil {
		return nil, err
	}

	slog.Debug("[Analyzer] Dataset enriched",
		slog.String("dataset", name),
		slog.String("content_column", contentColumn),
		slog.Int("records", len(records)))

	return &models.Dataset{Name: name, Table: enriched, Records: records}, nil
}
