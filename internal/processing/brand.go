package processing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/spacesedan/brandpulse/internal/ingest"
)

type Stage string

const (
	StageClean   Stage = "clean"
	StageAnalyze Stage = "analyze"
)

// DatasetResult records how far one raw dataset got. Stage is the last
// stage attempted.
type DatasetResult struct {
	Source   string
	Stage    Stage
	Analysis *AnalysisResult
	Err      error
}

func (d DatasetResult) OK() bool {
	return d.Err == nil
}

type BatchReport struct {
	RunID     string
	Brand     string
	OutputDir string
	Fetched   map[string]int
	Datasets  []DatasetResult
	Duration  time.Duration
}

func (b *BatchReport) Succeeded() []DatasetResult {
	return b.filter(true)
}

func (b *BatchReport) Failed() []DatasetResult {
	return b.filter(false)
}

func (b *BatchReport) filter(ok bool) []DatasetResult {
	var out []DatasetResult
	for _, d := range b.Datasets {
		if d.OK() == ok {
			out = append(out, d)
		}
	}
	return out
}

// Print writes the operator summary for the run.
func (b *BatchReport) Print(w io.Writer) {
	fmt.Fprintf(w, "\nResults for brand '%s':\n", b.Brand)

	sources := make([]string, 0, len(b.Fetched))
	for name := range b.Fetched {
		sources = append(sources, name)
	}
	sort.Strings(sources)
	for _, name := range sources {
		fmt.Fprintf(w, "%s fetched: %d\n", name, b.Fetched[name])
	}

	fmt.Fprintf(w, "Datasets analyzed: %d succeeded, %d failed\n", len(b.Succeeded()), len(b.Failed()))
	for _, d := range b.Failed() {
		fmt.Fprintf(w, "  - %s (%s): %v\n", filepath.Base(d.Source), d.Stage, d.Err)
	}
	fmt.Fprintf(w, "Data and sentiment analysis saved to: %s\n", b.OutputDir)
}

// BrandProcessor runs ingestion, cleaning and analysis for a brand, one
// dataset at a time.
type BrandProcessor struct {
	Sources   []ingest.Source
	Analyzer  *Analyzer
	OutputDir string
	Out       io.Writer
}

func NewBrandProcessor(sources []ingest.Source, outputDir string, out io.Writer) *BrandProcessor {
	if out == nil {
		out = io.Discard
	}
	return &BrandProcessor{
		Sources:   sources,
		Analyzer:  NewAnalyzer(outputDir, out),
		OutputDir: outputDir,
		Out:       out,
	}
}

func (p *BrandProcessor) ProcessBrand(ctx context.Context, brand string) *BatchReport {
	start := time.Now()
	report := &BatchReport{
		RunID:     uuid.NewString(),
		Brand:     brand,
		OutputDir: p.OutputDir,
	}
	logger := slog.With(slog.String("run_id", report.RunID), slog.String("brand", brand))
	logger.Info("[BrandProcessor] Starting full scrape")

	report.Fetched = ingest.Run(ctx, p.Sources, brand, p.OutputDir)

	names := make([]string, 0, len(p.Sources))
	for _, source := range p.Sources {
		names = append(names, source.Name())
	}
	paths, err := DiscoverDatasets(p.OutputDir, brand, names)
	if err != nil {
		logger.Error("[BrandProcessor] Failed to list datasets", slog.String("error", err.Error()))
	}

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			report.Datasets = append(report.Datasets, DatasetResult{Source: path, Stage: StageClean, Err: err})
			continue
		}
		report.Datasets = append(report.Datasets, p.processDataset(logger, path))
	}

	report.Duration = time.Since(start)
	logger.Info("[BrandProcessor] Finished full scrape",
		slog.Int("succeeded", len(report.Succeeded())),
		slog.Int("failed", len(report.Failed())),
		slog.Duration("duration", report.Duration))
	return report
}

func (p *BrandProcessor) processDataset(logger *slog.Logger, path string) DatasetResult {
	cleanedPath, err := Clean(path)
	if err != nil {
		logger.Error("[BrandProcessor] Error cleaning data", slog.String("path", path), slog.String("error", err.Error()))
		return DatasetResult{Source: path, Stage: StageClean, Err: err}
	}
	fmt.Fprintf(p.Out, "Cleaned data saved to %s\n", cleanedPath)

	result := p.Analyzer.Analyze(cleanedPath)
	if !result.OK() {
		logger.Warn("[BrandProcessor] Sentiment analysis failed",
			slog.String("path", cleanedPath),
			slog.String("error", result.Err.Error()))
	}
	return DatasetResult{Source: path, Stage: StageAnalyze, Analysis: &result, Err: result.Err}
}

// DiscoverDatasets returns the raw CSV file of each named source for brand
// that exists in dir, in source order. Files are looked up by exact name so
// a brand never picks up another brand's files.
func DiscoverDatasets(dir, brand string, sources []string) ([]string, error) {
	var paths []string
	for _, name := range sources {
		path := ingest.OutputPath(dir, brand, name)
		info, err := os.Stat(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
			continue
		case err != nil:
			return paths, err
		case info.Mode().IsRegular():
			paths = append(paths, path)
		}
	}
	return paths, nil
}
