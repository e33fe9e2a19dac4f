// Package ingest fetches raw mentions of a brand from upstream sources and
// stores each source's result as a CSV file for the cleaning step.
package ingest

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spacesedan/brandpulse/internal/table"
	"github.com/spacesedan/brandpulse/internal/utils"
)

// Source fetches one kind of mention for a brand as a raw table.
type Source interface {
	Name() string
	Fetch(ctx context.Context, brand string) (*table.Table, error)
}

// OutputPath is where Run stores a source's raw table.
func OutputPath(outputDir, brand, source string) string {
	return filepath.Join(outputDir, utils.SafeFilename(brand)+"_"+source+".csv")
}

// Run fetches every source in order and writes the non-empty results to
// outputDir. A failing source is logged and skipped. The returned map holds
// the number of records fetched per source name.
func Run(ctx context.Context, sources []Source, brand, outputDir string) map[string]int {
	fetched := make(map[string]int, len(sources))

	for _, source := range sources {
		name := source.Name()
		fetched[name] = 0

		tbl, err := source.Fetch(ctx, brand)
		if err != nil {
			slog.Error("[Ingest] Fetch failed",
				slog.String("source", name),
				slog.String("brand", brand),
				slog.String("error", err.Error()))
			continue
		}
		if tbl.Len() == 0 {
			slog.Warn("[Ingest] No records returned", slog.String("source", name), slog.String("brand", brand))
			continue
		}

		path := OutputPath(outputDir, brand, name)
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			slog.Error("[Ingest] Failed to create output directory", slog.String("error", err.Error()))
			continue
		}
		if err := table.WriteCSV(path, tbl); err != nil {
			slog.Error("[Ingest] Failed to save records",
				slog.String("source", name),
				slog.String("path", path),
				slog.String("error", err.Error()))
			continue
		}

		fetched[name] = tbl.Len()
		slog.Info("[Ingest] Saved records",
			slog.String("source", name),
			slog.Int("count", tbl.Len()),
			slog.String("path", path))
	}
	return fetched
}
