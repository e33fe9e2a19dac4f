package report

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

const (
	CHART_SUFFIX = "_sentiment_chart.png"
	TABLE_SUFFIX = "_with_sentiment.xlsx"
)

func ChartPath(outputDir, baseName string) string {
	return filepath.Join(outputDir, baseName+CHART_SUFFIX)
}

func TablePath(outputDir, baseName string) string {
	return filepath.Join(outputDir, baseName+TABLE_SUFFIX)
}

// Artifact is an output file held in memory until it is written.
type Artifact struct {
	Path string
	Data []byte
}

// WriteAll places every artifact or none of them. Each one is staged as a
// temp file next to its destination and renamed into place only after all
// of them were staged; a failed rename removes what was already placed.
func WriteAll(artifacts ...Artifact) error {
	staged := make([]string, 0, len(artifacts))
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}

	for _, a := range artifacts {
		tmp, err := stage(a)
		if err != nil {
			cleanup()
			return err
		}
		staged = append(staged, tmp)
	}

	for i, a := range artifacts {
		if err := os.Rename(staged[i], a.Path); err != nil {
			for _, placed := range artifacts[:i] {
				if rmErr := os.Remove(placed.Path); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) {
					slog.Warn("[Report] Failed to roll back artifact",
						slog.String("path", placed.Path),
						slog.String("error", rmErr.Error()))
				}
			}
			staged = staged[i:]
			cleanup()
			return fmt.Errorf("failed to place %s: %w", a.Path, err)
		}
	}
	return nil
}

func stage(a Artifact) (string, error) {
	dir, name := filepath.Split(a.Path)
	if dir == "" {
		dir = "."
	}

	f, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return "", fmt.Errorf("failed to stage %s: %w", a.Path, err)
	}
	tmp := f.Name()

	if _, err := f.Write(a.Data); err != nil {
		f.Close()
		os.Remove(tmp)
		return "", fmt.Errorf("failed to write %s: %w", a.Path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to close %s: %w", a.Path, err)
	}
	if err := os.Chmod(tmp, 0o644); err != nil {
		os.Remove(tmp)
		return "", fmt.Errorf("failed to chmod %s: %w", a.Path, err)
	}
	return tmp, nil
}
