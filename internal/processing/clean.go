package processing

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/spacesedan/brandpulse/internal/table"
)

const CLEANED_SUFFIX = "_cleaned.xlsx"

// CleanedPath is the spreadsheet Clean writes for path, next to it.
func CleanedPath(path string) string {
	return filepath.Join(filepath.Dir(path), BaseName(path)+CLEANED_SUFFIX)
}

// BaseName is the file name without directory and extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// CleanTable drops exact duplicate rows, keeping the first, and rows with
// any empty or whitespace-only cell.
func CleanTable(t *table.Table) *table.Table {
	cleaned := table.New(t.Header...)
	seen := make(map[string]struct{}, len(t.Rows))

	for _, row := range t.Rows {
		key := strings.Join(row, "\x1f")
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		if hasBlank(row) {
			continue
		}
		cleaned.Append(row...)
	}
	return cleaned
}

func hasBlank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) == "" {
			return true
		}
	}
	return false
}

// Clean reads a raw CSV or XLSX file, cleans it and saves the result as
// <base>_cleaned.xlsx in the same directory.
func Clean(path string) (string, error) {
	slog.Info("[Cleaner] Starting data cleaning", slog.String("path", path))

	raw, err := table.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(raw.Header) == 0 {
		return "", fmt.Errorf("failed to clean %s: no columns", path)
	}

	cleaned := CleanTable(raw)
	output := CleanedPath(path)
	if err := table.WriteXLSX(output, cleaned); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", output, err)
	}

	slog.Info("[Cleaner] Cleaned data saved",
		slog.String("path", output),
		slog.Int("rows_in", raw.Len()),
		slog.Int("rows_out", cleaned.Len()))
	return output, nil
}
