package main

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLogging(t *testing.T) string {
	t.Helper()
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	logFile := filepath.Join(t.TempDir(), "analyze.log")
	t.Setenv("LOG_FILE", logFile)
	t.Setenv("LOG_LEVEL", "info")
	return logFile
}

func TestRun(t *testing.T) {
	logFile := setupLogging(t)

	dir := t.TempDir()
	input := filepath.Join(dir, "acme_news_cleaned.csv")
	require.NoError(t, os.WriteFile(input, []byte("title,description\nAcme,Customers love the great new product\n"), 0o644))

	var stdout, stderr bytes.Buffer
	code := run([]string{"-input", input}, &stdout, &stderr)

	assert.Equal(t, 0, code, stderr.String())
	assert.FileExists(t, filepath.Join(dir, "acme_news_cleaned_with_sentiment.xlsx"))
	assert.FileExists(t, filepath.Join(dir, "acme_news_cleaned_sentiment_chart.png"))
	assert.Contains(t, stdout.String(), "Sentiment Analysis Results for acme_news_cleaned")

	logs, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(logs), "[Analyzer] Sentiment analysis complete")
}

func TestRun_OutputDir(t *testing.T) {
	setupLogging(t)

	dir := t.TempDir()
	out := t.TempDir()
	input := filepath.Join(dir, "acme_rss_cleaned.csv")
	require.NoError(t, os.WriteFile(input, []byte("title\nTerrible awful news\n"), 0o644))

	code := run([]string{"-input", input, "-output-dir", out}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, 0, code)
	assert.FileExists(t, filepath.Join(out, "acme_rss_cleaned_with_sentiment.xlsx"))
}

func TestRun_Failures(t *testing.T) {
	setupLogging(t)
	dir := t.TempDir()

	assert.Equal(t, 2, run(nil, &bytes.Buffer{}, &bytes.Buffer{}))
	assert.Equal(t, 1, run([]string{"-input", filepath.Join(dir, "missing.csv")}, &bytes.Buffer{}, &bytes.Buffer{}))

	t.Setenv("LOG_LEVEL", "verbose")
	var stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-input", filepath.Join(dir, "missing.csv")}, &bytes.Buffer{}, &stderr))
	assert.Contains(t, stderr.String(), "invalid config")
}
