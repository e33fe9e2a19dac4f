package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spacesedan/brandpulse/config"
	"github.com/spacesedan/brandpulse/internal/logging"
	"github.com/spacesedan/brandpulse/internal/processing"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run analyzes one file and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.SetOutput(stderr)
	input := fs.String("input", "", "cleaned CSV or XLSX file to analyze")
	outputDir := fs.String("output-dir", "", "directory for results (defaults to the input's directory)")
	env := fs.String("env", os.Getenv("APP_ENV"), "environment file to load from config/envs")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *input == "" {
		fs.Usage()
		return 2
	}
	if *outputDir == "" {
		*outputDir = filepath.Dir(*input)
	}

	if *env == "" {
		*env = "dev"
	}
	config.LoadEnv(*env)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logCloser, err := logging.InitLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer logCloser.Close()

	result := processing.NewAnalyzer(*outputDir, stdout).Analyze(*input)
	if !result.OK() {
		return 1
	}
	return 0
}
