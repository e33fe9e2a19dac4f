package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spacesedan/brandpulse/config"
	"github.com/spacesedan/brandpulse/internal/clients"
	"github.com/spacesedan/brandpulse/internal/ingest"
	"github.com/spacesedan/brandpulse/internal/logging"
	"github.com/spacesedan/brandpulse/internal/processing"
	"github.com/spacesedan/brandpulse/internal/utils"
)

const DEFAULT_BRAND = "OpenAI"

func main() {
	var (
		brand       string
		maxPosts    int
		maxArticles int
		outputDir   string
		env         string
	)
	flag.StringVar(&brand, "brand", "", "brand name to search for")
	flag.StringVar(&brand, "b", "", "shorthand for -brand")
	flag.IntVar(&maxPosts, "max-posts", 0, "maximum number of Reddit posts to fetch")
	flag.IntVar(&maxArticles, "max-articles", 0, "maximum number of news articles and feed items to fetch")
	flag.StringVar(&outputDir, "output-dir", "", "directory for raw data and results")
	flag.StringVar(&outputDir, "o", "", "shorthand for -output-dir")
	flag.StringVar(&env, "env", os.Getenv("APP_ENV"), "environment file to load from config/envs")
	flag.Parse()

	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// Flags given on the command line win over the environment.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "brand", "b":
			cfg.Brand = brand
		case "max-posts":
			cfg.MaxPosts = maxPosts
		case "max-articles":
			cfg.MaxArticles = maxArticles
		case "output-dir", "o":
			cfg.OutputDir = outputDir
		}
	})

	if strings.TrimSpace(cfg.Brand) == "" {
		cfg.Brand = promptBrand()
	}
	cfg.Brand = strings.TrimSpace(cfg.Brand)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if utils.SafeFilename(cfg.Brand) == "" {
		fmt.Fprintf(os.Stderr, "brand %q has no characters usable in a file name\n", cfg.Brand)
		os.Exit(1)
	}

	logCloser, err := logging.InitLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logCloser.Close()

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		slog.Error("Failed to create output directory", slog.String("dir", cfg.OutputDir), slog.String("error", err.Error()))
		os.Exit(1)
	}

	var cache clients.ResponseCache
	if cfg.Valkey.InitAddress != "" {
		vc, err := clients.NewValkeyCache(cfg.Valkey)
		if err != nil {
			slog.Warn("Valkey unavailable, continuing without cache", slog.String("error", err.Error()))
		} else {
			defer vc.Close()
			cache = vc
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	processor := processing.NewBrandProcessor(buildSources(cfg, cache), cfg.OutputDir, os.Stdout)
	report := processor.ProcessBrand(ctx, cfg.Brand)
	report.Print(os.Stdout)
}

func buildSources(cfg *config.Config, cache clients.ResponseCache) []ingest.Source {
	sources := []ingest.Source{
		&ingest.NewsSource{
			Client:      clients.NewNewsAPIClient(cfg.NewsAPI, cfg.HTTPTimeout, cache),
			Language:    cfg.Language,
			MaxArticles: cfg.MaxArticles,
		},
	}

	reddit, err := clients.NewRedditClient(cfg.Reddit, cfg.HTTPTimeout, cache)
	if err != nil {
		slog.Warn("Skipping Reddit", slog.String("error", err.Error()))
	} else {
		sources = append(sources, &ingest.RedditSource{
			Client:    reddit,
			Subreddit: cfg.Reddit.Subreddit,
			MaxPosts:  cfg.MaxPosts,
		})
	}

	if cfg.RSS.Enabled {
		sources = append(sources, &ingest.RSSSource{
			Client:   clients.NewRSSClient(cfg.RSS, cfg.HTTPTimeout),
			MaxItems: cfg.MaxArticles,
		})
	}
	return sources
}

func promptBrand() string {
	fmt.Printf("Enter the brand name to analyze (default %s): ", DEFAULT_BRAND)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	if brand := strings.TrimSpace(line); brand != "" {
		return brand
	}
	return DEFAULT_BRAND
}
