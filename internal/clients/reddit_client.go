package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"

	"github.com/spacesedan/brandpulse/config"
	"github.com/spacesedan/brandpulse/internal/models"
)

type RedditClient struct {
	Config         *clientcredentials.Config
	Client         *http.Client
	APIURL         string
	UserAgent      string
	Limiter        *rate.Limiter
	Cache          ResponseCache
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	timeout        time.Duration
	mu             sync.Mutex
}

func NewRedditClient(cfg config.RedditConfig, timeout time.Duration, cache ResponseCache) (*RedditClient, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" {
		return nil, fmt.Errorf("[RedditClient] %w", ErrMissingCredentials)
	}

	oauthConf := &clientcredentials.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		TokenURL:     cfg.AuthURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	rpm := cfg.RequestsPerMinute
	if rpm <= 0 {
		rpm = 60
	}

	rc := &RedditClient{
		Config:         oauthConf,
		APIURL:         strings.TrimRight(cfg.APIURL, "/"),
		UserAgent:      cfg.UserAgent,
		Limiter:        rate.NewLimiter(rate.Every(time.Minute/time.Duration(rpm)), 1),
		Cache:          cache,
		InitialBackoff: INITIAL_BACKOFF,
		MaxBackoff:     MAX_BACKOFF,
		timeout:        timeout,
	}
	rc.Client = rc.newHTTPClient()
	return rc, nil
}

func (rc *RedditClient) newHTTPClient() *http.Client {
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: rc.timeout})
	client := rc.Config.Client(ctx)
	client.Timeout = rc.timeout
	return client
}

// RefreshClient drops the cached token so the next request fetches a new one.
func (rc *RedditClient) RefreshClient() {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	rc.Client = rc.newHTTPClient()
}

func (rc *RedditClient) httpClient() *http.Client {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return rc.Client
}

// Search returns up to limit posts from subreddit matching query.
func (rc *RedditClient) Search(ctx context.Context, subreddit, query string, limit int) ([]models.RedditPost, error) {
	parsedURL, err := url.Parse(fmt.Sprintf("%s/r/%s/search", rc.APIURL, subreddit))
	if err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to parse URL: %w", err)
	}
	params := parsedURL.Query()
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("sort", "relevance")
	params.Set("restrict_sr", "false")
	parsedURL.RawQuery = params.Encode()
	requestURL := parsedURL.String()

	cacheKey := CacheKey("reddit", requestURL)
	body, ok := cacheGet(ctx, rc.Cache, cacheKey)
	if ok {
		slog.Info("[RedditClient] Serving posts from cache", slog.String("query", query))
	} else {
		body, err = rc.fetch(ctx, requestURL)
		if err != nil {
			return nil, err
		}
	}

	var listing models.RedditAPIResponse
	if err := json.Unmarshal(body, &listing); err != nil {
		return nil, fmt.Errorf("[RedditClient] Failed to parse JSON response: %w", err)
	}
	if !ok {
		cacheSet(ctx, rc.Cache, cacheKey, body)
	}

	posts := make([]models.RedditPost, 0, len(listing.Data.Children))
	for _, child := range listing.Data.Children {
		posts = append(posts, child.Data.ToPost())
		if len(posts) == limit {
			break
		}
	}
	slog.Info("[RedditClient] Fetched posts", slog.String("query", query), slog.Int("count", len(posts)))
	return posts, nil
}

func (rc *RedditClient) fetch(ctx context.Context, requestURL string) ([]byte, error) {
	backoff := rc.InitialBackoff
	refreshed := false

	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		if err := rc.Limiter.Wait(ctx); err != nil {
			return nil, err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", rc.UserAgent)

		resp, err := rc.httpClient().Do(req)
		if err != nil {
			return nil, fmt.Errorf("[RedditClient] request failed: %w", err)
		}
		body, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			if readErr != nil {
				return nil, readErr
			}
			return body, nil
		case http.StatusUnauthorized:
			if refreshed {
				return nil, fmt.Errorf("[RedditClient] unauthorized after token refresh")
			}
			slog.Warn("[RedditClient] Token expired - Refreshing and Retrying...")
			rc.RefreshClient()
			refreshed = true
			continue
		case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
			slog.Warn("[RedditClient] Retrying request",
				slog.Int("statusCode", resp.StatusCode),
				slog.Int("attempt", attempt),
				slog.Duration("backoff", backoff))
			if attempt == MAX_RETRIES {
				break
			}
			if backoff, err = sleepBackoff(ctx, backoff, rc.MaxBackoff); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("[RedditClient] Unexpected status code %d", resp.StatusCode)
		}
	}
	return nil, fmt.Errorf("[RedditClient] Max retries reached request failed")
}
