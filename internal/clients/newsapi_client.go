package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/spacesedan/brandpulse/config"
	"github.com/spacesedan/brandpulse/internal/models"
)

type NewsAPIClient struct {
	Client         *http.Client
	APIKey         string
	Endpoint       string
	Cache          ResponseCache
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
}

func NewNewsAPIClient(cfg config.NewsAPIConfig, timeout time.Duration, cache ResponseCache) *NewsAPIClient {
	return &NewsAPIClient{
		Client:         &http.Client{Timeout: timeout},
		APIKey:         cfg.Key,
		Endpoint:       cfg.Endpoint,
		Cache:          cache,
		InitialBackoff: INITIAL_BACKOFF,
		MaxBackoff:     MAX_BACKOFF,
	}
}

// Everything searches all articles mentioning query. The key travels in the
// X-Api-Key header so the request URL doubles as the cache key.
func (n *NewsAPIClient) Everything(ctx context.Context, query, language string, pageSize int) (*models.NewsAPIEverythingResponse, error) {
	if n.APIKey == "" {
		slog.Error("[NewsAPIClient] API key is missing")
		return nil, fmt.Errorf("[NewsAPIClient] %w", ErrMissingAPIKey)
	}

	parsedURL, err := url.Parse(n.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("[NewsAPIClient] Failed to parse URL: %w", err)
	}
	params := parsedURL.Query()
	params.Set("q", query)
	params.Set("language", language)
	params.Set("pageSize", strconv.Itoa(pageSize))
	parsedURL.RawQuery = params.Encode()
	requestURL := parsedURL.String()

	cacheKey := CacheKey("newsapi", requestURL)
	if body, ok := cacheGet(ctx, n.Cache, cacheKey); ok {
		slog.Info("[NewsAPIClient] Serving articles from cache", slog.String("query", query))
		return decodeNewsAPI(body)
	}

	var lastErr error
	backoff := n.InitialBackoff

	for attempt := 1; attempt <= MAX_RETRIES; attempt++ {
		slog.Info("[NewsAPIClient] Fetching articles", slog.String("query", query), slog.Int("attempt", attempt))

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("X-Api-Key", n.APIKey)
		req.Header.Set("User-Agent", USER_AGENT)

		res, err := n.Client.Do(req)
		if err != nil {
			slog.Error("[NewsAPIClient] Request failed", slog.String("error", err.Error()))
			lastErr = err
		} else {
			body, readErr := io.ReadAll(res.Body)
			res.Body.Close()

			switch res.StatusCode {
			case http.StatusOK:
				if readErr != nil {
					slog.Error("[NewsAPIClient] Failed to read response body", slog.String("error", readErr.Error()))
					return nil, readErr
				}
				response, err := decodeNewsAPI(body)
				if err != nil {
					return nil, err
				}
				cacheSet(ctx, n.Cache, cacheKey, body)
				slog.Info("[NewsAPIClient] Successfully fetched articles", slog.Int("count", len(response.Articles)))
				return response, nil
			case http.StatusBadRequest:
				slog.Warn("[NewsAPIClient] Bad request: check query parameters")
				return nil, errors.New("[NewsAPIClient] Bad request: check query parameters")
			case http.StatusUnauthorized:
				slog.Error("[NewsAPIClient] Invalid API Key, check credentials")
				return nil, errors.New("[NewsAPIClient] Invalid API Key, check credentials")
			case http.StatusForbidden:
				slog.Error("[NewsAPIClient] Access forbidden, check API key permissions")
				return nil, errors.New("[NewsAPIClient] API key lacks required permissions")
			case http.StatusTooManyRequests:
				slog.Warn("[NewsAPIClient] Rate limit exceeded, retrying...",
					slog.Duration("backoff", backoff), slog.Int("attempt", attempt))
				lastErr = errors.New("[NewsAPIClient] rate limited")
			case http.StatusInternalServerError, http.StatusBadGateway, http.StatusServiceUnavailable:
				slog.Warn("[NewsAPIClient] Server Error", slog.Int("statusCode", res.StatusCode),
					slog.Duration("backoff", backoff), slog.Int("attempt", attempt))
				lastErr = fmt.Errorf("[NewsAPIClient] server error %d", res.StatusCode)
			default:
				slog.Warn("[NewsAPIClient] Unexpected Response", slog.Int("statusCode", res.StatusCode))
				return nil, fmt.Errorf("[NewsAPIClient] Unexpected status code %d", res.StatusCode)
			}
		}

		if attempt == MAX_RETRIES {
			slog.Error("[NewsAPIClient] Failed after max retries")
			break
		}
		if backoff, err = sleepBackoff(ctx, backoff, n.MaxBackoff); err != nil {
			return nil, err
		}
	}
	return nil, fmt.Errorf("[NewsAPIClient] failed after max retries: %w", lastErr)
}

func decodeNewsAPI(body []byte) (*models.NewsAPIEverythingResponse, error) {
	var response models.NewsAPIEverythingResponse
	if err := json.Unmarshal(body, &response); err != nil {
		slog.Error("[NewsAPIClient] Failed to parse JSON response", slog.String("error", err.Error()))
		return nil, err
	}
	if response.Status != "" && response.Status != "ok" {
		return nil, fmt.Errorf("[NewsAPIClient] api error %s: %s", response.Code, response.Message)
	}
	return &response, nil
}
