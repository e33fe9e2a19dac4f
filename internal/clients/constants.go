package clients

import (
	"context"
	"errors"
	"time"
)

const (
	MAX_RETRIES     = 5
	INITIAL_BACKOFF = 1 * time.Second
	MAX_BACKOFF     = 32 * time.Second
	USER_AGENT      = "brandpulse-client/1.0 (+https://github.com/spacesedan/brandpulse)"
)

var (
	ErrMissingAPIKey      = errors.New("api key is missing")
	ErrMissingCredentials = errors.New("client credentials are missing")
)

// sleepBackoff waits for d or until ctx is done and returns the next,
// doubled and capped, backoff.
func sleepBackoff(ctx context.Context, d, max time.Duration) (time.Duration, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return d, ctx.Err()
	case <-timer.C:
	}

	d *= 2
	if d > max {
		d = max
	}
	return d, nil
}
