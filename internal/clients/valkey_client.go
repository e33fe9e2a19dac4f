package clients

import (
	"context"
	"crypto/sha256"
	"crypto/tls"
	"encoding/hex"
	"fmt"
	"log/slog"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/spacesedan/brandpulse/config"
)

const VALKEY_CACHE_PREFIX = "brandpulse:responses:"

// ResponseCache stores raw upstream response bodies. Implementations treat
// every failure as a miss so a broken cache never fails a fetch.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte)
}

// CacheKey derives a stable key from the source name and a credential-free
// request URL.
func CacheKey(source, requestURL string) string {
	sum := sha256.Sum256([]byte(requestURL))
	return source + ":" + hex.EncodeToString(sum[:])
}

type ValkeyCache struct {
	Client valkey.Client
	TTL    time.Duration
}

// NewValkeyCache connects to Valkey and verifies the connection with a PING.
func NewValkeyCache(cfg config.ValkeyConfig) (*ValkeyCache, error) {
	opts := valkey.ClientOption{
		InitAddress:      []string{cfg.InitAddress},
		Password:         cfg.Password,
		ConnWriteTimeout: 5 * time.Second,
		SelectDB:         0,
	}
	if cfg.TLS {
		opts.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	}

	client, err := valkey.NewClient(opts)
	if err != nil {
		return nil, fmt.Errorf("[ValkeyClient] failed to create Valkey client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		client.Close()
		return nil, fmt.Errorf("[ValkeyClient] failed to ping Valkey: %w", err)
	}

	slog.Info("[ValkeyClient] Successfully connected to valkey", slog.String("address", cfg.InitAddress))
	return &ValkeyCache{Client: client, TTL: cfg.CacheTTL}, nil
}

func (vc *ValkeyCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := vc.Client.Do(ctx, vc.Client.B().Get().Key(VALKEY_CACHE_PREFIX+key).Build()).AsBytes()
	if err != nil {
		if !valkey.IsValkeyNil(err) {
			slog.Warn("[ValkeyClient] Cache read failed", slog.String("key", key), slog.String("error", err.Error()))
		}
		return nil, false
	}
	return value, true
}

func (vc *ValkeyCache) Set(ctx context.Context, key string, value []byte) {
	seconds := int64(vc.TTL / time.Second)
	if seconds <= 0 {
		seconds = 1
	}
	cmd := vc.Client.B().Set().Key(VALKEY_CACHE_PREFIX + key).Value(valkey.BinaryString(value)).ExSeconds(seconds).Build()
	if err := vc.Client.Do(ctx, cmd).Error(); err != nil {
		slog.Warn("[ValkeyClient] Cache write failed", slog.String("key", key), slog.String("error", err.Error()))
	}
}

func (vc *ValkeyCache) Close() {
	vc.Client.Close()
	slog.Info("[ValkeyClient] Connection closed")
}

func cacheGet(ctx context.Context, cache ResponseCache, key string) ([]byte, bool) {
	if cache == nil {
		return nil, false
	}
	return cache.Get(ctx, key)
}

func cacheSet(ctx context.Context, cache ResponseCache, key string, value []byte) {
	if cache != nil {
		cache.Set(ctx, key, value)
	}
}
