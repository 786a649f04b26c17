package api

import "time"

// Config holds the environment-driven settings of the API router.
type Config struct {
	RateLimitRequests int           `env:"RATE_LIMIT_REQUESTS" envDefault:"120"`
	RateLimitWindow   time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	// TrustProxyHeaders keys the rate limit by CF-Connecting-IP,
	// X-Forwarded-For and similar headers instead of the peer address.
	TrustProxyHeaders bool `env:"TRUST_PROXY_HEADERS" envDefault:"false"`
	MetricsEnabled    bool `env:"METRICS_ENABLED" envDefault:"true"`
	// PlatformCacheSize bounds the LRU of parsed platforms; 0 disables it.
	PlatformCacheSize int `env:"PLATFORM_CACHE_SIZE" envDefault:"4096"`
}
