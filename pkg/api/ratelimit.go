package api

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/httprate"

	"github.com/dmitrymomot/inappdetect/pkg/clientip"
)

// rateLimit limits requests per client address with a sliding window and
// answers 429 with a Retry-After header once the limit is hit.
func rateLimit(requests int, window time.Duration, trustProxy bool) func(http.Handler) http.Handler {
	retryAfter := strconv.Itoa(max(1, int(math.Ceil(window.Seconds()))))
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(clientip.KeyFunc(trustProxy)),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Retry-After", retryAfter)
			writeError(w, http.StatusTooManyRequests, CodeRateLimitExceeded, "too many requests, try again later")
		}),
	)
}
