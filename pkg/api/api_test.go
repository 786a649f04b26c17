package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inappdetect/pkg/api"
	"github.com/dmitrymomot/inappdetect/pkg/inapp"
	"github.com/dmitrymomot/inappdetect/pkg/logger"
	"github.com/dmitrymomot/inappdetect/pkg/metrics"
	"github.com/dmitrymomot/inappdetect/pkg/requestid"
)

const (
	androidChromeUA   = "Mozilla/5.0 (Linux; Android 10) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Mobile Safari/537.36"
	androidChrome13UA = "Mozilla/5.0 (Linux; Android 13; SM-G998B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Mobile Safari/537.36"
	facebookAndroidUA = "Mozilla/5.0 (Linux; Android 12; Pixel 6) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/100.0.4896.127 Mobile Safari/537.36 [FBAN/EMA;FBLC/en_US;FBAV/300.0.0.12.110;]"
	iPhoneSafariUA    = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/605.1.15"
	gmailReferrer     = "android-app://com.google.android.gm"
)

type envelope struct {
	Data  json.RawMessage  `json:"data"`
	Error *api.ErrorDetail `json:"error"`
}

func defaultConfig() api.Config {
	return api.Config{RateLimitRequests: 1000, RateLimitWindow: time.Minute, MetricsEnabled: true, PlatformCacheSize: 16}
}

func newRouter(t *testing.T, cfg api.Config) (http.Handler, *metrics.Metrics) {
	t.Helper()
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	return api.New(cfg, api.WithMetrics(m, reg)), m
}

func do(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	if req.RemoteAddr == "" {
		req.RemoteAddr = "192.0.2.10:4321"
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestClassifyGet(t *testing.T) {
	t.Parallel()
	h, _ := newRouter(t, defaultConfig())

	t.Run("query parameters", func(t *testing.T) {
		t.Parallel()
		q := url.Values{"ua": {facebookAndroidUA}}
		rec, env := do(t, h, httptest.NewRequest(http.MethodGet, "/v1/classify?"+q.Encode(), nil))

		require.Equal(t, http.StatusOK, rec.Code)
		require.Nil(t, env.Error)
		got := decodeData[api.Classification](t, env)
		assert.True(t, got.InApp)
		assert.Equal(t, inapp.LabelFacebook, got.BrowserLabel)
		assert.Equal(t, inapp.ReasonKnownAppToken, got.Reason)
		assert.Equal(t, "Android", got.Platform.OS)
		assert.Equal(t, "12", got.Platform.OSVersion)
	})

	t.Run("caller headers", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/v1/classify", nil)
		req.Header.Set("User-Agent", androidChromeUA)
		req.Header.Set("Referer", gmailReferrer)
		rec, env := do(t, h, req)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[api.Classification](t, env)
		assert.True(t, got.InApp)
		assert.Equal(t, inapp.LabelGmail, got.BrowserLabel)
	})

	t.Run("caller headers with probe", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/v1/classify?ow=412&oh=915&iw=412&ih=915&sw=412", nil)
		req.Header.Set("User-Agent", androidChrome13UA)
		rec, env := do(t, h, req)

		require.Equal(t, http.StatusOK, rec.Code)
		got := decodeData[api.Classification](t, env)
		assert.False(t, got.InApp)
		assert.Equal(t, inapp.LabelChrome, got.BrowserLabel)
		assert.Equal(t, "Chrome", got.Platform.Browser)
		assert.Equal(t, "115.0.0.0", got.Platform.BrowserVersion)
		assert.Contains(t, got.Platform.String(), "Chrome 115.0")
	})

	t.Run("referrer parameter with header user agent", func(t *testing.T) {
		t.Parallel()
		q := url.Values{"ref": {gmailReferrer}}
		req := httptest.NewRequest(http.MethodGet, "/v1/classify?"+q.Encode(), nil)
		req.Header.Set("User-Agent", androidChromeUA)
		_, env := do(t, h, req)

		got := decodeData[api.Classification](t, env)
		assert.True(t, got.InApp)
		assert.Equal(t, inapp.LabelGmail, got.BrowserLabel)
	})
}

func TestClassifyPost(t *testing.T) {
	t.Parallel()
	h, m := newRouter(t, defaultConfig())

	body := `{"user_agent":"` + androidChrome13UA + `","referrer":"","environment":{"viewport":{"outer_width":412,"outer_height":915,"inner_width":412,"inner_height":915},"screen_width":412}}`
	rec, env := do(t, h, postJSON("/v1/classify", body))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeData[api.Classification](t, env)
	assert.False(t, got.InApp)
	assert.Equal(t, inapp.LabelChrome, got.BrowserLabel)
	assert.Equal(t, inapp.ReasonPlainChrome, got.Reason)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Verdicts.WithLabelValues("false", inapp.LabelChrome)), 0)

	_, env = do(t, h, postJSON("/v1/classify", `{"user_agent":"`+iPhoneSafariUA+`"}`))
	got = decodeData[api.Classification](t, env)
	assert.False(t, got.InApp)
	assert.Equal(t, inapp.LabelSafari, got.BrowserLabel)
	assert.Equal(t, "iOS", got.Platform.OS)
}

func TestClassifyPostErrors(t *testing.T) {
	t.Parallel()
	h, _ := newRouter(t, defaultConfig())

	tests := []struct {
		name       string
		req        func() *http.Request
		wantStatus int
		wantCode   string
	}{
		{
			name:       "unknown field",
			req:        func() *http.Request { return postJSON("/v1/classify", `{"ua":"x"}`) },
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeBadRequest,
		},
		{
			name:       "malformed json",
			req:        func() *http.Request { return postJSON("/v1/classify", `{"user_agent":`) },
			wantStatus: http.StatusBadRequest,
			wantCode:   api.CodeBadRequest,
		},
		{
			name: "wrong content type",
			req: func() *http.Request {
				req := httptest.NewRequest(http.MethodPost, "/v1/classify", strings.NewReader(`{}`))
				req.Header.Set("Content-Type", "text/plain")
				return req
			},
			wantStatus: http.StatusUnsupportedMediaType,
			wantCode:   api.CodeUnsupportedMedia,
		},
		{
			name: "body too large",
			req: func() *http.Request {
				return postJSON("/v1/classify", `{"user_agent":"`+strings.Repeat("a", 1<<20)+`"}`)
			},
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   api.CodePayloadTooLarge,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, env := do(t, h, tt.req())
			assert.Equal(t, tt.wantStatus, rec.Code)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
}

func TestClassificationLog(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithContextExtractors(inapp.LoggerExtractor()),
	)
	cfg := defaultConfig()
	cfg.MetricsEnabled = false
	h := api.New(cfg, api.WithLogger(log))

	rec, _ := do(t, h, postJSON("/v1/classify", `{"user_agent":"`+facebookAndroidUA+`"}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var classified map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		if entry["msg"] == "classified" {
			classified = entry
		}
	}
	require.NotNil(t, classified, buf.String())
	group, ok := classified["inapp"].(map[string]any)
	require.True(t, ok, "inapp group missing: %v", classified)
	assert.Equal(t, true, group["in_app"])
	assert.Equal(t, inapp.LabelFacebook, group["browser_label"])
}

func TestClassifyBatch(t *testing.T) {
	t.Parallel()
	h, _ := newRouter(t, defaultConfig())

	batch := api.BatchRequest{Items: []api.ClassifyRequest{
		{UserAgent: facebookAndroidUA},
		{UserAgent: androidChromeUA, Referrer: gmailReferrer},
		{UserAgent: iPhoneSafariUA},
	}}
	raw, err := json.Marshal(batch)
	require.NoError(t, err)

	rec, env := do(t, h, postJSON("/v1/classify/batch", string(raw)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	got := decodeData[[]api.Classification](t, env)
	require.Len(t, got, 3)
	assert.Equal(t, inapp.LabelFacebook, got[0].BrowserLabel)
	assert.Equal(t, inapp.LabelGmail, got[1].BrowserLabel)
	assert.Equal(t, inapp.LabelSafari, got[2].BrowserLabel)
	assert.False(t, got[2].InApp)

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		rec, env := do(t, h, postJSON("/v1/classify/batch", `{"items":[]}`))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Contains(t, env.Error.Message, api.ErrEmptyBatch.Error())
	})

	t.Run("too large", func(t *testing.T) {
		t.Parallel()
		items := make([]api.ClassifyRequest, api.MaxBatchSize+1)
		raw, err := json.Marshal(api.BatchRequest{Items: items})
		require.NoError(t, err)
		rec, env := do(t, h, postJSON("/v1/classify/batch", string(raw)))
		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotNil(t, env.Error)
		assert.Contains(t, env.Error.Message, api.ErrBatchTooLarge.Error())
	})
}

func TestLabels(t *testing.T) {
	t.Parallel()
	h, m := newRouter(t, defaultConfig())

	rec, env := do(t, h, httptest.NewRequest(http.MethodGet, "/v1/labels", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[map[string][]string](t, env)
	assert.Equal(t, inapp.Labels(), got["labels"])
	assert.NotEmpty(t, rec.Header().Get(requestid.Header))
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/v1/labels", http.MethodGet, "200")), 0)
}

func TestHealth(t *testing.T) {
	t.Parallel()
	h, _ := newRouter(t, defaultConfig())

	rec, _ := do(t, h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())

	rec, _ = do(t, h, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "READY", rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	t.Parallel()

	t.Run("enabled", func(t *testing.T) {
		t.Parallel()
		h, _ := newRouter(t, defaultConfig())
		q := url.Values{"ua": {facebookAndroidUA}}
		do(t, h, httptest.NewRequest(http.MethodGet, "/v1/classify?"+q.Encode(), nil))

		rec, _ := do(t, h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `inappdetect_verdicts_total{in_app="true",label="Facebook"} 1`)
	})

	t.Run("disabled", func(t *testing.T) {
		t.Parallel()
		cfg := defaultConfig()
		cfg.MetricsEnabled = false
		h, _ := newRouter(t, cfg)
		rec, env := do(t, h, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, api.CodeNotFound, env.Error.Code)
	})
}

func TestRateLimit(t *testing.T) {
	t.Parallel()
	cfg := defaultConfig()
	cfg.RateLimitRequests = 2
	h, m := newRouter(t, cfg)

	for range 2 {
		rec, _ := do(t, h, httptest.NewRequest(http.MethodGet, "/v1/labels", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec, env := do(t, h, httptest.NewRequest(http.MethodGet, "/v1/labels", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	require.NotNil(t, env.Error)
	assert.Equal(t, api.CodeRateLimitExceeded, env.Error.Code)
	assert.InDelta(t, 1, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("/v1/*", http.MethodGet, "429")), 0)

	other := httptest.NewRequest(http.MethodGet, "/v1/labels", nil)
	other.RemoteAddr = "198.51.100.7:1"
	rec, _ = do(t, h, other)
	assert.Equal(t, http.StatusOK, rec.Code, "limit is per client")

	rec, _ = do(t, h, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code, "probes are not limited")
}

func TestRouting(t *testing.T) {
	t.Parallel()
	h := api.New(api.Config{})

	rec, env := do(t, h, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, api.CodeNotFound, env.Error.Code)

	rec, env = do(t, h, httptest.NewRequest(http.MethodDelete, "/v1/labels", bytes.NewReader(nil)))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, api.CodeMethodNotAllowed, env.Error.Code)
}
