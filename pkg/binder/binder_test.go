package binder_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inappdetect/pkg/binder"
)

type classifyBody struct {
	UserAgent string `json:"user_agent"`
	Referrer  string `json:"referrer"`
	Probe     *struct {
		Standalone bool `json:"standalone"`
	} `json:"environment"`
}

func jsonRequest(body, contentType string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/v1/classify", strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	return req
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("binds and sanitizes", func(t *testing.T) {
		t.Parallel()
		req := jsonRequest(`{"user_agent":"  Mozilla/5.0\u0000 FBAN/EMA \n","referrer":"https://mail.google.com/","environment":{"standalone":true}}`,
			"application/json; charset=utf-8")

		var body classifyBody
		require.NoError(t, binder.JSON()(req, &body))
		assert.Equal(t, "Mozilla/5.0 FBAN/EMA", body.UserAgent)
		assert.Equal(t, "https://mail.google.com/", body.Referrer)
		require.NotNil(t, body.Probe)
		assert.True(t, body.Probe.Standalone)
	})

	tests := []struct {
		name        string
		body        string
		contentType string
		wantErr     error
	}{
		{"missing content type", `{}`, "", binder.ErrMissingContentType},
		{"wrong content type", `{}`, "text/plain", binder.ErrUnsupportedMediaType},
		{"malformed content type", `{}`, "application/json; =", binder.ErrUnsupportedMediaType},
		{"empty body", ``, "application/json", binder.ErrFailedToParseJSON},
		{"invalid json", `{"user_agent":`, "application/json", binder.ErrFailedToParseJSON},
		{"unknown field", `{"ua":"x"}`, "application/json", binder.ErrFailedToParseJSON},
		{"type mismatch", `{"user_agent":42}`, "application/json", binder.ErrFailedToParseJSON},
		{"trailing data", `{"user_agent":"x"} {"user_agent":"y"}`, "application/json", binder.ErrFailedToParseJSON},
		{"too large", `{"user_agent":"` + strings.Repeat("a", binder.DefaultMaxJSONSize) + `"}`, "application/json", binder.ErrBodyTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var body classifyBody
			err := binder.JSON()(jsonRequest(tt.body, tt.contentType), &body)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		req := jsonRequest(`{}`, "application/json").WithContext(ctx)

		var body classifyBody
		err := binder.JSON()(req, &body)
		assert.ErrorIs(t, err, binder.ErrFailedToParseJSON)
	})
}

func TestQuery(t *testing.T) {
	t.Parallel()

	type beacon struct {
		UserAgent   string   `query:"ua"`
		Referrer    string   `query:"ref"`
		ScreenWidth *int     `query:"sw"`
		Standalone  bool     `query:"standalone"`
		Ratio       float64  `query:"dpr"`
		Tags        []string `query:"tag"`
		Count       uint8    `query:"n"`
		Internal    string   `query:"-"`
		Format      string
	}

	t.Run("binds all kinds", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet,
			"/v1/classify?ua=%20Instagram%20&ref=&sw=412&standalone=on&dpr=2.625&tag=a,b&tag=c&n=7&Internal=x&format=json", nil)

		var got beacon
		require.NoError(t, binder.Query()(req, &got))
		assert.Equal(t, "Instagram", got.UserAgent)
		assert.Empty(t, got.Referrer)
		require.NotNil(t, got.ScreenWidth)
		assert.Equal(t, 412, *got.ScreenWidth)
		assert.True(t, got.Standalone)
		assert.InDelta(t, 2.625, got.Ratio, 0.0001)
		assert.Equal(t, []string{"a", "b", "c"}, got.Tags)
		assert.Equal(t, uint8(7), got.Count)
		assert.Empty(t, got.Internal)
		assert.Equal(t, "json", got.Format)
	})

	t.Run("absent pointer stays nil", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/v1/classify?ua=x", nil)
		var got beacon
		require.NoError(t, binder.Query()(req, &got))
		assert.Nil(t, got.ScreenWidth)
	})

	errTests := []struct {
		name  string
		query string
	}{
		{"bad int", "sw=wide"},
		{"bad bool", "standalone=maybe"},
		{"bad float", "dpr=x"},
		{"uint overflow", "n=300"},
	}
	for _, tt := range errTests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, "/v1/classify?"+tt.query, nil)
			var got beacon
			err := binder.Query()(req, &got)
			require.Error(t, err)
			assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
		})
	}

	t.Run("invalid target", func(t *testing.T) {
		t.Parallel()
		req := httptest.NewRequest(http.MethodGet, "/?ua=x", nil)
		var s string
		for _, target := range []any{nil, beacon{}, &s} {
			err := binder.Query()(req, target)
			assert.ErrorIs(t, err, binder.ErrInvalidTarget)
			assert.ErrorIs(t, err, binder.ErrFailedToParseQuery)
		}
	})
}
