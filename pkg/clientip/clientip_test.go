package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inappdetect/pkg/clientip"
)

func request(remoteAddr string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

func TestGetIP(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		expected   string
	}{
		{
			name: "cloudflare header first",
			headers: map[string]string{
				"CF-Connecting-IP": "203.0.113.195",
				"X-Forwarded-For":  "192.168.1.1",
				"X-Real-IP":        "10.0.0.1",
			},
			remoteAddr: "172.16.0.1:54321",
			expected:   "203.0.113.195",
		},
		{
			name:       "invalid cloudflare header falls through",
			headers:    map[string]string{"CF-Connecting-IP": "not-an-ip", "DO-Connecting-IP": "198.51.100.178"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "198.51.100.178",
		},
		{
			name:       "true-client-ip",
			headers:    map[string]string{"True-Client-IP": "198.51.100.7"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "198.51.100.7",
		},
		{
			name:       "first valid forwarded entry",
			headers:    map[string]string{"X-Forwarded-For": "garbage, 198.51.100.178 , 203.0.113.195"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "198.51.100.178",
		},
		{
			name:       "x-real-ip",
			headers:    map[string]string{"X-Real-IP": "192.168.1.1"},
			remoteAddr: "10.0.0.1:54321",
			expected:   "192.168.1.1",
		},
		{
			name:       "remote addr fallback",
			remoteAddr: "192.168.1.100:8080",
			expected:   "192.168.1.100",
		},
		{
			name:       "remote addr without port",
			remoteAddr: "192.168.1.100",
			expected:   "192.168.1.100",
		},
		{
			name:       "ipv6 remote addr",
			remoteAddr: "[2001:db8::1]:8080",
			expected:   "2001:db8::1",
		},
		{
			name:       "ipv4 mapped ipv6 is unmapped",
			headers:    map[string]string{"X-Real-IP": "::ffff:192.0.2.1"},
			remoteAddr: "10.0.0.1:1",
			expected:   "192.0.2.1",
		},
		{
			name:       "invalid everything",
			headers:    map[string]string{"X-Forwarded-For": "a, b"},
			remoteAddr: "nonsense",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, clientip.GetIP(request(tt.remoteAddr, tt.headers)))
		})
	}
}

func TestRemoteIPIgnoresHeaders(t *testing.T) {
	t.Parallel()
	req := request("10.1.2.3:443", map[string]string{"X-Forwarded-For": "203.0.113.9"})
	assert.Equal(t, "10.1.2.3", clientip.RemoteIP(req))
}

func TestKeyFunc(t *testing.T) {
	t.Parallel()

	req := request("10.1.2.3:443", map[string]string{"X-Forwarded-For": "203.0.113.9"})

	key, err := clientip.KeyFunc(false)(req)
	require.NoError(t, err)
	assert.Equal(t, "10.1.2.3", key)

	key, err = clientip.KeyFunc(true)(req)
	require.NoError(t, err)
	assert.Equal(t, "203.0.113.9", key)

	t.Run("ipv6 keyed by /64", func(t *testing.T) {
		t.Parallel()
		a, _ := clientip.KeyFunc(false)(request("[2001:db8:1:2::a]:1", nil))
		b, _ := clientip.KeyFunc(false)(request("[2001:db8:1:2:ffff::b]:1", nil))
		assert.Equal(t, "2001:db8:1:2::/64", a)
		assert.Equal(t, a, b)
	})
}
