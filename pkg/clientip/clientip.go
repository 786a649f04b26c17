package clientip

import (
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// proxyHeaders lists the single-address headers set by common edge proxies,
// checked before X-Forwarded-For.
var proxyHeaders = []string{"CF-Connecting-IP", "DO-Connecting-IP", "True-Client-IP"}

// GetIP returns the client address, trusting proxy headers. Check order is
// proxyHeaders, then the first valid X-Forwarded-For entry, then X-Real-IP,
// then RemoteAddr. Use it only behind a proxy that overwrites these headers.
func GetIP(r *http.Request) string {
	for _, name := range proxyHeaders {
		if ip := parseIP(r.Header.Get(name)); ip != "" {
			return ip
		}
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for entry := range strings.SplitSeq(forwarded, ",") {
			if ip := parseIP(entry); ip != "" {
				return ip
			}
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	return RemoteIP(r)
}

// RemoteIP returns the address of the connection peer, ignoring headers.
func RemoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// KeyFunc returns an httprate key function. With trustProxy the key comes
// from GetIP, otherwise from RemoteIP. IPv6 clients are keyed by their /64.
func KeyFunc(trustProxy bool) func(r *http.Request) (string, error) {
	resolve := RemoteIP
	if trustProxy {
		resolve = GetIP
	}
	return func(r *http.Request) (string, error) {
		return canonicalKey(resolve(r)), nil
	}
}

func canonicalKey(ip string) string {
	addr, err := netip.ParseAddr(ip)
	if err != nil || !addr.Is6() {
		return ip
	}
	prefix, err := addr.Prefix(64)
	if err != nil {
		return ip
	}
	return prefix.String()
}

// parseIP validates and normalizes an address, returning "" when invalid.
// IPv4-mapped IPv6 addresses are unmapped and zones are dropped.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return ""
	}
	return addr.Unmap().WithZone("").String()
}
