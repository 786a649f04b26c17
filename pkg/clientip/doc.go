// Package clientip resolves the address of the client behind a request, for
// use as a rate-limit key.
//
// GetIP consults CDN and proxy headers (CF-Connecting-IP, DO-Connecting-IP,
// True-Client-IP, X-Forwarded-For, X-Real-IP) before falling back to the
// connection address. Only use it when the service runs behind a proxy that
// overwrites those headers; RemoteIP ignores them.
//
// KeyFunc adapts either strategy to httprate:
//
//	httprate.Limit(120, time.Minute, httprate.WithKeyFuncs(clientip.KeyFunc(false)))
//
// IPv6 clients are keyed by their /64 prefix.
package clientip
