package inapp

import (
	"net/url"
	"strconv"
	"strings"
)

// Query parameter names understood by ProbeFromQuery.
const (
	QueryOuterWidth  = "ow"
	QueryOuterHeight = "oh"
	QueryInnerWidth  = "iw"
	QueryInnerHeight = "ih"
	QueryScreenWidth = "sw"
	QueryStandalone  = "standalone"
	QueryRNBridge    = "rn"
	QueryBraveHook   = "brave"
)

// ProbeFromQuery builds a probe from beacon query parameters. Values that
// are missing or malformed are treated as absent, never as errors. The
// viewport is set only when all four dimensions parse. It returns nil when
// the query carries no probe values at all.
func ProbeFromQuery(q url.Values) *Probe {
	ow, okOW := queryInt(q, QueryOuterWidth)
	oh, okOH := queryInt(q, QueryOuterHeight)
	iw, okIW := queryInt(q, QueryInnerWidth)
	ih, okIH := queryInt(q, QueryInnerHeight)

	p := &Probe{
		Standalone:        queryBool(q, QueryStandalone),
		ReactNativeBridge: queryBool(q, QueryRNBridge),
		BraveHook:         queryBool(q, QueryBraveHook),
	}
	if okOW && okOH && okIW && okIH {
		p.Viewport = &Viewport{OuterWidth: ow, OuterHeight: oh, InnerWidth: iw, InnerHeight: ih}
	}
	if sw, ok := queryInt(q, QueryScreenWidth); ok {
		p.ScreenWidth = &sw
	}

	if p.Viewport == nil && p.ScreenWidth == nil && !p.Standalone && !p.ReactNativeBridge && !p.BraveHook {
		return nil
	}
	return p
}

func queryInt(q url.Values, key string) (int, bool) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func queryBool(q url.Values, key string) bool {
	switch strings.ToLower(strings.TrimSpace(q.Get(key))) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
