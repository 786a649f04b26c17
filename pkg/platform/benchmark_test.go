package platform_test

import (
	"testing"

	"github.com/dmitrymomot/inappdetect/pkg/platform"
)

func BenchmarkParse(b *testing.B) {
	uas := map[string]string{
		"android_chrome": "Mozilla/5.0 (Linux; Android 13; SM-G998B) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/115.0.0.0 Mobile Safari/537.36",
		"ios_safari":     "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/605.1.15",
		"linux_firefox":  "Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0",
	}
	for name, ua := range uas {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			for b.Loop() {
				_ = platform.Parse(ua)
			}
		})
	}
}
