package inapp

// Viewport holds window geometry as read by the host page.
type Viewport struct {
	OuterWidth  int `json:"outer_width" yaml:"outer_width"`
	OuterHeight int `json:"outer_height" yaml:"outer_height"`
	InnerWidth  int `json:"inner_width" yaml:"inner_width"`
	InnerHeight int `json:"inner_height" yaml:"inner_height"`
}

// Probe bundles the optional runtime signals a host can collect. Every field
// is independently optional: a nil pointer or false means the signal was not
// available, which the classifier treats as negative.
type Probe struct {
	// Viewport is nil unless all four window dimensions were read.
	Viewport *Viewport `json:"viewport,omitempty" yaml:"viewport,omitempty"`
	// ScreenWidth is the physical screen width, nil when unknown.
	ScreenWidth *int `json:"screen_width,omitempty" yaml:"screen_width,omitempty"`
	// Standalone reports display-mode: standalone (installed web app).
	Standalone bool `json:"standalone,omitempty" yaml:"standalone,omitempty"`
	// ReactNativeBridge reports a React Native WebView message bridge.
	ReactNativeBridge bool `json:"react_native_bridge,omitempty" yaml:"react_native_bridge,omitempty"`
	// BraveHook reports Brave's navigator.brave feature-detection hook.
	BraveHook bool `json:"brave_hook,omitempty" yaml:"brave_hook,omitempty"`
}

func (p *Probe) standalone() bool {
	return p != nil && p.Standalone
}

func (p *Probe) reactNativeBridge() bool {
	return p != nil && p.ReactNativeBridge
}

func (p *Probe) braveHook() bool {
	return p != nil && p.BraveHook
}

// hasVisibleBrowserChrome reports whether the viewport is noticeably smaller
// than the window on either axis. Unknown geometry reports false.
func (p *Probe) hasVisibleBrowserChrome() bool {
	if p == nil || p.Viewport == nil {
		return false
	}
	v := p.Viewport
	return v.OuterWidth-v.InnerWidth > 30 || v.OuterHeight-v.InnerHeight > 30
}

// hasNormalScreenLayout reports whether the window is narrower than the
// screen by more than a scrollbar, which fullscreen WebViews never are.
func (p *Probe) hasNormalScreenLayout() bool {
	if p == nil || p.Viewport == nil || p.ScreenWidth == nil {
		return false
	}
	return *p.ScreenWidth-p.Viewport.OuterWidth > 50
}

// chromeHidden reports that geometry is known and shows neither browser UI
// nor a window narrower than the screen.
func (p *Probe) chromeHidden() bool {
	if p == nil || p.Viewport == nil {
		return false
	}
	return !p.hasVisibleBrowserChrome() && !p.hasNormalScreenLayout()
}
