package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inappdetect/pkg/api"
	"github.com/dmitrymomot/inappdetect/pkg/inapp"
	"github.com/dmitrymomot/inappdetect/pkg/platform"
)

type classifyFlags struct {
	ua          string
	referrer    string
	outerWidth  int
	outerHeight int
	innerWidth  int
	innerHeight int
	screenWidth int
	standalone  bool
	rnBridge    bool
	braveHook   bool
	format      string
}

func newClassifyCmd() *cobra.Command {
	f := &classifyFlags{}
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify one user agent",
		Long: "Classifies a user agent with an optional referrer and runtime probe.\n" +
			"The viewport is used only when all four window dimensions are given.",
		Example: `  inapp classify --ua "$UA" --referrer android-app://com.google.android.gm
  inapp classify --ua "$UA" --outer-width 412 --outer-height 915 --inner-width 412 --inner-height 915 --screen-width 412`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runClassify(cmd, f)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&f.ua, "ua", "", "User-Agent string (required)")
	flags.StringVar(&f.referrer, "referrer", "", "Referrer URL")
	flags.IntVar(&f.outerWidth, "outer-width", 0, "window.outerWidth")
	flags.IntVar(&f.outerHeight, "outer-height", 0, "window.outerHeight")
	flags.IntVar(&f.innerWidth, "inner-width", 0, "window.innerWidth")
	flags.IntVar(&f.innerHeight, "inner-height", 0, "window.innerHeight")
	flags.IntVar(&f.screenWidth, "screen-width", 0, "screen.width")
	flags.BoolVar(&f.standalone, "standalone", false, "display-mode: standalone matched")
	flags.BoolVar(&f.rnBridge, "rn-bridge", false, "React Native WebView bridge present")
	flags.BoolVar(&f.braveHook, "brave-hook", false, "navigator.brave present")
	flags.StringVarP(&f.format, "format", "f", "text", "Output format (text|json)")
	_ = cmd.MarkFlagRequired("ua")

	return cmd
}

func runClassify(cmd *cobra.Command, f *classifyFlags) error {
	if f.format != "text" && f.format != "json" {
		return fmt.Errorf("unknown format %q, expected text or json", f.format)
	}

	v := inapp.Classify(f.ua, f.referrer, probeFromFlags(cmd, f))
	info := platform.Parse(v.UserAgent)
	out := cmd.OutOrStdout()

	if f.format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(api.Classification{
			InApp:        v.InApp,
			BrowserLabel: v.Label,
			Reason:       v.Reason,
			Platform:     info,
		})
	}

	_, err := fmt.Fprintf(out, "in_app:   %t\nlabel:    %s\nreason:   %s\nplatform: %s\n",
		v.InApp, v.Label, v.Reason, info)
	return err
}

func probeFromFlags(cmd *cobra.Command, f *classifyFlags) *inapp.Probe {
	changed := cmd.Flags().Changed
	p := &inapp.Probe{
		Standalone:        f.standalone,
		ReactNativeBridge: f.rnBridge,
		BraveHook:         f.braveHook,
	}
	if changed("outer-width") && changed("outer-height") && changed("inner-width") && changed("inner-height") {
		p.Viewport = &inapp.Viewport{
			OuterWidth:  f.outerWidth,
			OuterHeight: f.outerHeight,
			InnerWidth:  f.innerWidth,
			InnerHeight: f.innerHeight,
		}
	}
	if changed("screen-width") {
		sw := f.screenWidth
		p.ScreenWidth = &sw
	}
	if p.Viewport == nil && p.ScreenWidth == nil && !p.Standalone && !p.ReactNativeBridge && !p.BraveHook {
		return nil
	}
	return p
}
