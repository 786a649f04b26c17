// Package cli implements the inapp command line.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// ErrVerifyFailed is returned by verify when a corpus case mismatches.
var ErrVerifyFailed = errors.New("corpus verification failed")

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "inapp",
		Short:         "Detect in-app browsers from user agents and runtime probes",
		Long:          "Classifies a browsing context as an in-app WebView or a regular browser\nand names the browser or host app.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newClassifyCmd(), newVerifyCmd(), newServeCmd())
	return root
}

// Execute runs the root command and exits non-zero on error.
func Execute(ctx context.Context) {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		if !errors.Is(err, ErrVerifyFailed) {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}
