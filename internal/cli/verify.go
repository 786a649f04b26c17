package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/inappdetect/pkg/corpus"
)

func newVerifyCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "verify <corpus.yaml>",
		Short: "Run a pinned user agent corpus against the classifier",
		Long:  "Classifies every case of a YAML corpus and compares the verdicts.\nExit code 0 if all cases pass, 1 if any fail.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := corpus.RunFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				s, err := corpus.FormatJSON(report)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, s)
			case "text":
				fmt.Fprint(out, corpus.FormatText(report))
			default:
				return fmt.Errorf("unknown format %q, expected text or json", format)
			}

			if report.Failed > 0 {
				return fmt.Errorf("%w: %d of %d cases", ErrVerifyFailed, report.Failed, report.Total)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text|json)")
	return cmd
}
