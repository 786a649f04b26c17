package corpus

import (
	"encoding/json"
	"fmt"
	"strings"
)

// FormatText renders a report as human-readable text.
func FormatText(r Report) string {
	var b strings.Builder

	name := r.File
	if name == "" {
		name = "corpus"
	}

	if r.Failed == 0 {
		fmt.Fprintf(&b, "PASS  %s (%d/%d)\n", name, r.Passed, r.Total)
		return b.String()
	}

	fmt.Fprintf(&b, "FAIL  %s (%d/%d)\n", name, r.Passed, r.Total)
	for _, c := range r.Failures() {
		fmt.Fprintf(&b, "  FAIL  case %d: %s\n", c.Index, c.Name)
		fmt.Fprintf(&b, "        expected in_app=%t label=%q, got in_app=%t label=%q (%s)\n",
			derefBool(c.Expected.InApp), c.Expected.Label, c.Actual.InApp, c.Actual.Label, c.Actual.Reason)
	}
	fmt.Fprintf(&b, "\n%d of %d cases failed.\n", r.Failed, r.Total)

	return b.String()
}

// FormatJSON renders a report as indented JSON.
func FormatJSON(r Report) (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}
	return string(data), nil
}

func derefBool(b *bool) bool {
	return b != nil && *b
}
