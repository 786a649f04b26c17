package corpus

import "github.com/dmitrymomot/inappdetect/pkg/inapp"

// Expect is the verdict a case pins.
type Expect struct {
	InApp *bool  `yaml:"in_app" json:"in_app"`
	Label string `yaml:"label" json:"browser_label"`
}

// Case is one pinned classification input.
type Case struct {
	Name      string       `yaml:"name"`
	UserAgent string       `yaml:"user_agent"`
	Referrer  string       `yaml:"referrer,omitempty"`
	Probe     *inapp.Probe `yaml:"probe,omitempty"`
	Expect    Expect       `yaml:"expect"`
}

// file is the on-disk layout of a corpus.
type file struct {
	Cases []Case `yaml:"cases"`
}

// CaseResult is the outcome of classifying one case.
type CaseResult struct {
	Index    int           `json:"index"`
	Name     string        `json:"name"`
	Passed   bool          `json:"passed"`
	Expected Expect        `json:"expected"`
	Actual   inapp.Verdict `json:"actual"`
}

// Report is the outcome of running a whole corpus.
type Report struct {
	File   string       `json:"file,omitempty"`
	Total  int          `json:"total"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
	Cases  []CaseResult `json:"cases"`
}

// Failures returns the cases that did not match their expectation.
func (r Report) Failures() []CaseResult {
	var failed []CaseResult
	for _, c := range r.Cases {
		if !c.Passed {
			failed = append(failed, c)
		}
	}
	return failed
}
