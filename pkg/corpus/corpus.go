package corpus

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/inappdetect/pkg/inapp"
)

// Load decodes a YAML corpus from r and validates every case.
func Load(r io.Reader) ([]Case, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f file
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyCorpus
		}
		return nil, errors.Join(ErrDecode, err)
	}
	if len(f.Cases) == 0 {
		return nil, ErrEmptyCorpus
	}

	labels := inapp.Labels()
	for i := range f.Cases {
		c := &f.Cases[i]
		if c.Name == "" {
			c.Name = fmt.Sprintf("case %d", i+1)
		}
		if c.Expect.InApp == nil {
			return nil, fmt.Errorf("%w: %s: expect.in_app is required", ErrInvalidCase, c.Name)
		}
		if !slices.Contains(labels, c.Expect.Label) {
			return nil, fmt.Errorf("%w: %s: unknown label %q", ErrInvalidCase, c.Name, c.Expect.Label)
		}
	}

	return f.Cases, nil
}

// LoadFile reads and decodes the corpus at path.
func LoadFile(path string) ([]Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open corpus %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	cases, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("load corpus %s: %w", path, err)
	}
	return cases, nil
}

// Run classifies every case. Cases are independent.
func Run(cases []Case) Report {
	report := Report{Total: len(cases), Cases: make([]CaseResult, 0, len(cases))}

	for i, c := range cases {
		v := inapp.Classify(c.UserAgent, c.Referrer, c.Probe)
		passed := c.Expect.InApp != nil && *c.Expect.InApp == v.InApp && c.Expect.Label == v.Label

		report.Cases = append(report.Cases, CaseResult{
			Index:    i + 1,
			Name:     c.Name,
			Passed:   passed,
			Expected: c.Expect,
			Actual:   v,
		})
		if passed {
			report.Passed++
		} else {
			report.Failed++
		}
	}

	return report
}

// RunFile loads the corpus at path and runs it.
func RunFile(path string) (Report, error) {
	cases, err := LoadFile(path)
	if err != nil {
		return Report{}, err
	}
	report := Run(cases)
	report.File = path
	return report, nil
}
