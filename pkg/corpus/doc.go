// Package corpus loads pinned User-Agent fixtures and checks them against
// the in-app classifier, so that vendor UA format changes show up as
// regressions instead of silent misclassification.
//
// A corpus is a YAML document with a list of cases, each carrying a user
// agent, an optional referrer and probe, and the expected verdict:
//
//	report, err := corpus.RunFile("testdata/corpus.yaml")
//	if err != nil {
//		return err
//	}
//	fmt.Print(corpus.FormatText(report))
//
// Report.Failures lists the cases whose verdict did not match.
package corpus
