package platform

import "strings"

// keywordSet optimizes keyword lookups using map structure for O(1) access
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}
