// ABOUTME: Thin wrapper over sahilm/fuzzy for "did you mean" suggestions
// ABOUTME: Ranks candidate names against a mistyped one and returns the best

package fuzzy

import "github.com/sahilm/fuzzy"

// Suggest returns the candidate that best matches name, if any matches.
// Matching is subsequence-based, so abbreviations ("dn" -> "down") and
// dropped letters are found but transpositions are not.
func Suggest(name string, candidates []string) (string, bool) {
	if name == "" {
		return "", false
	}
	matches := fuzzy.Find(name, candidates)
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}
