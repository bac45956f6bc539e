// Package brand extracts brand and competitor mentions from page text.
package brand

import (
	"regexp"
	"strings"
)

// Mention is one occurrence of a tracked term.
type Mention struct {
	Term    string `json:"term"`
	Count   int    `json:"count"`
	Context string `json:"context,omitempty"`
}

// ExtractMentions counts case-insensitive whole-word occurrences of each term
// in text. Terms are escaped before the pattern is built, so user-supplied
// terms cannot change the regex semantics.
func ExtractMentions(text string, terms []string) []Mention {
	var mentions []Mention
	for _, term := range terms {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			continue
		}
		locs := re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}
		mentions = append(mentions, Mention{
			Term:    term,
			Count:   len(locs),
			Context: surrounding(text, locs[0]),
		})
	}
	return mentions
}

// MentionCount is the total number of occurrences across all terms.
func MentionCount(text string, terms []string) int {
	total := 0
	for _, m := range ExtractMentions(text, terms) {
		total += m.Count
	}
	return total
}

// surrounding returns up to 40 characters of context around the first match.
func surrounding(text string, loc []int) string {
	start := loc[0] - 20
	if start < 0 {
		start = 0
	}
	end := loc[1] + 20
	if end > len(text) {
		end = len(text)
	}
	return strings.TrimSpace(text[start:end])
}
