package domain

import (
	"regexp"
	"strings"
)

// Content heuristics used by the aeo scorer. The patterns mirror what answer
// engines reward: question/answer pairs, conversational phrasing, and
// location signals.
var (
	questionPattern  = regexp.MustCompile(`(?i)\b(what|how|why|when|where|who)\b[^.!?]*\?`)
	answerPattern    = regexp.MustCompile(`(?i)\b(the answer is|simply put|in short|to summarize)\b`)
	naturalPattern   = regexp.MustCompile(`(?i)\b(you can|we recommend|here's how|follow these steps)\b`)
	locationPattern  = regexp.MustCompile(`(?i)\b(located|address|phone|hours|directions)\b`)
	sentenceSplitter = regexp.MustCompile(`[.!?]+`)
)

// ContentSignals summarizes the answer-engine-relevant structure of a page's
// visible text.
type ContentSignals struct {
	HasQuestionPatterns bool    `json:"hasQuestionPatterns"`
	HasAnswerIndicators bool    `json:"hasAnswerIndicators"`
	HasNaturalLanguage  bool    `json:"hasNaturalLanguage"`
	HasLocationInfo     bool    `json:"hasLocationInfo"`
	AvgSentenceLength   float64 `json:"avgSentenceLength"`
	SentenceCount       int     `json:"sentenceCount"`
}

// AnalyzeContent computes ContentSignals for the given text.
func AnalyzeContent(text string) ContentSignals {
	signals := ContentSignals{
		HasQuestionPatterns: questionPattern.MatchString(text),
		HasAnswerIndicators: answerPattern.MatchString(text),
		HasNaturalLanguage:  naturalPattern.MatchString(text),
		HasLocationInfo:     locationPattern.MatchString(text),
	}

	var lengths []int
	for _, s := range sentenceSplitter.Split(text, -1) {
		s = strings.TrimSpace(s)
		if len(s) <= 5 {
			continue
		}
		lengths = append(lengths, len(strings.Fields(s)))
	}
	signals.SentenceCount = len(lengths)
	if len(lengths) > 0 {
		total := 0
		for _, n := range lengths {
			total += n
		}
		signals.AvgSentenceLength = float64(total) / float64(len(lengths))
	}
	return signals
}
