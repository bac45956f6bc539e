package scoring

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aeoscan/aeoscan/internal/domain"
	"github.com/aeoscan/aeoscan/internal/domain/brand"
)

var (
	faqHeadingPattern   = regexp.MustCompile(`(?i)\b(faq|question|q&a)\b`)
	localTitlePattern   = regexp.MustCompile(`(?i)\b(in|at|near|location)\b`)
	articleSchemaTypes  = []string{"Article", "BlogPosting"}
	businessSchemaTypes = []string{"LocalBusiness", "Organization"}
)

// ScoreAEO grades answer-engine readiness from five additive sub-scores:
// schema compliance, voice-search readiness, snippet optimization, FAQ
// structure, and local optimization. Each sub-score is a checklist capped at
// 100 and the category score is their mean.
func ScoreAEO(page domain.Result[domain.PageSnapshot], business domain.BusinessContext) domain.CategoryResult {
	if !page.OK() {
		return domain.FailedCategory(
			fmt.Sprintf("AEO analysis failed (%s)", page.Reason()),
			"Verify the URL is publicly reachable and re-run the validation",
		)
	}
	snapshot := page.Data()
	signals := domain.AnalyzeContent(snapshot.Text)

	hasFAQ := snapshot.HasSchema("FAQPage")
	hasBusiness := hasAnySchema(snapshot, businessSchemaTypes)
	hasArticle := hasAnySchema(snapshot, articleSchemaTypes)

	schemaScore := capped(
		boolPoints(hasFAQ, 25),
		boolPoints(hasBusiness, 20),
		boolPoints(hasArticle, 15),
		boolPoints(len(snapshot.JSONLD) > 0, 20),
		boolPoints(snapshot.Canonical != "", 10),
		boolPoints(snapshot.MetaDescription != "", 10),
	)

	voiceScore := capped(
		boolPoints(signals.HasQuestionPatterns, 30),
		boolPoints(signals.HasAnswerIndicators, 25),
		boolPoints(signals.HasNaturalLanguage, 20),
		boolPoints(signals.AvgSentenceLength > 0 && signals.AvgSentenceLength < 20, 15),
		boolPoints(snapshot.HeadingCount("h2") > 0, 10),
	)

	h2Count := snapshot.HeadingCount("h2")
	snippetScore := capped(
		boolPoints(snapshot.Title != "" && len(snapshot.Title) <= 60, 25),
		boolPoints(snapshot.MetaDescription != "" && len(snapshot.MetaDescription) <= 160, 25),
		boolPoints(snapshot.HeadingCount("h1") == 1, 20),
		boolPoints(h2Count >= 1 && h2Count <= 6, 15),
		boolPoints(signals.AvgSentenceLength > 0 && signals.AvgSentenceLength < 25, 15),
	)

	subHeadings := strings.Join(append(snapshot.Headings["h2"], snapshot.Headings["h3"]...), " ")
	faqScore := capped(
		boolPoints(hasFAQ, 40),
		boolPoints(signals.HasQuestionPatterns, 30),
		boolPoints(faqHeadingPattern.MatchString(subHeadings), 20),
		boolPoints(hasQuestionHeading(snapshot.Headings["h3"]), 10),
	)

	brandMentions := brand.MentionCount(snapshot.Text, append([]string{business.Name}, business.BrandTerms...))
	localScore := capped(
		boolPoints(hasBusiness, 40),
		boolPoints(signals.HasLocationInfo, 30),
		boolPoints(localTitlePattern.MatchString(snapshot.Title), 20),
		boolPoints(brandMentions > 0, 10),
	)

	score := roundMean(schemaScore, voiceScore, snippetScore, faqScore, localScore)

	var issues, fixes []string
	if voiceScore < 50 {
		issues = append(issues, "Content is not structured for voice or AI answer engines")
		fixes = append(fixes, "Rewrite key sections as direct question-and-answer pairs")
	}
	if faqScore < 50 {
		issues = append(issues, "Weak FAQ structure")
		fixes = append(fixes, "Add an FAQ section with FAQPage schema markup")
	}
	if snippetScore < 50 {
		issues = append(issues, "Page is unlikely to win featured snippets")
		fixes = append(fixes, "Tighten the title, meta description, and heading hierarchy")
	}
	if localScore < 50 {
		issues = append(issues, "Local optimization signals are missing")
		fixes = append(fixes, "Add business schema and visible address, phone, and hours")
	}
	if brandMentions == 0 && business.Name != "" {
		issues = append(issues, fmt.Sprintf("Brand %q is never mentioned in the page text", business.Name))
		fixes = append(fixes, "Mention the brand naturally in headings and body copy")
	}

	return domain.NewCategoryResult(score, issues, fixes, map[string]any{
		"schemaCompliance":    schemaScore,
		"voiceSearchReady":    voiceScore,
		"snippetOptimization": snippetScore,
		"faqStructure":        faqScore,
		"localOptimization":   localScore,
		"brandMentions":       brandMentions,
		"contentSignals":      signals,
	})
}

func hasAnySchema(snapshot domain.PageSnapshot, types []string) bool {
	for _, t := range types {
		if snapshot.HasSchema(t) {
			return true
		}
	}
	return false
}

func hasQuestionHeading(headings []string) bool {
	for _, h := range headings {
		if strings.Contains(h, "?") {
			return true
		}
	}
	return false
}
