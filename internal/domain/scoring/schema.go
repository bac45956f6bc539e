package scoring

import (
	"fmt"
	"math"

	"github.com/aeoscan/aeoscan/internal/domain"
)

// Schema checklist constants.
const (
	faqMinEntries  = 3
	faqMaxEntries  = 8
	metaDescMinLen = 140
	metaDescMaxLen = 160
	titleMinLen    = 30
	titleMaxLen    = 60
)

var localBusinessRequiredFields = []string{"name", "address", "telephone"}

// ScoreSchema grades the page's JSON-LD markup against the structured-data
// checklist. Missing required LocalBusiness fields are errors; everything
// else on the checklist is a warning. Rich-results eligibility requires zero
// errors and at most two warnings for LocalBusiness, or at least three
// well-formed FAQ entries for FAQPage.
func ScoreSchema(page domain.Result[domain.PageSnapshot]) domain.CategoryResult {
	if !page.OK() {
		return domain.FailedCategory(
			fmt.Sprintf("Schema markup could not be extracted (%s)", page.Reason()),
			"Verify the URL is publicly reachable and re-run the validation",
		)
	}
	snapshot := page.Data()

	var errors, warnings, fixes []string

	hasJSONLD := len(snapshot.JSONLD) > 0
	if !hasJSONLD {
		warnings = append(warnings, "No JSON-LD structured data found")
		fixes = append(fixes, "Add JSON-LD markup for your business and content types")
	}

	localBusinesses := snapshot.SchemasOfType("LocalBusiness")
	hasLocalBusiness := len(localBusinesses) > 0
	fieldsComplete := hasLocalBusiness
	if hasLocalBusiness {
		for _, field := range localBusinessRequiredFields {
			if domain.SchemaStringField(localBusinesses[0], field) == "" {
				fieldsComplete = false
				errors = append(errors, fmt.Sprintf("LocalBusiness schema is missing required field %q", field))
				fixes = append(fixes, fmt.Sprintf("Add the %q property to your LocalBusiness markup", field))
			}
		}
	} else {
		warnings = append(warnings, "No LocalBusiness schema found")
		fixes = append(fixes, "Add LocalBusiness schema with name, address, and telephone")
	}

	faqEntries := snapshot.FAQEntries()
	hasFAQ := snapshot.HasSchema("FAQPage")
	faqCountOK := hasFAQ && len(faqEntries) >= faqMinEntries && len(faqEntries) <= faqMaxEntries
	if !hasFAQ {
		warnings = append(warnings, "No FAQPage schema found")
		fixes = append(fixes, "Mark up your Q&A content with FAQPage schema (3-8 entries)")
	} else if !faqCountOK {
		warnings = append(warnings, fmt.Sprintf("FAQPage has %d entries; %d-%d is the range answer engines reward", len(faqEntries), faqMinEntries, faqMaxEntries))
		fixes = append(fixes, "Trim or expand the FAQ to 3-8 focused entries")
	}

	metaOK := len(snapshot.MetaDescription) >= metaDescMinLen && len(snapshot.MetaDescription) <= metaDescMaxLen
	if !metaOK {
		warnings = append(warnings, fmt.Sprintf("Meta description is %d characters; %d-%d is optimal", len(snapshot.MetaDescription), metaDescMinLen, metaDescMaxLen))
		fixes = append(fixes, "Rewrite the meta description to 140-160 characters")
	}

	titleOK := len(snapshot.Title) >= titleMinLen && len(snapshot.Title) <= titleMaxLen
	if !titleOK {
		warnings = append(warnings, fmt.Sprintf("Page title is %d characters; %d-%d is optimal", len(snapshot.Title), titleMinLen, titleMaxLen))
		fixes = append(fixes, "Rewrite the page title to 30-60 characters")
	}

	completeness := checklistScore(
		hasJSONLD,
		hasLocalBusiness,
		fieldsComplete,
		hasFAQ,
		faqCountOK,
		metaOK,
		titleOK,
	)
	readiness := capped(
		boolPoints(hasFAQ, 30),
		boolPoints(snapshot.WellFormedFAQCount() >= faqMinEntries, 30),
		boolPoints(metaOK, 20),
		boolPoints(titleOK, 20),
	)
	score := int(math.Round(0.6*float64(completeness) + 0.4*float64(readiness)))

	richResultsEligible := (hasLocalBusiness && len(errors) == 0 && len(warnings) <= 2) ||
		snapshot.WellFormedFAQCount() >= faqMinEntries

	issues := append(errors, warnings...)
	return domain.NewCategoryResult(score, issues, fixes, map[string]any{
		"completenessScore":   completeness,
		"aeoReadinessScore":   readiness,
		"errorCount":          len(errors),
		"warningCount":        len(warnings),
		"richResultsEligible": richResultsEligible,
		"faqEntryCount":       len(faqEntries),
	})
}

// checklistScore converts pass/fail checks into a 0-100 completeness score.
func checklistScore(checks ...bool) int {
	if len(checks) == 0 {
		return 0
	}
	passed := 0
	for _, ok := range checks {
		if ok {
			passed++
		}
	}
	return int(math.Round(float64(passed) / float64(len(checks)) * 100))
}

func boolPoints(ok bool, points int) int {
	if ok {
		return points
	}
	return 0
}
