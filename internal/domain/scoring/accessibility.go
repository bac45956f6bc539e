package scoring

import (
	"fmt"

	"github.com/aeoscan/aeoscan/internal/domain"
)

// ScoreAccessibility grades the Lighthouse accessibility sub-score,
// mobile-first with single-strategy fallback, on the PSI threshold table.
func ScoreAccessibility(mobile, desktop domain.Result[domain.PSIReport]) domain.CategoryResult {
	if !mobile.OK() && !desktop.OK() {
		return domain.FailedCategory(
			fmt.Sprintf("Accessibility data unavailable (%s)", mobile.Reason()),
			"Verify the URL is publicly reachable and re-run the validation",
		)
	}

	var issues, fixes []string
	primary := mobile.Data()
	if !mobile.OK() {
		primary = desktop.Data()
		issues = append(issues, fmt.Sprintf("Mobile data unavailable (%s); accessibility reflects desktop only", mobile.Reason()))
		fixes = append(fixes, "Re-run the validation to capture mobile metrics")
	}

	score := primary.Accessibility
	if score < 90 {
		issues = append(issues, fmt.Sprintf("Accessibility score %d/100 leaves assistive-tech users behind", score))
		fixes = append(fixes, "Run an axe audit: alt text, form labels, heading order, and contrast are the usual gaps")
	}
	if score < 60 {
		issues = append(issues, "Severe accessibility barriers detected")
		fixes = append(fixes, "Prioritize keyboard navigation and screen-reader landmarks before cosmetic fixes")
	}

	return domain.NewPSICategoryResult(score, issues, fixes, map[string]any{
		"strategy": primary.Strategy,
		"raw":      primary.Accessibility,
	})
}
