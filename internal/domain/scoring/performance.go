package scoring

import (
	"fmt"

	"github.com/aeoscan/aeoscan/internal/domain"
)

// ScorePerformance turns PageSpeed Insights reports into the performance
// category: the mean of the four Lighthouse sub-scores, mobile-first. When
// one strategy fails the other's values are used entirely, with an issue
// noting the missing data; when both fail the category degrades to zero/poor.
func ScorePerformance(mobile, desktop domain.Result[domain.PSIReport]) domain.CategoryResult {
	if !mobile.OK() && !desktop.OK() {
		return domain.FailedCategory(
			fmt.Sprintf("Performance data unavailable (%s)", mobile.Reason()),
			"Verify the URL is publicly reachable and re-run the validation",
		)
	}

	var issues, fixes []string
	primary := mobile.Data()
	switch {
	case !mobile.OK():
		primary = desktop.Data()
		issues = append(issues, fmt.Sprintf("Mobile data unavailable (%s); scores reflect desktop only", mobile.Reason()))
		fixes = append(fixes, "Re-run the validation to capture mobile metrics")
	case !desktop.OK():
		issues = append(issues, fmt.Sprintf("Desktop data unavailable (%s); scores reflect mobile only", desktop.Reason()))
		fixes = append(fixes, "Re-run the validation to capture desktop metrics")
	}

	score := roundMean(primary.Performance, primary.SEO, primary.Accessibility, primary.BestPractices)

	if primary.Performance < 60 {
		issues = append(issues, fmt.Sprintf("Poor page performance (%d/100)", primary.Performance))
		fixes = append(fixes, "Compress images, defer offscreen assets, and reduce main-thread work")
	}
	if primary.SEO < 80 {
		issues = append(issues, fmt.Sprintf("Lighthouse SEO score below 80 (%d/100)", primary.SEO))
		fixes = append(fixes, "Fix crawlability basics: titles, descriptions, and valid links")
	}
	if primary.Accessibility < 80 {
		issues = append(issues, fmt.Sprintf("Lighthouse accessibility score below 80 (%d/100)", primary.Accessibility))
		fixes = append(fixes, "Add alt text, labels, and sufficient color contrast")
	}
	if mobile.OK() && desktop.OK() && abs(mobile.Data().Performance-desktop.Data().Performance) > 20 {
		issues = append(issues, fmt.Sprintf("Mobile and desktop performance differ by %d points", abs(mobile.Data().Performance-desktop.Data().Performance)))
		fixes = append(fixes, "Audit responsive design: the slower strategy is dragging real users down")
	}

	details := map[string]any{"strategy": primary.Strategy}
	if mobile.OK() {
		details["mobile"] = mobile.Data()
	}
	if desktop.OK() {
		details["desktop"] = desktop.Data()
	}

	return domain.NewPSICategoryResult(score, issues, fixes, details)
}
