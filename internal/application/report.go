package application

import (
	"time"

	"github.com/google/uuid"

	"github.com/aeoscan/aeoscan/internal/domain"
)

// Per-category presentation metadata for report-level issues and
// recommendations. Fixed strings, not computed.
var categoryImpact = map[domain.Category]string{
	domain.CategoryPerformance:   "Slow pages lose rankings and visitors",
	domain.CategorySEO:           "Weak on-page SEO suppresses organic traffic",
	domain.CategorySchema:        "Missing markup forfeits rich results",
	domain.CategoryAccessibility: "Barriers exclude users and invite legal risk",
	domain.CategoryAEO:           "Unstructured content is invisible to answer engines",
	domain.CategoryAuthority:     "Low authority caps ranking potential",
}

var categoryFixTime = map[domain.Category]string{
	domain.CategoryPerformance:   "2-4 hours",
	domain.CategorySEO:           "1-2 hours",
	domain.CategorySchema:        "1-2 hours",
	domain.CategoryAccessibility: "2-4 hours",
	domain.CategoryAEO:           "4-8 hours",
	domain.CategoryAuthority:     "ongoing",
}

// BuildReport shapes scored categories into the external report contract.
// Issues and recommendations are merged in the fixed category order and then
// truncated, so the output is deterministic for a given set of inputs.
func BuildReport(
	req domain.ValidationRequest,
	overall int,
	categories map[domain.Category]domain.CategoryResult,
	page domain.Result[domain.PageSnapshot],
) *domain.UnifiedReport {
	var issues []domain.ValidationIssue
	var recommendations []domain.Recommendation

	for _, cat := range domain.CategoryOrder {
		result, ok := categories[cat]
		if !ok {
			continue
		}
		severity := severityFor(result.Status)
		for i, msg := range result.Issues {
			issue := domain.ValidationIssue{
				ID:            uuid.NewString(),
				Title:         msg,
				Description:   msg,
				Severity:      severity,
				Category:      cat,
				Impact:        categoryImpact[cat],
				EstimatedTime: categoryFixTime[cat],
			}
			if i < len(result.Fixes) {
				issue.HowToFix = result.Fixes[i]
			}
			issues = append(issues, issue)
		}
		for _, fix := range result.Fixes {
			recommendations = append(recommendations, domain.Recommendation{
				ID:             uuid.NewString(),
				Title:          fix,
				Description:    fix,
				Priority:       priorityFor(result.Status),
				Category:       cat,
				Impact:         categoryImpact[cat],
				Implementation: []string{fix},
			})
		}
	}

	preview := domain.WebsitePreview{URL: req.URL}
	if page.OK() {
		preview.Title = page.Data().Title
		preview.Description = page.Data().MetaDescription
	}

	return &domain.UnifiedReport{
		OverallScore:    overall,
		Categories:      categories,
		Issues:          domain.Truncate(issues, domain.MaxReportIssues),
		Recommendations: domain.Truncate(recommendations, domain.MaxReportRecommendations),
		WebsitePreview:  preview,
		GeneratedAt:     time.Now(),
	}
}

func severityFor(status domain.Status) string {
	switch status {
	case domain.StatusPoor:
		return domain.SeverityError
	case domain.StatusNeedsImprovement:
		return domain.SeverityWarning
	default:
		return domain.SeverityInfo
	}
}

func priorityFor(status domain.Status) string {
	switch status {
	case domain.StatusPoor:
		return "high"
	case domain.StatusNeedsImprovement:
		return "medium"
	default:
		return "low"
	}
}
