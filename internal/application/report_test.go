package application_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeoscan/aeoscan/internal/application"
	"github.com/aeoscan/aeoscan/internal/domain"
)

func TestBuildReport_MergesInCategoryOrder(t *testing.T) {
	categories := map[domain.Category]domain.CategoryResult{
		domain.CategorySEO: {
			Score: 55, Status: domain.StatusNeedsImprovement,
			Issues: []string{"seo issue"},
			Fixes:  []string{"seo fix"},
		},
		domain.CategoryPerformance: {
			Score: 30, Status: domain.StatusPoor,
			Issues: []string{"perf issue"},
			Fixes:  []string{"perf fix"},
		},
	}
	req := domain.ValidationRequest{URL: "https://example.com"}

	report := application.BuildReport(req, 42, categories, domain.Fail[domain.PageSnapshot]("timeout"))

	require.Len(t, report.Issues, 2)
	assert.Equal(t, domain.CategoryPerformance, report.Issues[0].Category, "performance merges before seo")
	assert.Equal(t, domain.CategorySEO, report.Issues[1].Category)
}

func TestBuildReport_SeverityAndPriorityFollowStatus(t *testing.T) {
	categories := map[domain.Category]domain.CategoryResult{
		domain.CategoryPerformance: {
			Score: 10, Status: domain.StatusPoor,
			Issues: []string{"bad"}, Fixes: []string{"fix it"},
		},
		domain.CategorySEO: {
			Score: 60, Status: domain.StatusNeedsImprovement,
			Issues: []string{"meh"}, Fixes: []string{"tune it"},
		},
		domain.CategorySchema: {
			Score: 95, Status: domain.StatusExcellent,
			Issues: []string{"minor"}, Fixes: []string{"polish"},
		},
	}

	report := application.BuildReport(domain.ValidationRequest{URL: "https://example.com"}, 50, categories, domain.Fail[domain.PageSnapshot]("x"))

	severities := map[domain.Category]string{}
	for _, issue := range report.Issues {
		severities[issue.Category] = issue.Severity
	}
	assert.Equal(t, domain.SeverityError, severities[domain.CategoryPerformance])
	assert.Equal(t, domain.SeverityWarning, severities[domain.CategorySEO])
	assert.Equal(t, domain.SeverityInfo, severities[domain.CategorySchema])

	priorities := map[domain.Category]string{}
	for _, rec := range report.Recommendations {
		priorities[rec.Category] = rec.Priority
	}
	assert.Equal(t, "high", priorities[domain.CategoryPerformance])
	assert.Equal(t, "medium", priorities[domain.CategorySEO])
	assert.Equal(t, "low", priorities[domain.CategorySchema])
}

func TestBuildReport_PairsIssuesWithFixes(t *testing.T) {
	categories := map[domain.Category]domain.CategoryResult{
		domain.CategoryAEO: {
			Score: 40, Status: domain.StatusPoor,
			Issues: []string{"first", "second", "unpaired"},
			Fixes:  []string{"fix first", "fix second"},
		},
	}

	report := application.BuildReport(domain.ValidationRequest{URL: "https://example.com"}, 40, categories, domain.Fail[domain.PageSnapshot]("x"))

	require.Len(t, report.Issues, 3)
	assert.Equal(t, "fix first", report.Issues[0].HowToFix)
	assert.Equal(t, "fix second", report.Issues[1].HowToFix)
	assert.Empty(t, report.Issues[2].HowToFix, "issues beyond the fix list carry no fix")
}

func TestBuildReport_Truncation(t *testing.T) {
	issues := []string{"a", "b", "c", "d", "e"}
	fixes := []string{"1", "2", "3", "4", "5"}
	categories := map[domain.Category]domain.CategoryResult{}
	for _, cat := range domain.CategoryOrder {
		categories[cat] = domain.CategoryResult{
			Score: 20, Status: domain.StatusPoor, Issues: issues, Fixes: fixes,
		}
	}

	report := application.BuildReport(domain.ValidationRequest{URL: "https://example.com"}, 20, categories, domain.Fail[domain.PageSnapshot]("x"))

	assert.Len(t, report.Issues, domain.MaxReportIssues)
	assert.Len(t, report.Recommendations, domain.MaxReportRecommendations)
	// The caps favor the earliest categories in the fixed order.
	assert.Equal(t, domain.CategoryPerformance, report.Issues[0].Category)
	assert.Equal(t, domain.CategorySEO, report.Issues[len(report.Issues)-1].Category)
}

func TestBuildReport_PreviewFromSnapshot(t *testing.T) {
	page := domain.Ok(domain.PageSnapshot{
		Title:           "Example Page",
		MetaDescription: "A page about examples.",
	})

	report := application.BuildReport(domain.ValidationRequest{URL: "https://example.com"}, 70, map[domain.Category]domain.CategoryResult{}, page)

	assert.Equal(t, "https://example.com", report.WebsitePreview.URL)
	assert.Equal(t, "Example Page", report.WebsitePreview.Title)
	assert.Equal(t, "A page about examples.", report.WebsitePreview.Description)
}
