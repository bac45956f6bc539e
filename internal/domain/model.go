package domain

import (
	"math"
	"time"
)

// Category identifies one scored signal source.
type Category string

const (
	CategoryPerformance   Category = "performance"
	CategorySEO           Category = "seo"
	CategorySchema        Category = "schema"
	CategoryAccessibility Category = "accessibility"
	CategoryAEO           Category = "aeo"
	CategoryAuthority     Category = "authority"
)

// CategoryOrder is the fixed processing order used when merging issues and
// recommendations. Truncation of the merged lists depends on this order, so
// it must not change between runs.
var CategoryOrder = []Category{
	CategoryPerformance,
	CategorySEO,
	CategorySchema,
	CategoryAccessibility,
	CategoryAEO,
	CategoryAuthority,
}

// Status grades a category score.
type Status string

const (
	StatusExcellent        Status = "excellent"
	StatusGood             Status = "good"
	StatusNeedsImprovement Status = "needs-improvement"
	StatusPoor             Status = "poor"
)

// StatusFor maps a score to a status using the standard threshold table.
func StatusFor(score int) Status {
	switch {
	case score >= 90:
		return StatusExcellent
	case score >= 75:
		return StatusGood
	case score >= 50:
		return StatusNeedsImprovement
	default:
		return StatusPoor
	}
}

// PSIStatusFor maps a score to a status using the looser thresholds applied
// to PageSpeed-derived categories.
func PSIStatusFor(score int) Status {
	switch {
	case score >= 80:
		return StatusExcellent
	case score >= 60:
		return StatusGood
	case score >= 40:
		return StatusNeedsImprovement
	default:
		return StatusPoor
	}
}

// BadgeFor returns the display badge for a status.
func BadgeFor(status Status) string {
	switch status {
	case StatusExcellent, StatusGood:
		return "✅"
	case StatusNeedsImprovement:
		return "⚠️"
	default:
		return "❌"
	}
}

const (
	MaxCategoryIssues        = 5
	MaxCategoryFixes         = 5
	MaxReportIssues          = 10
	MaxReportRecommendations = 8
)

// CategoryResult is the scored output of one category.
type CategoryResult struct {
	Score   int            `json:"score"`
	Status  Status         `json:"status"`
	Badge   string         `json:"badge"`
	Issues  []string       `json:"issues"`
	Fixes   []string       `json:"fixes"`
	Details map[string]any `json:"details,omitempty"`
}

// NewCategoryResult builds a CategoryResult using the standard threshold table.
func NewCategoryResult(score int, issues, fixes []string, details map[string]any) CategoryResult {
	return finishCategory(score, StatusFor, issues, fixes, details)
}

// NewPSICategoryResult builds a CategoryResult using PSI thresholds.
func NewPSICategoryResult(score int, issues, fixes []string, details map[string]any) CategoryResult {
	return finishCategory(score, PSIStatusFor, issues, fixes, details)
}

// FailedCategory is the zero/poor result substituted when a source fails.
// Score is always defined, even on total failure.
func FailedCategory(issue, fix string) CategoryResult {
	return CategoryResult{
		Score:  0,
		Status: StatusPoor,
		Badge:  BadgeFor(StatusPoor),
		Issues: []string{issue},
		Fixes:  []string{fix},
	}
}

func finishCategory(score int, statusFn func(int) Status, issues, fixes []string, details map[string]any) CategoryResult {
	score = ClampScore(score)
	status := statusFn(score)
	return CategoryResult{
		Score:   score,
		Status:  status,
		Badge:   BadgeFor(status),
		Issues:  Truncate(issues, MaxCategoryIssues),
		Fixes:   Truncate(fixes, MaxCategoryFixes),
		Details: details,
	}
}

// ClampScore bounds a score to [0, 100].
func ClampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// Truncate returns at most n leading elements of list.
func Truncate[T any](list []T, n int) []T {
	if len(list) > n {
		return list[:n]
	}
	return list
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// ValidationIssue is one report-level problem derived from a category issue.
type ValidationIssue struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Severity      string   `json:"severity"`
	Category      Category `json:"category"`
	Impact        string   `json:"impact"`
	HowToFix      string   `json:"howToFix"`
	EstimatedTime string   `json:"estimatedTime"`
}

// Recommendation is one report-level remediation suggestion.
type Recommendation struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Priority       string   `json:"priority"`
	Category       Category `json:"category"`
	Impact         string   `json:"impact"`
	Implementation []string `json:"implementation,omitempty"`
}

// WebsitePreview is display metadata passed through to the caller. It does
// not participate in scoring.
type WebsitePreview struct {
	URL         string `json:"url"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Screenshot  string `json:"screenshot,omitempty"`
}

// UnifiedReport is the aggregator's combined output across all categories.
// It is constructed fresh per validation request and never mutated afterwards.
type UnifiedReport struct {
	OverallScore    int                         `json:"overallScore"`
	Categories      map[Category]CategoryResult `json:"categories"`
	Issues          []ValidationIssue           `json:"issues"`
	Recommendations []Recommendation            `json:"recommendations"`
	WebsitePreview  WebsitePreview              `json:"websitePreview"`
	GeneratedAt     time.Time                   `json:"generatedAt"`
}

// Weight table. With authority enabled the five core categories carry 0.225
// each and authority carries 0.10; the sum is 1.225, not 1.0. That matches
// the historical scoring behavior and is kept verbatim so published scores
// do not shift (see DESIGN.md).
const (
	coreWeightWithAuthority = 0.225
	authorityWeight         = 0.10
)

// Weights returns the per-category weight table for the given mode.
func Weights(authorityEnabled bool) map[Category]float64 {
	if !authorityEnabled {
		return map[Category]float64{
			CategoryPerformance:   0.2,
			CategorySEO:           0.2,
			CategorySchema:        0.2,
			CategoryAccessibility: 0.2,
			CategoryAEO:           0.2,
		}
	}
	return map[Category]float64{
		CategoryPerformance:   coreWeightWithAuthority,
		CategorySEO:           coreWeightWithAuthority,
		CategorySchema:        coreWeightWithAuthority,
		CategoryAccessibility: coreWeightWithAuthority,
		CategoryAEO:           coreWeightWithAuthority,
		CategoryAuthority:     authorityWeight,
	}
}

// ComputeOverallScore combines category scores into one bounded score using
// the fixed weight table. The weighted sum is not renormalized; the clamp
// absorbs the over-unity authority-mode weight total.
func ComputeOverallScore(categories map[Category]CategoryResult, authorityEnabled bool) int {
	weights := Weights(authorityEnabled)
	var total float64
	for cat, w := range weights {
		if result, ok := categories[cat]; ok {
			total += float64(result.Score) * w
		}
	}
	return ClampScore(int(math.Round(total)))
}

// NewErrorReport is the degraded report returned when the aggregator itself
// fails unexpectedly. Every category is poor, the overall score is zero, and
// a single top-level issue describes the failure. Callers always receive a
// well-formed report.
func NewErrorReport(url, reason string, authorityEnabled bool) *UnifiedReport {
	categories := make(map[Category]CategoryResult, len(CategoryOrder))
	for _, cat := range CategoryOrder {
		if cat == CategoryAuthority && !authorityEnabled {
			continue
		}
		categories[cat] = FailedCategory(
			"validation did not complete for this category",
			"retry the validation",
		)
	}
	return &UnifiedReport{
		OverallScore: 0,
		Categories:   categories,
		Issues: []ValidationIssue{{
			ID:            "validation-error",
			Title:         "Validation failed unexpectedly",
			Description:   reason,
			Severity:      SeverityError,
			Category:      CategoryPerformance,
			Impact:        "No category could be scored",
			HowToFix:      "Retry the validation; if the failure persists, check service logs",
			EstimatedTime: "n/a",
		}},
		Recommendations: []Recommendation{},
		WebsitePreview:  WebsitePreview{URL: url},
		GeneratedAt:     time.Now(),
	}
}

// ScoreEntry is one line of per-URL score history.
type ScoreEntry struct {
	Timestamp string `json:"timestamp"`
	URL       string `json:"url"`
	Overall   int    `json:"overall"`
	Status    Status `json:"status"`
}
