package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeoscan/aeoscan/internal/domain"
	"github.com/aeoscan/aeoscan/internal/domain/scoring"
)

func psiReport(strategy string, perf, seo, acc, bp int) domain.PSIReport {
	return domain.PSIReport{
		Strategy:      strategy,
		Performance:   perf,
		SEO:           seo,
		Accessibility: acc,
		BestPractices: bp,
	}
}

func TestScorePerformance_BothStrategies(t *testing.T) {
	mobile := domain.Ok(psiReport("mobile", 80, 90, 85, 88))
	desktop := domain.Ok(psiReport("desktop", 85, 90, 85, 88))

	result := scoring.ScorePerformance(mobile, desktop)

	// Mobile-first: mean of 80, 90, 85, 88 rounds to 86.
	assert.Equal(t, 86, result.Score)
	assert.Equal(t, domain.StatusExcellent, result.Status, "PSI thresholds apply")
	assert.Equal(t, "mobile", result.Details["strategy"])
}

func TestScorePerformance_DesktopFails(t *testing.T) {
	mobile := domain.Ok(psiReport("mobile", 80, 90, 85, 88))
	desktop := domain.Fail[domain.PSIReport]("timeout")

	result := scoring.ScorePerformance(mobile, desktop)

	assert.Equal(t, 86, result.Score)
	require.NotEmpty(t, result.Issues)
	assert.Contains(t, result.Issues[0], "Desktop data unavailable")
	assert.Contains(t, result.Issues[0], "timeout")
	_, hasDesktop := result.Details["desktop"]
	assert.False(t, hasDesktop)
}

func TestScorePerformance_MobileFails(t *testing.T) {
	mobile := domain.Fail[domain.PSIReport]("request failed: connection refused")
	desktop := domain.Ok(psiReport("desktop", 90, 90, 90, 90))

	result := scoring.ScorePerformance(mobile, desktop)

	assert.Equal(t, 90, result.Score)
	require.NotEmpty(t, result.Issues)
	assert.Contains(t, result.Issues[0], "Mobile data unavailable")
	assert.Equal(t, "desktop", result.Details["strategy"])
}

func TestScorePerformance_BothFail(t *testing.T) {
	mobile := domain.Fail[domain.PSIReport]("timeout")
	desktop := domain.Fail[domain.PSIReport]("timeout")

	result := scoring.ScorePerformance(mobile, desktop)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, domain.StatusPoor, result.Status)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "Performance data unavailable")
}

func TestScorePerformance_LowSubScoreIssues(t *testing.T) {
	mobile := domain.Ok(psiReport("mobile", 40, 70, 70, 90))
	desktop := domain.Ok(psiReport("desktop", 45, 70, 70, 90))

	result := scoring.ScorePerformance(mobile, desktop)

	joined := ""
	for _, issue := range result.Issues {
		joined += issue + "\n"
	}
	assert.Contains(t, joined, "Poor page performance")
	assert.Contains(t, joined, "SEO score below 80")
	assert.Contains(t, joined, "accessibility score below 80")
	assert.Len(t, result.Fixes, len(result.Issues), "each issue pairs with a fix")
}

func TestScorePerformance_StrategyDisparity(t *testing.T) {
	mobile := domain.Ok(psiReport("mobile", 60, 90, 90, 90))
	desktop := domain.Ok(psiReport("desktop", 95, 90, 90, 90))

	result := scoring.ScorePerformance(mobile, desktop)

	assert.Contains(t, result.Issues, "Mobile and desktop performance differ by 35 points")
}
