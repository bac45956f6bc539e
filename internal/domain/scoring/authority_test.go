package scoring_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aeoscan/aeoscan/internal/domain"
	"github.com/aeoscan/aeoscan/internal/domain/scoring"
)

func rank(domainName string, rank100 int) domain.AuthorityRank {
	return domain.AuthorityRank{
		Domain:   domainName,
		Rank0to1: float64(rank100) / 100,
		Rank100:  rank100,
	}
}

func TestScoreAuthority_CompetitivePosition(t *testing.T) {
	target := domain.Ok(rank("example.com", 50))
	competitors := domain.Ok([]domain.AuthorityRank{
		rank("weak.com", 30),
		rank("strong.com", 70),
		rank("tied.com", 50),
	})

	result := scoring.ScoreAuthority(target, competitors)

	assert.Equal(t, 50, result.Score)
	// One competitor ranks strictly below, so the target is 2nd of 4 domains.
	assert.Equal(t, "2 of 4 domains", result.Details["competitivePosition"])
}

func TestScoreAuthority_LastPlace(t *testing.T) {
	target := domain.Ok(rank("example.com", 45))
	competitors := domain.Ok([]domain.AuthorityRank{
		rank("a.com", 60),
		rank("b.com", 80),
	})

	result := scoring.ScoreAuthority(target, competitors)

	assert.Equal(t, "1 of 3 domains", result.Details["competitivePosition"])
	require.NotEmpty(t, result.Issues)
	assert.Contains(t, result.Issues[0], "No tracked competitor ranks below this domain")
}

func TestScoreAuthority_LowRankTiers(t *testing.T) {
	veryLow := scoring.ScoreAuthority(domain.Ok(rank("x.com", 10)), domain.Ok[[]domain.AuthorityRank](nil))
	assert.Contains(t, veryLow.Issues[0], "Very low domain authority (10/100)")

	low := scoring.ScoreAuthority(domain.Ok(rank("x.com", 30)), domain.Ok[[]domain.AuthorityRank](nil))
	assert.Contains(t, low.Issues[0], "Low domain authority (30/100)")

	healthy := scoring.ScoreAuthority(domain.Ok(rank("x.com", 55)), domain.Ok[[]domain.AuthorityRank](nil))
	assert.Empty(t, healthy.Issues)
}

func TestScoreAuthority_CompetitorsUnavailable(t *testing.T) {
	target := domain.Ok(rank("example.com", 60))
	competitors := domain.Fail[[]domain.AuthorityRank]("timeout")

	result := scoring.ScoreAuthority(target, competitors)

	assert.Equal(t, 60, result.Score)
	require.NotEmpty(t, result.Issues)
	assert.Contains(t, result.Issues[0], "Competitor ranks unavailable (timeout)")
	_, hasPosition := result.Details["competitivePosition"]
	assert.False(t, hasPosition)
}

func TestScoreAuthority_LookupFailed(t *testing.T) {
	result := scoring.ScoreAuthority(
		domain.Fail[domain.AuthorityRank]("request failed: 401"),
		domain.Ok[[]domain.AuthorityRank](nil),
	)

	assert.Equal(t, 0, result.Score)
	assert.Equal(t, domain.StatusPoor, result.Status)
	require.Len(t, result.Issues, 1)
	assert.Contains(t, result.Issues[0], "Authority lookup failed")
}
