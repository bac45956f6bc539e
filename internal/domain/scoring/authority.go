package scoring

import (
	"fmt"

	"github.com/aeoscan/aeoscan/internal/domain"
)

// ScoreAuthority grades domain reputation from the backlink-ranking lookup.
// The competitive position is "K of N+1 domains" where K is one more than
// the number of competitor scores strictly below the target's, and N+1
// counts the target itself.
func ScoreAuthority(target domain.Result[domain.AuthorityRank], competitors domain.Result[[]domain.AuthorityRank]) domain.CategoryResult {
	if !target.OK() {
		return domain.FailedCategory(
			fmt.Sprintf("Authority lookup failed (%s)", target.Reason()),
			"Check the OpenPageRank API key and re-run the validation",
		)
	}
	rank := target.Data()
	score := domain.ClampScore(rank.Rank100)

	var issues, fixes []string
	details := map[string]any{
		"domain":  rank.Domain,
		"rank100": rank.Rank100,
	}

	if competitors.OK() && len(competitors.Data()) > 0 {
		comps := competitors.Data()
		lower := 0
		for _, c := range comps {
			if c.Rank100 < rank.Rank100 {
				lower++
			}
		}
		position := fmt.Sprintf("%d of %d domains", lower+1, len(comps)+1)
		details["competitivePosition"] = position
		details["competitors"] = comps
		if lower == 0 {
			issues = append(issues, fmt.Sprintf("No tracked competitor ranks below this domain (%s)", position))
			fixes = append(fixes, "Study competitor backlink profiles and target their linking domains")
		}
	} else if !competitors.OK() {
		issues = append(issues, fmt.Sprintf("Competitor ranks unavailable (%s)", competitors.Reason()))
		fixes = append(fixes, "Re-run the validation to fetch competitor authority data")
	}

	if rank.Rank100 < 20 {
		issues = append(issues, fmt.Sprintf("Very low domain authority (%d/100)", rank.Rank100))
		fixes = append(fixes, "Earn foundational citations: directories, press, and partner links")
	} else if rank.Rank100 < 40 {
		issues = append(issues, fmt.Sprintf("Low domain authority (%d/100)", rank.Rank100))
		fixes = append(fixes, "Build a steady backlink pipeline through content worth citing")
	}

	return domain.NewCategoryResult(score, issues, fixes, details)
}
