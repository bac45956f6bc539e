package scoring

import (
	"fmt"

	"github.com/aeoscan/aeoscan/internal/domain"
)

// SEO sub-metric weights. They sum to 1.0.
const (
	seoWeightTitle    = 0.20
	seoWeightMeta     = 0.20
	seoWeightHeadings = 0.20
	seoWeightCanon    = 0.10
	seoWeightContent  = 0.15
	seoWeightLinks    = 0.15
)

// ScoreSEO grades on-page SEO from the crawled snapshot: title and meta
// quality, heading structure, canonical link, content depth, and internal
// linking, combined with fixed weights.
func ScoreSEO(page domain.Result[domain.PageSnapshot]) domain.CategoryResult {
	if !page.OK() {
		return domain.FailedCategory(
			fmt.Sprintf("SEO crawl failed (%s)", page.Reason()),
			"Verify the URL is publicly reachable and re-run the validation",
		)
	}
	snapshot := page.Data()

	var issues, fixes []string
	var w weighted

	titleScore := scoreTitleTag(snapshot.Title)
	w.add(titleScore, seoWeightTitle)
	if titleScore < 100 {
		issues = append(issues, fmt.Sprintf("Title tag needs work (%d characters)", len(snapshot.Title)))
		fixes = append(fixes, "Write a 30-60 character title with the primary keyword near the front")
	}

	metaScore := scoreMetaTag(snapshot.MetaDescription)
	w.add(metaScore, seoWeightMeta)
	if metaScore < 100 {
		issues = append(issues, fmt.Sprintf("Meta description needs work (%d characters)", len(snapshot.MetaDescription)))
		fixes = append(fixes, "Write a 140-160 character meta description that answers the searcher's question")
	}

	headingScore := scoreHeadings(snapshot)
	w.add(headingScore, seoWeightHeadings)
	if headingScore < 100 {
		issues = append(issues, fmt.Sprintf("Heading structure is weak (%d h1, %d h2)", snapshot.HeadingCount("h1"), snapshot.HeadingCount("h2")))
		fixes = append(fixes, "Use exactly one h1 and break content into h2 sections")
	}

	canonScore := 0
	if snapshot.Canonical != "" {
		canonScore = 100
	} else {
		issues = append(issues, "Missing canonical link")
		fixes = append(fixes, "Add a rel=canonical link to prevent duplicate-content dilution")
	}
	w.add(canonScore, seoWeightCanon)

	contentScore := scoreContentDepth(snapshot.WordCount)
	w.add(contentScore, seoWeightContent)
	if contentScore < 70 {
		issues = append(issues, fmt.Sprintf("Thin content (%d words)", snapshot.WordCount))
		fixes = append(fixes, "Expand the page toward 800+ words of substantive content")
	}

	linkScore := scoreInternalLinks(snapshot.InternalLinks)
	w.add(linkScore, seoWeightLinks)
	if linkScore < 70 {
		issues = append(issues, fmt.Sprintf("Few internal links (%d)", snapshot.InternalLinks))
		fixes = append(fixes, "Link related pages together so crawlers and readers can navigate")
	}

	return domain.NewCategoryResult(w.score(), issues, fixes, map[string]any{
		"title":         titleScore,
		"metaDesc":      metaScore,
		"headings":      headingScore,
		"canonical":     canonScore,
		"contentDepth":  contentScore,
		"internalLinks": linkScore,
	})
}

func scoreTitleTag(title string) int {
	switch {
	case title == "":
		return 0
	case len(title) >= titleMinLen && len(title) <= titleMaxLen:
		return 100
	default:
		return 60
	}
}

func scoreMetaTag(meta string) int {
	switch {
	case meta == "":
		return 0
	case len(meta) >= metaDescMinLen && len(meta) <= metaDescMaxLen:
		return 100
	default:
		return 60
	}
}

func scoreHeadings(snapshot domain.PageSnapshot) int {
	h1 := snapshot.HeadingCount("h1")
	h2 := snapshot.HeadingCount("h2")
	switch {
	case h1 == 1 && h2 >= 1:
		return 100
	case h1 == 1:
		return 70
	case h1 >= 1:
		return 40
	default:
		return 0
	}
}

func scoreContentDepth(words int) int {
	switch {
	case words >= 800:
		return 100
	case words >= 300:
		return 70
	case words >= 100:
		return 40
	default:
		return 10
	}
}

func scoreInternalLinks(links int) int {
	switch {
	case links >= 10:
		return 100
	case links >= 3:
		return 70
	case links >= 1:
		return 40
	default:
		return 0
	}
}
