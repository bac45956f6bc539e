package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aeoscan/aeoscan/internal/domain"
)

// ── Warm terminal palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	errorTagStyle = lipgloss.NewStyle().Foreground(danger).Bold(true)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	catNameStyle  = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport renders a unified report for the terminal.
func RenderReport(report *domain.UnifiedReport) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("aeoscan")
	subtitle := dimStyle.Render("Answer Engine Optimization Score")
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(report.OverallScore)).
		Render(fmt.Sprintf("%d / 100", report.OverallScore))
	statusStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(scoreColor(report.OverallScore)).
		Render(string(domain.StatusFor(report.OverallScore)))

	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + scoreStyled + "  " + statusStyled))
	b.WriteString("\n\n")

	// ── Categories in fixed order ──
	for _, cat := range domain.CategoryOrder {
		result, ok := report.Categories[cat]
		if !ok {
			continue
		}
		renderCategory(&b, cat, result)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	renderIssues(&b, report.Issues)
	renderRecommendations(&b, report.Recommendations)

	b.WriteString("\n")
	return b.String()
}

// RenderHistory renders past score entries for one URL.
func RenderHistory(entries []domain.ScoreEntry) string {
	if len(entries) == 0 {
		return "  " + dimStyle.Render("No history yet.") + "\n"
	}
	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Score history") + "\n\n")
	for _, e := range entries {
		score := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(e.Overall)).Render(fmt.Sprintf("%3d", e.Overall))
		fmt.Fprintf(&b, "  %s  %s  %s\n", dimStyle.Render(e.Timestamp), score, faintStyle.Render(string(e.Status)))
	}
	return b.String()
}

func renderCategory(b *strings.Builder, cat domain.Category, result domain.CategoryResult) {
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(result.Score)).Render(fmt.Sprintf("%d", result.Score))
	bar := coloredBar(result.Score, 20)
	name := catNameStyle.Render(padRight(string(cat), 16))
	status := dimStyle.Render(string(result.Status))

	fmt.Fprintf(b, "  %s %s %s  %s %s\n", result.Badge, name, bar, scoreText, status)
}

func renderIssues(b *strings.Builder, issues []domain.ValidationIssue) {
	if len(issues) == 0 {
		b.WriteString("  " + passStyle.Render("No issues found.") + "\n")
		return
	}

	errorCount, warnCount, infoCount := countSeverities(issues)
	b.WriteString("  ")
	b.WriteString(titleStyle.Render("Issues"))
	b.WriteString("  ")
	if errorCount > 0 {
		b.WriteString(errorTagStyle.Render(fmt.Sprintf("%d errors", errorCount)))
		b.WriteString("  ")
	}
	if warnCount > 0 {
		b.WriteString(warnTagStyle.Render(fmt.Sprintf("%d warnings", warnCount)))
		b.WriteString("  ")
	}
	if infoCount > 0 {
		b.WriteString(infoTagStyle.Render(fmt.Sprintf("%d info", infoCount)))
	}
	b.WriteString("\n\n")

	for _, issue := range issues {
		fmt.Fprintf(b, "    %s %s %s\n", severityTag(issue.Severity), dimStyle.Render("["+string(issue.Category)+"]"), dimStyle.Render(issue.Title))
		if issue.HowToFix != "" {
			fmt.Fprintf(b, "         %s\n", faintStyle.Render("fix: "+issue.HowToFix))
		}
	}
}

func renderRecommendations(b *strings.Builder, recs []domain.Recommendation) {
	if len(recs) == 0 {
		return
	}
	b.WriteString("\n  " + titleStyle.Render("Recommendations") + "\n\n")
	for _, rec := range recs {
		fmt.Fprintf(b, "    %s %s %s\n", priorityTag(rec.Priority), dimStyle.Render("["+string(rec.Category)+"]"), dimStyle.Render(rec.Title))
	}
}

func severityTag(severity string) string {
	switch severity {
	case domain.SeverityError:
		return errorTagStyle.Render("error")
	case domain.SeverityWarning:
		return warnTagStyle.Render("warn ")
	default:
		return infoTagStyle.Render("info ")
	}
}

func priorityTag(priority string) string {
	switch priority {
	case "high":
		return errorTagStyle.Render("high  ")
	case "medium":
		return warnTagStyle.Render("medium")
	default:
		return infoTagStyle.Render("low   ")
	}
}

func countSeverities(issues []domain.ValidationIssue) (errors, warnings, infos int) {
	for _, i := range issues {
		switch i.Severity {
		case domain.SeverityError:
			errors++
		case domain.SeverityWarning:
			warnings++
		default:
			infos++
		}
	}
	return
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
