// Package observability provides formatted terminal output for the CLI views.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/jobtrack/internal/dashboard"
	"github.com/jonathan/jobtrack/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// histogramWidth is the bar length of a full weekly-activity bucket
	histogramWidth = 24
)

// Printer handles formatted output for the CLI views
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDashboard outputs the full dashboard: counters, pipeline
// breakdown, weekly histogram, and the recent-application feed.
func (p *Printer) PrintDashboard(m dashboard.Metrics) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Intelligence Score:  %.1f/100\n", m.IntelligenceScore))
	sb.WriteString(fmt.Sprintf("Resumes:             %d (top score %d)\n", m.ResumeCount, m.TopResumeScore))
	sb.WriteString(fmt.Sprintf("Applications:        %d\n", m.ApplicationCount))
	sb.WriteString(fmt.Sprintf("Interviews:          %d\n", m.InterviewCount))
	sb.WriteString(fmt.Sprintf("Success Rate:        %d%%\n", m.SuccessRate))
	sb.WriteString("\n")

	sb.WriteString("Pipeline:\n")
	for _, s := range types.AllStatuses() {
		sb.WriteString(fmt.Sprintf("  %-13s %d\n", s, m.StatusBreakdown[s]))
	}

	p.printBox("Command Center", sb.String())
	p.printWeeklyActivity(m.WeeklyActivity)
	p.printRecentApplications(m)
}

func (p *Printer) printWeeklyActivity(activity []dashboard.DayActivity) {
	maxCount := 1
	total := 0
	for _, d := range activity {
		total += d.Count
		if d.Count > maxCount {
			maxCount = d.Count
		}
	}

	var sb strings.Builder
	for _, d := range activity {
		bar := strings.Repeat("█", d.Count*histogramWidth/maxCount)
		sb.WriteString(fmt.Sprintf("%s %s %-*s %d\n", d.Day, d.Date, histogramWidth, bar, d.Count))
	}
	sb.WriteString(fmt.Sprintf("\n%d application(s) this week", total))

	p.printBox("Weekly Activity", sb.String())
}

func (p *Printer) printRecentApplications(m dashboard.Metrics) {
	if m.ApplicationCount == 0 {
		p.printBox("Recent Applications", "No applications tracked yet.\nAdd your first target to activate strategic analysis.")
		return
	}

	var sb strings.Builder
	for _, app := range m.RecentApplications {
		sb.WriteString(fmt.Sprintf("%-20s %-16s %-12s %s\n",
			truncate(app.Company, 20), truncate(app.JobTitle, 16), app.Status, matchScoreLabel(app.MatchScore)))
	}
	p.printBox("Recent Applications", sb.String())
}

// PrintApplications outputs the raw application list view.
func (p *Printer) PrintApplications(apps []types.ApplicationRecord) {
	if len(apps) == 0 {
		p.printBox("Applications", "No applications tracked yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-20s %-16s %-12s %-6s %s\n", "COMPANY", "ROLE", "STATUS", "SCORE", "APPLIED"))
	for _, app := range apps {
		applied := "—"
		if app.AppliedAt != nil {
			applied = app.AppliedAt.Format("2006-01-02")
		}
		sb.WriteString(fmt.Sprintf("%-20s %-16s %-12s %-6s %s\n",
			truncate(app.Company, 20), truncate(app.JobTitle, 16), app.Status, matchScoreLabel(app.MatchScore), applied))
	}
	p.printBox(fmt.Sprintf("Applications (%d)", len(apps)), sb.String())
}

// PrintResumes outputs the raw resume list view.
func (p *Printer) PrintResumes(resumes []types.ResumeRecord) {
	if len(resumes) == 0 {
		p.printBox("Resumes", "No resumes uploaded yet.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-30s %-7s %s\n", "TITLE", "SCORE", "UPLOADED"))
	for _, r := range resumes {
		score := "—"
		if r.LastScore > 0 {
			score = fmt.Sprintf("%d", r.LastScore)
		}
		sb.WriteString(fmt.Sprintf("%-30s %-7s %s\n", truncate(r.Title, 30), score, r.CreatedAt.Format("2006-01-02")))
	}
	p.printBox(fmt.Sprintf("Resumes (%d)", len(resumes)), sb.String())
}

// PrintSession outputs the current session status for whoami.
func (p *Printer) PrintSession(identity types.Identity, expiry string) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("User:   %s (#%d)\n", identity.Username, identity.ID))
	sb.WriteString(fmt.Sprintf("Email:  %s\n", identity.Email))
	if expiry != "" {
		sb.WriteString(fmt.Sprintf("Token:  expires %s\n", expiry))
	}
	p.printBox("Session", sb.String())
}

// matchScoreLabel renders an absent or unscored match as a dash so a
// missing score never breaks the view.
func matchScoreLabel(score *int) string {
	if score == nil || *score == 0 {
		return "—"
	}
	return fmt.Sprintf("%d", *score)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
