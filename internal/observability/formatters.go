// Package observability provides logging and formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/Pauuvl/JOBY/internal/alerts"
	"github.com/Pauuvl/JOBY/internal/courses"
	"github.com/Pauuvl/JOBY/internal/mentorship"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for human-readable mode
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

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, truncate(line, boxWidth-4))
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// printEmpty prints a one-line box.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printEmpty(message string) {
	fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, message)
	fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
}

// truncate shortens s to at most limit runes, marking the cut with an ellipsis.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-3]) + "..."
}

func skillList(skills []string) string {
	return truncate(strings.Join(skills, ", "), 40)
}

// PrintJobMatches outputs ranked jobs with scores and matching skills.
func (p *Printer) PrintJobMatches(matches []alerts.JobMatchResult) {
	if len(matches) == 0 {
		p.printEmpty("NO MATCHING JOBS FOUND")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Jobs matched: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s @ %s\n", i+1, m.Candidate.Title, m.Candidate.CompanyName))
		sb.WriteString(fmt.Sprintf("    Score: %d (skills %.0f, location %.0f, experience %.0f)\n",
			m.Score, m.Detail.Breakdown.Skills, m.Detail.Breakdown.Location, m.Detail.Breakdown.Experience))
		if len(m.Detail.MatchingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skillList(m.Detail.MatchingSkills)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more jobs", len(matches)-maxItemsToShow))
	}

	p.printBox("TOP MATCHING JOBS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintCourseMatches outputs recommended courses.
func (p *Printer) PrintCourseMatches(matches []courses.CourseMatchResult) {
	if len(matches) == 0 {
		p.printEmpty("NO COURSES TO RECOMMEND")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Courses recommended: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, m.Candidate.Title))
		sb.WriteString(fmt.Sprintf("    Score: %d  Level: %s  Rating: %.1f\n", m.Score, m.Candidate.Level, m.Candidate.Rating))
		if m.Detail.NewSkills > 0 {
			sb.WriteString(fmt.Sprintf("    New skills: %d\n", m.Detail.NewSkills))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more courses", len(matches)-maxItemsToShow))
	}

	p.printBox("RECOMMENDED COURSES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMentorMatches outputs suggested mentors.
func (p *Printer) PrintMentorMatches(matches []mentorship.MentorMatchResult) {
	if len(matches) == 0 {
		p.printEmpty("NO MENTORS FOUND")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Mentors found: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		m := matches[i]
		name := m.Candidate.Name
		if name == "" {
			name = m.Candidate.ID.String()
		}
		sb.WriteString(fmt.Sprintf("#%d  %s", i+1, name))
		if m.Candidate.Position != "" || m.Candidate.Company != "" {
			sb.WriteString(fmt.Sprintf(" (%s at %s)", m.Candidate.Position, m.Candidate.Company))
		}
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("    Score: %d  Overlap: %.2f%%", m.Score, m.Detail.SkillOverlapPct))
		if m.Detail.SameLocation {
			sb.WriteString("  same location")
		}
		sb.WriteString("\n")
		if len(m.Detail.MatchingSkills) > 0 {
			sb.WriteString(fmt.Sprintf("    Skills: %s\n", skillList(m.Detail.MatchingSkills)))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more mentors", len(matches)-maxItemsToShow))
	}

	p.printBox("SUGGESTED MENTORS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintDigest outputs a new-jobs alert.
func (p *Printer) PrintDigest(d *alerts.Digest) {
	if d == nil {
		p.printEmpty("NO NEW JOB ALERTS")
		return
	}

	var sb strings.Builder
	sb.WriteString(d.Title + "\n")
	sb.WriteString(d.Message + "\n\n")
	for _, j := range d.Jobs {
		sb.WriteString(fmt.Sprintf("• %s @ %s (%d%%)\n", j.Title, j.Company, j.Score))
	}
	if d.Total > len(d.Jobs) {
		sb.WriteString(fmt.Sprintf("... and %d more jobs\n", d.Total-len(d.Jobs)))
	}
	sb.WriteString("\n" + d.ActionURL)

	p.printBox("JOB ALERT", sb.String())
}
