// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/career-compass/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
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
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintExtractedSkills outputs the skills found in the resume text, grouped
// with their depth evidence when present.
func (p *Printer) PrintExtractedSkills(set types.ExtractedSkillSet) {
	if set.Len() == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "NO KNOWN SKILLS FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d skills:\n\n", set.Len()))

	count := min(set.Len(), maxItemsToShow*2)
	for i := 0; i < count; i++ {
		skill := set.Skills[i]
		sb.WriteString(fmt.Sprintf("• %s (%s)", skill.Name, skill.Category))
		if skill.Depth != nil {
			evidence := []string{}
			if skill.Depth.ProficiencyTier != "" {
				evidence = append(evidence, skill.Depth.ProficiencyTier)
			}
			if skill.Depth.Years > 0 {
				evidence = append(evidence, fmt.Sprintf("%.0fy", skill.Depth.Years))
			}
			if skill.Depth.Certified {
				evidence = append(evidence, "certified")
			}
			if len(evidence) > 0 {
				sb.WriteString(fmt.Sprintf(" [%s]", strings.Join(evidence, ", ")))
			}
		}
		sb.WriteString("\n")
	}

	if set.Len() > count {
		sb.WriteString(fmt.Sprintf("\n... and %d more skills", set.Len()-count))
	}

	p.printBox("EXTRACTED SKILLS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReport outputs a human-readable summary of the analysis report.
func (p *Printer) PrintReport(report *types.ReadinessReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:  %d/100 (%s)\n", report.OverallScore, report.Grade))
	sb.WriteString(fmt.Sprintf("Field:    %s", report.Meta.FieldName))
	if report.Meta.FieldFallback {
		sb.WriteString(" (default, requested field unknown)")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Level:    %s\n", report.Meta.ExperienceLevel))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("ATS:        %d\n", report.Scores.ATS))
	sb.WriteString(fmt.Sprintf("Skills:     %d\n", report.Scores.Skills))
	sb.WriteString(fmt.Sprintf("Experience: %d\n", report.Scores.Experience))
	sb.WriteString(fmt.Sprintf("Structure:  %d\n", report.Scores.Structure))
	sb.WriteString(fmt.Sprintf("Impact:     %d\n", report.Scores.Impact))

	if len(report.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(report.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", report.Strengths[i]))
		}
	}

	if len(report.PriorityImprovements) > 0 {
		sb.WriteString("\nPriority Improvements:\n")
		count := min(len(report.PriorityImprovements), maxItemsToShow)
		for i := 0; i < count; i++ {
			imp := report.PriorityImprovements[i]
			sb.WriteString(fmt.Sprintf("  [%s] %s\n", imp.Priority, imp.Issue))
		}
	}

	if len(report.QuickWins) > 0 {
		sb.WriteString("\nQuick Wins:\n")
		for _, win := range report.QuickWins {
			sb.WriteString(fmt.Sprintf("  • %s\n", win))
		}
	}

	p.printBox("RESUME ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintReadiness outputs the role readiness breakdown with gaps and actions.
func (p *Printer) PrintReadiness(components *types.ReadinessComponents) {
	if components == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:       %s", components.Role.Title))
	if components.RoleFallback {
		sb.WriteString(" (fallback, requested role unknown)")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Readiness:  %d/100\n", components.ReadinessScore))
	sb.WriteString(fmt.Sprintf("Confidence: %d (%s)\n", components.Confidence, components.ConfidenceLevel))
	if components.Role.NextRole != "" {
		sb.WriteString(fmt.Sprintf("Next role:  %s\n", components.Role.NextRole))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Core match:      %d%%\n", components.CoreMatchPct))
	sb.WriteString(fmt.Sprintf("Technical match: %d%%\n", components.TechnicalMatchPct))
	sb.WriteString(fmt.Sprintf("Tools match:     %d%%\n", components.ToolsMatchPct))

	if len(components.Gaps) > 0 {
		sb.WriteString("\nGaps:\n")
		count := min(len(components.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", components.Gaps[i]))
		}
	}

	if len(components.NextActions) > 0 {
		sb.WriteString("\nNext Actions:\n")
		count := min(len(components.NextActions), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", components.NextActions[i]))
		}
	}

	if len(components.RoleVariants) > 0 {
		variants := strings.Join(components.RoleVariants, ", ")
		if len(variants) > 50 {
			variants = variants[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("\nRelated titles: %s\n", variants))
	}

	p.printBox("ROLE READINESS", strings.TrimSuffix(sb.String(), "\n"))
}
