package model

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/secmon-lab/codeql-fly/pkg/domain/types"
)

const ReportDir = "security-reports"

// Report is an immutable rendered vulnerability report of one scan cycle
type Report struct {
	ID        types.ReportID   `json:"id"`
	Owner     string           `json:"owner"`
	Repo      string           `json:"repo"`
	Branch    types.BranchName `json:"branch"`
	Tag       string           `json:"tag,omitempty"`
	Path      string           `json:"path"`
	Content   string           `json:"content"`
	CreatedAt time.Time        `json:"created_at"`
	DeletedAt *time.Time       `json:"deleted_at,omitempty"`
}

// ReportFilePath returns where a report is committed. Without tag, the unix
// millisecond timestamp names the file.
func ReportFilePath(tag string, at time.Time) string {
	name := tag
	if name == "" {
		name = strconv.FormatInt(at.UnixMilli(), 10)
	}
	return fmt.Sprintf("%s/vulnerability-report-%s.md", ReportDir, name)
}

// RenderReport renders alerts as a Markdown vulnerability report
func RenderReport(alerts []*Alert, sourceBranch types.BranchName, tag string, generatedAt time.Time) string {
	groups := make(map[types.Severity][]*Alert)
	for _, alert := range alerts {
		groups[alert.Severity] = append(groups[alert.Severity], alert)
	}

	releaseTag := tag
	if releaseTag == "" {
		releaseTag = "N/A"
	}

	var b strings.Builder
	b.WriteString("# Security Vulnerability Report\n\n")
	fmt.Fprintf(&b, "**Generated:** %s\n", generatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "**Source Branch:** %s\n", sourceBranch)
	fmt.Fprintf(&b, "**Release Tag:** %s\n", releaseTag)
	fmt.Fprintf(&b, "**Total Alerts:** %d\n\n", len(alerts))

	b.WriteString("## Summary by Severity\n\n")
	b.WriteString("| Severity | Count |\n")
	b.WriteString("|----------|-------|\n")
	for _, sev := range types.Severities {
		fmt.Fprintf(&b, "| %-8s | %d |\n", sev.Title(), len(groups[sev]))
	}

	b.WriteString("\n## Detailed Alerts\n\n")
	for _, sev := range types.Severities {
		items := groups[sev]
		if len(items) == 0 {
			continue
		}

		fmt.Fprintf(&b, "### %s Severity (%d)\n\n", sev.Title(), len(items))
		for _, alert := range items {
			writeReportEntry(&b, alert)
		}
	}

	return b.String()
}

func writeReportEntry(b *strings.Builder, alert *Alert) {
	ruleID := alert.RuleID
	if ruleID == "" {
		ruleID = "rule"
	}
	file := alert.File
	if file == "" {
		file = "N/A"
	}
	line := "N/A"
	if alert.Line > 0 {
		line = strconv.Itoa(alert.Line)
	}

	fmt.Fprintf(b, "- **%s** - %s\n", ruleID, alert.Message)
	fmt.Fprintf(b, "  - **File:** %s\n", file)
	fmt.Fprintf(b, "  - **Line:** %s\n", line)
	fmt.Fprintf(b, "  - **State:** %s\n", alert.State)
	if alert.URL != "" {
		fmt.Fprintf(b, "  - **URL:** [View Alert](%s)\n", alert.URL)
	}
	if len(alert.Tags) > 0 {
		fmt.Fprintf(b, "  - **Tags:** %s\n", strings.Join(alert.Tags, ", "))
	}
	b.WriteString("\n")
}
