package report

import (
	"fmt"
	"strings"
)

// WriteMarkdown renders the report as a markdown document
func WriteMarkdown(r *Report) string {
	var sb strings.Builder

	sb.WriteString("# Arith Report\n\n")
	fmt.Fprintf(&sb, "Overflow mode: `%s`\n\n", r.Metadata.Overflow)

	sb.WriteString("| Jobs | OK | Wrapped | Failed |\n")
	sb.WriteString("|------|----|---------|--------|\n")
	failed, wrapped := r.CountFailed(), r.CountWrapped()
	fmt.Fprintf(&sb, "| %d | %d | %d | %d |\n\n", len(r.Results), len(r.Results)-failed-wrapped, wrapped, failed)

	if len(r.Results) == 0 {
		sb.WriteString("No jobs were evaluated.\n")
		return sb.String()
	}

	sb.WriteString("## Results\n\n")
	sb.WriteString("| # | Kind | Input | Value | Status |\n")
	sb.WriteString("|---|------|-------|-------|--------|\n")
	for _, res := range r.Results {
		status := res.Status()
		if res.Error != "" {
			status += ": " + escapeCell(res.Error)
		}
		fmt.Fprintf(&sb, "| %d | %s | `%s` | %d | %s |\n", res.Index+1, res.Kind, res.Input, res.Value, status)
	}

	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
