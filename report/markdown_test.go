package report

import (
	"strings"
	"testing"
)

func sampleReport() *Report {
	r := NewReport()
	r.Metadata.Overflow = "checked"

	r.Add(Result{Index: 0, Kind: "factorial", Input: "5", Value: 120})
	r.Add(Result{Index: 1, Kind: "area", Input: "3x4", Value: 12})
	r.Add(Result{
		Index:   2,
		Kind:    "factorial",
		Input:   "13",
		Value:   1932053504,
		Wrapped: true,
		Error:   "factorial of 13: arith: overflow",
	})
	return r
}

func TestWriteMarkdown(t *testing.T) {
	r := sampleReport()

	md := WriteMarkdown(r)

	// Check key sections exist
	if !strings.Contains(md, "# Arith Report") {
		t.Error("missing title")
	}

	if !strings.Contains(md, "Overflow mode: `checked`") {
		t.Error("missing overflow mode")
	}

	if !strings.Contains(md, "| 3 | 2 | 0 | 1 |") {
		t.Error("missing summary row")
	}

	if !strings.Contains(md, "| 1 | factorial | `5` | 120 | ok |") {
		t.Error("missing factorial result")
	}

	if !strings.Contains(md, "| 3 | factorial | `13` | 1932053504 | failed: factorial of 13: arith: overflow |") {
		t.Error("missing failed result")
	}
}

func TestWriteMarkdownEmpty(t *testing.T) {
	md := WriteMarkdown(NewReport())
	if !strings.Contains(md, "No jobs were evaluated.") {
		t.Error("missing empty notice")
	}
	if strings.Contains(md, "## Results") {
		t.Error("empty report should not have a results table")
	}
}

func TestReportCounts(t *testing.T) {
	r := sampleReport()
	r.Add(Result{Index: 3, Kind: "area", Input: "65536x65536", Value: 0, Wrapped: true})

	if got := r.CountFailed(); got != 1 {
		t.Errorf("CountFailed() = %d, want 1", got)
	}
	if got := r.CountWrapped(); got != 1 {
		t.Errorf("CountWrapped() = %d, want 1", got)
	}
	if r.Metadata.Jobs != 4 {
		t.Errorf("Metadata.Jobs = %d, want 4", r.Metadata.Jobs)
	}
}
