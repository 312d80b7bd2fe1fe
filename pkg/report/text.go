// Package report renders workflow summaries as text, JSON, or SARIF.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/suzuki-shunsuke/wfdiag/pkg/analyze"
	"github.com/suzuki-shunsuke/wfdiag/pkg/document"
)

const (
	// NoWorkflowsFound is written instead of a report when no workflow file is found.
	NoWorkflowsFound = "No workflows found."
	ruleWidth        = 80
	triggersNone     = "None"
)

type Reporter interface {
	Report(w io.Writer, summaries []*analyze.WorkflowSummary) error
}

type colorFunc func(a ...any) string

// Text renders summaries as human readable text blocks separated by a rule line.
type Text struct {
	yellow colorFunc
	cyan   colorFunc
}

// NewText returns a Text reporter. If colored is true, severity labels are colored.
func NewText(colored bool) *Text {
	if !colored {
		return &Text{
			yellow: fmt.Sprint,
			cyan:   fmt.Sprint,
		}
	}
	yellow := color.New(color.FgYellow)
	yellow.EnableColor()
	cyan := color.New(color.FgCyan)
	cyan.EnableColor()
	return &Text{
		yellow: yellow.SprintFunc(),
		cyan:   cyan.SprintFunc(),
	}
}

func (t *Text) Report(w io.Writer, summaries []*analyze.WorkflowSummary) error {
	if len(summaries) == 0 {
		if _, err := fmt.Fprintln(w, NoWorkflowsFound); err != nil {
			return fmt.Errorf("write a report: %w", err)
		}
		return nil
	}
	sb := &strings.Builder{}
	rule := strings.Repeat("-", ruleWidth)
	for _, summary := range summaries {
		t.writeWorkflow(sb, summary)
		sb.WriteString(rule + "\n")
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("write a report: %w", err)
	}
	return nil
}

func (t *Text) writeWorkflow(sb *strings.Builder, summary *analyze.WorkflowSummary) {
	triggers := triggersNone
	if len(summary.Triggers) > 0 {
		triggers = strings.Join(summary.Triggers, ", ")
	}
	fmt.Fprintf(sb, "Workflow: %s\nPath: %s\nTriggers: %s\n", summary.Name, summary.Path, triggers)
	if !isEmpty(summary.Permissions) {
		fmt.Fprintf(sb, "Workflow permissions: %s\n", summary.Permissions)
	}
	for _, f := range summary.Findings {
		t.writeFinding(sb, "", f)
	}
	sb.WriteString("Jobs:\n")
	for _, job := range summary.Jobs {
		t.writeJob(sb, job)
	}
}

func (t *Text) writeJob(sb *strings.Builder, job *analyze.JobSummary) {
	fmt.Fprintf(sb, "Job: %s (%s)\n  Runs-on: %s\n", job.Name, job.ID, job.Runner)
	if !isEmpty(job.Permissions) {
		fmt.Fprintf(sb, "  Permissions: %s\n", job.Permissions)
	}
	if !isEmpty(job.Concurrency) {
		fmt.Fprintf(sb, "  Concurrency: %s\n", job.Concurrency)
	}
	for _, f := range job.Findings {
		t.writeFinding(sb, "  ", f)
	}
}

func (t *Text) writeFinding(sb *strings.Builder, indent string, f analyze.Finding) {
	label := f.Severity.Label()
	switch f.Severity {
	case analyze.SeverityWarn:
		label = t.yellow(label)
	case analyze.SeverityInfo:
		label = t.cyan(label)
	}
	fmt.Fprintf(sb, "%s[%s] %s\n", indent, label, f.Message)
	// only the finding line is indented by the job
	if f.Context != "" {
		fmt.Fprintf(sb, "    Context: %s\n", f.Context)
	}
}

// isEmpty reports whether a value has nothing worth printing.
func isEmpty(v *document.Value) bool {
	switch v.Kind() {
	case document.KindNull:
		return true
	case document.KindMapping:
		m, _ := v.AsMapping()
		return m.Len() == 0
	case document.KindSequence:
		seq, _ := v.AsSequence()
		return len(seq) == 0
	case document.KindString:
		s, _ := v.AsString()
		return s == ""
	default:
		return false
	}
}
