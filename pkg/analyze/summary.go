package analyze

import (
	"encoding/json"
	"strings"

	"github.com/suzuki-shunsuke/wfdiag/pkg/document"
)

// RunnerNotSpecified is the runner of a job which doesn't declare runs-on.
const RunnerNotSpecified = "(not specified)"

// Runner is a single runner label or a sequence of labels.
type Runner struct {
	Label string
	// Labels is nil if the runner is a single label.
	Labels []string
}

func (r Runner) String() string {
	if r.Labels != nil {
		return strings.Join(r.Labels, ", ")
	}
	return r.Label
}

func (r Runner) MarshalJSON() ([]byte, error) {
	if r.Labels != nil {
		return json.Marshal(r.Labels) //nolint:wrapcheck
	}
	return json.Marshal(r.Label) //nolint:wrapcheck
}

// JobSummary is the result of analyzing a job.
type JobSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Runner Runner `json:"runs_on"`
	// Permissions is nil if the job doesn't set permissions.
	Permissions *document.Value `json:"permissions,omitempty"`
	Concurrency *document.Value `json:"concurrency,omitempty"`
	Findings    []Finding       `json:"findings"`
}

// WorkflowSummary is the result of analyzing a workflow file.
type WorkflowSummary struct {
	Path     string   `json:"path"`
	Name     string   `json:"name"`
	Triggers []string `json:"triggers"`
	// Permissions is nil if the workflow doesn't set permissions.
	Permissions *document.Value `json:"permissions,omitempty"`
	Jobs        []*JobSummary   `json:"jobs"`
	Findings    []Finding       `json:"findings"`
}

// AllFindings returns workflow level findings followed by findings of each job.
func (w *WorkflowSummary) AllFindings() []Finding {
	findings := make([]Finding, 0, len(w.Findings))
	findings = append(findings, w.Findings...)
	for _, job := range w.Jobs {
		findings = append(findings, job.Findings...)
	}
	return findings
}

// HasSeverity reports whether the workflow or one of its jobs has a finding of the severity.
func (w *WorkflowSummary) HasSeverity(severity Severity) bool {
	for _, f := range w.AllFindings() {
		if f.Severity == severity {
			return true
		}
	}
	return false
}
