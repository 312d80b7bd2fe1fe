// Package analyze implements the analysis engine of wfdiag.
// It inspects a parsed workflow document, its jobs and their steps, and reports
// configuration risks such as action references which aren't pinned to an immutable
// revision, missing permissions, and risky triggers.
// Findings are aggregated into a JobSummary per job and a WorkflowSummary per workflow file.
package analyze

import "strings"

// Severity is the severity of a finding.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarn
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarn:
		return "warn"
	default:
		return "unknown"
	}
}

// Label returns the token used in the text report, e.g. INFO.
func (s Severity) Label() string {
	return strings.ToUpper(s.String())
}

func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Finding is a diagnostic observation.
type Finding struct {
	RuleID   string   `json:"rule_id"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
	// Context is a snippet such as the offending action reference. It may be empty.
	Context string `json:"context,omitempty"`
}

func newFinding(rule *Rule, context string) Finding {
	return Finding{
		RuleID:   rule.ID,
		Message:  rule.Message,
		Severity: rule.Severity,
		Context:  context,
	}
}
