package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/suzuki-shunsuke/wfdiag/pkg/analyze"
	"github.com/suzuki-shunsuke/wfdiag/pkg/sarif"
)

const informationURI = "https://github.com/suzuki-shunsuke/wfdiag"

// SARIF renders findings as a SARIF log with one run.
type SARIF struct {
	Version string
}

func (s *SARIF) Report(w io.Writer, summaries []*analyze.WorkflowSummary) error {
	log := sarif.Log{
		Schema:  sarif.Schema,
		Version: sarif.Version,
		Runs: []sarif.Run{
			{
				Tool: sarif.Tool{
					Driver: sarif.Driver{
						Name:           "wfdiag",
						InformationURI: informationURI,
						Version:        s.Version,
						Rules:          sarifRules(),
					},
				},
				Results: sarifResults(summaries),
			},
		},
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(log); err != nil {
		return fmt.Errorf("encode SARIF: %w", err)
	}
	return nil
}

func sarifLevel(severity analyze.Severity) string {
	if severity == analyze.SeverityWarn {
		return sarif.LevelWarning
	}
	return sarif.LevelNote
}

func sarifRules() []sarif.Rule {
	rules := analyze.Rules()
	ret := make([]sarif.Rule, len(rules))
	for i, rule := range rules {
		ret[i] = sarif.Rule{
			ID: rule.ID,
			ShortDescription: sarif.Message{
				Text: rule.Description,
			},
			DefaultConfiguration: &sarif.ReportingConfiguration{
				Level: sarifLevel(rule.Severity),
			},
		}
	}
	return ret
}

func sarifResults(summaries []*analyze.WorkflowSummary) []sarif.Result {
	results := []sarif.Result{}
	for _, summary := range summaries {
		for _, f := range summary.Findings {
			results = append(results, sarifResult(summary, nil, f))
		}
		for _, job := range summary.Jobs {
			for _, f := range job.Findings {
				results = append(results, sarifResult(summary, job, f))
			}
		}
	}
	return results
}

func sarifResult(summary *analyze.WorkflowSummary, job *analyze.JobSummary, f analyze.Finding) sarif.Result {
	props := map[string]string{
		"workflow": summary.Name,
	}
	if job != nil {
		props["job"] = job.ID
	}
	msg := f.Message
	if f.Context != "" {
		props["context"] = f.Context
		msg += " " + f.Context
	}
	return sarif.Result{
		RuleID:  f.RuleID,
		Level:   sarifLevel(f.Severity),
		Message: sarif.Message{Text: msg},
		Locations: []sarif.Location{
			{
				PhysicalLocation: sarif.PhysicalLocation{
					ArtifactLocation: sarif.ArtifactLocation{
						URI: summary.Path,
					},
				},
			},
		},
		Properties: props,
	}
}
