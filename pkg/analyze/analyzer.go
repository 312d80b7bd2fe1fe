package analyze

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/suzuki-shunsuke/wfdiag/pkg/document"
)

// ActionIgnorer decides if pin checks of an action are skipped.
type ActionIgnorer interface {
	IgnoreAction(name, ref string) bool
}

// Analyzer analyzes workflow documents.
// The zero value is ready to use and ignores no action.
type Analyzer struct {
	ignorer ActionIgnorer
}

func New(ignorer ActionIgnorer) *Analyzer {
	return &Analyzer{
		ignorer: ignorer,
	}
}

const triggerPullRequestTarget = "pull_request_target"

// Workflow analyzes a workflow document read from path.
// If the document isn't a mapping, it is analyzed as an empty mapping.
func (a *Analyzer) Workflow(path string, doc *document.Value) *WorkflowSummary {
	if _, ok := doc.AsMapping(); !ok {
		doc = document.FromMapping(nil)
	}
	summary := &WorkflowSummary{
		Path:        path,
		Name:        stringOr(doc.Get("name"), fileStem(path)),
		Triggers:    NormalizeTriggers(doc.Get("on")),
		Permissions: nonNull(doc.Get("permissions")),
		Jobs:        []*JobSummary{},
		Findings:    []Finding{},
	}
	if summary.Permissions == nil {
		summary.Findings = append(summary.Findings, newFinding(RuleWorkflowPermissionsMissing, ""))
	}
	if slices.Contains(summary.Triggers, triggerPullRequestTarget) {
		summary.Findings = append(summary.Findings, newFinding(RulePullRequestTarget, ""))
	}
	jobs, ok := doc.Get("jobs").AsMapping()
	if !ok {
		return summary
	}
	for _, jobID := range jobs.Keys() {
		job := jobs.Get(jobID)
		if _, ok := job.AsMapping(); !ok {
			continue
		}
		summary.Jobs = append(summary.Jobs, a.Job(jobID, job))
	}
	return summary
}

// Job analyzes a job. job must be a mapping.
func (a *Analyzer) Job(jobID string, job *document.Value) *JobSummary {
	summary := &JobSummary{
		ID:          jobID,
		Name:        stringOr(job.Get("name"), jobID),
		Runner:      runner(job.Get("runs-on")),
		Permissions: nonNull(job.Get("permissions")),
		Concurrency: nonNull(job.Get("concurrency")),
		Findings:    []Finding{},
	}
	if summary.Permissions == nil {
		summary.Findings = append(summary.Findings, newFinding(RuleJobPermissionsMissing, ""))
	}
	// fail-fast is true by default, but only an explicit true is reported
	if job.Get("strategy").Get("fail-fast").IsTrue() {
		summary.Findings = append(summary.Findings, newFinding(RuleMatrixFailFast, ""))
	}
	if steps, ok := job.Get("steps").AsSequence(); ok {
		summary.Findings = append(summary.Findings, a.Steps(steps)...)
	}
	return summary
}

// Steps checks action references of steps in order.
// Steps without a string uses are skipped.
func (a *Analyzer) Steps(steps []*document.Value) []Finding {
	findings := []Finding{}
	for _, step := range steps {
		uses, ok := step.Get("uses").AsString()
		if !ok {
			continue
		}
		ref := ParseActionRef(uses)
		if a.ignore(ref) {
			continue
		}
		if f := actionRefFinding(ref); f != nil {
			findings = append(findings, *f)
		}
	}
	return findings
}

func (a *Analyzer) ignore(ref *ActionRef) bool {
	if a == nil || a.ignorer == nil || ref.Kind == RefKindLocal {
		return false
	}
	return a.ignorer.IgnoreAction(ref.Name, ref.Ref)
}

func runner(v *document.Value) Runner {
	if v.IsNull() {
		return Runner{Label: RunnerNotSpecified}
	}
	if seq, ok := v.AsSequence(); ok {
		labels := make([]string, len(seq))
		for i, label := range seq {
			labels[i] = label.String()
		}
		return Runner{Labels: labels}
	}
	return Runner{Label: v.String()}
}

func stringOr(v *document.Value, defaultValue string) string {
	if v.IsNull() {
		return defaultValue
	}
	return v.String()
}

func nonNull(v *document.Value) *document.Value {
	if v.IsNull() {
		return nil
	}
	return v
}

func fileStem(p string) string {
	base := filepath.Base(p)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
