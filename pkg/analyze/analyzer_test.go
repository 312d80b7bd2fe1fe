package analyze_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/wfdiag/pkg/analyze"
	"github.com/suzuki-shunsuke/wfdiag/pkg/document"
)

var valueComparer = cmp.Comparer(func(a, b *document.Value) bool { //nolint:gochecknoglobals
	return a.Kind() == b.Kind() && a.String() == b.String()
})

func parse(t *testing.T, content string) *document.Value {
	t.Helper()
	doc, err := document.Parse([]byte(content))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

var (
	findingWorkflowPermissions = analyze.Finding{ //nolint:gochecknoglobals
		RuleID:   "workflow-permissions-missing",
		Message:  "Workflow permissions are not set; defaults may grant more access than needed.",
		Severity: analyze.SeverityInfo,
	}
	findingJobPermissions = analyze.Finding{ //nolint:gochecknoglobals
		RuleID:   "job-permissions-missing",
		Message:  "Job permissions are not set; defaults may be broader than necessary.",
		Severity: analyze.SeverityInfo,
	}
)

func TestNormalizeTriggers(t *testing.T) {
	t.Parallel()
	data := []struct {
		name    string
		content string
		exp     []string
	}{
		{
			name:    "absent",
			content: "name: ci",
			exp:     []string{},
		},
		{
			name:    "string",
			content: "on: push",
			exp:     []string{"push"},
		},
		{
			name:    "sequence keeps order and duplicates",
			content: "on: [push, pull_request, push, 1]",
			exp:     []string{"push", "pull_request", "push", "1"},
		},
		{
			name: "mapping",
			content: `on:
  workflow_dispatch:
  push:
    branches: [main]
  pull_request_target:
    types: [opened]
`,
			exp: []string{"workflow_dispatch", "push", "pull_request_target"},
		},
		{
			name:    "other scalar",
			content: "on: true",
			exp:     []string{"true"},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			doc := parse(t, d.content)
			if diff := cmp.Diff(d.exp, analyze.NormalizeTriggers(doc.Get("on"))); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestAnalyzer_Workflow(t *testing.T) { //nolint:funlen,maintidx
	t.Parallel()
	data := []struct {
		name    string
		path    string
		content string
		ignorer analyze.ActionIgnorer
		exp     *analyze.WorkflowSummary
	}{
		{
			name:    "no on and no jobs",
			path:    ".github/workflows/empty.yaml",
			content: "",
			exp: &analyze.WorkflowSummary{
				Path:     ".github/workflows/empty.yaml",
				Name:     "empty",
				Triggers: []string{},
				Jobs:     []*analyze.JobSummary{},
				Findings: []analyze.Finding{findingWorkflowPermissions},
			},
		},
		{
			name:    "pull_request_target",
			path:    "wf/prt.yml",
			content: "on: pull_request_target\n",
			exp: &analyze.WorkflowSummary{
				Path:     "wf/prt.yml",
				Name:     "prt",
				Triggers: []string{"pull_request_target"},
				Jobs:     []*analyze.JobSummary{},
				Findings: []analyze.Finding{
					findingWorkflowPermissions,
					{
						RuleID:   "pull-request-target",
						Message:  "pull_request_target trigger is present; ensure untrusted contributions cannot write to protected resources.",
						Severity: analyze.SeverityWarn,
					},
				},
			},
		},
		{
			name: "major version",
			path: "wf/test.yaml",
			content: `name: test
on: [push]
permissions: {}
jobs:
  build:
    runs-on: ubuntu-latest
    permissions:
      contents: read
    steps:
      - uses: actions/checkout@v4
      - run: go test ./...
`,
			exp: &analyze.WorkflowSummary{
				Path:        "wf/test.yaml",
				Name:        "test",
				Triggers:    []string{"push"},
				Permissions: document.FromMapping(nil),
				Jobs: []*analyze.JobSummary{
					{
						ID:          "build",
						Name:        "build",
						Runner:      analyze.Runner{Label: "ubuntu-latest"},
						Permissions: permissions("contents", "read"),
						Findings: []analyze.Finding{
							{
								RuleID:   "major-version-pin",
								Message:  "Action is pinned only to a major version; consider pinning to a minor version or commit SHA.",
								Severity: analyze.SeverityWarn,
								Context:  "actions/checkout@v4",
							},
						},
					},
				},
				Findings: []analyze.Finding{},
			},
		},
		{
			name: "commit hash",
			path: "wf/test.yaml",
			content: `permissions: read-all
jobs:
  build:
    permissions: read-all
    steps:
      - uses: actions/checkout@a1b2c3d
`,
			exp: &analyze.WorkflowSummary{
				Path:        "wf/test.yaml",
				Name:        "test",
				Triggers:    []string{},
				Permissions: document.String("read-all"),
				Jobs: []*analyze.JobSummary{
					{
						ID:          "build",
						Name:        "build",
						Runner:      analyze.Runner{Label: "(not specified)"},
						Permissions: document.String("read-all"),
						Findings:    []analyze.Finding{},
					},
				},
				Findings: []analyze.Finding{},
			},
		},
		{
			name: "job order and findings order",
			path: "ci.yml",
			content: `name: CI
on:
  push:
  pull_request:
jobs:
  zeta:
    name: Zeta job
    runs-on: [self-hosted, linux]
    concurrency:
      group: zeta
    strategy:
      fail-fast: true
      matrix:
        go: ["1.24", "1.25"]
    steps:
      - uses: foo/bar
      - uses: ./local
      - name: inline
        run: echo hi
      - uses: foo/baz@main
      - uses: 42
  skipped: not a mapping
  alpha:
    runs-on: 3
    strategy:
      fail-fast: "true"
    steps: not a sequence
`,
			exp: &analyze.WorkflowSummary{
				Path:     "ci.yml",
				Name:     "CI",
				Triggers: []string{"push", "pull_request"},
				Jobs: []*analyze.JobSummary{
					{
						ID:          "zeta",
						Name:        "Zeta job",
						Runner:      analyze.Runner{Labels: []string{"self-hosted", "linux"}},
						Concurrency: parse(t, "group: zeta"),
						Findings: []analyze.Finding{
							findingJobPermissions,
							{
								RuleID:   "matrix-fail-fast",
								Message:  "Matrix fail-fast is enabled; this can hide failures in later configurations.",
								Severity: analyze.SeverityInfo,
							},
							{
								RuleID:   "unpinned-action",
								Message:  "Action is not version pinned; prefer explicit versions or commit SHAs.",
								Severity: analyze.SeverityWarn,
								Context:  "foo/bar",
							},
							{
								RuleID:   "mutable-branch-ref",
								Message:  "Action references a mutable branch; prefer immutable tags or SHAs.",
								Severity: analyze.SeverityWarn,
								Context:  "foo/baz@main",
							},
						},
					},
					{
						ID:       "alpha",
						Name:     "alpha",
						Runner:   analyze.Runner{Label: "3"},
						Findings: []analyze.Finding{findingJobPermissions},
					},
				},
				Findings: []analyze.Finding{findingWorkflowPermissions},
			},
		},
		{
			name: "ignored action",
			path: "ci.yml",
			content: `permissions: {}
jobs:
  build:
    permissions: {}
    steps:
      - uses: actions/checkout@v4
      - uses: actions/setup-go@v5
`,
			ignorer: ignoreName("actions/checkout"),
			exp: &analyze.WorkflowSummary{
				Path:        "ci.yml",
				Name:        "ci",
				Triggers:    []string{},
				Permissions: document.FromMapping(nil),
				Jobs: []*analyze.JobSummary{
					{
						ID:          "build",
						Name:        "build",
						Runner:      analyze.Runner{Label: "(not specified)"},
						Permissions: document.FromMapping(nil),
						Findings: []analyze.Finding{
							{
								RuleID:   "major-version-pin",
								Message:  "Action is pinned only to a major version; consider pinning to a minor version or commit SHA.",
								Severity: analyze.SeverityWarn,
								Context:  "actions/setup-go@v5",
							},
						},
					},
				},
				Findings: []analyze.Finding{},
			},
		},
		{
			name:    "document is not a mapping",
			path:    "list.yml",
			content: "- a\n- b\n",
			exp: &analyze.WorkflowSummary{
				Path:     "list.yml",
				Name:     "list",
				Triggers: []string{},
				Jobs:     []*analyze.JobSummary{},
				Findings: []analyze.Finding{findingWorkflowPermissions},
			},
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			a := analyze.New(d.ignorer)
			summary := a.Workflow(d.path, parse(t, d.content))
			if diff := cmp.Diff(d.exp, summary, valueComparer); diff != "" {
				t.Fatal(diff)
			}
		})
	}
}

func TestWorkflowSummary_HasSeverity(t *testing.T) {
	t.Parallel()
	summary := &analyze.WorkflowSummary{
		Findings: []analyze.Finding{findingWorkflowPermissions},
		Jobs: []*analyze.JobSummary{
			{Findings: []analyze.Finding{findingJobPermissions}},
		},
	}
	if summary.HasSeverity(analyze.SeverityWarn) {
		t.Fatal("summary must not have warn findings")
	}
	summary.Jobs[0].Findings = append(summary.Jobs[0].Findings, *analyze.ActionPin("foo/bar"))
	if !summary.HasSeverity(analyze.SeverityWarn) {
		t.Fatal("summary must have warn findings")
	}
}

type ignoreName string

func (n ignoreName) IgnoreAction(name, _ string) bool {
	return string(n) == name
}

func permissions(scope, level string) *document.Value {
	m := document.NewMapping()
	m.Set(scope, document.String(level))
	return document.FromMapping(m)
}
