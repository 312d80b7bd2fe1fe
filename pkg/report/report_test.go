package report_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/suzuki-shunsuke/wfdiag/pkg/analyze"
	"github.com/suzuki-shunsuke/wfdiag/pkg/document"
	"github.com/suzuki-shunsuke/wfdiag/pkg/report"
	"github.com/suzuki-shunsuke/wfdiag/pkg/sarif"
)

func summaries(t *testing.T) []*analyze.WorkflowSummary {
	t.Helper()
	doc, err := document.Parse([]byte(`name: CI
on: [push, pull_request_target]
jobs:
  build:
    name: Build
    runs-on: [ubuntu-latest, self-hosted]
    permissions:
      contents: read
    concurrency:
      group: build
    steps:
      - uses: actions/checkout@v4
  lint:
    runs-on: ubuntu-latest
    permissions: {}
`))
	if err != nil {
		t.Fatal(err)
	}
	return []*analyze.WorkflowSummary{analyze.New(nil).Workflow(".github/workflows/ci.yml", doc)}
}

func TestText_Report(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	if err := report.NewText(false).Report(buf, summaries(t)); err != nil {
		t.Fatal(err)
	}
	exp := `Workflow: CI
Path: .github/workflows/ci.yml
Triggers: push, pull_request_target
[INFO] Workflow permissions are not set; defaults may grant more access than needed.
[WARN] pull_request_target trigger is present; ensure untrusted contributions cannot write to protected resources.
Jobs:
Job: Build (build)
  Runs-on: ubuntu-latest, self-hosted
  Permissions: {contents: read}
  Concurrency: {group: build}
  [WARN] Action is pinned only to a major version; consider pinning to a minor version or commit SHA.
    Context: actions/checkout@v4
Job: lint (lint)
  Runs-on: ubuntu-latest
` + strings.Repeat("-", 80) + "\n"
	if diff := cmp.Diff(exp, buf.String()); diff != "" {
		t.Fatal(diff)
	}
}

func TestText_Report_noWorkflows(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	if err := report.NewText(true).Report(buf, nil); err != nil {
		t.Fatal(err)
	}
	if s := buf.String(); s != "No workflows found.\n" {
		t.Fatalf("wanted the notice, got %q", s)
	}
}

func TestJSON_Report(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	if err := (report.JSON{}).Report(buf, summaries(t)); err != nil {
		t.Fatal(err)
	}
	var got []struct {
		Name     string   `json:"name"`
		Triggers []string `json:"triggers"`
		Jobs     []struct {
			ID          string            `json:"id"`
			RunsOn      any               `json:"runs_on"`
			Permissions map[string]string `json:"permissions"`
			Findings    []struct {
				RuleID   string `json:"rule_id"`
				Severity string `json:"severity"`
				Context  string `json:"context"`
			} `json:"findings"`
		} `json:"jobs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || len(got[0].Jobs) != 2 {
		t.Fatalf("unexpected JSON: %s", buf.String())
	}
	build := got[0].Jobs[0]
	if diff := cmp.Diff([]any{"ubuntu-latest", "self-hosted"}, build.RunsOn); diff != "" {
		t.Fatal(diff)
	}
	if build.Permissions["contents"] != "read" {
		t.Fatalf("unexpected permissions: %v", build.Permissions)
	}
	if len(build.Findings) != 1 || build.Findings[0].Severity != "warn" || build.Findings[0].Context != "actions/checkout@v4" {
		t.Fatalf("unexpected findings: %+v", build.Findings)
	}
	if got[0].Jobs[1].RunsOn != "ubuntu-latest" {
		t.Fatalf("unexpected runs_on: %v", got[0].Jobs[1].RunsOn)
	}
}

func TestJSON_Report_noWorkflows(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	if err := (report.JSON{}).Report(buf, nil); err != nil {
		t.Fatal(err)
	}
	if s := buf.String(); s != "[]\n" {
		t.Fatalf("wanted [], got %q", s)
	}
}

func TestSARIF_Report(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	r := &report.SARIF{Version: "v1.0.0"}
	if err := r.Report(buf, summaries(t)); err != nil {
		t.Fatal(err)
	}
	log := &sarif.Log{}
	if err := json.Unmarshal(buf.Bytes(), log); err != nil {
		t.Fatal(err)
	}
	if log.Version != "2.1.0" || len(log.Runs) != 1 {
		t.Fatalf("unexpected SARIF: %s", buf.String())
	}
	run := log.Runs[0]
	if len(run.Tool.Driver.Rules) != len(analyze.Rules()) {
		t.Fatalf("wanted %d rules, got %d", len(analyze.Rules()), len(run.Tool.Driver.Rules))
	}
	ruleIDs := make([]string, len(run.Results))
	for i, result := range run.Results {
		ruleIDs[i] = result.RuleID
	}
	exp := []string{"workflow-permissions-missing", "pull-request-target", "major-version-pin"}
	if diff := cmp.Diff(exp, ruleIDs); diff != "" {
		t.Fatal(diff)
	}
	pin := run.Results[2]
	if pin.Level != "warning" || pin.Properties["job"] != "build" || pin.Properties["context"] != "actions/checkout@v4" {
		t.Fatalf("unexpected result: %+v", pin)
	}
	if uri := pin.Locations[0].PhysicalLocation.ArtifactLocation.URI; uri != ".github/workflows/ci.yml" {
		t.Fatalf("unexpected uri: %s", uri)
	}
}
