package list

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/wfdiag/pkg/analyze"
	"github.com/suzuki-shunsuke/wfdiag/pkg/controller/diagnose"
	"github.com/suzuki-shunsuke/wfdiag/pkg/document"
)

// List outputs action references of workflow files in the workflow directory.
// A workflow file which can't be parsed is logged and skipped.
func (c *Controller) List(_ context.Context, logE *logrus.Entry) error {
	files, err := diagnose.Discover(c.fs, c.param.WorkflowDir)
	if err != nil {
		return err //nolint:wrapcheck
	}

	tmpl, err := c.parseTemplate()
	if err != nil {
		return err
	}

	for _, file := range files {
		logE := logE.WithField("workflow_file", file)
		if err := c.listWorkflow(logE, file, tmpl); err != nil {
			logerr.WithError(logE, err).Error("list actions in workflow")
		}
	}
	return nil
}

func (c *Controller) parseTemplate() (*template.Template, error) {
	if c.param.LineTemplate == "" {
		return nil, nil //nolint:nilnil
	}
	tmpl, err := template.New("line").Parse(c.param.LineTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse line template: %w", err)
	}
	return tmpl, nil
}

func (c *Controller) listWorkflow(logE *logrus.Entry, file string, tmpl *template.Template) error {
	content, err := afero.ReadFile(c.fs, file)
	if err != nil {
		return fmt.Errorf("read a workflow file: %w", err)
	}
	doc, err := document.Parse(content)
	if err != nil {
		return fmt.Errorf("parse a workflow file: %w", err)
	}
	jobs, ok := doc.Get("jobs").AsMapping()
	if !ok {
		return nil
	}
	for _, jobID := range jobs.Keys() {
		steps, ok := jobs.Get(jobID).Get("steps").AsSequence()
		if !ok {
			continue
		}
		for i, step := range steps {
			uses, ok := step.Get("uses").AsString()
			if !ok {
				continue
			}
			info := newActionInfo(analyze.ParseActionRef(uses))
			info.FilePath = file
			info.FileName = filepath.Base(file)
			info.JobID = jobID
			info.StepIndex = i + 1
			if c.exclude(logE, info) {
				continue
			}
			if err := c.output(info, tmpl); err != nil {
				return err
			}
		}
	}
	return nil
}

func newActionInfo(ref *analyze.ActionRef) *ActionInfo {
	info := &ActionInfo{
		ActionName: ref.Name,
		Ref:        ref.Ref,
		RefKind:    string(ref.Kind),
	}
	if ref.Kind == analyze.RefKindLocal || strings.Contains(ref.Name, "://") {
		return info
	}
	owner, rest, ok := strings.Cut(ref.Name, "/")
	if !ok {
		return info
	}
	info.RepoOwner = owner
	info.RepoName, _, _ = strings.Cut(rest, "/")
	return info
}

func (c *Controller) exclude(logE *logrus.Entry, info *ActionInfo) bool {
	if c.param.Owner != "" && info.RepoOwner != c.param.Owner {
		return true
	}
	for _, exclude := range c.param.Excludes {
		if exclude.MatchString(info.ActionName) {
			logE.WithField("action", info.ActionName).Debug("exclude the action")
			return true
		}
	}
	if len(c.param.Includes) == 0 {
		return false
	}
	for _, include := range c.param.Includes {
		if include.MatchString(info.ActionName) {
			return false
		}
	}
	logE.WithField("action", info.ActionName).Debug("exclude the action by includes")
	return true
}

func (c *Controller) output(info *ActionInfo, tmpl *template.Template) error {
	if tmpl != nil {
		if err := tmpl.Execute(c.stdout, info); err != nil {
			return fmt.Errorf("execute template: %w", err)
		}
		fmt.Fprintln(c.stdout)
		return nil
	}
	// <FilePath>,<JobID>,<StepIndex>,<ActionName>,<Ref>,<RefKind>
	fmt.Fprintf(c.stdout, "%s,%s,%d,%s,%s,%s\n", info.FilePath, info.JobID, info.StepIndex, info.ActionName, info.Ref, info.RefKind)
	return nil
}
