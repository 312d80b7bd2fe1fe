package diagnose

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/wfdiag/pkg/analyze"
	"github.com/suzuki-shunsuke/wfdiag/pkg/document"
	"golang.org/x/sync/errgroup"
)

var ErrWarningsFound = errors.New("warnings are found")

// Run analyzes workflow files and writes the report.
// Nothing is written if an error occurs before the report is rendered.
func (c *Controller) Run(ctx context.Context, logE *logrus.Entry) error {
	summaries, err := c.Diagnose(ctx, logE)
	if err != nil {
		return err
	}
	if err := c.reporter.Report(c.param.Stdout, summaries); err != nil {
		return fmt.Errorf("output a report: %w", err)
	}
	if !c.param.Check {
		return nil
	}
	for _, summary := range summaries {
		if summary.HasSeverity(analyze.SeverityWarn) {
			return ErrWarningsFound
		}
	}
	return nil
}

// Diagnose analyzes workflow files in the workflow directory.
// Summaries are returned in the order of file paths regardless of parallelism.
// If some files fail, the error of the first failed file in that order is returned.
func (c *Controller) Diagnose(ctx context.Context, logE *logrus.Entry) ([]*analyze.WorkflowSummary, error) {
	logE = logE.WithField("workflow_dir", c.param.WorkflowDir)
	files, err := Discover(c.fs, c.param.WorkflowDir)
	if err != nil {
		return nil, err
	}
	logE.WithField("num_of_files", len(files)).Debug("discovered workflow files")

	summaries := make([]*analyze.WorkflowSummary, len(files))
	errs := make([]error, len(files))
	var eg errgroup.Group
	eg.SetLimit(max(c.param.Parallelism, 1))
	for i, file := range files {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err //nolint:wrapcheck
				return nil
			}
			summary, err := c.analyzeFile(file)
			if err != nil {
				errs[i] = logerr.WithFields(err, logrus.Fields{ //nolint:wrapcheck
					"workflow_file": file,
				})
				return nil
			}
			logE.WithFields(logrus.Fields{
				"workflow_file": file,
				"num_of_jobs":   len(summary.Jobs),
			}).Debug("analyzed a workflow file")
			summaries[i] = summary
			return nil
		})
	}
	_ = eg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return summaries, nil
}

func (c *Controller) analyzeFile(file string) (*analyze.WorkflowSummary, error) {
	content, err := afero.ReadFile(c.fs, file)
	if err != nil {
		return nil, fmt.Errorf("read a workflow file: %w", err)
	}
	doc, err := document.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("parse a workflow file %s: %w", file, err)
	}
	return c.analyzer.Workflow(file, doc), nil
}
