// Package list implements the 'wfdiag list' command.
// It lists action references of workflow files, with support for filtering by owner and custom output formatting.
package list

import (
	"context"
	"fmt"
	"os"
	"regexp"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/wfdiag/pkg/cli/flag"
	"github.com/suzuki-shunsuke/wfdiag/pkg/controller/list"
	"github.com/suzuki-shunsuke/wfdiag/pkg/di"
	"github.com/suzuki-shunsuke/wfdiag/pkg/log"
	"github.com/urfave/cli/v3"
)

type Flags struct {
	Owner        string
	LineTemplate string
	Include      []string
	Exclude      []string
}

type runner struct {
	logE *logrus.Entry
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE: logE,
	}
	return r.Command(globalFlags)
}

func (r *runner) Command(globalFlags *flag.GlobalFlags) *cli.Command {
	flags := &Flags{}
	return &cli.Command{
		Name:  "list",
		Usage: "List actions and reusable workflows used in workflow files",
		Description: `List actions and reusable workflows used in workflow files.

$ wfdiag list

Output format (default CSV):
<FilePath>,<JobID>,<StepIndex>,<ActionName>,<Ref>,<RefKind>

Filter by owner:
$ wfdiag list --owner actions

Custom output format using Go template:
$ wfdiag list --line-template "{{.RepoOwner}}/{{.RepoName}}@{{.Ref}}"

Available template fields:
  ActionName - Full action name (e.g., actions/checkout)
  RepoOwner  - Repository owner (e.g., actions)
  RepoName   - Repository name (e.g., checkout)
  Ref        - Ref (e.g., v4 or commit SHA)
  RefKind    - Kind of the ref (local, unpinned, major_version, branch, commit_sha, version, other)
  FilePath   - Full file path
  FileName   - Base file name
  JobID      - Job ID
  StepIndex  - 1-based step index in the job
`,
		Action: func(ctx context.Context, _ *cli.Command) error {
			return r.action(ctx, globalFlags, flags)
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "owner",
				Usage:       "Filter actions by owner",
				Destination: &flags.Owner,
			},
			&cli.StringFlag{
				Name:        "line-template",
				Usage:       "Go text/template format for each line",
				Destination: &flags.LineTemplate,
			},
			&cli.StringSliceFlag{
				Name:        "include",
				Aliases:     []string{"i"},
				Usage:       "A regular expression to include actions",
				Destination: &flags.Include,
			},
			&cli.StringSliceFlag{
				Name:        "exclude",
				Aliases:     []string{"e"},
				Usage:       "A regular expression to exclude actions",
				Destination: &flags.Exclude,
			},
		},
	}
}

func (r *runner) action(ctx context.Context, globalFlags *flag.GlobalFlags, flags *Flags) error {
	log.SetLevel(globalFlags.LogLevel, r.logE)

	includes, err := compilePatterns(flags.Include)
	if err != nil {
		return fmt.Errorf("compile include patterns: %w", err)
	}

	excludes, err := compilePatterns(flags.Exclude)
	if err != nil {
		return fmt.Errorf("compile exclude patterns: %w", err)
	}

	fs := afero.NewOsFs()
	cfg, err := di.ReadConfig(fs, globalFlags.Config)
	if err != nil {
		return err //nolint:wrapcheck
	}

	param := &list.Param{
		WorkflowDir:  cfg.WorkflowDir(globalFlags.Workflows),
		Owner:        flags.Owner,
		LineTemplate: flags.LineTemplate,
		Includes:     includes,
		Excludes:     excludes,
	}

	ctrl := list.New(fs, param, os.Stdout)
	return ctrl.List(ctx, r.logE) //nolint:wrapcheck
}

func compilePatterns(patterns []string) ([]*regexp.Regexp, error) {
	result := make([]*regexp.Regexp, 0, len(patterns))
	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile regex %q: %w", pattern, err)
		}
		result = append(result, re)
	}
	return result, nil
}
