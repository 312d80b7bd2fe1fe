// Package cli builds the command line interface of wfdiag.
package cli

import (
	"context"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/suzuki-shunsuke/wfdiag/pkg/cli/flag"
	"github.com/suzuki-shunsuke/wfdiag/pkg/cli/initcmd"
	"github.com/suzuki-shunsuke/wfdiag/pkg/cli/list"
	"github.com/suzuki-shunsuke/wfdiag/pkg/cli/run"
	"github.com/urfave/cli/v3"
)

// Run runs wfdiag with command line arguments.
// Without a subcommand, wfdiag diagnoses the workflow directory.
func Run(ctx context.Context, logE *logrus.Entry, ldFlags *urfave.LDFlags, args ...string) error {
	globalFlags := &flag.GlobalFlags{}
	runner := run.New(logE, globalFlags, ldFlags.Version)
	cmd := &cli.Command{
		Name:  "wfdiag",
		Usage: "Diagnose GitHub Actions workflows. https://github.com/suzuki-shunsuke/wfdiag",
		Description: `wfdiag analyzes workflow files in .github/workflows and reports
permissions, triggers, runners, and action pinning of each workflow and job.

$ wfdiag
$ wfdiag --workflows path/to/workflows --format json
$ wfdiag --check
`,
		Version:               versionString(ldFlags),
		Flags:                 slices.Concat(globalFlags.Flags(), runner.Flags()),
		Action:                runner.Action,
		EnableShellCompletion: true,
		Commands: []*cli.Command{
			list.New(logE, globalFlags),
			initcmd.New(logE, globalFlags),
			newVersionCommand(ldFlags),
		},
	}
	return cmd.Run(ctx, args) //nolint:wrapcheck
}
