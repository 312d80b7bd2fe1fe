// Package run implements the diagnostics of workflow files, which is the action of the root command.
package run

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/wfdiag/pkg/cli/flag"
	"github.com/suzuki-shunsuke/wfdiag/pkg/di"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

type Runner struct {
	logE  *logrus.Entry
	flags *di.Flags
}

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags, version string) *Runner {
	return &Runner{
		logE: logE,
		flags: &di.Flags{
			GlobalFlags: globalFlags,
			Version:     version,
		},
	}
}

func (r *Runner) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Output format. One of text, json, sarif",
			Value:       di.FormatText,
			Sources:     cli.EnvVars("WFDIAG_FORMAT"),
			Destination: &r.flags.Format,
		},
		&cli.BoolFlag{
			Name:        "check",
			Usage:       "Exit with code 1 if any warning is found",
			Destination: &r.flags.Check,
		},
		&cli.IntFlag{
			Name:    "parallelism",
			Aliases: []string{"p"},
			Usage:   "The number of workflow files analyzed in parallel",
			Sources: cli.EnvVars("WFDIAG_PARALLELISM"),
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored output",
			Destination: &r.flags.NoColor,
		},
	}
}

func (r *Runner) Action(ctx context.Context, c *cli.Command) error {
	di.SetEnv(r.flags, os.Getenv)
	r.flags.Parallelism = int(c.Int("parallelism"))
	r.flags.StdoutIsTerminal = term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec
	return di.Run(ctx, r.logE, afero.NewOsFs(), r.flags, os.Stdout) //nolint:wrapcheck
}
