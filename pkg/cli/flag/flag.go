// Package flag defines command line flags shared by wfdiag commands.
package flag

import "github.com/urfave/cli/v3"

type GlobalFlags struct {
	LogLevel  string
	Config    string
	Workflows string
}

func (gf *GlobalFlags) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "log level",
			Sources:     cli.EnvVars("WFDIAG_LOG_LEVEL"),
			Destination: &gf.LogLevel,
		},
		&cli.StringFlag{
			Name:        "config",
			Aliases:     []string{"c"},
			Usage:       "configuration file path",
			Sources:     cli.EnvVars("WFDIAG_CONFIG"),
			Destination: &gf.Config,
		},
		&cli.StringFlag{
			Name:        "workflows",
			Usage:       "Path to the workflows directory (default: .github/workflows)",
			Sources:     cli.EnvVars("WFDIAG_WORKFLOWS"),
			Destination: &gf.Workflows,
		},
	}
}
