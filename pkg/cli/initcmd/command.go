// Package initcmd implements the 'wfdiag init' command.
// It creates a configuration file from a template if it doesn't exist.
package initcmd

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/wfdiag/pkg/cli/flag"
	"github.com/suzuki-shunsuke/wfdiag/pkg/controller/initcmd"
	"github.com/suzuki-shunsuke/wfdiag/pkg/log"
	"github.com/urfave/cli/v3"
)

const defaultConfigFilePath = ".wfdiag.yaml"

func New(logE *logrus.Entry, globalFlags *flag.GlobalFlags) *cli.Command {
	r := &runner{
		logE:        logE,
		globalFlags: globalFlags,
	}
	return r.Command()
}

type runner struct {
	logE        *logrus.Entry
	globalFlags *flag.GlobalFlags
}

func (r *runner) Command() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Create .wfdiag.yaml if it doesn't exist",
		Description: `Create .wfdiag.yaml if it doesn't exist

$ wfdiag init

You can also pass configuration file path.

e.g.

$ wfdiag init .github/wfdiag.yaml
`,
		Action: r.action,
	}
}

func (r *runner) action(_ context.Context, c *cli.Command) error {
	log.SetLevel(r.globalFlags.LogLevel, r.logE)
	configFilePath := c.Args().First()
	if configFilePath == "" {
		configFilePath = r.globalFlags.Config
	}
	if configFilePath == "" {
		configFilePath = defaultConfigFilePath
	}
	ctrl := initcmd.New(afero.NewOsFs())
	created, err := ctrl.Init(configFilePath)
	if err != nil {
		return err //nolint:wrapcheck
	}
	logE := r.logE.WithField("config", configFilePath)
	if !created {
		logE.Info("the configuration file already exists")
		return nil
	}
	logE.Info("created a configuration file")
	return nil
}
