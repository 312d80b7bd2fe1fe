package cli

import (
	"context"
	"fmt"

	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/urfave/cli/v3"
)

func newVersionCommand(ldFlags *urfave.LDFlags) *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Show version",
		Action: func(_ context.Context, c *cli.Command) error {
			fmt.Fprintf(c.Root().Writer, "wfdiag %s (commit: %s, built at: %s)\n", ldFlags.Version, ldFlags.Commit, ldFlags.Date)
			return nil
		},
	}
}

func versionString(ldFlags *urfave.LDFlags) string {
	if ldFlags.Commit == "" {
		return ldFlags.Version
	}
	return ldFlags.Version + " (" + ldFlags.Commit + ")"
}
