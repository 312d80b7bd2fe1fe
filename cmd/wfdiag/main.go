package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/suzuki-shunsuke/logrus-error/logerr"
	"github.com/suzuki-shunsuke/urfave-cli-v3-util/urfave"
	"github.com/suzuki-shunsuke/wfdiag/pkg/cli"
	"github.com/suzuki-shunsuke/wfdiag/pkg/controller/diagnose"
	"github.com/suzuki-shunsuke/wfdiag/pkg/log"
)

var (
	version = ""
	commit  = "" //nolint:gochecknoglobals
	date    = "" //nolint:gochecknoglobals
)

const (
	exitCodeOK            = 0
	exitCodeFailure       = 1
	exitCodeWarningsFound = 1
	exitCodeDirNotFound   = 2
)

func main() {
	logE := log.New(version)
	err := core(logE)
	code := exitCode(os.Stderr, err)
	if code == exitCodeFailure && !errors.Is(err, diagnose.ErrWarningsFound) {
		logerr.WithError(logE, err).Fatal("wfdiag failed")
	}
	os.Exit(code)
}

// exitCode returns the exit code of err.
// The error of a missing workflow directory is written to stderr as is.
// Other failures are left to the caller to log.
func exitCode(stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return exitCodeOK
	case errors.Is(err, diagnose.ErrWorkflowDirNotFound):
		fmt.Fprintln(stderr, err)
		return exitCodeDirNotFound
	case errors.Is(err, diagnose.ErrWarningsFound):
		return exitCodeWarningsFound
	default:
		return exitCodeFailure
	}
}

func core(logE *logrus.Entry) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return cli.Run(ctx, logE, &urfave.LDFlags{ //nolint:wrapcheck
		Version: version,
		Commit:  commit,
		Date:    date,
	}, os.Args...)
}
