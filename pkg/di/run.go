// Package di wires the dependencies of the wfdiag command.
// It reads the configuration file, selects the reporter, and runs the diagnose controller.
package di

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/wfdiag/pkg/analyze"
	"github.com/suzuki-shunsuke/wfdiag/pkg/config"
	"github.com/suzuki-shunsuke/wfdiag/pkg/controller/diagnose"
	"github.com/suzuki-shunsuke/wfdiag/pkg/log"
	"github.com/suzuki-shunsuke/wfdiag/pkg/report"
)

// Run analyzes the workflow directory and writes the report to stdout.
func Run(ctx context.Context, logE *logrus.Entry, fs afero.Fs, flags *Flags, stdout io.Writer) error {
	log.SetLevel(flags.LogLevel, logE)

	reporter, err := NewReporter(flags)
	if err != nil {
		return err
	}

	cfg, err := ReadConfig(fs, flags.Config)
	if err != nil {
		return err
	}

	parallelism := flags.Parallelism
	if parallelism == 0 {
		parallelism = cfg.Parallelism
	}

	ctrl := diagnose.New(fs, analyze.New(cfg), reporter, &diagnose.Param{
		WorkflowDir: cfg.WorkflowDir(flags.Workflows),
		Parallelism: parallelism,
		Check:       flags.Check,
		Stdout:      stdout,
	})
	return ctrl.Run(ctx, logE) //nolint:wrapcheck
}

// NewReporter returns the reporter of the output format.
// An empty format means text.
func NewReporter(flags *Flags) (report.Reporter, error) {
	switch flags.Format {
	case "", FormatText:
		return report.NewText(flags.UseColor()), nil
	case FormatJSON:
		return report.JSON{}, nil
	case FormatSARIF:
		return &report.SARIF{Version: flags.Version}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q: must be one of text, json, sarif", flags.Format)
	}
}

// ReadConfig finds and reads the configuration file.
// If no configuration file is found, an empty configuration is returned.
func ReadConfig(fs afero.Fs, configFilePath string) (*config.Config, error) {
	cfgFinder := config.NewFinder(fs)
	cfgReader := config.NewReader(fs)
	cfgPath, err := cfgFinder.Find(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("find configuration file: %w", err)
	}
	cfg := &config.Config{}
	if err := cfgReader.Read(cfg, cfgPath); err != nil {
		return nil, fmt.Errorf("read configuration file: %w", err)
	}
	return cfg, nil
}
