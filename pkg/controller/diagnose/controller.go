// Package diagnose implements the diagnostics of a workflow directory.
// It discovers workflow files directly inside the directory, analyzes each of them,
// and writes the report. A workflow file which can't be parsed aborts the run,
// because silently skipping a broken file would hide it from the report.
package diagnose

import (
	"io"

	"github.com/spf13/afero"
	"github.com/suzuki-shunsuke/wfdiag/pkg/analyze"
	"github.com/suzuki-shunsuke/wfdiag/pkg/report"
)

type Controller struct {
	fs       afero.Fs
	analyzer *analyze.Analyzer
	reporter report.Reporter
	param    *Param
}

type Param struct {
	WorkflowDir string
	// Parallelism is the number of files analyzed concurrently. Values less than 1 mean 1.
	Parallelism int
	// Check makes Run return ErrWarningsFound if any warn finding is found.
	Check  bool
	Stdout io.Writer
}

func New(fs afero.Fs, analyzer *analyze.Analyzer, reporter report.Reporter, param *Param) *Controller {
	return &Controller{
		fs:       fs,
		analyzer: analyzer,
		reporter: reporter,
		param:    param,
	}
}
