package di

import "github.com/suzuki-shunsuke/wfdiag/pkg/cli/flag"

const (
	FormatText  = "text"
	FormatJSON  = "json"
	FormatSARIF = "sarif"
)

// Flags holds all command-line flags for the diagnostics.
type Flags struct {
	*flag.GlobalFlags

	Format      string
	Check       bool
	NoColor     bool
	Parallelism int

	IsGitHubActions  bool
	StdoutIsTerminal bool

	Version string
}

// UseColor reports whether the text report is colored.
// --no-color always wins. On GitHub Actions the log viewer renders colors even though stdout isn't a terminal.
func (f *Flags) UseColor() bool {
	if f.NoColor {
		return false
	}
	return f.IsGitHubActions || f.StdoutIsTerminal
}
