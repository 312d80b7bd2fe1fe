// Package list implements the 'wfdiag list' command.
// It lists action references of steps in workflow files together with the kind of their refs,
// with support for filtering by owner and custom output formatting.
package list

import (
	"io"
	"regexp"

	"github.com/spf13/afero"
)

// Controller handles the list command operations.
type Controller struct {
	fs     afero.Fs
	param  *Param
	stdout io.Writer
}

// Param contains parameters for the list command.
type Param struct {
	WorkflowDir  string
	Owner        string
	LineTemplate string
	Includes     []*regexp.Regexp
	Excludes     []*regexp.Regexp
}

// ActionInfo is an action reference of a step. It is passed to the line template.
type ActionInfo struct {
	ActionName string // Action name such as actions/checkout or ./.github/actions/foo
	RepoOwner  string // Repository owner. Empty for local actions and docker images
	RepoName   string // Repository name. Empty for local actions and docker images
	Ref        string // Ref after the last @. Empty if the action isn't pinned
	RefKind    string // local, unpinned, major_version, branch, version, commit_sha, or other
	FilePath   string // Path to the workflow file
	FileName   string // Base name of the workflow file
	JobID      string // Job ID
	StepIndex  int    // 1-based index of the step in the job
}

// New creates a new Controller for running list operations.
func New(fs afero.Fs, param *Param, stdout io.Writer) *Controller {
	return &Controller{
		fs:     fs,
		param:  param,
		stdout: stdout,
	}
}
