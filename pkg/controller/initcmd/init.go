package initcmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
)

const (
	templateConfig = `# yaml-language-server: $schema=https://raw.githubusercontent.com/suzuki-shunsuke/wfdiag/refs/heads/main/json-schema/wfdiag.json
# wfdiag - https://github.com/suzuki-shunsuke/wfdiag
version: 1
# workflows: .github/workflows
# parallelism: 4

ignore_actions:
# - name: actions/*
#   name_format: glob
#   ref: main
# - name: suzuki-shunsuke/.*
#   name_format: regexp
`
	filePermission os.FileMode = 0o644
)

// Init creates a configuration file with a template if it doesn't exist.
// It returns true if the file is created.
func (c *Controller) Init(configFilePath string) (bool, error) {
	f, err := afero.Exists(c.fs, configFilePath)
	if err != nil {
		return false, fmt.Errorf("check if a configuration file exists: %w", err)
	}
	if f {
		return false, nil
	}
	if err := afero.WriteFile(c.fs, configFilePath, []byte(templateConfig), filePermission); err != nil {
		return false, fmt.Errorf("create a configuration file: %w", err)
	}
	return true, nil
}
