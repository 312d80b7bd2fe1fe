package diagnose

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
)

var ErrWorkflowDirNotFound = errors.New("workflow directory not found")

// Discover returns workflow files directly inside dir in lexicographical order.
// A workflow file is a regular file whose extension is .yml or .yaml.
// Symbolic links are followed.
func Discover(fs afero.Fs, dir string) ([]string, error) {
	fi, err := fs.Stat(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrWorkflowDirNotFound, dir)
		}
		return nil, fmt.Errorf("get a workflow directory stat: %w", err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("workflow directory isn't a directory: %s", dir)
	}
	entries, err := afero.ReadDir(fs, dir)
	if err != nil {
		return nil, fmt.Errorf("read a workflow directory: %w", err)
	}
	files := []string{}
	for _, entry := range entries {
		if !isWorkflowFileName(entry.Name()) {
			continue
		}
		p := filepath.Join(dir, entry.Name())
		fi, err := fs.Stat(p)
		if err != nil {
			// e.g. a broken symbolic link
			continue
		}
		if !fi.Mode().IsRegular() {
			continue
		}
		files = append(files, p)
	}
	sort.Strings(files)
	return files, nil
}

func isWorkflowFileName(name string) bool {
	ext := filepath.Ext(name)
	if ext != ".yml" && ext != ".yaml" {
		return false
	}
	// .yml has no base name
	return strings.TrimSuffix(name, ext) != ""
}
