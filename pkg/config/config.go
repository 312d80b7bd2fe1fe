// Package config reads the configuration file of wfdiag.
// The configuration file is optional. It sets the default workflow directory,
// the number of workflow files analyzed in parallel, and the actions whose pinning isn't checked.
package config

import (
	"errors"
	"fmt"
	"io"
	"path"
	"regexp"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	DefaultWorkflowDir = ".github/workflows"
	schemaVersion      = 1
)

type Config struct {
	Version       int             `json:"version,omitempty" jsonschema:"enum=1"`
	Workflows     string          `json:"workflows,omitempty" jsonschema:"description=A directory containing workflow files. The default is .github/workflows. --workflows takes precedence"`
	Parallelism   int             `json:"parallelism,omitempty" jsonschema:"minimum=0,description=The number of workflow files analyzed in parallel. The default is 1"`
	IgnoreActions []*IgnoreAction `json:"ignore_actions,omitempty" yaml:"ignore_actions" jsonschema:"description=Actions and reusable workflows whose pinning isn't checked"`
}

// WorkflowDir returns the workflow directory.
// flagValue takes precedence over the configuration.
func (c *Config) WorkflowDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if c != nil && c.Workflows != "" {
		return c.Workflows
	}
	return DefaultWorkflowDir
}

// IgnoreAction reports whether one of ignore_actions matches the action.
func (c *Config) IgnoreAction(name, ref string) bool {
	if c == nil {
		return false
	}
	for _, ia := range c.IgnoreActions {
		if ia.Match(name, ref) {
			return true
		}
	}
	return false
}

func (c *Config) Init() error {
	if err := validateSchemaVersion(c.Version); err != nil {
		return err
	}
	if c.Parallelism < 0 {
		return errors.New("parallelism must not be negative")
	}
	for _, ia := range c.IgnoreActions {
		if err := ia.Init(); err != nil {
			return fmt.Errorf("initialize ignore_action: %w", err)
		}
	}
	return nil
}

func validateSchemaVersion(v int) error {
	switch v {
	case 0, schemaVersion:
		return nil
	default:
		return fmt.Errorf("unsupported configuration version: %d", v)
	}
}

const (
	formatFixedString = "fixed_string"
	formatGlob        = "glob"
	formatRegexp      = "regexp"
)

type IgnoreAction struct {
	Name       string `json:"name" jsonschema:"description=Action name such as actions/checkout"`
	Ref        string `json:"ref,omitempty" jsonschema:"description=Action ref. If not specified, any ref is ignored"`
	NameFormat string `json:"name_format,omitempty" yaml:"name_format" jsonschema:"enum=fixed_string,enum=glob,enum=regexp"`
	RefFormat  string `json:"ref_format,omitempty" yaml:"ref_format" jsonschema:"enum=fixed_string,enum=glob,enum=regexp"`
	nameRegexp *regexp.Regexp
	refRegexp  *regexp.Regexp
}

func initFormat(pattern, format string) (*regexp.Regexp, error) {
	switch format {
	case formatFixedString:
		return nil, nil //nolint:nilnil
	case formatGlob:
		if _, err := path.Match(pattern, "a"); err != nil {
			return nil, fmt.Errorf("parse as a glob: %w", err)
		}
		return nil, nil //nolint:nilnil
	case formatRegexp:
		r, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("compile as a regular expression: %w", err)
		}
		return r, nil
	default:
		return nil, errors.New("format must be fixed_string, glob, or regexp")
	}
}

// Init validates the ignore action and compiles its patterns.
// Empty formats default to fixed_string.
func (ia *IgnoreAction) Init() error {
	if ia.Name == "" {
		return errors.New("name is required")
	}
	if ia.NameFormat == "" {
		ia.NameFormat = formatFixedString
	}
	r, err := initFormat(ia.Name, ia.NameFormat)
	if err != nil {
		return fmt.Errorf("initialize name: %w", err)
	}
	ia.nameRegexp = r
	if ia.Ref == "" {
		return nil
	}
	if ia.RefFormat == "" {
		ia.RefFormat = formatFixedString
	}
	r, err = initFormat(ia.Ref, ia.RefFormat)
	if err != nil {
		return fmt.Errorf("initialize ref: %w", err)
	}
	ia.refRegexp = r
	return nil
}

// Match reports whether the action matches. Init must be called beforehand.
func (ia *IgnoreAction) Match(name, ref string) bool {
	if !match(name, ia.Name, ia.NameFormat, ia.nameRegexp) {
		return false
	}
	if ia.Ref == "" {
		return true
	}
	return match(ref, ia.Ref, ia.RefFormat, ia.refRegexp)
}

func match(value, pattern, format string, r *regexp.Regexp) bool {
	switch format {
	case formatGlob:
		// the pattern was validated by Init
		f, _ := path.Match(pattern, value)
		return f
	case formatRegexp:
		return r.MatchString(value)
	default:
		return value == pattern
	}
}

func getConfigPath(fs afero.Fs) (string, error) {
	for _, path := range []string{".wfdiag.yaml", ".github/wfdiag.yaml", ".wfdiag.yml", ".github/wfdiag.yml"} {
		f, err := afero.Exists(fs, path)
		if err != nil {
			return "", fmt.Errorf("check if %s exists: %w", path, err)
		}
		if f {
			return path, nil
		}
	}
	return "", nil
}

type Finder struct {
	fs afero.Fs
}

func NewFinder(fs afero.Fs) *Finder {
	return &Finder{fs: fs}
}

// Find returns configFilePath if it isn't empty.
// Otherwise it looks for a configuration file in the current directory.
// It returns an empty string if no configuration file is found.
func (f *Finder) Find(configFilePath string) (string, error) {
	if configFilePath != "" {
		return configFilePath, nil
	}
	return getConfigPath(f.fs)
}

type Reader struct {
	fs afero.Fs
}

func NewReader(fs afero.Fs) *Reader {
	return &Reader{fs: fs}
}

// Read reads and validates a configuration file.
// If configFilePath is empty, cfg is left as is.
func (r *Reader) Read(cfg *Config, configFilePath string) error {
	if configFilePath == "" {
		return nil
	}
	f, err := r.fs.Open(configFilePath)
	if err != nil {
		return fmt.Errorf("open a configuration file: %w", err)
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode a configuration file as YAML: %w", err)
	}
	if err := cfg.Init(); err != nil {
		return fmt.Errorf("initialize a configuration: %w", err)
	}
	return nil
}
