// ABOUTME: Project layout: well-known directories resolved relative to the project root
// ABOUTME: Defaults match the standard src/tests/tasks/reports tree; .pytask.yaml overrides

package project

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Default directory names for the stock project tree.
const (
	defaultSourceDir  = "src"
	defaultTestsDir   = "tests"
	defaultTasksDir   = "tasks"
	defaultReportsDir = "reports"

	unitDirName        = "unit"
	integrationDirName = "integration"
)

// LayoutFile is the optional per-project layout override file name.
const LayoutFile = ".pytask.yaml"

// Layout describes the well-known directories of a project, all as
// relative paths rooted at the working directory. Construct it once at
// program start and pass it to whatever needs path information.
//
// UnitTestsDir and IntegrationTestsDir are always subdirectories of
// TestsDir; they are derived, never set independently.
type Layout struct {
	SourceDir           string
	TestsDir            string
	UnitTestsDir        string
	IntegrationTestsDir string
	TasksDir            string
	ReportsDir          string
}

// layoutFile is the YAML shape of a .pytask.yaml override. Only the
// top-level directories can be overridden; unit/integration are derived.
type layoutFile struct {
	Source  string `yaml:"source"`
	Tests   string `yaml:"tests"`
	Tasks   string `yaml:"tasks"`
	Reports string `yaml:"reports"`
}

// DefaultLayout returns the stock project layout.
func DefaultLayout() Layout {
	return newLayout(defaultSourceDir, defaultTestsDir, defaultTasksDir, defaultReportsDir)
}

// Load reads the layout override file at path and returns the resulting
// layout. A missing file yields DefaultLayout with no error; a present
// but unparsable file is an error.
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return DefaultLayout(), nil
	}
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout file: %w", err)
	}

	var f layoutFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Layout{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	l := DefaultLayout()
	if f.Source != "" {
		l.SourceDir = f.Source
	}
	if f.Tests != "" {
		l = newLayout(l.SourceDir, f.Tests, l.TasksDir, l.ReportsDir)
	}
	if f.Tasks != "" {
		l.TasksDir = f.Tasks
	}
	if f.Reports != "" {
		l.ReportsDir = f.Reports
	}
	return l, nil
}

func newLayout(source, tests, tasks, reports string) Layout {
	return Layout{
		SourceDir:           source,
		TestsDir:            tests,
		UnitTestsDir:        filepath.Join(tests, unitDirName),
		IntegrationTestsDir: filepath.Join(tests, integrationDirName),
		TasksDir:            tasks,
		ReportsDir:          reports,
	}
}

// EnsureReportsDir creates the reports directory and any missing
// parents. It is idempotent: an existing directory is not an error.
func (l Layout) EnsureReportsDir() error {
	if err := os.MkdirAll(l.ReportsDir, 0o755); err != nil {
		return fmt.Errorf("creating reports directory: %w", err)
	}
	return nil
}
