package driver

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"midlang/interpreter-go/pkg/interpreter"
)

// Fixture is a recorded program run: source, console input and the expected
// outcome.
type Fixture struct {
	Path        string
	Name        string
	Description string
	Source      string
	Stdin       []string
	Expect      FixtureExpectation
}

// FixtureExpectation describes the observable result of a fixture run.
// Stdout is compared byte for byte, including output written before a
// failure. Error is nil when the run must succeed.
type FixtureExpectation struct {
	Stdout string
	Error  *FixtureError
}

// FixtureError matches a pipeline failure by stage, runtime kind and an
// optional message fragment.
type FixtureError struct {
	Stage    Stage
	Kind     interpreter.ErrorKind
	Contains string
	Line     int
	Column   int
}

type fixtureDisk struct {
	Description string   `yaml:"description"`
	Source      string   `yaml:"source"`
	Entry       string   `yaml:"entry"`
	Stdin       []string `yaml:"stdin"`
	Expect      struct {
		Stdout string `yaml:"stdout"`
		Error  *struct {
			Stage    string `yaml:"stage"`
			Kind     string `yaml:"kind"`
			Contains string `yaml:"contains"`
			Line     int    `yaml:"line"`
			Column   int    `yaml:"column"`
		} `yaml:"error"`
	} `yaml:"expect"`
}

// LoadFixture parses a fixture manifest from disk. Unknown keys are
// rejected. When the manifest names an entry file instead of inline source,
// the entry is read relative to the manifest.
func LoadFixture(path string) (*Fixture, error) {
	if path == "" {
		return nil, fmt.Errorf("fixture: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: resolve %s: %w", path, err)
	}
	file, err := os.Open(abs)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var raw fixtureDisk
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("fixture: parse %s: %w", abs, err)
	}

	fixture := &Fixture{
		Path:        abs,
		Name:        strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs)),
		Description: strings.TrimSpace(raw.Description),
		Source:      raw.Source,
		Stdin:       raw.Stdin,
		Expect:      FixtureExpectation{Stdout: raw.Expect.Stdout},
	}
	if entry := strings.TrimSpace(raw.Entry); entry != "" {
		if raw.Source != "" {
			return nil, fmt.Errorf("fixture: %s sets both source and entry", abs)
		}
		data, err := os.ReadFile(filepath.Join(filepath.Dir(abs), filepath.FromSlash(entry)))
		if err != nil {
			return nil, fmt.Errorf("fixture: read entry for %s: %w", abs, err)
		}
		fixture.Source = string(data)
	}
	if e := raw.Expect.Error; e != nil {
		stage, err := parseStage(e.Stage)
		if err != nil {
			return nil, fmt.Errorf("fixture: %s: %w", abs, err)
		}
		fixture.Expect.Error = &FixtureError{
			Stage:    stage,
			Kind:     interpreter.ErrorKind(strings.TrimSpace(e.Kind)),
			Contains: e.Contains,
			Line:     e.Line,
			Column:   e.Column,
		}
	}
	return fixture, nil
}

// LoadFixtures loads every *.yml and *.yaml manifest in dir, sorted by name.
func LoadFixtures(dir string) ([]*Fixture, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fixture: read dir %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch filepath.Ext(entry.Name()) {
		case ".yml", ".yaml":
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	fixtures := make([]*Fixture, 0, len(names))
	for _, name := range names {
		fixture, err := LoadFixture(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		fixtures = append(fixtures, fixture)
	}
	return fixtures, nil
}

func parseStage(raw string) (Stage, error) {
	switch stage := Stage(strings.ToLower(strings.TrimSpace(raw))); stage {
	case StageLexer, StageParser, StageRuntime:
		return stage, nil
	case "":
		return "", fmt.Errorf("expected error is missing a stage")
	default:
		return "", fmt.Errorf("unknown error stage %q (expected lexer, parser or runtime)", raw)
	}
}

// FixtureResult captures what a fixture run produced.
type FixtureResult struct {
	Stdout string
	Err    error
}

// RunFixture executes the fixture's program with its canned input.
func RunFixture(fixture *Fixture) FixtureResult {
	var stdout bytes.Buffer
	var stdin string
	if len(fixture.Stdin) > 0 {
		stdin = strings.Join(fixture.Stdin, "\n") + "\n"
	}
	err := Run(fixture.Source, Options{
		Input:  strings.NewReader(stdin),
		Output: &stdout,
		Path:   fixture.Path,
	})
	return FixtureResult{Stdout: stdout.String(), Err: err}
}

// Verify compares a run against the fixture's expectations and describes
// the first mismatch.
func (f *Fixture) Verify(result FixtureResult) error {
	if result.Stdout != f.Expect.Stdout {
		return fmt.Errorf("%s: stdout = %q, want %q", f.Name, result.Stdout, f.Expect.Stdout)
	}
	want := f.Expect.Error
	if want == nil {
		if result.Err != nil {
			return fmt.Errorf("%s: unexpected error: %s", f.Name, Describe(result.Err, ""))
		}
		return nil
	}
	if result.Err == nil {
		return fmt.Errorf("%s: expected %s error, run succeeded", f.Name, want.Stage)
	}
	diag := BuildDiagnostic(result.Err, "")
	if diag.Stage != want.Stage {
		return fmt.Errorf("%s: error stage = %s, want %s (%s)", f.Name, diag.Stage, want.Stage, DescribeDiagnostic(diag))
	}
	if want.Kind != "" {
		kind, _ := interpreter.ErrorKindOf(result.Err)
		if kind != want.Kind {
			return fmt.Errorf("%s: error kind = %q, want %q", f.Name, kind, want.Kind)
		}
	}
	if want.Contains != "" && !strings.Contains(diag.Message, want.Contains) {
		return fmt.Errorf("%s: error %q does not mention %q", f.Name, diag.Message, want.Contains)
	}
	if want.Line > 0 && diag.Location.Line != want.Line {
		return fmt.Errorf("%s: error line = %d, want %d", f.Name, diag.Location.Line, want.Line)
	}
	if want.Column > 0 && diag.Location.Column != want.Column {
		return fmt.Errorf("%s: error column = %d, want %d", f.Name, diag.Location.Column, want.Column)
	}
	return nil
}
