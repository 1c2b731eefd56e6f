package driver

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const fixtureDir = "testdata/fixtures"

func TestFixtures(t *testing.T) {
	fixtures, err := LoadFixtures(fixtureDir)
	if err != nil {
		t.Fatalf("load fixtures: %v", err)
	}
	if len(fixtures) == 0 {
		t.Fatalf("no fixtures found in %s", fixtureDir)
	}
	for _, fixture := range fixtures {
		t.Run(fixture.Name, func(t *testing.T) {
			if err := fixture.Verify(RunFixture(fixture)); err != nil {
				t.Fatal(err)
			}
		})
	}
}

func TestLoadFixtureReadsEntryFile(t *testing.T) {
	fixture, err := LoadFixture(filepath.Join(fixtureDir, "countdown.yml"))
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if !strings.Contains(fixture.Source, "liftoff") {
		t.Fatalf("expected entry source to be loaded, got %q", fixture.Source)
	}
	if fixture.Name != "countdown" {
		t.Fatalf("unexpected name %q", fixture.Name)
	}
}

func writeManifest(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "case.yml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadFixtureRejectsUnknownKeys(t *testing.T) {
	path := writeManifest(t, "source: \"println(1);\"\nexpect:\n  stdout: \"1\\n\"\n  exit: 0\n")
	if _, err := LoadFixture(path); err == nil {
		t.Fatalf("expected unknown key to be rejected")
	}
}

func TestLoadFixtureRejectsSourceAndEntry(t *testing.T) {
	path := writeManifest(t, "source: \"println(1);\"\nentry: other.mid\n")
	if _, err := LoadFixture(path); err == nil || !strings.Contains(err.Error(), "both source and entry") {
		t.Fatalf("expected source/entry conflict, got %v", err)
	}
}

func TestLoadFixtureRejectsUnknownStage(t *testing.T) {
	path := writeManifest(t, "source: \"x;\"\nexpect:\n  error:\n    stage: linker\n")
	if _, err := LoadFixture(path); err == nil || !strings.Contains(err.Error(), "unknown error stage") {
		t.Fatalf("expected stage error, got %v", err)
	}
}

func TestVerifyReportsMismatches(t *testing.T) {
	path := writeManifest(t, "source: \"println(2);\"\nexpect:\n  stdout: \"3\\n\"\n")
	fixture, err := LoadFixture(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if err := fixture.Verify(RunFixture(fixture)); err == nil || !strings.Contains(err.Error(), "stdout") {
		t.Fatalf("expected stdout mismatch, got %v", err)
	}

	path = writeManifest(t, "source: \"println(2);\"\nexpect:\n  stdout: \"2\\n\"\n  error:\n    stage: runtime\n")
	fixture, err = LoadFixture(path)
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	if err := fixture.Verify(RunFixture(fixture)); err == nil || !strings.Contains(err.Error(), "run succeeded") {
		t.Fatalf("expected missing error mismatch, got %v", err)
	}
}
