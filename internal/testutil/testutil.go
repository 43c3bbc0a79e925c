// Package testutil provides test fixtures and utilities
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// File-naming literals matching the skill distribution format. Kept as
// literals here so fixture builders stay import-free for every package
// under test.
const (
	markerSuffix = "-replace.txt"
	canonicalDir = "firefly-styleguide"
)

// TestEnv is a scratch on-disk layout for hydration tests: a consuming
// project holding a skills tree, with a canonical styleguide checkout as
// its sibling so fallback resolution has somewhere to land.
type TestEnv struct {
	T *testing.T

	// TmpDir is the per-test scratch root.
	TmpDir string

	// ProjectDir is the consuming project root.
	ProjectDir string

	// SkillsDir is the skills tree inside the project, the usual scan root.
	SkillsDir string

	// CanonicalDir is the sibling styleguide checkout.
	CanonicalDir string
}

// NewTestEnv creates the project/sibling layout under t.TempDir.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	tmpDir := t.TempDir()

	env := &TestEnv{
		T:            t,
		TmpDir:       tmpDir,
		ProjectDir:   filepath.Join(tmpDir, "project"),
		SkillsDir:    filepath.Join(tmpDir, "project", "skills"),
		CanonicalDir: filepath.Join(tmpDir, canonicalDir),
	}

	for _, dir := range []string{env.ProjectDir, env.SkillsDir, env.CanonicalDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	return env
}

// WriteFile writes content to path, creating parent directories as needed.
func (e *TestEnv) WriteFile(path, content string) string {
	e.T.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.T.Fatalf("Failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		e.T.Fatalf("Failed to write %s: %v", path, err)
	}
	return path
}

// AddSkill creates a skill directory with a SKILL.md under the skills tree
// and returns the skill directory path.
func (e *TestEnv) AddSkill(name, description string) string {
	e.T.Helper()

	dir := filepath.Join(e.SkillsDir, name)
	e.WriteFile(filepath.Join(dir, "SKILL.md"), SkillDoc(name, description))
	return dir
}

// AddMarker writes a replacement marker named <name>-replace.txt containing
// ref into dir and returns the marker path.
func (e *TestEnv) AddMarker(dir, name, ref string) string {
	e.T.Helper()

	return e.WriteFile(filepath.Join(dir, name+markerSuffix), ref+"\n")
}

// AddProjectDoc writes a document at the project root, reachable from a
// skill directory via a ../../ reference.
func (e *TestEnv) AddProjectDoc(name, content string) string {
	e.T.Helper()

	return e.WriteFile(filepath.Join(e.ProjectDir, name), content)
}

// AddCanonicalDoc writes a document into the canonical sibling checkout,
// where fallback resolution looks.
func (e *TestEnv) AddCanonicalDoc(name, content string) string {
	e.T.Helper()

	return e.WriteFile(filepath.Join(e.CanonicalDir, name), content)
}

// ReadFile returns path's content, failing the test on error.
func (e *TestEnv) ReadFile(path string) string {
	e.T.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		e.T.Fatalf("Failed to read %s: %v", path, err)
	}
	return string(data)
}

// Exists reports whether path exists.
func (e *TestEnv) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
