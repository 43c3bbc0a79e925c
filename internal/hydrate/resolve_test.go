package hydrate

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/testutil"
)

func TestFallbackPath(t *testing.T) {
	tests := []struct {
		name    string
		primary string
		want    string
	}{
		{
			name:    "absolute path",
			primary: filepath.Join("/work", "project", "STYLE.md"),
			want:    filepath.Join("/work", CanonicalProjectDir, "STYLE.md"),
		},
		{
			name:    "relative path",
			primary: filepath.Join("project", "docs", "NAMING.md"),
			want:    filepath.Join("project", CanonicalProjectDir, "NAMING.md"),
		},
		{
			name:    "bare filename",
			primary: "STYLE.md",
			want:    filepath.Join(CanonicalProjectDir, "STYLE.md"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FallbackPath(tt.primary); got != tt.want {
				t.Errorf("FallbackPath(%q) = %q, want %q", tt.primary, got, tt.want)
			}
		})
	}
}

func TestResolve_Primary(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.AddSkill("naming", "How to name things")
	doc := env.AddProjectDoc("STYLE.md", testutil.StyleDoc())

	res := Resolve(dir, filepath.Join("..", "..", "STYLE.md"))

	if !res.Found() {
		t.Fatal("Resolve() should find the primary source")
	}
	if res.Source != res.Primary {
		t.Errorf("Source = %q, want primary %q", res.Source, res.Primary)
	}
	if filepath.Clean(res.Source) != doc {
		t.Errorf("Source = %q, want %q", filepath.Clean(res.Source), doc)
	}
	if res.UsedFallback {
		t.Error("UsedFallback should be false for a primary hit")
	}
}

func TestResolve_Fallback(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.AddSkill("naming", "How to name things")
	doc := env.AddCanonicalDoc("STYLE.md", testutil.StyleDoc())

	res := Resolve(dir, filepath.Join("..", "..", "STYLE.md"))

	if !res.Found() {
		t.Fatal("Resolve() should find the fallback source")
	}
	if !res.UsedFallback {
		t.Error("UsedFallback should be true for a fallback hit")
	}
	if filepath.Clean(res.Source) != doc {
		t.Errorf("Source = %q, want %q", filepath.Clean(res.Source), doc)
	}
}

func TestResolve_PrimaryWinsOverFallback(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.AddSkill("naming", "How to name things")
	env.AddProjectDoc("STYLE.md", "primary body")
	env.AddCanonicalDoc("STYLE.md", "canonical body")

	res := Resolve(dir, filepath.Join("..", "..", "STYLE.md"))

	if !res.Found() {
		t.Fatal("Resolve() should find a source")
	}
	if res.UsedFallback {
		t.Error("primary should win when both locations exist")
	}
}

func TestResolve_NotFound(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.AddSkill("naming", "How to name things")

	res := Resolve(dir, filepath.Join("..", "..", "MISSING.md"))

	if res.Found() {
		t.Errorf("Resolve() should not find a source, got %q", res.Source)
	}
	if res.Source != "" {
		t.Errorf("Source = %q, want empty", res.Source)
	}

	// Primary and fallback are still reported for diagnostics.
	if res.Primary == "" || res.Fallback == "" {
		t.Error("Primary and Fallback should be populated even when missing")
	}
}

func TestResolve_DirectoryIsNotASource(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.AddSkill("naming", "How to name things")

	// A directory at the primary location must not satisfy resolution.
	if err := os.MkdirAll(filepath.Join(env.ProjectDir, "STYLE.md"), 0755); err != nil {
		t.Fatal(err)
	}
	doc := env.AddCanonicalDoc("STYLE.md", testutil.StyleDoc())

	res := Resolve(dir, filepath.Join("..", "..", "STYLE.md"))

	if !res.Found() {
		t.Fatal("Resolve() should fall back past a directory")
	}
	if !res.UsedFallback {
		t.Error("UsedFallback should be true when the primary is a directory")
	}
	if filepath.Clean(res.Source) != doc {
		t.Errorf("Source = %q, want %q", filepath.Clean(res.Source), doc)
	}
}
