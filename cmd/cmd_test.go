package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/errors"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/hydrate"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/skills"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/testutil"
)

func executeCommand(args ...string) (string, string, error) {
	// Reset flag values before each test
	verbose = false
	jsonOutput = false
	installSkillsDir = "."
	installForce = false
	newSkillsDir = "."
	newDescription = ""
	pickPlain = false

	// Cobra's auto-added help flag also persists on the shared command
	// tree across Execute calls; clear it so a prior --help run does not
	// short-circuit later executions of the same command.
	for _, c := range append(rootCmd.Commands(), rootCmd) {
		if f := c.Flags().Lookup("help"); f != nil {
			_ = f.Value.Set("false")
			f.Changed = false
		}
	}

	cmd := rootCmd
	cmd.SetArgs(args)

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	// Reset args for next test
	cmd.SetArgs(nil)
	cmd.SetOut(nil)
	cmd.SetErr(nil)

	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "skills-ctl") {
		t.Error("Help output should contain 'skills-ctl'")
	}

	if !strings.Contains(stdout, "skill") {
		t.Error("Help output should mention skills")
	}
}

func TestRootCommand_Commands(t *testing.T) {
	stdout, _, err := executeCommand("help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "Available Commands") {
		t.Error("Help output should list available commands")
	}

	for _, name := range []string{"hydrate", "dehydrate", "status", "install", "new", "pick"} {
		if !strings.Contains(stdout, name) {
			t.Errorf("Help output should list the %s command", name)
		}
	}
}

func TestGlobalFlags(t *testing.T) {
	stdout, _, err := executeCommand("--help")
	if err != nil {
		t.Fatalf("Help failed: %v", err)
	}

	if !strings.Contains(stdout, "--verbose") {
		t.Error("Should have --verbose flag")
	}

	if !strings.Contains(stdout, "--json") {
		t.Error("Should have --json flag")
	}
}

func TestHydrateCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("hydrate", "--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "marker") {
		t.Error("Hydrate help should mention markers")
	}

	if !strings.Contains(stdout, "canonical") {
		t.Error("Hydrate help should mention the canonical checkout fallback")
	}
}

func TestStatusCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("status", "--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "hydration state") {
		t.Error("Status help should mention hydration state")
	}

	if !strings.Contains(stdout, "never modified") {
		t.Error("Status help should state that the tree is not modified")
	}
}

func TestDehydrateCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("dehydrate", "--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "inverse of hydrate") {
		t.Error("Dehydrate help should describe it as the inverse of hydrate")
	}
}

func TestInstallCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("install", "--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "--skills-dir") {
		t.Error("Install help should mention --skills-dir flag")
	}

	if !strings.Contains(stdout, "--force") {
		t.Error("Install help should mention --force flag")
	}

	if !strings.Contains(stdout, ".claude/skills") {
		t.Error("Install help should name the destination directory")
	}
}

func TestNewCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("new", "--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "--description") {
		t.Error("New help should mention --description flag")
	}

	if !strings.Contains(stdout, "wizard") {
		t.Error("New help should mention the interactive wizard")
	}
}

func TestPickCommand_Help(t *testing.T) {
	stdout, _, err := executeCommand("pick", "--help")
	if err != nil {
		t.Fatalf("Help command failed: %v", err)
	}

	if !strings.Contains(stdout, "--plain") {
		t.Error("Pick help should mention --plain flag")
	}

	if !strings.Contains(stdout, "Hydrate the selected skill") {
		t.Error("Pick help should list the hydrate action")
	}
}

func TestHydrateCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.AddSkill("writing", "Editing guidance")
	env.AddProjectDoc("voice.md", "# Voice\n\nWrite plainly.\n")
	marker := env.AddMarker(dir, "voice", "../../voice.md")

	_, _, err := executeCommand("hydrate", env.SkillsDir)
	if err != nil {
		t.Fatalf("Hydrate failed: %v", err)
	}

	target := filepath.Join(dir, "voice.md")
	if got := env.ReadFile(target); got != "# Voice\n\nWrite plainly.\n" {
		t.Errorf("Hydrated content = %q, want source document", got)
	}

	if env.Exists(marker) {
		t.Error("Marker should be removed after hydration")
	}
}

func TestHydrateCommand_Fallback(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.AddSkill("writing", "Editing guidance")
	env.AddCanonicalDoc("tone.md", "# Tone\n")
	marker := env.AddMarker(dir, "tone", "../../tone.md")

	_, _, err := executeCommand("hydrate", env.SkillsDir)
	if err != nil {
		t.Fatalf("Hydrate failed: %v", err)
	}

	target := filepath.Join(dir, "tone.md")
	if got := env.ReadFile(target); got != "# Tone\n" {
		t.Errorf("Hydrated content = %q, want canonical document", got)
	}

	if env.Exists(marker) {
		t.Error("Marker should be removed after hydration")
	}
}

func TestHydrateCommand_FailedMarkerKept(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.AddSkill("writing", "Editing guidance")
	marker := env.AddMarker(dir, "missing", "../../missing.md")

	_, _, err := executeCommand("hydrate", env.SkillsDir)
	if err == nil {
		t.Fatal("Hydrate should fail when a source is missing")
	}

	if got := errors.GetExitCode(err); got != errors.ExitMarkersFailed {
		t.Errorf("Exit code = %d, want %d", got, errors.ExitMarkersFailed)
	}

	if !env.Exists(marker) {
		t.Error("Failed marker should stay in place")
	}
}

func TestStatusCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.AddSkill("writing", "Editing guidance")
	marker := env.AddMarker(dir, "missing", "../../missing.md")

	_, _, err := executeCommand("status", env.SkillsDir)
	if err != nil {
		t.Fatalf("Status failed: %v", err)
	}

	if !env.Exists(marker) {
		t.Error("Status should not touch markers")
	}
}

func TestDehydrateCommand_RoundTrip(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.AddSkill("writing", "Editing guidance")
	env.AddProjectDoc("voice.md", "# Voice\n")
	target := env.WriteFile(filepath.Join(dir, "voice.md"), "# Voice\n")

	_, _, err := executeCommand("dehydrate", target, "../../voice.md")
	if err != nil {
		t.Fatalf("Dehydrate failed: %v", err)
	}

	marker := filepath.Join(dir, "voice-replace.txt")
	if got := env.ReadFile(marker); got != "../../voice.md\n" {
		t.Errorf("Marker content = %q, want the reference", got)
	}

	if env.Exists(target) {
		t.Error("Target should be removed after dehydration")
	}

	_, _, err = executeCommand("hydrate", env.SkillsDir)
	if err != nil {
		t.Fatalf("Hydrate after dehydrate failed: %v", err)
	}

	if got := env.ReadFile(target); got != "# Voice\n" {
		t.Errorf("Round-tripped content = %q, want original document", got)
	}
}

func TestInstallCommand(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.AddSkill("writing", "Editing guidance")
	env.WriteFile(filepath.Join(dir, "reference", "voice.md"), "# Voice\n")

	_, _, err := executeCommand("install", "writing", env.ProjectDir, "--skills-dir", env.SkillsDir)
	if err != nil {
		t.Fatalf("Install failed: %v", err)
	}

	dest := filepath.Join(env.ProjectDir, ".claude", "skills", "writing")
	if !env.Exists(filepath.Join(dest, "SKILL.md")) {
		t.Error("SKILL.md should be installed")
	}

	if !env.Exists(filepath.Join(dest, "reference", "voice.md")) {
		t.Error("Nested files should be installed")
	}
}

func TestInstallCommand_RefusesPending(t *testing.T) {
	env := testutil.NewTestEnv(t)
	dir := env.AddSkill("writing", "Editing guidance")
	env.AddMarker(dir, "voice", "../../voice.md")

	_, _, err := executeCommand("install", "writing", env.ProjectDir, "--skills-dir", env.SkillsDir)
	if err == nil {
		t.Fatal("Install should refuse a skill with pending markers")
	}

	if got := errors.GetExitCode(err); got != errors.ExitInstallFailed {
		t.Errorf("Exit code = %d, want %d", got, errors.ExitInstallFailed)
	}

	if env.Exists(filepath.Join(env.ProjectDir, ".claude", "skills", "writing")) {
		t.Error("Nothing should be installed for a pending skill")
	}
}

func TestNewCommand(t *testing.T) {
	skillsDir := t.TempDir()

	_, _, err := executeCommand("new", "code-review", "--skills-dir", skillsDir, "--description", "Review checklist for Go changes")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	manifest := filepath.Join(skillsDir, "code-review", "SKILL.md")
	data, err := os.ReadFile(manifest)
	if err != nil {
		t.Fatalf("Manifest should exist: %v", err)
	}

	if !strings.Contains(string(data), "name: code-review") {
		t.Error("Manifest should carry the skill name")
	}

	if !strings.Contains(string(data), "Review checklist for Go changes") {
		t.Error("Manifest should carry the description")
	}

	_, _, err = executeCommand("new", "code-review", "--skills-dir", skillsDir)
	if err == nil {
		t.Fatal("Duplicate skill name should be refused")
	}
}

func TestNewCommand_InvalidName(t *testing.T) {
	_, _, err := executeCommand("new", "Bad Name", "--skills-dir", t.TempDir())
	if err == nil {
		t.Fatal("Invalid skill name should be refused")
	}
}

func TestPickCommand_Plain(t *testing.T) {
	env := testutil.NewTestEnv(t)
	env.AddSkill("writing", "Editing guidance")

	_, _, err := executeCommand("pick", env.SkillsDir, "--plain")
	if err != nil {
		t.Fatalf("Plain pick failed: %v", err)
	}
}

func TestFormatSkillState(t *testing.T) {
	ready := skills.Skill{Name: "writing"}
	if got := formatSkillState(ready); got != "✓ ready" {
		t.Errorf("formatSkillState(ready) = %q", got)
	}

	pending := skills.Skill{Name: "writing", Pending: 3}
	if got := formatSkillState(pending); got != "○ 3 pending" {
		t.Errorf("formatSkillState(pending) = %q", got)
	}
}

func TestFormatResolution(t *testing.T) {
	root := filepath.Join("/work", "project", "skills")

	tests := []struct {
		name  string
		entry hydrate.Entry
		want  string
	}{
		{
			name: "primary source",
			entry: hydrate.Entry{
				Res: hydrate.Resolution{
					Primary: filepath.Join(root, "STYLE.md"),
					Source:  filepath.Join(root, "STYLE.md"),
				},
			},
			want: "STYLE.md",
		},
		{
			name: "fallback source",
			entry: hydrate.Entry{
				Res: hydrate.Resolution{
					Primary:      filepath.Join("/work", "project", "STYLE.md"),
					Source:       filepath.Join("/work", "firefly-styleguide", "STYLE.md"),
					UsedFallback: true,
				},
			},
			want: filepath.Join("/work", "firefly-styleguide", "STYLE.md") + " (canonical)",
		},
		{
			name: "source not found",
			entry: hydrate.Entry{
				Res: hydrate.Resolution{Primary: filepath.Join(root, "MISSING.md")},
				Err: errors.SourceNotFound("m", filepath.Join(root, "MISSING.md")),
			},
			want: "✗ not found: MISSING.md",
		},
		{
			name: "invalid marker",
			entry: hydrate.Entry{
				Err: errors.InvalidMarker("m", nil),
			},
			want: "✗ invalid marker",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatResolution(root, tt.entry); got != tt.want {
				t.Errorf("formatResolution() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDisplayPath(t *testing.T) {
	root := filepath.Join("/work", "project", "skills")

	tests := []struct {
		name string
		path string
		want string
	}{
		{"inside root", filepath.Join(root, "writing", "STYLE.md"), filepath.Join("writing", "STYLE.md")},
		{"outside root", filepath.Join("/work", "firefly-styleguide", "STYLE.md"), filepath.Join("/work", "firefly-styleguide", "STYLE.md")},
		{"root itself", root, "."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := displayPath(root, tt.path); got != tt.want {
				t.Errorf("displayPath(%q, %q) = %q, want %q", root, tt.path, got, tt.want)
			}
		})
	}
}

func TestCommandRequiresArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"dehydrate", []string{"dehydrate"}},
		{"install", []string{"install"}},
		{"install one arg", []string{"install", "writing"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := executeCommand(tt.args...)
			if err == nil {
				t.Fatal("Command should require arguments")
			}

			output := stdout + stderr
			if !strings.Contains(output, "Usage:") && !strings.Contains(output, "Error:") {
				t.Error("Expected usage info in output")
			}
		})
	}
}
