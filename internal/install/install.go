package install

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/errors"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/logging"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/skills"
)

// InstallSubdir is where skills land inside a consuming project.
var InstallSubdir = filepath.Join(".claude", "skills")

// Options configures a skill installation.
type Options struct {
	// SkillsDir is the distribution tree holding the skill.
	SkillsDir string

	// Skill is the skill directory name to install.
	Skill string

	// ProjectDir is the consuming project root.
	ProjectDir string

	// Force overwrites destination files that already exist.
	Force bool
}

// Result records what an installation did. Paths are relative to the
// installed skill directory.
type Result struct {
	// Skill is the skill that was installed.
	Skill skills.Skill

	// Dest is the skill directory created inside the project.
	Dest string

	// Installed lists files written.
	Installed []string

	// Skipped lists files left untouched because they already existed.
	Skipped []string
}

// Run copies a hydrated skill from the distribution tree into
// <project>/.claude/skills/<name>. Existing destination files are skipped
// unless Force is set. A skill that still carries replacement markers is
// refused; hydrate it first.
func Run(opts Options) (*Result, error) {
	if err := skills.ValidateSkillName(opts.Skill); err != nil {
		return nil, errors.ValidationError(err.Error())
	}

	skill, err := skills.Load(filepath.Join(opts.SkillsDir, opts.Skill))
	if err != nil {
		return nil, err
	}

	if !skill.Hydrated() {
		return nil, errors.InstallFailed(
			fmt.Sprintf("skill %s has %d pending markers, hydrate it before installing", skill.Name, skill.Pending), nil)
	}

	projectDir, err := filepath.Abs(opts.ProjectDir)
	if err != nil {
		return nil, errors.InstallFailed(fmt.Sprintf("resolving project directory %s", opts.ProjectDir), err)
	}
	info, err := os.Stat(projectDir)
	if err != nil {
		return nil, errors.InstallFailed(fmt.Sprintf("cannot read project directory %s", opts.ProjectDir), err)
	}
	if !info.IsDir() {
		return nil, errors.ValidationError(fmt.Sprintf("not a directory: %s", opts.ProjectDir))
	}

	destRoot := filepath.Join(projectDir, InstallSubdir, opts.Skill)
	result := &Result{Skill: skill, Dest: destRoot}

	walkErr := filepath.WalkDir(skill.Dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(skill.Dir, path)
		if err != nil {
			return err
		}

		// Destination paths are joined under the install root so a
		// crafted tree cannot write outside the project.
		dest, err := securejoin.SecureJoin(destRoot, rel)
		if err != nil {
			return err
		}

		if d.IsDir() {
			return os.MkdirAll(dest, 0755)
		}

		if !d.Type().IsRegular() {
			logging.Warn("skipping irregular file", "path", path)
			return nil
		}

		if !opts.Force {
			if _, err := os.Stat(dest); err == nil {
				result.Skipped = append(result.Skipped, rel)
				return nil
			}
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(dest, data, 0644); err != nil {
			return err
		}

		result.Installed = append(result.Installed, rel)
		return nil
	})
	if walkErr != nil {
		return nil, errors.InstallFailed(fmt.Sprintf("failed to copy skill %s", skill.Name), walkErr)
	}

	logging.Debug("installed skill",
		"skill", skill.Name,
		"dest", destRoot,
		"installed", len(result.Installed),
		"skipped", len(result.Skipped))

	return result, nil
}
