package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/install"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/logging"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/skills"
)

var (
	installSkillsDir string
	installForce     bool
)

var installCmd = &cobra.Command{
	Use:   "install <skill> <project-dir>",
	Short: "Copy a hydrated skill into a project",
	Long: `Copies a skill directory from the distribution tree into the consuming
project's .claude/skills/ directory. The skill must be fully hydrated;
a tree that still carries markers is refused.

Existing destination files are kept unless --force is given.`,
	Args: cobra.ExactArgs(2),
	RunE: runInstall,
}

func init() {
	installCmd.Flags().StringVar(&installSkillsDir, "skills-dir", ".", "Directory holding the skill tree")
	installCmd.Flags().BoolVar(&installForce, "force", false, "Overwrite destination files that already exist")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	opts := install.Options{
		SkillsDir:  installSkillsDir,
		Skill:      args[0],
		ProjectDir: args[1],
		Force:      installForce,
	}

	logging.Debug("install started", "skill", opts.Skill, "project", opts.ProjectDir)

	result, err := install.Run(opts)
	if err != nil {
		if s, lerr := skills.Load(filepath.Join(opts.SkillsDir, opts.Skill)); lerr == nil && !s.Hydrated() {
			logInfo("Hydrate it first: %s", shellquote.Join("skills-ctl", "hydrate", s.Dir))
		}
		return err
	}

	for _, p := range result.Installed {
		fmt.Printf("  installed %s\n", p)
	}
	for _, p := range result.Skipped {
		fmt.Printf("  skipped %s (exists, use --force to overwrite)\n", p)
	}

	logSuccess("Installed skill %s into %s", result.Skill.Name, result.Dest)

	return nil
}
