package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/logging"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/skills"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/tui"
)

var (
	newSkillsDir   string
	newDescription string
)

var newCmd = &cobra.Command{
	Use:   "new [name]",
	Short: "Scaffold a new skill directory",
	Long: `Creates <name>/SKILL.md under the skills directory from the starter
template. Without a name, an interactive wizard collects the name and
description.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&newSkillsDir, "skills-dir", ".", "Directory to create the skill under")
	newCmd.Flags().StringVarP(&newDescription, "description", "d", "", "One-line description for the manifest frontmatter")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	name := ""
	description := newDescription

	if len(args) > 0 {
		name = args[0]
	} else {
		opts, err := tui.RunWizard()
		if err != nil {
			return fmt.Errorf("wizard error: %w", err)
		}
		if opts == nil {
			logInfo("Cancelled")
			return nil
		}
		name = opts.Name
		description = opts.Description
	}

	logging.Debug("scaffolding skill", "name", name, "dir", newSkillsDir)

	manifest, err := skills.Create(newSkillsDir, name, description)
	if err != nil {
		return err
	}

	logSuccess("Created skill %s", name)
	fmt.Printf("  manifest %s\n", manifest)

	return nil
}
