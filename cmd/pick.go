package cmd

import (
	"fmt"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/hydrate"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/logging"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/skills"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/tui"
)

var pickPlain bool

var pickCmd = &cobra.Command{
	Use:   "pick [dir]",
	Short: "Interactively pick a skill to work with",
	Long: `Opens an interactive picker listing every skill under the directory,
grouped by parent directory.

Use arrow keys or j/k to navigate, / to filter.

Actions:
  Enter  - Hydrate the selected skill
  i      - Show the install command for the selected skill
  n      - Show instructions for creating a new skill
  q/Esc  - Quit`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPick,
}

func init() {
	pickCmd.Flags().BoolVar(&pickPlain, "plain", false, "Print the skill list without the interactive picker")
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	root := resolveDir(args)

	logging.Debug("picker mode started", "root", root)

	found, err := skills.Discover(root)
	if err != nil {
		return err
	}

	if pickPlain {
		fmt.Print(tui.SimplePicker(found))
		return nil
	}

	result, err := tui.RunPicker(found)
	if err != nil {
		return fmt.Errorf("picker error: %w", err)
	}

	logging.Debug("picker result", "action", result.Action)

	switch result.Action {
	case tui.ActionHydrate:
		logInfo("Hydrating skill %s...", result.Skill.Name)
		report, err := hydrate.Run(result.Skill.Dir)
		if err != nil {
			return err
		}
		return printHydrationReport(result.Skill.Dir, report)

	case tui.ActionInstall:
		fmt.Printf("\nTo install skill '%s' into a project, run:\n", result.Skill.Name)
		fmt.Printf("  %s <project-dir>\n", shellquote.Join("skills-ctl", "install", "--skills-dir", root, result.Skill.Name))

	case tui.ActionNew:
		fmt.Println("\nTo create a new skill, run:")
		fmt.Println("  skills-ctl new <name> --description <text>")

	case tui.ActionQuit:
		// Just exit cleanly
	}

	return nil
}
