package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/hydrate"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/skills"
)

var statusCmd = &cobra.Command{
	Use:   "status [dir]",
	Short: "Show skills and pending markers without changing anything",
	Long: `Lists the skills discovered under dir together with their hydration state,
then every pending marker with its target and where its source resolves.
The tree is never modified.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	root := resolveDir(args)

	found, err := skills.Discover(root)
	if err != nil {
		return err
	}

	entries, err := hydrate.Scan(root)
	if err != nil {
		return err
	}

	if len(found) == 0 {
		logInfo("No skills found under %s", root)
	} else {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSTATE\tDESCRIPTION")
		fmt.Fprintln(w, "----\t-----\t-----------")

		for _, s := range found {
			fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, formatSkillState(s), s.Description)
		}

		if err := w.Flush(); err != nil {
			return err
		}
	}

	if len(entries) == 0 {
		logSuccess("All documents hydrated")
		return nil
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MARKER\tTARGET\tSOURCE")
	fmt.Fprintln(w, "------\t------\t------")

	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\n",
			displayPath(root, e.Marker.Path),
			displayPath(root, e.Target),
			formatResolution(root, e))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	logInfo("Hydrate with: %s", shellquote.Join("skills-ctl", "hydrate", root))

	return nil
}

func formatSkillState(s skills.Skill) string {
	if s.Hydrated() {
		return "✓ ready"
	}
	return fmt.Sprintf("○ %d pending", s.Pending)
}

func formatResolution(root string, e hydrate.Entry) string {
	if e.Err != nil {
		if e.Res.Primary != "" {
			return fmt.Sprintf("✗ not found: %s", displayPath(root, e.Res.Primary))
		}
		return "✗ invalid marker"
	}
	if e.Res.UsedFallback {
		return fmt.Sprintf("%s (canonical)", displayPath(root, e.Res.Source))
	}
	return displayPath(root, e.Res.Source)
}
