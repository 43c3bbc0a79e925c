package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/errors"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/hydrate"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/logging"
)

var hydrateCmd = &cobra.Command{
	Use:   "hydrate [dir]",
	Short: "Replace markers with the documents they reference",
	Long: `Walks the skill tree and replaces every <name>-replace.txt marker with the
document its content points at.

The marker content is a relative path resolved against the marker's own
directory. When the document is not there, the canonical firefly-styleguide
checkout expected as a sibling of the consuming repository is tried before
giving up. Each document fully lands before its marker is removed; failed
markers are left in place and reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHydrate,
}

func init() {
	rootCmd.AddCommand(hydrateCmd)
}

func runHydrate(cmd *cobra.Command, args []string) error {
	root := resolveDir(args)

	logging.Debug("hydration started", "root", root)

	report, err := hydrate.Run(root)
	if err != nil {
		return err
	}

	return printHydrationReport(root, report)
}

// printHydrationReport renders per-marker outcomes and returns the
// aggregate error when any marker failed. Shared with the picker's
// hydrate action.
func printHydrationReport(root string, report *hydrate.Report) error {
	if report.Empty() {
		logInfo("No markers found under %s", root)
		return nil
	}

	for _, e := range report.Hydrated {
		note := ""
		if e.Res.UsedFallback {
			note = " (from canonical checkout)"
		}
		logSuccess("Hydrated %s%s", displayPath(root, e.Target), note)
		fmt.Printf("  removed marker %s\n", displayPath(root, e.Marker.Path))
	}

	for _, e := range report.Failed {
		logError("%v", e.Err)
	}

	if len(report.Failed) > 0 {
		return errors.MarkersFailed(len(report.Failed))
	}

	logSuccess("Hydration complete")
	return nil
}
