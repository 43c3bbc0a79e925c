package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/hydrate"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/logging"
)

var dehydrateCmd = &cobra.Command{
	Use:   "dehydrate <target> <source-ref>",
	Short: "Replace a document with a marker referencing its source",
	Long: `The authoring inverse of hydrate: replaces a hydrated document with a
<name>-replace.txt marker containing source-ref, a relative path that must
resolve from the document's directory. The marker is fully written before
the document is removed, so hydrate can always restore it.`,
	Args: cobra.ExactArgs(2),
	RunE: runDehydrate,
}

func init() {
	rootCmd.AddCommand(dehydrateCmd)
}

func runDehydrate(cmd *cobra.Command, args []string) error {
	target, ref := args[0], args[1]

	logging.Debug("dehydration started", "target", target, "ref", ref)

	markerPath, err := hydrate.Dehydrate(target, ref)
	if err != nil {
		return err
	}

	logSuccess("Dehydrated %s", target)
	fmt.Printf("  wrote marker %s\n", markerPath)

	return nil
}
