package main

import (
	"os"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/cmd"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
