package skills

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/errors"
)

// Create scaffolds a new skill directory under root with a starter SKILL.md
// and returns the manifest path. An existing directory of the same name is
// refused.
func Create(root, name, description string) (string, error) {
	if err := ValidateSkillName(name); err != nil {
		return "", errors.ValidationError(err.Error())
	}

	dir := filepath.Join(root, name)
	if _, err := os.Stat(dir); err == nil {
		return "", errors.ValidationError(fmt.Sprintf("skill already exists: %s", dir))
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", errors.WriteFailure("create", dir, err)
	}

	path := filepath.Join(dir, DocName)
	if err := os.WriteFile(path, []byte(Scaffold(name, description)), 0644); err != nil {
		return "", errors.WriteFailure("write", path, err)
	}

	return path, nil
}
