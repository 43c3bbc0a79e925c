package skills

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/errors"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/hydrate"
	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/logging"
)

// DocName is the manifest filename that makes a directory a skill.
const DocName = "SKILL.md"

// skillNameRegex validates skill names.
// Names must start with a lowercase letter or digit, followed by lowercase
// letters, digits, underscores, or hyphens. Maximum length is 63 characters.
var skillNameRegex = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,62}$`)

// ValidateSkillName checks if a skill name is valid.
// Valid names:
//   - Start with a lowercase letter or digit
//   - Contain only lowercase letters, digits, underscores, or hyphens
//   - Are between 1 and 63 characters long
//   - Do not contain path separators or special characters
func ValidateSkillName(name string) error {
	if name == "" {
		return fmt.Errorf("skill name cannot be empty")
	}

	if !skillNameRegex.MatchString(name) {
		return fmt.Errorf("invalid skill name %q: must start with a lowercase letter or digit, contain only lowercase letters, digits, underscores, or hyphens, and be at most 63 characters", name)
	}

	return nil
}

// Metadata is the YAML frontmatter of a SKILL.md manifest. Unknown fields
// are ignored so manifests written for richer consumers still parse.
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Skill is a discovered skill directory.
type Skill struct {
	// Name comes from the manifest frontmatter, falling back to the
	// directory name.
	Name string

	// Description comes from the manifest frontmatter.
	Description string

	// Dir is the skill directory.
	Dir string

	// Path is the SKILL.md manifest path.
	Path string

	// Pending counts replacement markers still awaiting hydration
	// under Dir.
	Pending int
}

// Hydrated reports whether the skill has no markers left.
func (s Skill) Hydrated() bool {
	return s.Pending == 0
}

// ParseFrontmatter splits a manifest into its YAML frontmatter and body.
// A document without an opening fence is all body. A malformed YAML block
// is an error.
func ParseFrontmatter(data []byte) (Metadata, string, error) {
	var meta Metadata

	s := string(data)
	if !strings.HasPrefix(s, "---\n") {
		return meta, s, nil
	}

	rest := s[len("---\n"):]

	var front, body string
	if idx := strings.Index(rest, "\n---\n"); idx >= 0 {
		front = rest[:idx]
		body = rest[idx+len("\n---\n"):]
	} else if trimmed, ok := strings.CutSuffix(rest, "\n---"); ok {
		front = trimmed
	} else {
		// Unterminated fence: treat the whole document as body.
		return meta, s, nil
	}

	if err := yaml.Unmarshal([]byte(front), &meta); err != nil {
		return Metadata{}, "", fmt.Errorf("invalid frontmatter: %w", err)
	}

	return meta, body, nil
}

// Load reads a skill from its directory. The manifest must exist; a manifest
// that fails to parse still yields a skill named after the directory.
func Load(dir string) (Skill, error) {
	path := filepath.Join(dir, DocName)

	data, err := os.ReadFile(path)
	if err != nil {
		return Skill{}, errors.SkillNotFound(filepath.Base(dir))
	}

	skill := Skill{
		Name: filepath.Base(dir),
		Dir:  dir,
		Path: path,
	}

	meta, _, err := ParseFrontmatter(data)
	if err != nil {
		logging.Warn("unparseable skill manifest", "path", path, "error", err)
	} else {
		if meta.Name != "" {
			skill.Name = meta.Name
		}
		skill.Description = meta.Description
	}

	skill.Pending = countMarkers(dir)

	return skill, nil
}

// Discover walks root and returns every directory holding a SKILL.md, in
// walk order. Directories under a skill are part of that skill, not
// discovered separately.
func Discover(root string) ([]Skill, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("cannot read directory %s", root), err)
	}
	if !info.IsDir() {
		return nil, errors.ValidationError(fmt.Sprintf("not a directory: %s", root))
	}

	var found []Skill

	walkErr := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			logging.Warn("skipping unreadable path", "path", path, "error", err)
			return nil
		}

		if !d.IsDir() {
			return nil
		}

		if _, err := os.Stat(filepath.Join(path, DocName)); err != nil {
			return nil
		}

		skill, err := Load(path)
		if err != nil {
			return err
		}
		found = append(found, skill)

		if path == root {
			return fs.SkipAll
		}
		return fs.SkipDir
	})
	if walkErr != nil {
		return nil, errors.Wrap(errors.ExitGeneralError, fmt.Sprintf("cannot read directory %s", root), walkErr)
	}

	return found, nil
}

// countMarkers counts replacement markers under a skill directory,
// best-effort: unreadable corners are logged and skipped.
func countMarkers(dir string) int {
	count := 0

	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logging.Warn("skipping unreadable path", "path", path, "error", err)
			return nil
		}
		if d.Type().IsRegular() && hydrate.IsMarker(d.Name()) {
			count++
		}
		return nil
	})

	return count
}
