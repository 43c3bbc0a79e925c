// Package skills provides skill discovery, manifests, and scaffolding.
//
// A skill is a directory holding a SKILL.md manifest with YAML frontmatter
// plus any supporting documents. Skill trees are distributed dehydrated,
// with shared documents replaced by markers (see the hydrate package), so
// discovery also reports how many markers each skill still carries.
//
// # Discovery
//
// Discover walks a skills tree and returns each skill directory:
//
//	found, err := skills.Discover(".")
//	for _, s := range found {
//	    fmt.Println(s.Name, s.Description, s.Pending)
//	}
//
// The skill name comes from the frontmatter, falling back to the directory
// name when the manifest omits it. Directories under a skill belong to that
// skill and are not discovered separately.
//
// # Scaffolding
//
// Create lays out a new skill with a starter manifest rendered from an
// embedded template:
//
//	path, err := skills.Create(".", "naming", "How to name things")
package skills
