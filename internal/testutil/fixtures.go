package testutil

import (
	"embed"
	"fmt"
)

//go:embed fixtures/*.md
var fixturesFS embed.FS

// LoadFixture loads a markdown fixture file by name.
func LoadFixture(name string) ([]byte, error) {
	return fixturesFS.ReadFile("fixtures/" + name)
}

// mustFixture returns a fixture's content, panicking on a missing file.
// Fixtures are embedded, so a failure is a programming error.
func mustFixture(name string) string {
	data, err := LoadFixture(name)
	if err != nil {
		panic("testutil: missing fixture " + name)
	}
	return string(data)
}

// SkillDoc returns a SKILL.md document with the given frontmatter fields.
func SkillDoc(name, description string) string {
	return fmt.Sprintf(mustFixture("skill.md"), name, description)
}

// AnonymousSkillDoc returns a SKILL.md whose frontmatter carries no name,
// for exercising directory-name fallback.
func AnonymousSkillDoc() string {
	return mustFixture("skill_anonymous.md")
}

// StyleDoc returns a prose styleguide document used as copy material.
func StyleDoc() string {
	return mustFixture("style_doc.md")
}
