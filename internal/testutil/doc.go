// Package testutil provides test fixtures and utilities.
//
// This package contains embedded markdown fixtures and an on-disk layout
// builder for exercising hydration against realistic skill trees.
//
// # Test Environment
//
// NewTestEnv lays out a consuming project with a skills tree next to a
// canonical styleguide checkout, the geometry fallback resolution expects:
//
//	tmp/
//	  project/
//	    skills/            <- scan root
//	  firefly-styleguide/  <- fallback lookup
//
// Builder methods populate the layout:
//
//	env := testutil.NewTestEnv(t)
//	dir := env.AddSkill("naming", "How to name things")
//	env.AddMarker(dir, "RULES", "../../RULES.md")
//	env.AddProjectDoc("RULES.md", testutil.StyleDoc())
//
// # Fixtures
//
// Markdown fixtures are embedded using go:embed:
//
//	fixtures/skill.md
//	fixtures/skill_anonymous.md
//	fixtures/style_doc.md
//
// Helper functions return them as strings:
//
//	doc := testutil.SkillDoc("naming", "How to name things")
//	doc := testutil.AnonymousSkillDoc()
//	doc := testutil.StyleDoc()
package testutil
