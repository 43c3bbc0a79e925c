// Package install copies hydrated skills into consuming projects.
//
// Skills install under <project>/.claude/skills/<name>, the directory
// agent CLIs read project skills from. Only fully hydrated skills are
// installable: a skill still carrying replacement markers would ship
// dangling references instead of documents.
//
// Existing destination files are preserved unless Force is set, so local
// edits survive a reinstall:
//
//	result, err := install.Run(install.Options{
//	    SkillsDir:  ".",
//	    Skill:      "naming",
//	    ProjectDir: "../my-app",
//	})
//
// Destination paths are built with securejoin so a skill tree cannot
// write outside the project's skills directory.
package install
