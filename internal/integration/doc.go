// Package integration holds workflow tests that exercise complete skill
// lifecycles through the public package APIs.
//
// The tests drive scaffolding, dehydration, hydration and installation
// together, verifying the pieces compose the way the CLI uses them. They
// run on plain temporary directories and need no external infrastructure.
//
// # Covered Workflows
//
//   - Author a skill, dehydrate a shared document, hydrate it back and
//     install the result into a project
//   - Fallback resolution against the canonical styleguide checkout
//   - Repeated hydration over an already hydrated tree
//   - Recovery after a marker's source appears late
package integration
