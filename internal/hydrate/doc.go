// Package hydrate restores dehydrated skill trees from their markers.
//
// Skill trees are distributed with shared documents replaced by small marker
// files so the canonical text lives in exactly one place. A marker is named
// <name>-replace.txt and contains a single relative path; hydration turns it
// back into <name>.md next to the marker by copying the referenced document.
//
// # Resolution
//
// The reference resolves against the marker's directory first. When the
// primary location is missing, the path is rewritten into the canonical
// styleguide checkout expected as a sibling of the consuming project
// (CanonicalProjectDir), keeping the final filename.
//
// Usage:
//
//	report, err := hydrate.Run(".")
//	for _, e := range report.Hydrated {
//	    fmt.Println(e.Target)
//	}
//
// # Guarantees
//
// Each marker is processed independently; one failure never stops the rest
// of the tree. A target is written through a staged temp file and the marker
// is only removed after the target fully lands, so an interrupted run leaves
// either the marker or the finished document, never neither. Hydrating an
// already-hydrated tree is a no-op.
//
// # Dehydration
//
// Dehydrate is the authoring inverse: it replaces a hydrated document with a
// marker referencing the canonical source, validating that the reference
// resolves before the document is removed.
package hydrate
