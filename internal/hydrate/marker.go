package hydrate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/firefly-engineering/firefly-styleguide/packages/skills-ctl/internal/errors"
)

// File-naming convention for dehydrated skill trees. These are fixed by the
// distribution format, not configurable.
const (
	// MarkerSuffix identifies replacement marker files.
	MarkerSuffix = "-replace.txt"

	// TargetExt is the extension of the document a marker hydrates into.
	TargetExt = ".md"

	// CanonicalProjectDir is the directory name of the styleguide checkout
	// expected as a sibling of the consuming project. Fallback resolution
	// looks here when a marker's primary reference is missing.
	CanonicalProjectDir = "firefly-styleguide"
)

// IsMarker reports whether name is a replacement marker filename.
func IsMarker(name string) bool {
	return strings.HasSuffix(name, MarkerSuffix)
}

// TargetName returns the document filename a marker hydrates into:
// the marker suffix stripped and the target extension appended.
func TargetName(markerName string) string {
	return strings.TrimSuffix(markerName, MarkerSuffix) + TargetExt
}

// MarkerName returns the marker filename for a target document,
// the inverse of TargetName.
func MarkerName(targetName string) string {
	return strings.TrimSuffix(targetName, TargetExt) + MarkerSuffix
}

// Marker is a replacement marker file found in a skill tree.
type Marker struct {
	// Path is the marker file's path as walked from the scan root.
	Path string

	// Dir is the directory containing the marker. Relative references
	// resolve from here.
	Dir string

	// Ref is the whitespace-trimmed relative path read from the marker.
	Ref string
}

// ReadMarker reads a marker file and validates its reference. An unreadable
// marker or one whose content is empty after trimming is invalid.
func ReadMarker(path string) (Marker, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Marker{}, errors.InvalidMarker(path, err)
	}

	ref := strings.TrimSpace(string(data))
	if ref == "" {
		return Marker{}, errors.InvalidMarker(path, fmt.Errorf("empty reference"))
	}

	return Marker{
		Path: path,
		Dir:  filepath.Dir(path),
		Ref:  ref,
	}, nil
}
